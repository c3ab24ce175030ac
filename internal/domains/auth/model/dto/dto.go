package dto

import (
	userModel "hotel/internal/domains/user/model"
	"hotel/internal/session"
	"hotel/shared/constant"
)

type RegisterRequest struct {
	Name            string `name:"username"         validate:"required,max=50"`
	Password        string `name:"password"         validate:"required,min=5,max=20,nospace"`
	ConfirmPassword string `name:"confirm password" validate:"required,eqfield=Password"`
}

func (r *RegisterRequest) ToUserModel(hashedPassword string) userModel.User {
	return userModel.User{
		Name:     r.Name,
		Password: hashedPassword,
		UserType: constant.RoleCustomer,
	}
}

type RegisterResponse struct {
	UserID int64
	Name   string
}

type LoginRequest struct {
	Name     string `name:"username" validate:"required"`
	Password string `name:"password" validate:"required"`
}

func ToPrincipal(user userModel.User) session.Principal {
	return session.NewPrincipal(user.UserID, user.Name, user.Role())
}
