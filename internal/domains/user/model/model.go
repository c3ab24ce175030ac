package model

import "strings"

const (
	TableName  = "Users"
	EntityName = "user"

	FieldID       = "userID"
	FieldName     = "name"
	FieldPassword = "password"
	FieldUserType = "userType"
)

type User struct {
	UserID   int64  `db:"userid"`
	Name     string `db:"name"`
	Password string `db:"password"`
	UserType string `db:"usertype"`
}

// Role is the user type without the padding of fixed-width columns.
func (u User) Role() string {
	return strings.ToLower(strings.TrimSpace(u.UserType))
}
