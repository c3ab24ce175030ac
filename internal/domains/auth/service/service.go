package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/auth/model/dto"
	userModel "hotel/internal/domains/user/model"
	userRepo "hotel/internal/domains/user/repository"
	"hotel/internal/session"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/password"
	"hotel/shared/validator"

	"github.com/rs/zerolog/log"
)

var ErrUsernameTaken = failure.Conflict("A user with that name already exists!")

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.RegisterResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (session.Principal, error)
}

type serviceImpl struct {
	userRepo userRepo.User
	otel     otel.Otel
}

func New(userRepo userRepo.User, otel otel.Otel) Auth {
	return &serviceImpl{
		userRepo: userRepo,
		otel:     otel,
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res dto.RegisterResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	nameFilter := shared.FilterByID(req.Name, userModel.FieldName, userModel.TableName)

	exists, err := s.userRepo.Exist(ctx, nameFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return res, fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return res, ErrUsernameTaken
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	userID, err := s.userRepo.InsertReturning(ctx, req.ToUserModel(hashedPassword))
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return res, ErrUsernameTaken
		}

		log.Error().Err(err).Msg("failed to create user")

		return res, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info().Int64("user_id", userID).Msg("user registered")

	return dto.RegisterResponse{UserID: userID, Name: req.Name}, nil
}

// Login never tells the caller which part of the credentials was wrong.
func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (principal session.Principal, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()

	if err = validator.ValidateStruct(&req); err != nil {
		return principal, failure.InvalidCredentials
	}

	user, found, err := s.userRepo.Get(ctx, shared.FilterByID(req.Name, userModel.FieldName, userModel.TableName))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get user")

		return principal, fmt.Errorf("failed to get user: %w", err)
	}

	if !found {
		log.Warn().Str("name", req.Name).Msg("login attempt with unknown name")

		return principal, failure.InvalidCredentials
	}

	if err = password.Verify(req.Password, strings.TrimSpace(user.Password)); err != nil {
		if !errors.Is(err, password.ErrInvalidPassword) {
			log.Error().Err(err).Msg("failed to verify password")
		}

		log.Warn().Str("name", req.Name).Msg("login attempt with wrong password")

		return principal, failure.InvalidCredentials
	}

	return dto.ToPrincipal(user), nil
}
