package auth

import (
	"context"

	"hotel/infras/otel"
	"hotel/internal/domains/auth/model/dto"
	"hotel/internal/domains/auth/service"
	"hotel/internal/session"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/transport/console/response"
	"hotel/transport/console/terminal"

	"github.com/rs/zerolog/log"
)

const (
	choiceTryAgain = 1

	MessageInvalidLogin = "\n -- Invalid Username and/or password. --\n"
)

type Handler struct {
	service service.Auth
	otel    otel.Otel
}

func New(service service.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Register creates a customer account, offering another attempt after each rejected one.
func (handler *Handler) Register(ctx context.Context, term *terminal.Terminal) (err error) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	response.WithHeader(term.Out(), "New User Registration")
	term.Println("Please enter the following information.")
	term.Println(" - Password must be between 5 and 20 characters")
	term.Println(" - Password must not contain any spaces")
	term.Println()

	for {
		req := dto.RegisterRequest{}

		if req.Name, err = term.Prompt("Username: "); err != nil {
			return err
		}

		if req.Password, err = term.ReadPassword("Password: "); err != nil {
			return err
		}

		if req.ConfirmPassword, err = term.ReadPassword("Confirm Password: "); err != nil {
			return err
		}

		res, err := handler.service.Register(ctx, req)
		if err == nil {
			scope.AddEvent("User registered")
			term.Printf(" User sucessfully created with userId= %d and Name = %s\n", res.UserID, res.Name)

			return nil
		}

		if !failure.IsUserFacing(err) {
			log.Error().Err(err).Msg("failed to register user")
		}

		response.WithError(term.Out(), err)

		term.Println("\n1. Try again.")
		term.Println("2. < Back to Main Menu")
		term.Println()

		choice, err := term.ReadChoice()
		if err != nil {
			return err
		}

		if choice != choiceTryAgain {
			return nil
		}
	}
}

// Login reads credentials and returns the authenticated principal.
func (handler *Handler) Login(ctx context.Context, term *terminal.Terminal) (principal session.Principal, err error) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	response.WithHeader(term.Out(), "USER LOGIN")
	term.Println("Please enter your username and password.")
	term.Println()

	req := dto.LoginRequest{}

	if req.Name, err = term.Prompt("User: "); err != nil {
		return principal, err
	}

	if req.Password, err = term.ReadPassword("Password: "); err != nil {
		return principal, err
	}

	principal, err = handler.service.Login(ctx, req)
	if err != nil {
		return principal, err
	}

	scope.AddEvent("User logged in")

	return principal, nil
}
