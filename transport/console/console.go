// Package console drives the interactive menus of one operator session.
package console

import (
	"context"
	"errors"
	"io"

	"hotel/internal/handlers/auth"
	"hotel/internal/session"
	"hotel/permissions"
	"hotel/shared/failure"
	"hotel/transport/console/response"
	"hotel/transport/console/router"
	"hotel/transport/console/terminal"

	"github.com/rs/zerolog/log"
)

const (
	actionRegister = "register"
	actionLogin    = "login"
	actionExit     = "exit"

	greeting = "\n\n*******************************************************\n" +
		"              User Interface\n" +
		"*******************************************************\n"

	MessageReturnToMenu = "Returning to Menu, press Enter to continue...\n"
)

type Console struct {
	Auth        auth.Handler
	Router      *router.Router
	Permissions *permissions.PermissionData
	session     *session.Session
}

func New(authHandler auth.Handler, r *router.Router, perms *permissions.PermissionData) *Console {
	return &Console{
		Auth:        authHandler,
		Router:      r,
		Permissions: perms,
		session:     session.New(),
	}
}

// Run shows the main menu until the operator exits, the input ends or ctx is done.
func (c *Console) Run(ctx context.Context, term *terminal.Terminal) error {
	term.Printf("%s\n", greeting)

	for ctx.Err() == nil {
		c.mainMenu(term)

		choice, err := term.ReadChoice()
		if err != nil {
			return ignoreEOF(err)
		}

		var outcome router.Outcome

		switch c.mainAction(choice) {
		case actionRegister:
			outcome = c.register(ctx, term)
		case actionLogin:
			outcome = c.login(ctx, term)
		case actionExit:
			outcome = router.OutcomeExit
		default:
			response.WithMessage(term.Out(), response.MessageUnrecognized)
		}

		if outcome == router.OutcomeExit {
			return nil
		}
	}

	return nil
}

func (c *Console) register(ctx context.Context, term *terminal.Terminal) router.Outcome {
	err := c.Auth.Register(ctx, term)
	if errors.Is(err, io.EOF) {
		return router.OutcomeExit
	}

	if err != nil {
		response.WithError(term.Out(), err)
	}

	return router.OutcomeContinue
}

// login authenticates the operator and runs the role menu until logout.
func (c *Console) login(ctx context.Context, term *terminal.Terminal) router.Outcome {
	c.session.Logout()

	principal, err := c.Auth.Login(ctx, term)
	if errors.Is(err, io.EOF) {
		return router.OutcomeExit
	}

	if err != nil {
		if failure.IsUserFacing(err) {
			term.Println(auth.MessageInvalidLogin)
		} else {
			response.WithError(term.Out(), err)
		}

		if err = term.WaitEnter(MessageReturnToMenu); err != nil {
			return router.OutcomeExit
		}

		return router.OutcomeContinue
	}

	c.session.Login(principal)
	defer c.session.Logout()

	log.Info().Int64("userID", principal.UserID).Str("role", principal.Role).Msg("User logged in")

	for ctx.Err() == nil {
		c.Router.Menu(term.Out(), principal)

		choice, err := term.ReadChoice()
		if err != nil {
			return router.OutcomeExit
		}

		switch c.Router.Dispatch(c.session.Context(ctx), term, principal, choice) {
		case router.OutcomeLogout:
			log.Info().Int64("userID", principal.UserID).Msg("User logged out")

			return router.OutcomeContinue
		case router.OutcomeExit:
			return router.OutcomeExit
		case router.OutcomeContinue:
		}
	}

	return router.OutcomeExit
}

func (c *Console) mainMenu(term *terminal.Terminal) {
	term.Println("MAIN MENU")
	term.Println("---------")

	for _, action := range c.Permissions.MainMenu {
		term.Printf("%d. %s\n", action.Number, action.Label)
	}

	term.Println()
}

func (c *Console) mainAction(choice int) string {
	for _, action := range c.Permissions.MainMenu {
		if action.Number == choice {
			return action.Name
		}
	}

	return ""
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}

	return err
}
