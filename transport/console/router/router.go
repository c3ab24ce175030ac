package router

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"

	"hotel/config"
	"hotel/internal/handlers/booking"
	"hotel/internal/handlers/hotel"
	"hotel/internal/handlers/maintenance"
	"hotel/internal/handlers/room"
	"hotel/internal/session"
	"hotel/permissions"
	"hotel/transport/console/response"
	"hotel/transport/console/terminal"

	"github.com/rs/zerolog/log"
)

const placeholderRadius = "{radius}"

// Action runs one menu entry for the principal carried by ctx.
type Action func(ctx context.Context, term *terminal.Terminal) error

// Outcome tells the menu loop what to do after a choice.
type Outcome int

const (
	OutcomeContinue Outcome = iota + 1
	OutcomeLogout
	OutcomeExit
)

type DomainHandlers struct {
	Hotel       hotel.Handler
	Room        room.Handler
	Booking     booking.Handler
	Maintenance maintenance.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	permissions    *permissions.PermissionData
	config         *config.Config
	actions        map[string]Action
}

func New(domainHandlers DomainHandlers, permissions *permissions.PermissionData, cfg *config.Config) *Router {
	r := &Router{
		DomainHandlers: domainHandlers,
		permissions:    permissions,
		config:         cfg,
		actions:        map[string]Action{},
	}

	r.setupActions()

	return r
}

func (r *Router) setupActions() {
	r.Handle("hotels.nearby", r.DomainHandlers.Hotel.NearbyHotels)
	r.Handle("rooms.view", r.DomainHandlers.Room.ViewRooms)
	r.Handle("bookings.create", r.DomainHandlers.Booking.BookRoom)
	r.Handle("bookings.recent", r.DomainHandlers.Booking.RecentBookings)
	r.Handle("rooms.update", r.DomainHandlers.Room.UpdateRoom)
	r.Handle("rooms.updates", r.DomainHandlers.Room.RecentUpdates)
	r.Handle("bookings.history", r.DomainHandlers.Booking.HotelHistory)
	r.Handle("bookings.regulars", r.DomainHandlers.Booking.RegularCustomers)
	r.Handle("repairs.create", r.DomainHandlers.Maintenance.PlaceRepairRequest)
	r.Handle("repairs.history", r.DomainHandlers.Maintenance.RepairHistory)
}

// Handle binds action to the capability named name, replacing any previous binding.
func (r *Router) Handle(name string, action Action) {
	r.actions[name] = action
}

// Menu prints the entries the principal's role may choose.
func (r *Router) Menu(writer io.Writer, principal session.Principal) {
	var menu strings.Builder

	menu.WriteString("MAIN MENU\n---------\n")

	for _, action := range r.permissions.ActionsFor(principal.Role) {
		menu.WriteString(r.entry(action))
	}

	menu.WriteString(".........................\n")
	menu.WriteString(r.entry(r.permissions.Logout))
	menu.WriteString(r.entry(r.permissions.Exit))

	response.WithMessage(writer, menu.String())
}

// Dispatch runs the action behind choice. Unknown and forbidden choices leave everything as it was.
func (r *Router) Dispatch(ctx context.Context, term *terminal.Terminal, principal session.Principal, choice int) Outcome {
	switch choice {
	case r.permissions.Logout.Number:
		return OutcomeLogout
	case r.permissions.Exit.Number:
		return OutcomeExit
	}

	action, ok := r.permissions.Find(principal.Role, choice)
	if !ok {
		response.WithMessage(term.Out(), response.MessageUnrecognized)

		return OutcomeContinue
	}

	handler, ok := r.actions[action.Name]
	if !ok {
		log.Warn().Str("action", action.Name).Msg("no handler bound to action")
		response.WithMessage(term.Out(), response.MessageUnrecognized)

		return OutcomeContinue
	}

	// no deadline here: handlers wait on the operator between store calls
	ctx = session.NewContext(ctx, principal)

	err := handler(ctx, term)

	switch {
	case err == nil:
		return OutcomeContinue
	case errors.Is(err, io.EOF):
		log.Debug().Str("action", action.Name).Msg("input closed")

		return OutcomeExit
	default:
		response.WithError(term.Out(), err)

		return OutcomeContinue
	}
}

func (r *Router) entry(action permissions.Action) string {
	label := strings.ReplaceAll(action.Label, placeholderRadius, strconv.FormatFloat(r.config.App.SearchRadius, 'f', -1, 64))

	return strconv.Itoa(action.Number) + ". " + label + "\n"
}
