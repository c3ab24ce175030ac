package booking

import (
	"context"
	"io"
	"strconv"

	"hotel/infras/otel"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/service"
	hotelService "hotel/internal/domains/hotel/service"
	roomDto "hotel/internal/domains/room/model/dto"
	roomService "hotel/internal/domains/room/service"
	"hotel/internal/handlers/hotel"
	"hotel/internal/handlers/room"
	"hotel/shared/constant"
	"hotel/shared/timezone"
	"hotel/transport/console/response"
	"hotel/transport/console/terminal"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service      service.Booking
	roomService  roomService.Room
	hotelService hotelService.Hotel
	otel         otel.Otel
}

func New(service service.Booking, roomService roomService.Room, hotelService hotelService.Hotel, otel otel.Otel) Handler {
	return Handler{
		service:      service,
		roomService:  roomService,
		hotelService: hotelService,
		otel:         otel,
	}
}

// BookRoom shows the free rooms of a hotel, quotes the chosen one and books it once confirmed.
func (handler *Handler) BookRoom(ctx context.Context, term *terminal.Terminal) (err error) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	response.WithHeader(term.Out(), "BOOK A ROOM")

	req := dto.QuoteRequest{}

	if req.HotelID, err = term.ReadInt64("Hotel ID: "); err != nil {
		return err
	}

	if req.Date, err = term.ReadDate("Date "); err != nil {
		return err
	}

	rooms, err := handler.roomService.AvailableRooms(ctx, roomDto.AvailabilityRequest{HotelID: req.HotelID, Date: req.Date})
	if err != nil {
		log.Error().Err(err).Int64("hotelID", req.HotelID).Msg("failed to list available rooms")

		return err
	}

	if len(rooms) == 0 {
		response.WithMessage(term.Out(), "No rooms are available on "+timezone.FormatDate(req.Date)+".")

		return nil
	}

	writeRooms(term.Out(), rooms)

	if req.RoomNumber, err = term.ReadInt("Room Number: "); err != nil {
		return err
	}

	quote, err := handler.service.Quote(ctx, req)
	if err != nil {
		return err
	}

	term.Printf("Room %d of hotel %d on %s costs %s.\n",
		quote.RoomNumber, quote.HotelID, timezone.FormatDate(quote.Date), room.FormatPrice(quote.Price))

	confirmed, err := term.Confirm("Confirm booking?")
	if err != nil {
		return err
	}

	if !confirmed {
		response.WithMessage(term.Out(), "Booking cancelled.")

		return nil
	}

	booking, err := handler.service.Confirm(ctx, quote)
	if err != nil {
		return err
	}

	scope.AddEvent("Room booked")
	term.Printf("Booking confirmed, booking number %d.\n", booking.BookingID)

	return nil
}

// RecentBookings lists the principal's latest bookings.
func (handler *Handler) RecentBookings(ctx context.Context, term *terminal.Terminal) (err error) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RecentBookings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	response.WithHeader(term.Out(), "RECENT BOOKINGS")

	bookings, err := handler.service.RecentBookings(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list recent bookings")

		return err
	}

	writeBookings(term.Out(), bookings, "You have no bookings yet.")

	return nil
}

func (handler *Handler) HotelHistory(ctx context.Context, term *terminal.Terminal) (err error) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".HotelHistory")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	response.WithHeader(term.Out(), "BOOKING HISTORY OF THE HOTEL")

	req := dto.HistoryRequest{}

	if req.HotelID, err = hotel.ChooseManagedHotel(ctx, term, handler.hotelService); err != nil {
		return err
	}

	if req.From, err = term.ReadDate("From "); err != nil {
		return err
	}

	if req.To, err = term.ReadDate("To "); err != nil {
		return err
	}

	bookings, err := handler.service.HotelHistory(ctx, req)
	if err != nil {
		return err
	}

	writeBookings(term.Out(), bookings, "No bookings in this period.")

	return nil
}

func (handler *Handler) RegularCustomers(ctx context.Context, term *terminal.Terminal) (err error) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RegularCustomers")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	response.WithHeader(term.Out(), "REGULAR CUSTOMERS")

	hotelID, err := hotel.ChooseManagedHotel(ctx, term, handler.hotelService)
	if err != nil {
		return err
	}

	customers, err := handler.service.RegularCustomers(ctx, hotelID)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(customers))
	for _, customer := range customers {
		rows = append(rows, []string{
			strconv.FormatInt(customer.CustomerID, 10),
			customer.Name,
			strconv.Itoa(customer.Bookings),
		})
	}

	response.WithTable(term.Out(), []string{"Customer ID", "Name", "Bookings"}, rows, "This hotel has no customers yet.")

	return nil
}

func writeRooms(writer io.Writer, rooms []roomDto.RoomResponse) {
	rows := make([][]string, 0, len(rooms))
	for _, available := range rooms {
		rows = append(rows, []string{strconv.Itoa(available.RoomNumber), room.FormatPrice(available.Price)})
	}

	response.WithTable(writer, []string{"Room", "Price"}, rows, constant.Empty)
}

func writeBookings(writer io.Writer, bookings []dto.BookingResponse, empty string) {
	rows := make([][]string, 0, len(bookings))
	for _, booking := range bookings {
		rows = append(rows, []string{
			strconv.FormatInt(booking.BookingID, 10),
			strconv.FormatInt(booking.CustomerID, 10),
			strconv.FormatInt(booking.HotelID, 10),
			strconv.Itoa(booking.RoomNumber),
			timezone.FormatDate(booking.BookingDate),
		})
	}

	response.WithTable(writer, []string{"Booking ID", "Customer", "Hotel ID", "Room", "Date"}, rows, empty)
}
