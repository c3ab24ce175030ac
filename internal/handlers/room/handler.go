package room

import (
	"context"
	"io"
	"strconv"

	"hotel/infras/otel"
	hotelService "hotel/internal/domains/hotel/service"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/service"
	"hotel/internal/handlers/hotel"
	"hotel/shared/constant"
	"hotel/shared/timezone"
	"hotel/transport/console/response"
	"hotel/transport/console/terminal"

	"github.com/rs/zerolog/log"
)

const (
	editorChoicePrice = iota + 1
	editorChoiceImageURL
	editorChoiceUpload
	editorChoiceSave
	editorChoiceExit = 9
)

type Handler struct {
	service      service.Room
	hotelService hotelService.Hotel
	otel         otel.Otel
}

func New(service service.Room, hotelService hotelService.Hotel, otel otel.Otel) Handler {
	return Handler{
		service:      service,
		hotelService: hotelService,
		otel:         otel,
	}
}

// ViewRooms lists every room of a hotel with its availability on a date.
func (handler *Handler) ViewRooms(ctx context.Context, term *terminal.Terminal) (err error) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ViewRooms")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	response.WithHeader(term.Out(), "BROWSE ROOMS")

	req := dto.AvailabilityRequest{}

	if req.HotelID, err = term.ReadInt64("Hotel ID: "); err != nil {
		return err
	}

	if req.Date, err = term.ReadDate("Date "); err != nil {
		return err
	}

	rooms, err := handler.service.ViewRooms(ctx, req)
	if err != nil {
		log.Error().Err(err).Int64("hotelID", req.HotelID).Msg("failed to view rooms")

		return err
	}

	rows := make([][]string, 0, len(rooms))
	for _, room := range rooms {
		availability := "booked"
		if room.Available {
			availability = "available"
		}

		rows = append(rows, []string{
			strconv.Itoa(room.RoomNumber),
			FormatPrice(room.Price),
			availability,
			room.ImageURL,
		})
	}

	response.WithTable(term.Out(), []string{"Room", "Price", "Status", "Image"}, rows, "This hotel has no rooms.")

	return nil
}

// UpdateRoom runs the staged editor of one room until the changes are saved or abandoned.
func (handler *Handler) UpdateRoom(ctx context.Context, term *terminal.Terminal) (err error) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	response.WithHeader(term.Out(), "UPDATE ROOM INFORMATION")

	hotelID, err := hotel.ChooseManagedHotel(ctx, term, handler.hotelService)
	if err != nil {
		return err
	}

	roomNumber, err := term.ReadInt("Room Number: ")
	if err != nil {
		return err
	}

	editor, err := handler.service.OpenEditor(ctx, hotelID, roomNumber)
	if err != nil {
		return err
	}

	saved := false

	defer func() {
		if !saved {
			editor.Discard(ctx)
		}
	}()

	for {
		writeRoom(term.Out(), editor.Room(), editor.Dirty())

		term.Println("1. Change price")
		term.Println("2. Change image URL")
		term.Println("3. Upload image from file")
		term.Println("4. Save changes")
		term.Println("9. < Exit without saving")

		choice, err := term.ReadChoice()
		if err != nil {
			return err
		}

		switch choice {
		case editorChoicePrice:
			price, err := term.ReadFloat("New price: ")
			if err != nil {
				return err
			}

			reportError(term.Out(), editor.SetPrice(price))
		case editorChoiceImageURL:
			url, err := term.Prompt("New image URL: ")
			if err != nil {
				return err
			}

			reportError(term.Out(), editor.SetImageURL(url))
		case editorChoiceUpload:
			path, err := term.Prompt("Image file path: ")
			if err != nil {
				return err
			}

			reportError(term.Out(), editor.UploadImage(ctx, path))
		case editorChoiceSave:
			entry, err := editor.Save(ctx)
			if err != nil {
				response.WithError(term.Out(), err)

				continue
			}

			saved = true

			scope.AddEvent("Room updated")
			term.Printf("Room updated, update number %d.\n", entry.UpdateNumber)

			return nil
		case editorChoiceExit:
			if editor.Dirty() {
				response.WithMessage(term.Out(), "Changes discarded.")
			}

			return nil
		default:
			response.WithMessage(term.Out(), response.MessageUnrecognized)
		}
	}
}

// RecentUpdates lists the latest update log entries of the principal's hotels.
func (handler *Handler) RecentUpdates(ctx context.Context, term *terminal.Terminal) (err error) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RecentUpdates")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	response.WithHeader(term.Out(), "RECENT ROOM UPDATES")

	entries, err := handler.service.RecentUpdates(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list room updates")

		return err
	}

	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{
			strconv.FormatInt(entry.UpdateNumber, 10),
			strconv.FormatInt(entry.ManagerID, 10),
			strconv.FormatInt(entry.HotelID, 10),
			strconv.Itoa(entry.RoomNumber),
			timezone.Format(entry.UpdatedOn, constant.TimestampFormat),
		})
	}

	response.WithTable(term.Out(), []string{"Update", "Manager", "Hotel ID", "Room", "Updated On"}, rows, "No room updates yet.")

	return nil
}

func FormatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', 2, 64)
}

func writeRoom(writer io.Writer, room dto.RoomResponse, dirty bool) {
	image := room.ImageURL
	if image == constant.Empty {
		image = "-"
	}

	title := "Room " + strconv.Itoa(room.RoomNumber) + " of hotel " + strconv.FormatInt(room.HotelID, 10)
	if dirty {
		title += " (unsaved changes)"
	}

	response.WithHeader(writer, title)
	response.WithTable(writer, []string{"Price", "Image"}, [][]string{{FormatPrice(room.Price), image}}, constant.Empty)
}

func reportError(writer io.Writer, err error) {
	if err == nil {
		return
	}

	response.WithError(writer, err)
}
