package hotel

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/hotel/model/dto"
	"hotel/internal/domains/hotel/service"
	"hotel/shared/constant"
	"hotel/shared/timezone"
	"hotel/transport/console/response"
	"hotel/transport/console/terminal"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Hotel
	config  *config.Config
	otel    otel.Otel
}

func New(service service.Hotel, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		config:  cfg,
		otel:    otel,
	}
}

// NearbyHotels asks for a position and lists the hotels within the configured radius.
func (handler *Handler) NearbyHotels(ctx context.Context, term *terminal.Terminal) (err error) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".NearbyHotels")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	response.WithHeader(term.Out(), "BROWSE HOTELS")

	req := dto.NearbyRequest{Radius: handler.config.App.SearchRadius}

	if req.Latitude, err = term.ReadFloat("Latitude: "); err != nil {
		return err
	}

	if req.Longitude, err = term.ReadFloat("Longitude: "); err != nil {
		return err
	}

	hotels, err := handler.service.HotelsWithinRadius(ctx, req)
	if err != nil {
		log.Error().Err(err).Msg("failed to list nearby hotels")

		return err
	}

	rows := make([][]string, 0, len(hotels))
	for _, hotel := range hotels {
		rows = append(rows, []string{
			strconv.FormatInt(hotel.HotelID, 10),
			hotel.Name,
			formatCoordinate(hotel.Latitude),
			formatCoordinate(hotel.Longitude),
			strconv.FormatFloat(hotel.Distance, 'f', 2, 64),
		})
	}

	response.WithTable(term.Out(), []string{"Hotel ID", "Name", "Latitude", "Longitude", "Distance"}, rows,
		fmt.Sprintf("No hotels within %s units.", formatCoordinate(req.Radius)))

	return nil
}

// ChooseManagedHotel prints the hotels the principal manages and reads a hotel id.
func ChooseManagedHotel(ctx context.Context, term *terminal.Terminal, svc service.Hotel) (int64, error) {
	hotels, err := svc.HotelsManagedBy(ctx)
	if err != nil {
		return 0, err
	}

	WriteHotels(term.Out(), hotels)

	return term.ReadInt64("Hotel ID: ")
}

func WriteHotels(writer io.Writer, hotels []dto.HotelResponse) {
	rows := make([][]string, 0, len(hotels))
	for _, hotel := range hotels {
		rows = append(rows, []string{
			strconv.FormatInt(hotel.HotelID, 10),
			hotel.Name,
			timezone.FormatDate(hotel.DateEstablished),
		})
	}

	response.WithTable(writer, []string{"Hotel ID", "Name", "Established"}, rows, "You do not manage any hotel.")
}

func formatCoordinate(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
