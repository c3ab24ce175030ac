package maintenance

import (
	"context"
	"strconv"

	"hotel/infras/otel"
	hotelService "hotel/internal/domains/hotel/service"
	"hotel/internal/domains/maintenance/model/dto"
	"hotel/internal/domains/maintenance/service"
	"hotel/internal/handlers/hotel"
	"hotel/shared/constant"
	"hotel/shared/timezone"
	"hotel/transport/console/response"
	"hotel/transport/console/terminal"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service      service.Maintenance
	hotelService hotelService.Hotel
	otel         otel.Otel
}

func New(service service.Maintenance, hotelService hotelService.Hotel, otel otel.Otel) Handler {
	return Handler{
		service:      service,
		hotelService: hotelService,
		otel:         otel,
	}
}

// PlaceRepairRequest lists the maintenance companies and asks one of them to repair a room today.
func (handler *Handler) PlaceRepairRequest(ctx context.Context, term *terminal.Terminal) (err error) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PlaceRepairRequest")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	response.WithHeader(term.Out(), "PLACE ROOM REPAIR REQUEST")

	req := dto.RepairRequest{}

	if req.HotelID, err = hotel.ChooseManagedHotel(ctx, term, handler.hotelService); err != nil {
		return err
	}

	if req.RoomNumber, err = term.ReadInt("Room Number: "); err != nil {
		return err
	}

	companies, err := handler.service.Companies(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list maintenance companies")

		return err
	}

	rows := make([][]string, 0, len(companies))
	for _, company := range companies {
		certified := "no"
		if company.IsCertified {
			certified = "yes"
		}

		rows = append(rows, []string{strconv.FormatInt(company.CompanyID, 10), company.Name, company.Address, certified})
	}

	response.WithTable(term.Out(), []string{"Company ID", "Name", "Address", "Certified"}, rows, "No maintenance companies are registered.")

	if len(companies) == 0 {
		return nil
	}

	if req.CompanyID, err = term.ReadInt64("Company ID: "); err != nil {
		return err
	}

	repair, err := handler.service.PlaceRepairRequest(ctx, req)
	if err != nil {
		return err
	}

	scope.AddEvent("Repair requested")
	term.Printf("Repair request %d placed for %s.\n", repair.RequestNumber, timezone.FormatDate(repair.RepairDate))

	return nil
}

// RepairHistory lists the repair requests placed by the principal.
func (handler *Handler) RepairHistory(ctx context.Context, term *terminal.Terminal) (err error) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RepairHistory")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	response.WithHeader(term.Out(), "ROOM REPAIR REQUESTS")

	history, err := handler.service.RepairHistory(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list repair requests")

		return err
	}

	rows := make([][]string, 0, len(history))
	for _, entry := range history {
		rows = append(rows, []string{
			strconv.FormatInt(entry.RequestNumber, 10),
			entry.CompanyName,
			strconv.FormatInt(entry.HotelID, 10),
			strconv.Itoa(entry.RoomNumber),
			timezone.FormatDate(entry.RepairDate),
		})
	}

	response.WithTable(term.Out(), []string{"Request", "Company", "Hotel ID", "Room", "Repair Date"}, rows, "No repair requests placed yet.")

	return nil
}
