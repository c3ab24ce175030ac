package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/repository"
	hotelService "hotel/internal/domains/hotel/service"
	roomService "hotel/internal/domains/room/service"
	"hotel/internal/session"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/timezone"
	"hotel/shared/validator"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	// Quote prices a room for a date after checking it exists and is free.
	Quote(ctx context.Context, req dto.QuoteRequest) (dto.Quote, error)
	// Confirm books a quoted room for the session principal.
	Confirm(ctx context.Context, quote dto.Quote) (dto.BookingResponse, error)
	RecentBookings(ctx context.Context) ([]dto.BookingResponse, error)
	HotelHistory(ctx context.Context, req dto.HistoryRequest) ([]dto.BookingResponse, error)
	RegularCustomers(ctx context.Context, hotelID int64) ([]dto.RegularCustomerResponse, error)
}

type serviceImpl struct {
	repo         repository.Booking
	roomService  roomService.Room
	hotelService hotelService.Hotel
	cfg          *config.Config
	kafka        kafka.Client
	otel         otel.Otel
}

func New(repo repository.Booking, roomService roomService.Room, hotelService hotelService.Hotel, cfg *config.Config, kafka kafka.Client, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:         repo,
		roomService:  roomService,
		hotelService: hotelService,
		cfg:          cfg,
		kafka:        kafka,
		otel:         otel,
	}
}

func (s *serviceImpl) Quote(ctx context.Context, req dto.QuoteRequest) (res dto.Quote, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Quote")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = session.Require(ctx); err != nil {
		return res, err
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	date := timezone.Date(req.Date)

	room, err := s.roomService.Get(ctx, req.HotelID, req.RoomNumber)
	if err != nil {
		return res, err
	}

	booked, err := s.repo.IsBooked(ctx, req.HotelID, req.RoomNumber, date)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room booking")

		return res, fmt.Errorf("failed to check room booking: %w", err)
	}

	if booked {
		return res, failure.RoomUnavailable
	}

	return dto.Quote{
		HotelID:    req.HotelID,
		RoomNumber: req.RoomNumber,
		Date:       date,
		Price:      room.Price,
	}, nil
}

func (s *serviceImpl) Confirm(ctx context.Context, quote dto.Quote) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Confirm")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	principal, err := session.Require(ctx)
	if err != nil {
		return res, err
	}

	quote.Date = timezone.Date(quote.Date)

	booking, inserted, err := s.repo.Create(ctx, quote.ToModel(principal.UserID))
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	if !inserted {
		log.Info().Int64("hotelID", quote.HotelID).Int("roomNumber", quote.RoomNumber).Msg("room was booked by another session")

		return res, failure.RoomUnavailable
	}

	res.FromModel(booking)

	if err := s.kafka.Publish(ctx, constant.EventBookingCreated, res); err != nil {
		log.Warn().Err(err).Int64("bookingID", res.BookingID).Msg("failed to publish booking event")
	}

	return res, nil
}

func (s *serviceImpl) RecentBookings(ctx context.Context) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RecentBookings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	principal, err := session.Require(ctx)
	if err != nil {
		return nil, err
	}

	bookings, err := s.repo.GetAll(ctx,
		gDto.Recent(model.FieldBookingDate, s.cfg.App.RecentLimit),
		shared.FilterByID(principal.UserID, model.FieldCustomerID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get recent bookings")

		return nil, fmt.Errorf("failed to get recent bookings: %w", err)
	}

	return dto.FromModels(bookings), nil
}

func (s *serviceImpl) HotelHistory(ctx context.Context, req dto.HistoryRequest) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".HotelHistory")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return nil, err
	}

	if _, err = s.hotelService.Authorize(ctx, req.HotelID); err != nil {
		return nil, err
	}

	filter := shared.FilterAll(
		gDto.Filter{Field: model.FieldHotelID, Value: req.HotelID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		gDto.Filter{
			ArgName: "fromDate", Field: model.FieldBookingDate, Value: timezone.Date(req.From),
			Operator: gDto.FilterOperatorGreaterEq, Table: model.TableName,
		},
		gDto.Filter{
			ArgName: "toDate", Field: model.FieldBookingDate, Value: timezone.Date(req.To),
			Operator: gDto.FilterOperatorLessEq, Table: model.TableName,
		},
	)

	params := gDto.QueryParams{SortBy: model.FieldBookingDate, SortDir: gDto.SortDirAsc}

	bookings, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Int64("hotelID", req.HotelID).Msg("failed to get hotel bookings")

		return nil, fmt.Errorf("failed to get hotel bookings: %w", err)
	}

	return dto.FromModels(bookings), nil
}

func (s *serviceImpl) RegularCustomers(ctx context.Context, hotelID int64) (res []dto.RegularCustomerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RegularCustomers")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.hotelService.Authorize(ctx, hotelID); err != nil {
		return nil, err
	}

	customers, err := s.repo.RegularCustomers(ctx, hotelID, constant.DefaultValueLimit)
	if err != nil {
		log.Error().Err(err).Int64("hotelID", hotelID).Msg("failed to get regular customers")

		return nil, fmt.Errorf("failed to get regular customers: %w", err)
	}

	return dto.FromRegularCustomers(customers), nil
}
