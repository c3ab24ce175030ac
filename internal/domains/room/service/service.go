package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/infras/s3"
	hotelService "hotel/internal/domains/hotel/service"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/repository"
	"hotel/internal/session"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/timezone"
	"hotel/shared/validator"

	"github.com/rs/zerolog/log"
)

type Room interface {
	AvailableRooms(ctx context.Context, req dto.AvailabilityRequest) ([]dto.RoomResponse, error)
	ViewRooms(ctx context.Context, req dto.AvailabilityRequest) ([]dto.RoomStatusResponse, error)
	// Get returns one room or failure.NoSuchRoom.
	Get(ctx context.Context, hotelID int64, roomNumber int) (dto.RoomResponse, error)
	// OpenEditor starts a staged edit of a room the principal may manage.
	OpenEditor(ctx context.Context, hotelID int64, roomNumber int) (Editor, error)
	RecentUpdates(ctx context.Context) ([]dto.UpdateLogResponse, error)
}

// Editor stages price and image changes of one room. Nothing is written until Save.
type Editor interface {
	// Room returns the room with the staged values applied.
	Room() dto.RoomResponse
	SetPrice(price float64) error
	SetImageURL(url string) error
	// UploadImage stores a local image file in object storage and stages its URL.
	UploadImage(ctx context.Context, path string) error
	Dirty() bool
	// Save writes the staged values and one update log entry atomically.
	Save(ctx context.Context) (dto.UpdateLogResponse, error)
	// Discard drops the staged values and any uploaded image.
	Discard(ctx context.Context)
}

type serviceImpl struct {
	repo         repository.Room
	hotelService hotelService.Hotel
	cfg          *config.Config
	s3           s3.S3
	kafka        kafka.Client
	otel         otel.Otel
}

func New(repo repository.Room, hotelService hotelService.Hotel, cfg *config.Config, s3 s3.S3, kafka kafka.Client, otel otel.Otel) Room {
	return &serviceImpl{
		repo:         repo,
		hotelService: hotelService,
		cfg:          cfg,
		s3:           s3,
		kafka:        kafka,
		otel:         otel,
	}
}

func (s *serviceImpl) AvailableRooms(ctx context.Context, req dto.AvailabilityRequest) (res []dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AvailableRooms")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return nil, err
	}

	rooms, err := s.repo.AvailableRooms(ctx, req.HotelID, timezone.Date(req.Date))
	if err != nil {
		log.Error().Err(err).Int64("hotelID", req.HotelID).Msg("failed to get available rooms")

		return nil, fmt.Errorf("failed to get available rooms: %w", err)
	}

	return dto.FromModels(rooms), nil
}

func (s *serviceImpl) ViewRooms(ctx context.Context, req dto.AvailabilityRequest) (res []dto.RoomStatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ViewRooms")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return nil, err
	}

	rooms, err := s.repo.RoomStatuses(ctx, req.HotelID, timezone.Date(req.Date))
	if err != nil {
		log.Error().Err(err).Int64("hotelID", req.HotelID).Msg("failed to get rooms")

		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}

	return dto.FromStatusModels(rooms), nil
}

func (s *serviceImpl) Get(ctx context.Context, hotelID int64, roomNumber int) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room, found, err := s.repo.Get(ctx, repository.FilterRoom(hotelID, roomNumber))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if !found {
		return res, failure.NoSuchRoom
	}

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) OpenEditor(ctx context.Context, hotelID int64, roomNumber int) (_ Editor, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".OpenEditor")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.hotelService.Authorize(ctx, hotelID); err != nil {
		return nil, err
	}

	principal, err := session.Require(ctx)
	if err != nil {
		return nil, err
	}

	room, found, err := s.repo.Get(ctx, repository.FilterRoom(hotelID, roomNumber))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	if !found {
		return nil, failure.NoSuchRoom
	}

	return &editorImpl{
		svc:       s,
		principal: principal,
		room:      room,
	}, nil
}

func (s *serviceImpl) RecentUpdates(ctx context.Context) (res []dto.UpdateLogResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RecentUpdates")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	principal, err := session.RequireElevated(ctx)
	if err != nil {
		return nil, err
	}

	var managerID *int64
	if !principal.IsAdmin() {
		managerID = &principal.UserID
	}

	entries, err := s.repo.RecentUpdates(ctx, managerID, s.cfg.App.RecentLimit)
	if err != nil {
		log.Error().Err(err).Msg("failed to get recent room updates")

		return nil, fmt.Errorf("failed to get recent room updates: %w", err)
	}

	return dto.FromUpdateLogModels(entries), nil
}
