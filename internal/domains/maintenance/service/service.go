package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	hotelService "hotel/internal/domains/hotel/service"
	"hotel/internal/domains/maintenance/model"
	"hotel/internal/domains/maintenance/model/dto"
	"hotel/internal/domains/maintenance/repository"
	roomService "hotel/internal/domains/room/service"
	"hotel/internal/session"
	"hotel/shared/cache"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/timezone"
	"hotel/shared/validator"

	"github.com/rs/zerolog/log"
)

const cacheAllCompanies = "company:all"

var ErrNoSuchCompany = failure.NotFound("no such maintenance company")

type Maintenance interface {
	Companies(ctx context.Context) ([]dto.CompanyResponse, error)
	// PlaceRepairRequest asks a company to repair a room today.
	PlaceRepairRequest(ctx context.Context, req dto.RepairRequest) (dto.RepairResponse, error)
	// RepairHistory lists the repair requests placed by the principal.
	RepairHistory(ctx context.Context) ([]dto.RepairHistoryResponse, error)
}

type serviceImpl struct {
	repo         repository.Maintenance
	hotelService hotelService.Hotel
	roomService  roomService.Room
	cfg          *config.Config
	cache        cache.Cache
	kafka        kafka.Client
	otel         otel.Otel
}

func New(
	repo repository.Maintenance,
	hotelService hotelService.Hotel,
	roomService roomService.Room,
	cfg *config.Config,
	cache cache.Cache,
	kafka kafka.Client,
	otel otel.Otel,
) Maintenance {
	return &serviceImpl{
		repo:         repo,
		hotelService: hotelService,
		roomService:  roomService,
		cfg:          cfg,
		cache:        cache,
		kafka:        kafka,
		otel:         otel,
	}
}

func (s *serviceImpl) Companies(ctx context.Context) (res []dto.CompanyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Companies")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var companies []model.Company

	err = s.cache.Get(ctx, cacheAllCompanies, &companies)
	if err == nil {
		log.Debug().Str("cacheKey", cacheAllCompanies).Msg("cache hit for maintenance companies")

		return dto.FromCompanies(companies), nil
	}

	if !errors.Is(err, cache.ErrMiss) {
		log.Warn().Err(err).Msg("failed to read maintenance companies from cache")
	}

	companies, err = s.repo.Companies(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get maintenance companies")

		return nil, fmt.Errorf("failed to get maintenance companies: %w", err)
	}

	if err := s.cache.Save(ctx, cacheAllCompanies, companies, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Msg("failed to save maintenance companies to cache")
	}

	return dto.FromCompanies(companies), nil
}

func (s *serviceImpl) PlaceRepairRequest(ctx context.Context, req dto.RepairRequest) (res dto.RepairResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PlaceRepairRequest")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	if _, err = s.hotelService.Authorize(ctx, req.HotelID); err != nil {
		return res, err
	}

	principal, err := session.RequireElevated(ctx)
	if err != nil {
		return res, err
	}

	if _, err = s.roomService.Get(ctx, req.HotelID, req.RoomNumber); err != nil {
		return res, err
	}

	exists, err := s.repo.CompanyExists(ctx, req.CompanyID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check maintenance company")

		return res, fmt.Errorf("failed to check maintenance company: %w", err)
	}

	if !exists {
		return res, ErrNoSuchCompany
	}

	repair, placed, err := s.repo.Place(ctx, req.ToModel(timezone.Date(timezone.Now())), principal.UserID)
	if err != nil {
		log.Error().Err(err).Msg("failed to place repair request")

		return res, fmt.Errorf("failed to place repair request: %w", err)
	}

	if !placed {
		return res, failure.DuplicateRepair
	}

	res = dto.ToRepairResponse(repair, principal.UserID)

	if err := s.kafka.Publish(ctx, constant.EventRepairRequested, res); err != nil {
		log.Warn().Err(err).Int64("repairID", res.RepairID).Msg("failed to publish repair event")
	}

	return res, nil
}

func (s *serviceImpl) RepairHistory(ctx context.Context) (res []dto.RepairHistoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RepairHistory")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	principal, err := session.RequireElevated(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := s.repo.RepairHistory(ctx, principal.UserID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get repair history")

		return nil, fmt.Errorf("failed to get repair history: %w", err)
	}

	return dto.FromHistory(entries), nil
}
