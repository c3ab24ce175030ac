package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/hotel/model"
	"hotel/internal/domains/hotel/model/dto"
	"hotel/internal/domains/hotel/repository"
	"hotel/internal/session"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/validator"

	"github.com/rs/zerolog/log"
)

const cacheAllHotels = "hotel:all"

var ErrNoSuchHotel = failure.NotFound("no such hotel")

type Hotel interface {
	// HotelsWithinRadius returns the hotels whose distance to the point is at most the radius.
	// A zero radius means the configured default; a negative one is rejected.
	HotelsWithinRadius(ctx context.Context, req dto.NearbyRequest) ([]dto.HotelResponse, error)
	// HotelsManagedBy lists every hotel for an admin and the owned hotels for a manager.
	HotelsManagedBy(ctx context.Context) ([]dto.HotelResponse, error)
	// Authorize checks that the principal may manage the hotel and returns it.
	Authorize(ctx context.Context, hotelID int64) (dto.HotelResponse, error)
}

type serviceImpl struct {
	repo  repository.Hotel
	cfg   *config.Config
	cache cache.Cache
	otel  otel.Otel
}

func New(repo repository.Hotel, cfg *config.Config, cache cache.Cache, otel otel.Otel) Hotel {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) allHotels(ctx context.Context) ([]model.Hotel, error) {
	var hotels []model.Hotel

	err := s.cache.Get(ctx, cacheAllHotels, &hotels)
	if err == nil {
		log.Debug().Str("cacheKey", cacheAllHotels).Msg("cache hit for hotels")

		return hotels, nil
	}

	if !errors.Is(err, cache.ErrMiss) {
		log.Warn().Err(err).Msg("failed to read hotels from cache")
	}

	params := gDto.QueryParams{SortBy: model.FieldID, SortDir: gDto.SortDirAsc}

	hotels, err = s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotels")

		return nil, fmt.Errorf("failed to get hotels: %w", err)
	}

	if err := s.cache.Save(ctx, cacheAllHotels, hotels, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Msg("failed to save hotels to cache")
	}

	return hotels, nil
}

func (s *serviceImpl) HotelsWithinRadius(ctx context.Context, req dto.NearbyRequest) (res []dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".HotelsWithinRadius")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return nil, err
	}

	radius := req.Radius
	if radius == 0 {
		radius = s.cfg.App.SearchRadius
	}

	scope.SetAttribute("radius", radius)

	hotels, err := s.allHotels(ctx)
	if err != nil {
		return nil, err
	}

	res = []dto.HotelResponse{}

	for _, hotel := range hotels {
		distance := hotel.DistanceTo(req.Latitude, req.Longitude)
		// NaN never compares true, so a NaN distance is excluded.
		if !(distance <= radius) {
			continue
		}

		var item dto.HotelResponse
		item.FromModel(hotel)
		item.Distance = distance

		res = append(res, item)
	}

	return res, nil
}

func (s *serviceImpl) HotelsManagedBy(ctx context.Context) (res []dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".HotelsManagedBy")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	principal, err := session.RequireElevated(ctx)
	if err != nil {
		return nil, err
	}

	hotels, err := s.allHotels(ctx)
	if err != nil {
		return nil, err
	}

	if principal.IsAdmin() {
		return dto.FromModels(hotels), nil
	}

	owned := []model.Hotel{}

	for _, hotel := range hotels {
		if hotel.ManagedBy(principal.UserID) {
			owned = append(owned, hotel)
		}
	}

	return dto.FromModels(owned), nil
}

func (s *serviceImpl) Authorize(ctx context.Context, hotelID int64) (res dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Authorize")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	principal, err := session.RequireElevated(ctx)
	if err != nil {
		return res, err
	}

	hotel, found, err := s.repo.Get(ctx, shared.FilterByID(hotelID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel")

		return res, fmt.Errorf("failed to get hotel: %w", err)
	}

	if !found {
		return res, ErrNoSuchHotel
	}

	if !principal.IsAdmin() && !hotel.ManagedBy(principal.UserID) {
		return res, failure.ResourceRestrictedError
	}

	res.FromModel(hotel)

	return res, nil
}
