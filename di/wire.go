//go:build wireinject
// +build wireinject

package di

import (
	"hotel/config"
	"hotel/infras/postgres"
	"hotel/infras/s3"
	"hotel/permissions"
	"hotel/shared/cache"
	"hotel/transport/console"
	"hotel/transport/console/router"

	authService "hotel/internal/domains/auth/service"
	bookingRepository "hotel/internal/domains/booking/repository"
	bookingService "hotel/internal/domains/booking/service"
	hotelRepository "hotel/internal/domains/hotel/repository"
	hotelService "hotel/internal/domains/hotel/service"
	maintenanceRepository "hotel/internal/domains/maintenance/repository"
	maintenanceService "hotel/internal/domains/maintenance/service"
	roomRepository "hotel/internal/domains/room/repository"
	roomService "hotel/internal/domains/room/service"
	userRepository "hotel/internal/domains/user/repository"

	authHandler "hotel/internal/handlers/auth"
	bookingHandler "hotel/internal/handlers/booking"
	hotelHandler "hotel/internal/handlers/hotel"
	maintenanceHandler "hotel/internal/handlers/maintenance"
	roomHandler "hotel/internal/handlers/room"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	ProvideConnection,
	ProvideOtel,
	ProvideRedis,
	ProvideKafka,
	postgres.NewGateway,
	s3.New,
)

var sharedHelpers = wire.NewSet(
	cache.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var hotelDomain = wire.NewSet(
	hotelRepository.New,
	hotelService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var maintenanceDomain = wire.NewSet(
	maintenanceRepository.New,
	maintenanceService.New,
)

var domains = wire.NewSet(
	authDomain,
	hotelDomain,
	roomDomain,
	bookingDomain,
	maintenanceDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	hotelHandler.New,
	roomHandler.New,
	bookingHandler.New,
	maintenanceHandler.New,
	router.New,
)

// InitializeConsole builds the console and returns the cleanup that releases every connection.
func InitializeConsole() (*console.Console, func(), error) {
	wire.Build(
		configurations,
		infrastructures,
		sharedHelpers,
		domains,
		routing,
		console.New,
	)

	return nil, nil, nil
}
