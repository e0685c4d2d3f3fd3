//go:build wireinject
// +build wireinject

package di

import (
	"frontdesk/config"
	"frontdesk/infras/jwt"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/infras/redis"
	"frontdesk/infras/s3"
	"frontdesk/internal/printer"
	"frontdesk/internal/receipt"
	"frontdesk/internal/sweep"
	"frontdesk/shared/cache"
	"frontdesk/transport/http"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/router"

	barRepository "frontdesk/internal/domains/bar/repository"
	barService "frontdesk/internal/domains/bar/service"
	bookingRepository "frontdesk/internal/domains/booking/repository"
	bookingService "frontdesk/internal/domains/booking/service"
	drinkRepository "frontdesk/internal/domains/drink/repository"
	drinkService "frontdesk/internal/domains/drink/service"
	guestRepository "frontdesk/internal/domains/guest/repository"
	guestService "frontdesk/internal/domains/guest/service"
	kitchenRepository "frontdesk/internal/domains/kitchen/repository"
	kitchenService "frontdesk/internal/domains/kitchen/service"
	reportService "frontdesk/internal/domains/report/service"
	roomRepository "frontdesk/internal/domains/room/repository"
	roomService "frontdesk/internal/domains/room/service"
	staffRepository "frontdesk/internal/domains/staff/repository"
	staffService "frontdesk/internal/domains/staff/service"

	authService "frontdesk/internal/domains/auth/service"

	authHandler "frontdesk/internal/handlers/auth"
	barHandler "frontdesk/internal/handlers/bar"
	bookingHandler "frontdesk/internal/handlers/booking"
	drinkHandler "frontdesk/internal/handlers/drink"
	guestHandler "frontdesk/internal/handlers/guest"
	kitchenHandler "frontdesk/internal/handlers/kitchen"
	receiptHandler "frontdesk/internal/handlers/receipt"
	reportHandler "frontdesk/internal/handlers/report"
	roomHandler "frontdesk/internal/handlers/room"
	staffHandler "frontdesk/internal/handlers/staff"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewApp,
	middleware.NewAuth,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var stations = wire.NewSet(
	printer.New,
	receipt.New,
	receipt.NewService,
)

var domains = wire.NewSet(
	staffRepository.New,
	authService.New,
	staffService.New,
	roomRepository.New,
	roomService.New,
	guestRepository.New,
	guestService.New,
	bookingRepository.New,
	bookingService.New,
	drinkRepository.New,
	drinkRepository.NewCategory,
	drinkService.New,
	kitchenRepository.New,
	kitchenService.New,
	barRepository.New,
	barService.New,
	reportService.New,
	sweep.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	staffHandler.New,
	roomHandler.New,
	guestHandler.New,
	bookingHandler.New,
	kitchenHandler.New,
	barHandler.New,
	drinkHandler.New,
	reportHandler.New,
	receiptHandler.New,
	router.New,
)

func InitializeApp() (*App, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		stations,
		domains,
		routing,
		http.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}, nil
}
