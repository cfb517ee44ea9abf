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
	"frontdesk/permissions"
	"frontdesk/shared/cache"
	"frontdesk/shared/transaction"
	"frontdesk/transport/http"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/router"

	authService "frontdesk/internal/domains/auth/service"
	bookingEvent "frontdesk/internal/domains/booking/event"
	bookingRepository "frontdesk/internal/domains/booking/repository"
	bookingService "frontdesk/internal/domains/booking/service"
	guestRepository "frontdesk/internal/domains/guest/repository"
	guestService "frontdesk/internal/domains/guest/service"
	reportRepository "frontdesk/internal/domains/report/repository"
	reportService "frontdesk/internal/domains/report/service"
	roomRepository "frontdesk/internal/domains/room/repository"
	roomService "frontdesk/internal/domains/room/service"
	userRepository "frontdesk/internal/domains/user/repository"
	authHandler "frontdesk/internal/handlers/auth"
	bookingHandler "frontdesk/internal/handlers/booking"
	guestHandler "frontdesk/internal/handlers/guest"
	reportHandler "frontdesk/internal/handlers/report"
	roomHandler "frontdesk/internal/handlers/room"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	transaction.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingRepository.NewServiceOrder,
	bookingEvent.New,
	bookingService.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var reportDomain = wire.NewSet(
	reportRepository.New,
	reportService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var domains = wire.NewSet(
	authDomain,
	bookingDomain,
	guestDomain,
	reportDomain,
	roomDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	bookingHandler.New,
	guestHandler.New,
	reportHandler.New,
	roomHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
