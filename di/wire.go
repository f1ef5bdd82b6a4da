//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"carshare/config"
	"carshare/infras/jwt"
	"carshare/infras/kafka"
	"carshare/infras/otel"
	"carshare/infras/postgres"
	"carshare/infras/redis"
	"carshare/permissions"
	"carshare/shared/cache"
	"carshare/transport/http"
	"carshare/transport/http/middleware"
	"carshare/transport/http/router"

	authService "carshare/internal/domains/auth/service"
	bookingRepository "carshare/internal/domains/booking/repository"
	bookingService "carshare/internal/domains/booking/service"
	carRepository "carshare/internal/domains/car/repository"
	carService "carshare/internal/domains/car/service"
	userRepository "carshare/internal/domains/user/repository"
	authHandler "carshare/internal/handlers/auth"
	bookingHandler "carshare/internal/handlers/booking"
	carHandler "carshare/internal/handlers/car"
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
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var carDomain = wire.NewSet(
	carRepository.New,
	carService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	authDomain,
	carDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	carHandler.New,
	bookingHandler.New,
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
