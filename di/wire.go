//go:build wireinject
// +build wireinject

package di

import (
	"salama/config"
	"salama/infras/jwt"
	"salama/infras/mailer"
	"salama/infras/otel"
	"salama/infras/postgres"
	"salama/infras/redis"
	"salama/infras/s3"
	"salama/permissions"
	"salama/shared/cache"
	"salama/transport/http"
	"salama/transport/http/middleware"
	"salama/transport/http/router"

	"github.com/google/wire"

	authService "salama/internal/domains/auth/service"
	bookingService "salama/internal/domains/booking/service"
	listingRepository "salama/internal/domains/listing/repository"
	listingService "salama/internal/domains/listing/service"
	notificationService "salama/internal/domains/notification/service"
	userRepository "salama/internal/domains/user/repository"
	userService "salama/internal/domains/user/service"

	authHandler "salama/internal/handlers/auth"
	bookingHandler "salama/internal/handlers/booking"
	listingHandler "salama/internal/handlers/listing"
	userHandler "salama/internal/handlers/user"
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
	s3.New,
	mailer.New,
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
	userService.New,
	authService.New,
)

var listingDomain = wire.NewSet(
	listingRepository.New,
	listingService.New,
)

var bookingDomain = wire.NewSet(
	notificationService.New,
	bookingService.New,
)

var domains = wire.NewSet(
	authDomain,
	listingDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	listingHandler.New,
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
