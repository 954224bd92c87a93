//go:build wireinject
// +build wireinject

package di

import (
	nethttp "net/http"

	"glow/config"
	"glow/infras/calendar"
	"glow/infras/email"
	"glow/infras/otel"
	"glow/infras/redis"
	"glow/shared/cache"
	"glow/transport/http"
	"glow/transport/http/middleware"
	"glow/transport/http/router"

	bookingService "glow/internal/domains/booking/service"
	"glow/internal/domains/catalog"
	"glow/internal/domains/notification"

	bookingHandler "glow/internal/handlers/booking"
	healthHandler "glow/internal/handlers/health"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	calendar.New,
	email.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var bookingDomain = wire.NewSet(
	catalog.New,
	notification.NewHTTPClient,
	wire.Bind(new(notification.Doer), new(*nethttp.Client)),
	notification.New,
	bookingService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	healthHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		bookingDomain,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
