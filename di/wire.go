//go:build wireinject
// +build wireinject

package di

import (
	"beauteefool/config"
	"beauteefool/infras/kafka"
	"beauteefool/infras/otel"
	"beauteefool/infras/postgres"
	"beauteefool/infras/redis"
	"beauteefool/infras/s3"
	"beauteefool/shared/cache"
	"beauteefool/transport/http"
	"beauteefool/transport/http/middleware"
	"beauteefool/transport/http/router"

	availabilityHandler "beauteefool/internal/handlers/availability"
	bookingHandler "beauteefool/internal/handlers/booking"
	catalogHandler "beauteefool/internal/handlers/catalog"
	draftHandler "beauteefool/internal/handlers/draft"
	galleryHandler "beauteefool/internal/handlers/gallery"

	bookingRepository "beauteefool/internal/domains/booking/repository"
	bookingService "beauteefool/internal/domains/booking/service"
	catalogService "beauteefool/internal/domains/catalog/service"
	draftRepository "beauteefool/internal/domains/draft/repository"
	draftService "beauteefool/internal/domains/draft/service"
	galleryRepository "beauteefool/internal/domains/gallery/repository"
	galleryService "beauteefool/internal/domains/gallery/service"
	scheduleService "beauteefool/internal/domains/schedule/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var catalogDomain = wire.NewSet(
	catalogService.NewSalonCatalog,
	catalogService.New,
)

var scheduleDomain = wire.NewSet(
	scheduleService.NewBusinessHours,
	scheduleService.New,
)

var draftDomain = wire.NewSet(
	draftRepository.New,
	draftService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var galleryDomain = wire.NewSet(
	galleryRepository.New,
	galleryService.New,
)

var domains = wire.NewSet(
	catalogDomain,
	scheduleDomain,
	draftDomain,
	bookingDomain,
	galleryDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	catalogHandler.New,
	availabilityHandler.New,
	draftHandler.New,
	bookingHandler.New,
	galleryHandler.New,
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
