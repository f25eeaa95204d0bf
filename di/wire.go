//go:build wireinject
// +build wireinject

package di

import (
	"nomad/config"
	"nomad/infras/jwt"
	"nomad/infras/kafka"
	"nomad/infras/nats"
	"nomad/infras/otel"
	"nomad/infras/postgres"
	"nomad/infras/redis"
	"nomad/infras/s3"
	"nomad/permissions"
	"nomad/shared/cache"
	"nomad/transport/http"
	"nomad/transport/http/middleware"
	"nomad/transport/http/router"
	"nomad/transport/websocket"

	"github.com/google/wire"

	accommodationRepository "nomad/internal/domains/accommodation/repository"
	accommodationService "nomad/internal/domains/accommodation/service"
	authService "nomad/internal/domains/auth/service"
	bookingRepository "nomad/internal/domains/booking/repository"
	bookingService "nomad/internal/domains/booking/service"
	cityRepository "nomad/internal/domains/city/repository"
	cityService "nomad/internal/domains/city/service"
	commentRepository "nomad/internal/domains/comment/repository"
	commentService "nomad/internal/domains/comment/service"
	notificationRepository "nomad/internal/domains/notification/repository"
	notificationService "nomad/internal/domains/notification/service"
	profileRepository "nomad/internal/domains/profile/repository"
	profileService "nomad/internal/domains/profile/service"
	roomRepository "nomad/internal/domains/room/repository"
	roomService "nomad/internal/domains/room/service"
	tripRequestRepository "nomad/internal/domains/triprequest/repository"
	tripRequestService "nomad/internal/domains/triprequest/service"
	userRepository "nomad/internal/domains/user/repository"
	userService "nomad/internal/domains/user/service"

	accommodationHandler "nomad/internal/handlers/accommodation"
	authHandler "nomad/internal/handlers/auth"
	bookingHandler "nomad/internal/handlers/booking"
	cityHandler "nomad/internal/handlers/city"
	commentHandler "nomad/internal/handlers/comment"
	notificationHandler "nomad/internal/handlers/notification"
	profileHandler "nomad/internal/handlers/profile"
	roomHandler "nomad/internal/handlers/room"
	tripRequestHandler "nomad/internal/handlers/triprequest"
	userHandler "nomad/internal/handlers/user"
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
	nats.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
	middleware.NewManagerMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var repositories = wire.NewSet(
	userRepository.New,
	profileRepository.New,
	cityRepository.New,
	tripRequestRepository.New,
	commentRepository.New,
	notificationRepository.New,
	accommodationRepository.New,
	roomRepository.New,
	bookingRepository.New,
)

var domains = wire.NewSet(
	authService.New,
	userService.New,
	profileService.New,
	cityService.New,
	notificationService.New,
	tripRequestService.New,
	commentService.New,
	accommodationService.New,
	roomService.New,
	bookingService.New,
)

var realtime = wire.NewSet(
	websocket.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	profileHandler.New,
	cityHandler.New,
	tripRequestHandler.New,
	commentHandler.New,
	notificationHandler.New,
	accommodationHandler.New,
	roomHandler.New,
	bookingHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		repositories,
		domains,
		realtime,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
