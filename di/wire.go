//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"mindwell/config"
	"mindwell/infras/jwt"
	"mindwell/infras/kafka"
	"mindwell/infras/otel"
	"mindwell/infras/postgres"
	"mindwell/infras/redis"
	"mindwell/infras/s3"
	"mindwell/permissions"
	"mindwell/shared/cache"
	"mindwell/transport/http"
	"mindwell/transport/http/middleware"
	"mindwell/transport/http/router"

	appointmentRepository "mindwell/internal/domains/appointment/repository"
	appointmentService "mindwell/internal/domains/appointment/service"
	authService "mindwell/internal/domains/auth/service"
	clinicianRepository "mindwell/internal/domains/clinician/repository"
	clinicianService "mindwell/internal/domains/clinician/service"
	documentRepository "mindwell/internal/domains/document/repository"
	documentService "mindwell/internal/domains/document/service"
	profileService "mindwell/internal/domains/profile/service"
	userRepository "mindwell/internal/domains/user/repository"
	userService "mindwell/internal/domains/user/service"

	appointmentHandler "mindwell/internal/handlers/appointment"
	authHandler "mindwell/internal/handlers/auth"
	clinicianHandler "mindwell/internal/handlers/clinician"
	documentHandler "mindwell/internal/handlers/document"
	profileHandler "mindwell/internal/handlers/profile"
	userHandler "mindwell/internal/handlers/user"
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
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var profileDomain = wire.NewSet(
	profileService.New,
)

var clinicianDomain = wire.NewSet(
	clinicianRepository.New,
	clinicianService.New,
)

var appointmentDomain = wire.NewSet(
	appointmentRepository.New,
	appointmentService.New,
)

var documentDomain = wire.NewSet(
	documentRepository.New,
	documentService.New,
)

var domains = wire.NewSet(
	userDomain,
	authDomain,
	profileDomain,
	clinicianDomain,
	appointmentDomain,
	documentDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	profileHandler.New,
	clinicianHandler.New,
	appointmentHandler.New,
	documentHandler.New,
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
