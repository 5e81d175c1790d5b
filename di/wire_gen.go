// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

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
	repository3 "mindwell/internal/domains/appointment/repository"
	service5 "mindwell/internal/domains/appointment/service"
	"mindwell/internal/domains/auth/service"
	repository2 "mindwell/internal/domains/clinician/repository"
	service4 "mindwell/internal/domains/clinician/service"
	repository4 "mindwell/internal/domains/document/repository"
	service6 "mindwell/internal/domains/document/service"
	service3 "mindwell/internal/domains/profile/service"
	"mindwell/internal/domains/user/repository"
	service2 "mindwell/internal/domains/user/service"
	"mindwell/internal/handlers/appointment"
	"mindwell/internal/handlers/auth"
	"mindwell/internal/handlers/clinician"
	"mindwell/internal/handlers/document"
	"mindwell/internal/handlers/profile"
	"mindwell/internal/handlers/user"
	"mindwell/permissions"
	"mindwell/shared/cache"
	"mindwell/transport/http"
	"mindwell/transport/http/middleware"
	"mindwell/transport/http/router"
)

// Injectors from wire.go:

func InitializeService() *http.HTTP {
	configConfig := config.Get()
	connection := postgres.New(configConfig)
	otelOtel := otel.New(configConfig)
	repositoryUser := repository.New(connection, otelOtel)
	jwtJWT := jwt.New(configConfig)
	serviceAuth := service.New(repositoryUser, configConfig, otelOtel, jwtJWT)
	handler := auth.New(serviceAuth, otelOtel)
	client := redis.New(configConfig)
	redisCache := cache.NewRedisCache(client, otelOtel)
	serviceUser := service2.New(repositoryUser, configConfig, redisCache, otelOtel)
	userHandler := user.New(serviceUser, otelOtel)
	serviceProfile := service3.New(repositoryUser, configConfig, otelOtel)
	profileHandler := profile.New(serviceProfile, otelOtel)
	repositoryClinician := repository2.New(connection, otelOtel)
	s3S3 := s3.New(configConfig, otelOtel)
	serviceClinician := service4.New(repositoryClinician, configConfig, redisCache, otelOtel, s3S3)
	clinicianHandler := clinician.New(serviceClinician, otelOtel)
	repositoryAppointment := repository3.New(connection, otelOtel)
	kafkaClient := kafka.New(configConfig)
	serviceAppointment := service5.New(repositoryAppointment, configConfig, redisCache, otelOtel, kafkaClient)
	appointmentHandler := appointment.New(serviceAppointment, otelOtel)
	repositoryDocument := repository4.New(connection, otelOtel)
	serviceDocument := service6.New(repositoryDocument, configConfig, redisCache, otelOtel, s3S3)
	documentHandler := document.New(serviceDocument, otelOtel)
	domainHandlers := router.DomainHandlers{
		Auth:        handler,
		User:        userHandler,
		Profile:     profileHandler,
		Clinician:   clinicianHandler,
		Appointment: appointmentHandler,
		Document:    documentHandler,
	}
	routerRouter := router.New(domainHandlers)
	appMiddleware := middleware.NewAppMiddleware(otelOtel, configConfig, redisCache)
	permissionData := permissions.Get()
	authRole := middleware.NewAuthRoleMiddleware(jwtJWT, otelOtel, permissionData, configConfig)
	httpHTTP := http.New(configConfig, connection, routerRouter, appMiddleware, authRole)
	return httpHTTP
}

// wire.go:

var configurations = wire.NewSet(config.Get, permissions.Get)

var infrastructures = wire.NewSet(postgres.New, otel.New, redis.New, jwt.New, kafka.New, s3.New)

var middlewares = wire.NewSet(middleware.NewAppMiddleware, middleware.NewAuthRoleMiddleware)

var sharedHelpers = wire.NewSet(cache.NewRedisCache)

var userDomain = wire.NewSet(repository.New, service2.New)

var authDomain = wire.NewSet(service.New)

var profileDomain = wire.NewSet(service3.New)

var clinicianDomain = wire.NewSet(repository2.New, service4.New)

var appointmentDomain = wire.NewSet(repository3.New, service5.New)

var documentDomain = wire.NewSet(repository4.New, service6.New)

var domains = wire.NewSet(
	userDomain,
	authDomain,
	profileDomain,
	clinicianDomain,
	appointmentDomain,
	documentDomain,
)

var routing = wire.NewSet(wire.Struct(new(router.DomainHandlers), "*"), auth.New, user.New, profile.New, clinician.New, appointment.New, document.New, router.New)
