package router

import (
	"github.com/go-chi/chi/v5"

	"mindwell/internal/handlers/appointment"
	"mindwell/internal/handlers/auth"
	"mindwell/internal/handlers/clinician"
	"mindwell/internal/handlers/document"
	"mindwell/internal/handlers/profile"
	"mindwell/internal/handlers/user"
)

type DomainHandlers struct {
	Auth        auth.Handler
	User        user.Handler
	Profile     profile.Handler
	Clinician   clinician.Handler
	Appointment appointment.Handler
	Document    document.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Profile.Router(routerGroup)
		r.DomainHandlers.Clinician.Router(routerGroup)
		r.DomainHandlers.Appointment.Router(routerGroup)
		r.DomainHandlers.Document.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
