package router

import (
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "carshare/docs"
	"carshare/internal/handlers/auth"
	"carshare/internal/handlers/booking"
	"carshare/internal/handlers/car"
	"carshare/transport/http/middleware"
)

type DomainHandlers struct {
	Auth    auth.Handler
	Car     car.Handler
	Booking booking.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AuthRole       middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)

		routerGroup.Group(func(authenticated chi.Router) {
			authenticated.Use(r.AuthRole.Auth)
			authenticated.Use(r.AuthRole.RBAC)

			r.DomainHandlers.Auth.AuthenticatedRouter(authenticated)
			r.DomainHandlers.Car.Router(authenticated)
			r.DomainHandlers.Booking.Router(authenticated)
		})
	})

	router.Route("/internal/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.AuthRole.APIKey)
		routerGroup.Use(r.AuthRole.Auth)
		routerGroup.Use(r.AuthRole.RBAC)

		r.DomainHandlers.Booking.InternalRouter(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AuthRole:       authRole,
	}
}
