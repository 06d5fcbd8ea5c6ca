package router

import (
	"beauteefool/internal/handlers/availability"
	"beauteefool/internal/handlers/booking"
	"beauteefool/internal/handlers/catalog"
	"beauteefool/internal/handlers/draft"
	"beauteefool/internal/handlers/gallery"
	"beauteefool/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Catalog      catalog.Handler
	Availability availability.Handler
	Draft        draft.Handler
	Booking      booking.Handler
	Gallery      gallery.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Middleware     middleware.AppMiddleware
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.Middleware.RateLimit())

		r.DomainHandlers.Catalog.Router(routerGroup)
		r.DomainHandlers.Availability.Router(routerGroup)
		r.DomainHandlers.Draft.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Gallery.Router(routerGroup)

		routerGroup.Route("/admin", func(adminGroup chi.Router) {
			adminGroup.Use(r.Middleware.APIKey)

			r.DomainHandlers.Booking.AdminRouter(adminGroup)
			r.DomainHandlers.Gallery.AdminRouter(adminGroup)
		})
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middleware:     appMiddleware,
	}
}
