package router

import (
	"nomad/internal/handlers/accommodation"
	"nomad/internal/handlers/auth"
	"nomad/internal/handlers/booking"
	"nomad/internal/handlers/city"
	"nomad/internal/handlers/comment"
	"nomad/internal/handlers/notification"
	"nomad/internal/handlers/profile"
	"nomad/internal/handlers/room"
	"nomad/internal/handlers/triprequest"
	"nomad/internal/handlers/user"
	"nomad/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth          auth.Handler
	User          user.Handler
	Profile       profile.Handler
	City          city.Handler
	TripRequest   triprequest.Handler
	Comment       comment.Handler
	Notification  notification.Handler
	Accommodation accommodation.Handler
	Room          room.Handler
	Booking       booking.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	auth           middleware.AuthRole
}

// SetupRoutes mounts every domain under /v1. Public endpoints are marked skip in permissions.json.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.auth.APIKey, r.auth.Auth, r.auth.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Profile.Router(routerGroup)
		r.DomainHandlers.City.Router(routerGroup)
		r.DomainHandlers.TripRequest.Router(routerGroup)
		r.DomainHandlers.Comment.Router(routerGroup)
		r.DomainHandlers.Notification.Router(routerGroup)
		r.DomainHandlers.Accommodation.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, auth middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		auth:           auth,
	}
}
