package router

import (
	"frontdesk/internal/handlers/auth"
	"frontdesk/internal/handlers/booking"
	"frontdesk/internal/handlers/guest"
	"frontdesk/internal/handlers/report"
	"frontdesk/internal/handlers/room"

	"github.com/go-chi/chi/v5"
)

const apiPrefix = "/v1"

// routable is implemented by every domain handler.
type routable interface {
	Router(router chi.Router)
}

type DomainHandlers struct {
	Auth    auth.Handler
	Booking booking.Handler
	Guest   guest.Handler
	Report  report.Handler
	Room    room.Handler
}

func (d *DomainHandlers) all() []routable {
	return []routable{&d.Auth, &d.Booking, &d.Guest, &d.Report, &d.Room}
}

type Router struct {
	DomainHandlers DomainHandlers
}

func New(domainHandlers DomainHandlers) Router {
	return Router{DomainHandlers: domainHandlers}
}

// SetupRoutes mounts every domain under the versioned prefix.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Route(apiPrefix, func(v1 chi.Router) {
		for _, handler := range r.DomainHandlers.all() {
			handler.Router(v1)
		}
	})
}
