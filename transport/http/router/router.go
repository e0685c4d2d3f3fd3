package router

import (
	"frontdesk/internal/handlers/auth"
	"frontdesk/internal/handlers/bar"
	"frontdesk/internal/handlers/booking"
	"frontdesk/internal/handlers/drink"
	"frontdesk/internal/handlers/guest"
	"frontdesk/internal/handlers/kitchen"
	"frontdesk/internal/handlers/receipt"
	"frontdesk/internal/handlers/report"
	"frontdesk/internal/handlers/room"
	"frontdesk/internal/handlers/staff"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth    auth.Handler
	Staff   staff.Handler
	Room    room.Handler
	Guest   guest.Handler
	Booking booking.Handler
	Kitchen kitchen.Handler
	Bar     bar.Handler
	Drink   drink.Handler
	Report  report.Handler
	Receipt receipt.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Staff.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Kitchen.Router(routerGroup)
		r.DomainHandlers.Bar.Router(routerGroup)
		r.DomainHandlers.Drink.Router(routerGroup)
		r.DomainHandlers.Report.Router(routerGroup)
		r.DomainHandlers.Receipt.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
