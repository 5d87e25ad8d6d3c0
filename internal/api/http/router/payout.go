package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/karimsaad/wasel_backend/internal/api/http/handler"
)

func (r *Router) registerPayoutRoutes(
	api fiber.Router,
	ph *handler.PayoutHandler,
	adminOnly fiber.Handler,
) {
	payouts := api.Group("/payouts")

	payouts.Get("/", ph.List)
	payouts.Post("/", ph.Request)

	p := payouts.Group("/:id")
	p.Get("/", ph.Get)
	p.Post("/approve", ph.Approve, adminOnly)
	p.Post("/decline", ph.Decline, adminOnly)
}
