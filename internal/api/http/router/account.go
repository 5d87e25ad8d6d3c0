package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/karimsaad/wasel_backend/internal/api/http/handler"
)

func (r *Router) registerAccountRoutes(
	api fiber.Router,
	ah *handler.AccountHandler,
	th *handler.TierHandler,
	adminOnly fiber.Handler,
) {
	accounts := api.Group("/accounts")

	accounts.Get("/", ah.List)
	accounts.Post("/clients", ah.CreateClient, adminOnly)
	accounts.Post("/couriers", ah.CreateCourier, adminOnly)
	accounts.Post("/penalties", ah.Penalize, adminOnly)
	accounts.Get("/:id", ah.Get)

	clients := accounts.Group("/clients/:id")
	clients.Patch("/pricing", ah.UpdatePricing, adminOnly)
	clients.Post("/tier/recalculate", th.Recalculate, adminOnly)
	clients.Put("/tier/pin", th.Pin, adminOnly)
	clients.Delete("/tier/pin", th.Unpin, adminOnly)

	couriers := accounts.Group("/couriers/:id")
	couriers.Patch("/zones", ah.UpdateZones, adminOnly)
	couriers.Patch("/commission", ah.UpdateCommission, adminOnly)
	couriers.Get("/stats", ah.CourierStats)
	couriers.Post("/restrict", ah.Restrict, adminOnly)
	couriers.Post("/unrestrict", ah.Unrestrict, adminOnly)
}
