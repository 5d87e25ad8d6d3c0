package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/karimsaad/wasel_backend/internal/api/http/handler"
)

func (r *Router) registerTierRoutes(
	api fiber.Router,
	th *handler.TierHandler,
	adminOnly fiber.Handler,
) {
	tiers := api.Group("/tiers")

	tiers.Get("/settings", th.ListSettings)
	tiers.Put("/settings", th.UpdateSetting, adminOnly)
	tiers.Post("/recalculate", th.RecalculateAll, adminOnly)
}
