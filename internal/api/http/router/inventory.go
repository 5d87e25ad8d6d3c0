package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/karimsaad/wasel_backend/internal/api/http/handler"
)

func (r *Router) registerInventoryRoutes(
	api fiber.Router,
	ih *handler.InventoryHandler,
	adminOnly fiber.Handler,
) {
	inv := api.Group("/inventory")

	inv.Get("/", ih.List)
	inv.Post("/", ih.Create, adminOnly)
	inv.Patch("/:id", ih.Adjust, adminOnly)
}
