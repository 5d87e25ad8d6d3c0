package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/karimsaad/wasel_backend/internal/api/http/handler"
)

func (r *Router) registerShipmentRoutes(
	api fiber.Router,
	sh *handler.ShipmentHandler,
	dh *handler.DeliveryHandler,
	ah *handler.AssignmentHandler,
	adminOnly fiber.Handler,
) {
	shipments := api.Group("/shipments")

	shipments.Get("/", sh.List)
	shipments.Post("/", sh.Create)
	shipments.Get("/display/:displayID", sh.GetByDisplayID)

	s := shipments.Group("/:id")
	s.Get("/", sh.Get)
	s.Patch("/status", sh.UpdateStatus)
	s.Post("/revert", sh.Revert, adminOnly)
	s.Post("/package", sh.MarkPackaged)
	s.Post("/requeue", sh.Requeue, adminOnly)
	s.Post("/failure-photo", sh.UploadFailurePhoto)
	s.Post("/assign", ah.Assign, adminOnly)
	s.Post("/delivery/code", dh.SendCode)
	s.Post("/delivery/confirm", dh.Confirm)

	api.Post("/assignments/auto", ah.AutoAssign, adminOnly)
}
