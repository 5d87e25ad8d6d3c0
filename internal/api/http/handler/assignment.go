package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/karimsaad/wasel_backend/internal/service/assignment"
)

type AssignmentHandler struct {
	svc assignment.Service
}

func NewAssignmentHandler(svc assignment.Service) *AssignmentHandler {
	return &AssignmentHandler{svc: svc}
}

func mapAssignmentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, assignment.ErrShipmentNotFound),
		errors.Is(err, assignment.ErrCourierNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, assignment.ErrNotAssignable),
		errors.Is(err, assignment.ErrCourierRestricted):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /shipments/:id/assign
func (h *AssignmentHandler) Assign(c fiber.Ctx) error {
	shipmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid shipment id")
	}

	var body struct {
		CourierID string `json:"courier_id"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	courierID, err := uuid.Parse(body.CourierID)
	if err != nil {
		return badRequest(c, "invalid courier_id")
	}

	sh, err := h.svc.Assign(c.Context(), shipmentID, courierID)
	if err != nil {
		return mapAssignmentError(c, err)
	}

	return ok(c, sh)
}

// POST /assignments/auto
// Runs one auto-assignment round immediately, same as the periodic job.
func (h *AssignmentHandler) AutoAssign(c fiber.Ctx) error {
	assigned, err := h.svc.AutoAssign(c.Context())
	if err != nil {
		return mapAssignmentError(c, err)
	}

	return ok(c, fiber.Map{"assigned": assigned})
}
