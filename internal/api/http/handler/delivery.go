package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/karimsaad/wasel_backend/internal/service/delivery"
)

type DeliveryHandler struct {
	svc delivery.Service
}

func NewDeliveryHandler(svc delivery.Service) *DeliveryHandler {
	return &DeliveryHandler{svc: svc}
}

func mapDeliveryError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, delivery.ErrShipmentNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, delivery.ErrNotConfirmable):
		return conflict(c, err.Error())
	case errors.Is(err, delivery.ErrCodeExpired),
		errors.Is(err, delivery.ErrCodeInvalid):
		return unprocessable(c, err.Error())
	case errors.Is(err, delivery.ErrTooManyAttempts):
		return tooManyRequests(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /shipments/:id/delivery/code
func (h *DeliveryHandler) SendCode(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid shipment id")
	}

	codeID, err := h.svc.SendCode(c.Context(), id)
	if err != nil {
		return mapDeliveryError(c, err)
	}

	return created(c, fiber.Map{"code_id": codeID})
}

// POST /shipments/:id/delivery/confirm
func (h *DeliveryHandler) Confirm(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid shipment id")
	}

	var body struct {
		Code string `json:"code"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Code == "" {
		return badRequest(c, "code is required")
	}

	sh, err := h.svc.Confirm(c.Context(), id, body.Code)
	if err != nil {
		return mapDeliveryError(c, err)
	}

	return ok(c, sh)
}
