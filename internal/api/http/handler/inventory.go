package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/karimsaad/wasel_backend/internal/service/inventory"
)

type InventoryHandler struct {
	svc inventory.Service
}

func NewInventoryHandler(svc inventory.Service) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

func mapInventoryError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, inventory.ErrItemNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, inventory.ErrValidation):
		return badRequest(c, err.Error())
	case errors.Is(err, inventory.ErrNameTaken):
		return conflict(c, err.Error())
	case errors.Is(err, inventory.ErrStockBelow):
		return unprocessable(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /inventory
func (h *InventoryHandler) Create(c fiber.Ctx) error {
	var body struct {
		Name     string `json:"name"`
		Quantity int    `json:"quantity"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Name == "" {
		return badRequest(c, "name is required")
	}

	item, err := h.svc.Create(c.Context(), body.Name, body.Quantity)
	if err != nil {
		return mapInventoryError(c, err)
	}

	return created(c, item)
}

// PATCH /inventory/:id
func (h *InventoryHandler) Adjust(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid item id")
	}

	var body struct {
		Delta int `json:"delta"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	item, err := h.svc.Adjust(c.Context(), id, body.Delta)
	if err != nil {
		return mapInventoryError(c, err)
	}

	return ok(c, item)
}

// GET /inventory
func (h *InventoryHandler) List(c fiber.Ctx) error {
	items, err := h.svc.List(c.Context())
	if err != nil {
		return mapInventoryError(c, err)
	}

	return ok(c, items)
}
