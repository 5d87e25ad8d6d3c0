package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/karimsaad/wasel_backend/internal/service/tier"
)

type TierHandler struct {
	svc tier.Service
}

func NewTierHandler(svc tier.Service) *TierHandler {
	return &TierHandler{svc: svc}
}

func mapTierError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, tier.ErrClientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, tier.ErrUnknownTier):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /tiers/settings
func (h *TierHandler) ListSettings(c fiber.Ctx) error {
	settings, err := h.svc.ListSettings(c.Context())
	if err != nil {
		return mapTierError(c, err)
	}

	return ok(c, settings)
}

// PUT /tiers/settings
func (h *TierHandler) UpdateSetting(c fiber.Ctx) error {
	var body struct {
		Tier            string  `json:"tier"`
		MinShipments    int     `json:"min_shipments"`
		DiscountPercent float64 `json:"discount_percent"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Tier == "" {
		return badRequest(c, "tier is required")
	}

	if err := h.svc.UpdateSetting(c.Context(), tier.Setting{
		Tier:            body.Tier,
		MinShipments:    body.MinShipments,
		DiscountPercent: body.DiscountPercent,
	}); err != nil {
		return mapTierError(c, err)
	}

	return noContent(c)
}

// POST /tiers/recalculate
func (h *TierHandler) RecalculateAll(c fiber.Ctx) error {
	changed, err := h.svc.RecalculateAll(c.Context())
	if err != nil {
		return mapTierError(c, err)
	}

	return ok(c, fiber.Map{"changed": changed})
}

// POST /accounts/clients/:id/tier/recalculate
func (h *TierHandler) Recalculate(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid client id")
	}

	u, err := h.svc.Recalculate(c.Context(), id)
	if err != nil {
		return mapTierError(c, err)
	}

	return ok(c, u)
}

// PUT /accounts/clients/:id/tier/pin
func (h *TierHandler) Pin(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid client id")
	}

	var body struct {
		Tier *string `json:"tier"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	u, err := h.svc.Pin(c.Context(), id, body.Tier)
	if err != nil {
		return mapTierError(c, err)
	}

	return ok(c, u)
}

// DELETE /accounts/clients/:id/tier/pin
func (h *TierHandler) Unpin(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid client id")
	}

	u, err := h.svc.Unpin(c.Context(), id)
	if err != nil {
		return mapTierError(c, err)
	}

	return ok(c, u)
}
