package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/karimsaad/wasel_backend/internal/model"
	"github.com/karimsaad/wasel_backend/internal/service/account"
)

type AccountHandler struct {
	svc account.Service
}

func NewAccountHandler(svc account.Service) *AccountHandler {
	return &AccountHandler{svc: svc}
}

func mapAccountError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, account.ErrUserNotFound),
		errors.Is(err, account.ErrNotCourier):
		return notFound(c, err.Error())
	case errors.Is(err, account.ErrValidation),
		errors.Is(err, account.ErrInvalidPenalty):
		return badRequest(c, err.Error())
	case errors.Is(err, account.ErrEmailTaken):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /accounts/clients
func (h *AccountHandler) CreateClient(c fiber.Ctx) error {
	var body struct {
		Name                string             `json:"name"`
		Email               string             `json:"email"`
		Phone               string             `json:"phone"`
		FlatRateFee         float64            `json:"flat_rate_fee"`
		PriorityMultipliers map[string]float64 `json:"priority_multipliers"`
		ReferredBy          *string            `json:"referred_by"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := account.CreateClientRequest{
		Name:                body.Name,
		Email:               body.Email,
		Phone:               body.Phone,
		FlatRateFee:         body.FlatRateFee,
		PriorityMultipliers: body.PriorityMultipliers,
	}
	if body.ReferredBy != nil {
		id, err := uuid.Parse(*body.ReferredBy)
		if err != nil {
			return badRequest(c, "invalid referred_by")
		}
		req.ReferredBy = &id
	}

	u, err := h.svc.CreateClient(c.Context(), req)
	if err != nil {
		return mapAccountError(c, err)
	}

	return created(c, u)
}

// POST /accounts/couriers
func (h *AccountHandler) CreateCourier(c fiber.Ctx) error {
	var body struct {
		Name             string   `json:"name"`
		Email            string   `json:"email"`
		Phone            string   `json:"phone"`
		Zones            []string `json:"zones"`
		CommissionScheme string   `json:"commission_scheme"`
		CommissionValue  float64  `json:"commission_value"`
		ReferredBy       *string  `json:"referred_by"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := account.CreateCourierRequest{
		Name:             body.Name,
		Email:            body.Email,
		Phone:            body.Phone,
		Zones:            body.Zones,
		CommissionScheme: body.CommissionScheme,
		CommissionValue:  body.CommissionValue,
	}
	if body.ReferredBy != nil {
		id, err := uuid.Parse(*body.ReferredBy)
		if err != nil {
			return badRequest(c, "invalid referred_by")
		}
		req.ReferredBy = &id
	}

	u, err := h.svc.CreateCourier(c.Context(), req)
	if err != nil {
		return mapAccountError(c, err)
	}

	return created(c, u)
}

// GET /accounts/:id
func (h *AccountHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid account id")
	}

	u, err := h.svc.Get(c.Context(), id)
	if err != nil {
		return mapAccountError(c, err)
	}

	return ok(c, u)
}

// GET /accounts
func (h *AccountHandler) List(c fiber.Ctx) error {
	var q struct {
		Role    string `query:"role"`
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := account.ListRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
	}
	if q.Role != "" {
		req.Role = &q.Role
	}

	users, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapAccountError(c, err)
	}

	return ok(c, users)
}

// PATCH /accounts/clients/:id/pricing
func (h *AccountHandler) UpdatePricing(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid client id")
	}

	var body struct {
		FlatRateFee         *float64           `json:"flat_rate_fee"`
		PriorityMultipliers map[string]float64 `json:"priority_multipliers"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	u, err := h.svc.UpdatePricing(c.Context(), id, account.UpdatePricingRequest{
		FlatRateFee:         body.FlatRateFee,
		PriorityMultipliers: body.PriorityMultipliers,
	})
	if err != nil {
		return mapAccountError(c, err)
	}

	return ok(c, u)
}

// PATCH /accounts/couriers/:id/zones
func (h *AccountHandler) UpdateZones(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid courier id")
	}

	var body struct {
		Zones []string `json:"zones"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	u, err := h.svc.UpdateZones(c.Context(), id, body.Zones)
	if err != nil {
		return mapAccountError(c, err)
	}

	return ok(c, u)
}

// PATCH /accounts/couriers/:id/commission
func (h *AccountHandler) UpdateCommission(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid courier id")
	}

	var body struct {
		Scheme string  `json:"scheme"`
		Value  float64 `json:"value"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	stats, err := h.svc.UpdateCommission(c.Context(), id, account.UpdateCommissionRequest{
		Scheme: body.Scheme,
		Value:  body.Value,
	})
	if err != nil {
		return mapAccountError(c, err)
	}

	return ok(c, stats)
}

// GET /accounts/couriers/:id/stats
func (h *AccountHandler) CourierStats(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid courier id")
	}

	stats, err := h.svc.CourierStats(c.Context(), id)
	if err != nil {
		return mapAccountError(c, err)
	}

	return ok(c, stats)
}

// POST /accounts/couriers/:id/restrict
func (h *AccountHandler) Restrict(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid courier id")
	}

	var body struct {
		Reason string `json:"reason"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.svc.Restrict(c.Context(), id, body.Reason); err != nil {
		return mapAccountError(c, err)
	}

	return noContent(c)
}

// POST /accounts/couriers/:id/unrestrict
func (h *AccountHandler) Unrestrict(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid courier id")
	}

	if err := h.svc.Unrestrict(c.Context(), id); err != nil {
		return mapAccountError(c, err)
	}

	return noContent(c)
}

// POST /accounts/penalties
func (h *AccountHandler) Penalize(c fiber.Ctx) error {
	var body struct {
		AccountType string  `json:"account_type"`
		AccountID   string  `json:"account_id"`
		Amount      float64 `json:"amount"`
		Reason      string  `json:"reason"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.AccountType != model.AccountClient && body.AccountType != model.AccountCourier {
		return badRequest(c, "account_type must be client or courier")
	}

	accountID, err := uuid.Parse(body.AccountID)
	if err != nil {
		return badRequest(c, "invalid account_id")
	}

	txn, err := h.svc.Penalize(c.Context(), account.PenaltyRequest{
		AccountType: body.AccountType,
		AccountID:   accountID,
		Amount:      body.Amount,
		Reason:      body.Reason,
	})
	if err != nil {
		return mapAccountError(c, err)
	}

	return created(c, txn)
}
