package handler

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/karimsaad/wasel_backend/internal/model"
	"github.com/karimsaad/wasel_backend/internal/service/payout"
	"github.com/karimsaad/wasel_backend/pkg/s3"
)

type PayoutHandler struct {
	svc payout.Service
	s3  *s3.Client
}

func NewPayoutHandler(svc payout.Service, s3Client *s3.Client) *PayoutHandler {
	return &PayoutHandler{svc: svc, s3: s3Client}
}

func mapPayoutError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, payout.ErrPayoutNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, payout.ErrInvalidAmount),
		errors.Is(err, payout.ErrInvalidOverride):
		return badRequest(c, err.Error())
	case errors.Is(err, payout.ErrNotPending),
		errors.Is(err, payout.ErrDuplicatePending):
		return conflict(c, err.Error())
	case errors.Is(err, payout.ErrInsufficientBalance):
		return unprocessable(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /payouts
func (h *PayoutHandler) Request(c fiber.Ctx) error {
	var body struct {
		AccountType   string  `json:"account_type"`
		AccountID     string  `json:"account_id"`
		Amount        float64 `json:"amount"`
		PaymentMethod string  `json:"payment_method"`
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

	txn, err := h.svc.Request(c.Context(), payout.RequestPayout{
		AccountType:   body.AccountType,
		AccountID:     accountID,
		Amount:        body.Amount,
		PaymentMethod: body.PaymentMethod,
	})
	if err != nil {
		return mapPayoutError(c, err)
	}

	return created(c, txn)
}

// GET /payouts
func (h *PayoutHandler) List(c fiber.Ctx) error {
	var q struct {
		Status  string `query:"status"`
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := payout.ListRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
	}
	if q.Status != "" {
		req.Status = &q.Status
	}

	payouts, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapPayoutError(c, err)
	}

	return ok(c, payouts)
}

// GET /payouts/:id
func (h *PayoutHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid payout id")
	}

	txn, err := h.svc.Get(c.Context(), id)
	if err != nil {
		return mapPayoutError(c, err)
	}

	return ok(c, txn)
}

// POST /payouts/:id/approve
// Multipart form with an optional transfer receipt file and an optional
// processed_amount override.
func (h *PayoutHandler) Approve(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid payout id")
	}

	req := payout.ApproveRequest{}

	if raw := c.FormValue("processed_amount"); raw != "" {
		amount, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return badRequest(c, "invalid processed_amount")
		}
		req.ProcessedAmount = &amount
	}

	if fh, err := c.FormFile("evidence"); err == nil {
		f, err := fh.Open()
		if err != nil {
			return internalError(c)
		}
		defer f.Close()

		key := fmt.Sprintf("evidence/payout/%s/%d_%s", id, time.Now().Unix(), fh.Filename)
		contentType := fh.Header.Get("Content-Type")
		if err := h.s3.Upload(c.Context(), key, contentType, f, fh.Size); err != nil {
			return internalError(c)
		}
		req.EvidenceRef = key
	}

	txn, err := h.svc.Approve(c.Context(), id, req)
	if err != nil {
		return mapPayoutError(c, err)
	}

	return ok(c, txn)
}

// POST /payouts/:id/decline
func (h *PayoutHandler) Decline(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid payout id")
	}

	txn, err := h.svc.Decline(c.Context(), id)
	if err != nil {
		return mapPayoutError(c, err)
	}

	return ok(c, txn)
}
