package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/karimsaad/wasel_backend/internal/model"
	"github.com/karimsaad/wasel_backend/internal/service/wallet"
)

type WalletHandler struct {
	svc wallet.Service
}

func NewWalletHandler(svc wallet.Service) *WalletHandler {
	return &WalletHandler{svc: svc}
}

func mapWalletError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, wallet.ErrAccountNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, wallet.ErrInvalidAmount):
		return badRequest(c, err.Error())
	case errors.Is(err, wallet.ErrInsufficientFunds):
		return unprocessable(c, err.Error())
	default:
		return internalError(c)
	}
}

func walletAccountParams(c fiber.Ctx) (string, uuid.UUID, error) {
	accountType := c.Params("type")
	if accountType != model.AccountClient && accountType != model.AccountCourier {
		return "", uuid.Nil, errors.New("account type must be client or courier")
	}
	accountID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return "", uuid.Nil, errors.New("invalid account id")
	}
	return accountType, accountID, nil
}

// GET /wallets/:type/:id/transactions
func (h *WalletHandler) List(c fiber.Ctx) error {
	accountType, accountID, err := walletAccountParams(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	var q struct {
		Type    string `query:"type"`
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := wallet.ListRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
	}
	if q.Type != "" {
		req.Type = &q.Type
	}

	entries, err := h.svc.List(c.Context(), accountType, accountID, req)
	if err != nil {
		return mapWalletError(c, err)
	}

	return ok(c, entries)
}

// GET /wallets/:type/:id/balance
func (h *WalletHandler) Summary(c fiber.Ctx) error {
	accountType, accountID, err := walletAccountParams(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	summary, err := h.svc.Summary(c.Context(), accountType, accountID)
	if err != nil {
		return mapWalletError(c, err)
	}

	return ok(c, summary)
}

// POST /wallets/deposits
func (h *WalletHandler) Deposit(c fiber.Ctx) error {
	var body struct {
		ClientID      string  `json:"client_id"`
		Amount        float64 `json:"amount"`
		PaymentMethod string  `json:"payment_method"`
		EvidenceRef   string  `json:"evidence_ref"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	clientID, err := uuid.Parse(body.ClientID)
	if err != nil {
		return badRequest(c, "invalid client_id")
	}

	txn, err := h.svc.Deposit(c.Context(), wallet.DepositRequest{
		ClientID:      clientID,
		Amount:        body.Amount,
		PaymentMethod: body.PaymentMethod,
		EvidenceRef:   body.EvidenceRef,
	})
	if err != nil {
		return mapWalletError(c, err)
	}

	return created(c, txn)
}

// POST /wallets/:type/:id/reconcile
func (h *WalletHandler) Reconcile(c fiber.Ctx) error {
	accountType, accountID, err := walletAccountParams(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	summary, drifted, err := h.svc.Reconcile(c.Context(), accountType, accountID)
	if err != nil {
		return mapWalletError(c, err)
	}

	return ok(c, fiber.Map{"summary": summary, "drifted": drifted})
}

// POST /wallets/reconcile
func (h *WalletHandler) ReconcileAll(c fiber.Ctx) error {
	drifted, err := h.svc.ReconcileAll(c.Context())
	if err != nil {
		return mapWalletError(c, err)
	}

	return ok(c, fiber.Map{"drifted": drifted})
}
