package handler

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/karimsaad/wasel_backend/internal/model"
	"github.com/karimsaad/wasel_backend/internal/service/shipment"
	"github.com/karimsaad/wasel_backend/pkg/s3"
)

type ShipmentHandler struct {
	svc shipment.Service
	s3  *s3.Client
}

func NewShipmentHandler(svc shipment.Service, s3Client *s3.Client) *ShipmentHandler {
	return &ShipmentHandler{svc: svc, s3: s3Client}
}

func mapShipmentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, shipment.ErrShipmentNotFound),
		errors.Is(err, shipment.ErrClientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, shipment.ErrValidation):
		return badRequest(c, err.Error())
	case errors.Is(err, shipment.ErrInvalidTransition),
		errors.Is(err, shipment.ErrDeliveredViaUpdate),
		errors.Is(err, shipment.ErrNotRequeueable):
		return conflict(c, err.Error())
	case errors.Is(err, shipment.ErrInsufficientBalance),
		errors.Is(err, shipment.ErrInventoryShort):
		return unprocessable(c, err.Error())
	default:
		return internalError(c)
	}
}

type addressBody struct {
	Street  string `json:"street"`
	Details string `json:"details"`
	City    string `json:"city"`
	Zone    string `json:"zone"`
}

func (a addressBody) toModel() model.Address {
	return model.Address{Street: a.Street, Details: a.Details, City: a.City, Zone: a.Zone}
}

// POST /shipments
func (h *ShipmentHandler) Create(c fiber.Ctx) error {
	var body struct {
		ClientID        string      `json:"client_id"`
		RecipientName   string      `json:"recipient_name"`
		RecipientPhone  string      `json:"recipient_phone"`
		FromAddress     addressBody `json:"from_address"`
		ToAddress       addressBody `json:"to_address"`
		Priority        string      `json:"priority"`
		PaymentMethod   string      `json:"payment_method"`
		PackageValue    float64     `json:"package_value"`
		AmountToCollect float64     `json:"amount_to_collect"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	clientID, err := uuid.Parse(body.ClientID)
	if err != nil {
		return badRequest(c, "invalid client_id")
	}

	sh, err := h.svc.Create(c.Context(), shipment.CreateRequest{
		ClientID:        clientID,
		RecipientName:   body.RecipientName,
		RecipientPhone:  body.RecipientPhone,
		FromAddress:     body.FromAddress.toModel(),
		ToAddress:       body.ToAddress.toModel(),
		Priority:        body.Priority,
		PaymentMethod:   body.PaymentMethod,
		PackageValue:    body.PackageValue,
		AmountToCollect: body.AmountToCollect,
	})
	if err != nil {
		return mapShipmentError(c, err)
	}

	return created(c, sh)
}

// GET /shipments
func (h *ShipmentHandler) List(c fiber.Ctx) error {
	var q struct {
		ClientID  string `query:"client_id"`
		CourierID string `query:"courier_id"`
		Status    string `query:"status"`
		Page      int    `query:"page"`
		PerPage   int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := shipment.ListRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
	}
	if q.ClientID != "" {
		id, err := uuid.Parse(q.ClientID)
		if err != nil {
			return badRequest(c, "invalid client_id")
		}
		req.ClientID = &id
	}
	if q.CourierID != "" {
		id, err := uuid.Parse(q.CourierID)
		if err != nil {
			return badRequest(c, "invalid courier_id")
		}
		req.CourierID = &id
	}
	if q.Status != "" {
		req.Status = &q.Status
	}

	shipments, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapShipmentError(c, err)
	}

	return ok(c, shipments)
}

// GET /shipments/:id
func (h *ShipmentHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid shipment id")
	}

	sh, err := h.svc.Get(c.Context(), id)
	if err != nil {
		return mapShipmentError(c, err)
	}

	return ok(c, sh)
}

// GET /shipments/display/:displayID
func (h *ShipmentHandler) GetByDisplayID(c fiber.Ctx) error {
	displayID := c.Params("displayID")
	if displayID == "" {
		return badRequest(c, "display id is required")
	}

	sh, err := h.svc.GetByDisplayID(c.Context(), displayID)
	if err != nil {
		return mapShipmentError(c, err)
	}

	return ok(c, sh)
}

// PATCH /shipments/:id/status
// Generic forward transition. Failing a shipment may include a reason and
// a previously uploaded photo key; delivered is rejected here.
func (h *ShipmentHandler) UpdateStatus(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid shipment id")
	}

	var body struct {
		Status        string `json:"status"`
		FailureReason string `json:"failure_reason"`
		FailurePhoto  string `json:"failure_photo"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Status == "" {
		return badRequest(c, "status is required")
	}

	sh, err := h.svc.UpdateStatus(c.Context(), id, shipment.UpdateStatusRequest{
		NewStatus:     body.Status,
		FailureReason: body.FailureReason,
		FailurePhoto:  body.FailurePhoto,
	})
	if err != nil {
		return mapShipmentError(c, err)
	}

	return ok(c, sh)
}

// POST /shipments/:id/revert
func (h *ShipmentHandler) Revert(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid shipment id")
	}

	sh, err := h.svc.Revert(c.Context(), id)
	if err != nil {
		return mapShipmentError(c, err)
	}

	return ok(c, sh)
}

// POST /shipments/:id/package
func (h *ShipmentHandler) MarkPackaged(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid shipment id")
	}

	var body struct {
		Lines []struct {
			ItemID string `json:"item_id"`
			Qty    int    `json:"qty"`
		} `json:"lines"`
		Notes string `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := shipment.PackagingRequest{Notes: body.Notes}
	for _, line := range body.Lines {
		itemID, err := uuid.Parse(line.ItemID)
		if err != nil {
			return badRequest(c, "invalid item_id")
		}
		req.Lines = append(req.Lines, model.PackagingLine{ItemID: itemID, Qty: line.Qty})
	}

	sh, err := h.svc.MarkPackaged(c.Context(), id, req)
	if err != nil {
		return mapShipmentError(c, err)
	}

	return ok(c, sh)
}

// POST /shipments/:id/requeue
func (h *ShipmentHandler) Requeue(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid shipment id")
	}

	sh, err := h.svc.Requeue(c.Context(), id)
	if err != nil {
		return mapShipmentError(c, err)
	}

	return ok(c, sh)
}

// POST /shipments/:id/failure-photo
// Multipart upload; returns the stored key for use in a later failed
// status update.
func (h *ShipmentHandler) UploadFailurePhoto(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid shipment id")
	}

	if _, err := h.svc.Get(c.Context(), id); err != nil {
		return mapShipmentError(c, err)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "file field is required")
	}

	f, err := fh.Open()
	if err != nil {
		return internalError(c)
	}
	defer f.Close()

	key := fmt.Sprintf("evidence/failure/%s/%d_%s", id, time.Now().Unix(), fh.Filename)
	contentType := fh.Header.Get("Content-Type")
	if err := h.s3.Upload(c.Context(), key, contentType, f, fh.Size); err != nil {
		return internalError(c)
	}

	return created(c, fiber.Map{"key": key})
}
