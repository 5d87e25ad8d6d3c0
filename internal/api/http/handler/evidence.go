package handler

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/karimsaad/wasel_backend/pkg/s3"
)

type EvidenceHandler struct {
	s3 *s3.Client
}

func NewEvidenceHandler(s3Client *s3.Client) *EvidenceHandler {
	return &EvidenceHandler{s3: s3Client}
}

// GET /evidence/*
// Redirects to a presigned download URL for a stored evidence object.
func (h *EvidenceHandler) Download(c fiber.Ctx) error {
	key := strings.TrimPrefix(c.Path(), "/api/v1/evidence/")
	if key == "" {
		return badRequest(c, "key is required")
	}
	key = "evidence/" + key

	url, err := h.s3.PresignDownload(c.Context(), key)
	if err != nil {
		return internalError(c)
	}

	return c.Redirect().To(url)
}
