package handler

import (
	"grad-match/internal/delivery/http/dto"
	"grad-match/internal/domain/matching"
	"grad-match/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type TaxonomyHandler struct {
	view dto.TaxonomyResponse
}

// NewTaxonomyHandler renders the immutable taxonomy once.
func NewTaxonomyHandler(t *matching.Taxonomy) *TaxonomyHandler {
	return &TaxonomyHandler{view: dto.NewTaxonomyResponse(t)}
}

func (h *TaxonomyHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/taxonomy", h.GetTaxonomy)
}

func (h *TaxonomyHandler) GetTaxonomy(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, h.view)
}
