package handler

import (
	"time"

	"grad-match/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	defaultAlgorithm string
	now              func() time.Time
}

func NewHealthHandler(defaultAlgorithm string) *HealthHandler {
	return &HealthHandler{defaultAlgorithm: defaultAlgorithm, now: time.Now}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{
		"status":            "healthy",
		"time":              h.now().UTC().Format(time.RFC3339),
		"default_algorithm": h.defaultAlgorithm,
	})
}
