package handler

import (
	"errors"

	"grad-match/internal/delivery/http/dto"
	"grad-match/internal/delivery/http/middleware"
	"grad-match/internal/pkg/response"
	"grad-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RankingHandler struct {
	uc usecase.RankingUsecase
}

func NewRankingHandler(uc usecase.RankingUsecase) *RankingHandler {
	return &RankingHandler{uc: uc}
}

func (h *RankingHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/jobs", h.ListRankedJobs)
}

// ListRankedJobs ranks the catalog for the authenticated candidate.
// Query: algorithm=lexical|hierarchical (optional).
func (h *RankingHandler) ListRankedJobs(c fiber.Ctx) error {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	res, err := h.uc.Rank(c.Context(), usecase.RankInput{
		CandidateID: id.CandidateID,
		Algorithm:   c.Query("algorithm"),
	})
	if err != nil {
		return mapRankingUsecaseError(err)
	}

	if res.Cached {
		c.Set("X-Cache", "HIT")
	} else {
		c.Set("X-Cache", "MISS")
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewRankingResponse(res))
}

func mapRankingUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid algorithm, expected lexical or hierarchical", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrCandidateNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Candidate not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
