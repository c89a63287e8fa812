package handler

import (
	"errors"
	"fmt"

	"grad-match/internal/delivery/http/dto"
	"grad-match/internal/delivery/http/middleware"
	"grad-match/internal/pkg/response"
	"grad-match/internal/usecase"
	ucauth "grad-match/internal/usecase/auth"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	uc        usecase.AuthUsecase
	validator *validator.Validate
}

func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc, validator: validator.New()}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/login", h.Login)
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, validationMessage(err), nil, err)
	}

	res, err := h.uc.Login(c.Context(), ucauth.LoginInput{
		NationalID:   req.NationalID,
		RecordNumber: req.RecordNumber,
	})
	if err != nil {
		return mapAuthUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Login successful", dto.NewLoginResponse(res))
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Sprintf("validation error: %s - %s", fe.Field(), fe.Tag())
	}
	return "validation error: invalid request"
}

func mapAuthUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ucauth.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid credentials", nil, err)
	case errors.Is(err, ucauth.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
