package middleware

import (
	"errors"

	"grad-match/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type AppError struct {
	StatusCode int
	Message    string
	Data       any
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, data any, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Data: data, Cause: cause}
}

type ErrorMiddleware struct {
	log *zap.Logger
}

func NewErrorMiddleware(log *zap.Logger) *ErrorMiddleware {
	if log == nil {
		log = zap.NewNop()
	}
	return &ErrorMiddleware{log: log}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.log.Error("panic recovered",
					zap.Any("panic", r),
					zap.String("method", c.Method()),
					zap.String("path", c.Path()),
				)
				err = response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, msg, data := normalizeError(err)
		if status >= fiber.StatusInternalServerError {
			m.log.Error("request failed",
				zap.Error(err),
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
			)
		}
		return response.Error(c, status, msg, data)
	}
}

func normalizeError(err error) (int, string, any) {
	if err == nil {
		return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return normalizeStatus(appErr.StatusCode, appErr.Message, appErr.Data)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return normalizeStatus(fiberErr.Code, fiberErr.Message, nil)
	}

	return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
}

// normalizeStatus hides server-side details behind a generic 500.
func normalizeStatus(status int, msg string, data any) (int, string, any) {
	if status <= 0 || status >= fiber.StatusInternalServerError {
		return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
	}
	if msg == "" {
		msg = response.DefaultMessage(status)
	}
	return status, msg, data
}
