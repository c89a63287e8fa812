package response

import "github.com/gofiber/fiber/v3"

// SemanticResponse is the envelope every endpoint renders.
type SemanticResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

const (
	MessageOK                  = "ok"
	MessageBadRequest          = "bad request"
	MessageUnauthorized        = "unauthorized"
	MessageForbidden           = "forbidden"
	MessageNotFound            = "not found"
	MessageUnprocessableEntity = "unprocessable entity"
	MessageInternalServerError = "internal server error"
	MessageServiceUnavailable  = "service unavailable"
	MessageError               = "error"
)

var defaultMessages = map[int]string{
	fiber.StatusOK:                  MessageOK,
	fiber.StatusBadRequest:          MessageBadRequest,
	fiber.StatusUnauthorized:        MessageUnauthorized,
	fiber.StatusForbidden:           MessageForbidden,
	fiber.StatusNotFound:            MessageNotFound,
	fiber.StatusUnprocessableEntity: MessageUnprocessableEntity,
	fiber.StatusServiceUnavailable:  MessageServiceUnavailable,
}

func Success(c fiber.Ctx, status int, message string, data any) error {
	return render(c, status, message, data)
}

func Error(c fiber.Ctx, status int, message string, data any) error {
	return render(c, status, message, data)
}

func render(c fiber.Ctx, status int, message string, data any) error {
	st := normalizeStatus(status)
	msg := message
	if msg == "" {
		msg = DefaultMessage(st)
	}
	return c.Status(st).JSON(SemanticResponse{Status: st, Message: msg, Data: data})
}

func normalizeStatus(status int) int {
	if status < 100 || status > 599 {
		return fiber.StatusInternalServerError
	}
	return status
}

func DefaultMessage(status int) string {
	if m, ok := defaultMessages[status]; ok {
		return m
	}
	if status >= 500 {
		return MessageInternalServerError
	}
	return MessageError
}
