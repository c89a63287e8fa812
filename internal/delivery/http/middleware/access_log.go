package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	HeaderRequestID = "X-Request-ID"
	CtxRequestIDKey = "request_id"
)

type AccessLogMiddleware struct {
	log *zap.Logger
}

func NewAccessLogMiddleware(log *zap.Logger) *AccessLogMiddleware {
	if log == nil {
		log = zap.NewNop()
	}
	return &AccessLogMiddleware{log: log.Named("http")}
}

func (m *AccessLogMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		rid := c.Get(HeaderRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(HeaderRequestID, rid)
		c.Locals(CtxRequestIDKey, rid)

		err := c.Next()

		m.log.Info("http access",
			zap.String("rid", rid),
			zap.String("ip", c.IP()),
			zap.String("method", c.Method()),
			zap.String("path", c.OriginalURL()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
			zap.Int("resp_bytes", len(c.Response().Body())),
			zap.String("ua", c.Get("User-Agent")),
		)

		return err
	}
}
