package middleware

import (
	"errors"
	"strings"

	"grad-match/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
)

const CtxIdentityKey = "identity"

type AuthMiddleware struct {
	jwt jwt.Service
}

func NewAuthMiddleware(jwtSvc jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc}
}

func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := bearerTokenFromHeader(c.Get("Authorization"))
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		claims, err := m.jwt.ValidateToken(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
			}
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
		}

		c.Locals(CtxIdentityKey, claims.Identity)

		return c.Next()
	}
}

// IdentityFrom returns the identity stored by AuthMiddleware.
func IdentityFrom(c fiber.Ctx) (jwt.Identity, bool) {
	id, ok := c.Locals(CtxIdentityKey).(jwt.Identity)
	if !ok || id.CandidateID <= 0 {
		return jwt.Identity{}, false
	}
	return id, true
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	scheme, token, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}

	return token, true
}
