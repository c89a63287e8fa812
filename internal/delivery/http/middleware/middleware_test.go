package middleware

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"grad-match/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(handlers ...fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(NewErrorMiddleware(nil).Middleware())
	app.Use(NewAccessLogMiddleware(nil).Middleware())
	for _, h := range handlers {
		app.Use(h)
	}
	return app
}

func TestErrorMiddleware_AppError(t *testing.T) {
	app := newTestApp()
	app.Get("/x", func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusBadRequest, "Invalid algorithm", nil, errors.New("boom"))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"message":"Invalid algorithm"`)
	assert.NotContains(t, string(body), "boom")
}

func TestErrorMiddleware_HidesInternalErrors(t *testing.T) {
	app := newTestApp()
	app.Get("/x", func(c fiber.Ctx) error {
		return errors.New("db password leaked")
	})
	app.Get("/panic", func(c fiber.Ctx) error {
		panic("kaboom")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.NotContains(t, string(body), "leaked")

	resp, err = app.Test(httptest.NewRequest("GET", "/panic", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestAccessLog_SetsRequestID(t *testing.T) {
	app := newTestApp()
	app.Get("/x", func(c fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get(HeaderRequestID))

	req := httptest.NewRequest("GET", "/x", nil)
	req.Header.Set(HeaderRequestID, "fixed-id")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", resp.Header.Get(HeaderRequestID))
}

func TestAuthMiddleware(t *testing.T) {
	svc := jwt.NewHMACService("grad-match", "secret", time.Hour)
	app := newTestApp()
	app.Get("/me", NewAuthMiddleware(svc).Middleware(), func(c fiber.Ctx) error {
		id, ok := IdentityFrom(c)
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "", nil, nil)
		}
		return c.SendString(id.NationalID)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/me", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	tok, _, err := svc.GenerateAccessToken(jwt.Identity{CandidateID: 1, NationalID: "123"})
	require.NoError(t, err)
	req = httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "bearer "+tok)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "123", string(body))
}
