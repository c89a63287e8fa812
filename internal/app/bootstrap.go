package app

import (
	"fmt"
	"strings"

	"grad-match/internal/config"
	"grad-match/internal/delivery/http/handler"
	"grad-match/internal/delivery/http/middleware"
	"grad-match/internal/delivery/http/routes"
	v1 "grad-match/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	registerGlobalMiddleware(f, c.Log)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

// Bootstrap wires the container and HTTP app. The returned cleanup closes
// every external connection.
func Bootstrap(cfg config.Config, log *zap.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	return New(c), c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, log *zap.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(log).Middleware())
	app.Use(middleware.NewErrorMiddleware(log).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil || c == nil {
		return
	}

	registry := routes.NewRegistry(
		handler.NewHealthHandler(c.Config.Matching.DefaultAlgorithm),
		v1.Handlers{
			Auth:     handler.NewAuthHandler(c.AuthUsecase),
			Ranking:  handler.NewRankingHandler(c.RankingUsecase),
			Taxonomy: handler.NewTaxonomyHandler(c.Engine.Taxonomy()),
		},
		middleware.NewAuthMiddleware(c.JWT).Middleware(),
	)
	registry.Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
