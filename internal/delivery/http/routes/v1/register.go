package v1

import (
	"grad-match/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Auth     *handler.AuthHandler
	Ranking  *handler.RankingHandler
	Taxonomy *handler.TaxonomyHandler
}

// Register mounts public routes first, then everything behind auth.
func Register(r fiber.Router, h Handlers, auth fiber.Handler) {
	if r == nil {
		return
	}

	if h.Auth != nil {
		h.Auth.RegisterRoutes(r.Group("/auth"))
	}
	if h.Taxonomy != nil {
		h.Taxonomy.RegisterRoutes(r)
	}

	if h.Ranking == nil || auth == nil {
		return
	}
	protected := r.Group("", auth)
	h.Ranking.RegisterRoutes(protected)
}
