package v1

import (
	"career-compass/internal/delivery/http/handler"
	"career-compass/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Handlers is everything mounted under /api/v1. A nil handler skips its routes.
type Handlers struct {
	Auth           *handler.AuthHandler
	User           *handler.UserHandler
	UserSkill      *handler.UserSkillHandler
	Assessment     *handler.AssessmentHandler
	Resume         *handler.ResumeHandler
	Recommendation *handler.RecommendationHandler
	Insight        *handler.InsightHandler
	Skill          *handler.SkillHandler
	Career         *handler.CareerHandler
	MarketTrend    *handler.MarketTrendHandler
	WS             *ws.Handler
}

func Register(r fiber.Router, h Handlers, authMw fiber.Handler) {
	if r == nil {
		return
	}

	if h.Auth != nil {
		h.Auth.RegisterRoutes(r.Group("/auth"))
	}

	RegisterCatalog(r, h)

	if authMw == nil {
		return
	}
	protected := r.Group("", authMw)
	RegisterMe(protected, h)

	if h.MarketTrend != nil {
		h.MarketTrend.RegisterRoutes(protected)
	}
}
