package v1

import "github.com/gofiber/fiber/v3"

// RegisterMe mounts the /me routes. r must already carry the auth middleware.
func RegisterMe(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}
	if h.User == nil {
		return
	}

	h.User.RegisterRoutes(r)
	if h.UserSkill != nil {
		h.UserSkill.RegisterRoutes(r)
	}
	if h.Assessment != nil {
		h.Assessment.RegisterRoutes(r)
	}
	if h.Resume != nil {
		h.Resume.RegisterRoutes(r)
	}
	if h.Recommendation != nil {
		h.Recommendation.RegisterRoutes(r)
	}
	if h.Insight != nil {
		h.Insight.RegisterUserRoutes(r)
	}
	if h.WS != nil {
		h.WS.RegisterRoutes(r)
	}
}
