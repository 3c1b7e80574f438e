package v1

import "github.com/gofiber/fiber/v3"

// RegisterCatalog mounts the unauthenticated skill, career and industry reads.
func RegisterCatalog(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.Skill != nil {
		h.Skill.RegisterRoutes(r)
	}
	if h.Career != nil {
		h.Career.RegisterRoutes(r)
	}
	if h.Insight != nil {
		h.Insight.RegisterRoutes(r)
	}
}
