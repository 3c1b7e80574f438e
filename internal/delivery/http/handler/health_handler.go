package handler

import (
	"time"

	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	status usecase.StatusUsecase
}

func NewHealthHandler(status usecase.StatusUsecase) *HealthHandler {
	return &HealthHandler{status: status}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
	if h.status != nil {
		r.Get("/status", h.Status)
	}
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{
		"status": "up",
		"time":   time.Now().UTC(),
	})
}

func (h *HealthHandler) Status(c fiber.Ctx) error {
	st, err := h.status.GetStatus(c.Context())
	if err != nil {
		return response.Error(c, fiber.StatusInternalServerError, "failed to get status", nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, st)
}
