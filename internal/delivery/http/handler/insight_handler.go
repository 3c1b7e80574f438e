package handler

import (
	"net/url"

	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type InsightHandler struct {
	uc usecase.InsightUsecase
}

func NewInsightHandler(uc usecase.InsightUsecase) *InsightHandler {
	return &InsightHandler{uc: uc}
}

// RegisterUserRoutes mounts the per-user routes; they expect the auth middleware.
func (h *InsightHandler) RegisterUserRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/me/insights", h.Personalized)
}

func (h *InsightHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/industries/:industry/insights", h.Industry)
}

func (h *InsightHandler) Personalized(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	ins, err := h.uc.GetPersonalizedInsights(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, ins)
}

func (h *InsightHandler) Industry(c fiber.Ctx) error {
	industry, err := url.PathUnescape(c.Params("industry"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid industry", nil, err)
	}

	ins, err := h.uc.GetIndustryInsights(c.Context(), industry)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewIndustryInsightsResponse(ins))
}
