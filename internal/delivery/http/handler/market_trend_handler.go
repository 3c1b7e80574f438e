package handler

import (
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MarketTrendHandler struct {
	uc usecase.MarketTrendUsecase
}

func NewMarketTrendHandler(uc usecase.MarketTrendUsecase) *MarketTrendHandler {
	return &MarketTrendHandler{uc: uc}
}

func (h *MarketTrendHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/admin/market-trends/refresh", h.Refresh)
}

func (h *MarketTrendHandler) Refresh(c fiber.Ctx) error {
	n, err := h.uc.RefreshMarketTrends(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]int{"updated": n})
}
