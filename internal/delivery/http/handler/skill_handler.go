package handler

import (
	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillHandler struct {
	uc usecase.SkillUsecase
}

type extractSkillsRequest struct {
	Text       string  `json:"text" validate:"required,max=200000"`
	Threshold  float64 `json:"threshold" validate:"gte=0,lte=1"`
	WithLevels bool    `json:"with_levels"`
}

type marketDataRequest struct {
	Skills []string `json:"skills" validate:"required,min=1,max=50,dive,required,max=100"`
}

func NewSkillHandler(uc usecase.SkillUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/skills")
	grp.Post("/extract", h.Extract)
	grp.Post("/market-data", h.MarketData)
	grp.Get("/autocomplete", h.Autocomplete)
}

func (h *SkillHandler) Extract(c fiber.Ctx) error {
	var req extractSkillsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.uc.ExtractSkills(c.Context(), usecase.ExtractSkillsInput{
		Text:       req.Text,
		Threshold:  req.Threshold,
		WithLevels: req.WithLevels,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SkillExtractionResponse{
		Skills:     res.Skills.AsMap(),
		Ranked:     res.Skills,
		Categories: res.Categories,
		Levels:     res.Levels,
	})
}

func (h *SkillHandler) MarketData(c fiber.Ctx) error {
	var req marketDataRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.uc.MarketData(c.Context(), req.Skills)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *SkillHandler) Autocomplete(c fiber.Ctx) error {
	items, err := h.uc.Autocomplete(c.Context(), c.Query("q"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSkillResponses(items))
}
