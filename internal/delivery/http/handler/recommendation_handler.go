package handler

import (
	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/domain/learning"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type RecommendationHandler struct {
	uc      usecase.RecommendationUsecase
	careers usecase.CareerUsecase
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase, careers usecase.CareerUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc, careers: careers}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/me/career-matches", h.CareerMatches)
	r.Post("/me/recommendations", h.Generate)
	r.Get("/me/recommendations", h.List)
	r.Get("/me/careers/compare", h.Compare)
	r.Get("/me/careers/:career_id/learning-path", h.LearningPath)
}

func (h *RecommendationHandler) CareerMatches(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	items, err := h.uc.PredictCareerMatches(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCareerMatchResponses(items))
}

func (h *RecommendationHandler) Generate(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	items, err := h.uc.GenerateRecommendations(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewEnhancedRecommendationResponses(items))
}

func (h *RecommendationHandler) List(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	items, err := h.uc.ListRecommendations(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewStoredRecommendationResponses(items))
}

func (h *RecommendationHandler) LearningPath(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	careerID, err := parseUUIDParam(c, "career_id")
	if err != nil {
		return err
	}

	steps, err := h.uc.GenerateLearningPath(c.Context(), userID, careerID)
	if err != nil {
		return mapUsecaseError(err)
	}
	if steps == nil {
		steps = []learning.Step{}
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, steps)
}

func (h *RecommendationHandler) Compare(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	raw := parseCSVQuery(c.Query("ids"))
	if len(raw) < usecase.MinCompareCareers || len(raw) > usecase.MaxCompareCareers {
		return middleware.NewAppError(fiber.StatusBadRequest, "Provide between 2 and 5 career ids", nil, nil)
	}
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid career id", nil, err)
		}
		ids = append(ids, id)
	}

	items, err := h.careers.CompareCareers(c.Context(), userID, ids)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]dto.CareerComparisonResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.CareerComparisonResponse{
			CareerResponse: dto.NewCareerResponse(it.Career),
			MatchScore:     it.MatchScore,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
