package handler

import (
	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AssessmentHandler struct {
	uc usecase.AssessmentUsecase
}

type submitAssessmentRequest struct {
	Interests        []string          `json:"interests" validate:"max=20,dive,required,max=50"`
	WorkStyle        map[string]string `json:"work_style" validate:"max=20,dive,keys,required,max=50,endkeys,max=200"`
	CareerGoals      string            `json:"career_goals" validate:"max=2000"`
	RiskTolerance    int               `json:"risk_tolerance" validate:"required,min=1,max=5"`
	WorkLifeBalance  int               `json:"work_life_balance" validate:"required,min=1,max=5"`
	SalaryImportance int               `json:"salary_importance" validate:"required,min=1,max=5"`
}

func NewAssessmentHandler(uc usecase.AssessmentUsecase) *AssessmentHandler {
	return &AssessmentHandler{uc: uc}
}

func (h *AssessmentHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/me/assessments", h.Submit)
	r.Get("/me/assessments/latest", h.Latest)
}

func (h *AssessmentHandler) Submit(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req submitAssessmentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	saved, err := h.uc.Submit(c.Context(), userID, usecase.SubmitAssessmentInput{
		Interests:        req.Interests,
		WorkStyle:        req.WorkStyle,
		CareerGoals:      req.CareerGoals,
		RiskTolerance:    req.RiskTolerance,
		WorkLifeBalance:  req.WorkLifeBalance,
		SalaryImportance: req.SalaryImportance,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.NewAssessmentResponse(saved))
}

func (h *AssessmentHandler) Latest(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	a, ok, err := h.uc.Latest(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	if !ok {
		return middleware.NewAppError(fiber.StatusNotFound, "No assessment submitted", nil, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewAssessmentResponse(a))
}
