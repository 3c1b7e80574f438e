package dto

import (
	"time"

	"career-compass/internal/domain/assessment"

	"github.com/google/uuid"
)

type AssessmentResponse struct {
	ID               uuid.UUID         `json:"id"`
	Interests        []string          `json:"interests"`
	WorkStyle        map[string]string `json:"work_style"`
	CareerGoals      string            `json:"career_goals"`
	RiskTolerance    int               `json:"risk_tolerance"`
	WorkLifeBalance  int               `json:"work_life_balance"`
	SalaryImportance int               `json:"salary_importance"`
	CreatedAt        time.Time         `json:"created_at"`
}

func NewAssessmentResponse(a assessment.Assessment) AssessmentResponse {
	interests := a.Interests
	if interests == nil {
		interests = []string{}
	}
	ws := a.WorkStyle
	if ws == nil {
		ws = map[string]string{}
	}
	return AssessmentResponse{
		ID:               a.ID,
		Interests:        interests,
		WorkStyle:        ws,
		CareerGoals:      a.CareerGoals,
		RiskTolerance:    a.RiskTolerance,
		WorkLifeBalance:  a.WorkLifeBalance,
		SalaryImportance: a.SalaryImportance,
		CreatedAt:        a.CreatedAt,
	}
}
