package dto

import (
	"career-compass/internal/usecase"

	"github.com/google/uuid"
)

type IndustryCareerResponse struct {
	ID                  uuid.UUID `json:"id"`
	Title               string    `json:"career_title"`
	DemandScore         float64   `json:"demand_score"`
	RecommendationCount int       `json:"recommendation_count"`
}

type IndustryInsightsResponse struct {
	Industry             string                   `json:"industry"`
	CareerCount          int                      `json:"career_count"`
	AverageSalary        float64                  `json:"average_salary"`
	AverageGrowthRate    float64                  `json:"average_growth_rate"`
	TotalRecommendations int                      `json:"total_recommendations"`
	TopCareers           []IndustryCareerResponse `json:"top_careers"`
}

func NewIndustryInsightsResponse(in usecase.IndustryInsights) IndustryInsightsResponse {
	top := make([]IndustryCareerResponse, 0, len(in.TopCareers))
	for _, c := range in.TopCareers {
		top = append(top, IndustryCareerResponse{
			ID:                  c.ID,
			Title:               c.Title,
			DemandScore:         c.DemandScore,
			RecommendationCount: c.RecommendationCount,
		})
	}
	return IndustryInsightsResponse{
		Industry:             in.Industry,
		CareerCount:          in.CareerCount,
		AverageSalary:        in.AverageSalary,
		AverageGrowthRate:    in.AverageGrowthRate,
		TotalRecommendations: in.TotalRecommendations,
		TopCareers:           top,
	}
}
