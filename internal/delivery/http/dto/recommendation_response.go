package dto

import (
	"time"

	"career-compass/internal/domain/learning"
	"career-compass/internal/domain/recommendation"

	"github.com/google/uuid"
)

type CareerMatchResponse struct {
	CareerID        uuid.UUID                `json:"career_id"`
	CareerTitle     string                   `json:"career_title"`
	Industry        string                   `json:"industry"`
	Description     string                   `json:"description"`
	MatchScore      float64                  `json:"match_score"`
	SkillScore      float64                  `json:"skill_score"`
	EducationScore  float64                  `json:"education_score"`
	ExperienceScore float64                  `json:"experience_score"`
	InterestScore   float64                  `json:"interest_score"`
	Breakdown       recommendation.Breakdown `json:"breakdown"`
	SkillGaps       []string                 `json:"skill_gaps"`
	SalaryRange     string                   `json:"salary_range"`
	GrowthRate      float64                  `json:"growth_rate"`
	DemandScore     float64                  `json:"demand_score"`
}

func NewCareerMatchResponse(m recommendation.Match) CareerMatchResponse {
	gaps := m.SkillGaps
	if gaps == nil {
		gaps = []string{}
	}
	return CareerMatchResponse{
		CareerID:        m.CareerID,
		CareerTitle:     m.CareerTitle,
		Industry:        m.Industry,
		Description:     m.Description,
		MatchScore:      m.MatchScore,
		SkillScore:      m.SkillScore,
		EducationScore:  m.EducationScore,
		ExperienceScore: m.ExperienceScore,
		InterestScore:   m.InterestScore,
		Breakdown:       m.Breakdown(),
		SkillGaps:       gaps,
		SalaryRange:     m.SalaryRange,
		GrowthRate:      m.GrowthRate,
		DemandScore:     m.DemandScore,
	}
}

func NewCareerMatchResponses(items []recommendation.Match) []CareerMatchResponse {
	out := make([]CareerMatchResponse, 0, len(items))
	for _, it := range items {
		out = append(out, NewCareerMatchResponse(it))
	}
	return out
}

type EnhancedRecommendationResponse struct {
	CareerMatchResponse
	Reasoning    string          `json:"reasoning"`
	LearningPath []learning.Step `json:"learning_path"`
}

func NewEnhancedRecommendationResponses(items []recommendation.Enhanced) []EnhancedRecommendationResponse {
	out := make([]EnhancedRecommendationResponse, 0, len(items))
	for _, it := range items {
		path := it.LearningPath
		if path == nil {
			path = []learning.Step{}
		}
		out = append(out, EnhancedRecommendationResponse{
			CareerMatchResponse: NewCareerMatchResponse(it.Match),
			Reasoning:           it.Reasoning,
			LearningPath:        path,
		})
	}
	return out
}

type StoredRecommendationResponse struct {
	ID              uuid.UUID       `json:"id"`
	CareerID        uuid.UUID       `json:"career_id"`
	CareerTitle     string          `json:"career_title"`
	Industry        string          `json:"industry"`
	MatchScore      float64         `json:"match_score"`
	SkillScore      float64         `json:"skill_score"`
	EducationScore  float64         `json:"education_score"`
	ExperienceScore float64         `json:"experience_score"`
	InterestScore   float64         `json:"interest_score"`
	Reasoning       string          `json:"reasoning"`
	SkillGaps       []string        `json:"skill_gaps"`
	LearningPath    []learning.Step `json:"learning_path"`
	CreatedAt       time.Time       `json:"created_at"`
}

func NewStoredRecommendationResponses(items []recommendation.Recommendation) []StoredRecommendationResponse {
	out := make([]StoredRecommendationResponse, 0, len(items))
	for _, r := range items {
		gaps := r.SkillGaps
		if gaps == nil {
			gaps = []string{}
		}
		path := r.LearningPath
		if path == nil {
			path = []learning.Step{}
		}
		out = append(out, StoredRecommendationResponse{
			ID:              r.ID,
			CareerID:        r.CareerID,
			CareerTitle:     r.CareerTitle,
			Industry:        r.Industry,
			MatchScore:      r.MatchScore,
			SkillScore:      r.SkillScore,
			EducationScore:  r.EducationScore,
			ExperienceScore: r.ExperienceScore,
			InterestScore:   r.InterestScore,
			Reasoning:       r.Reasoning,
			SkillGaps:       gaps,
			LearningPath:    path,
			CreatedAt:       r.CreatedAt,
		})
	}
	return out
}
