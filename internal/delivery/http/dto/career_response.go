package dto

import (
	"career-compass/internal/domain/career"

	"github.com/google/uuid"
)

type RequiredSkillResponse struct {
	SkillID             uuid.UUID `json:"skill_id"`
	SkillName           string    `json:"skill_name"`
	ImportanceLevel     int       `json:"importance_level"`
	RequiredProficiency int       `json:"required_proficiency"`
}

type CareerResponse struct {
	ID                 uuid.UUID               `json:"id"`
	Title              string                  `json:"career_title"`
	Industry           string                  `json:"industry"`
	Description        string                  `json:"description"`
	SalaryMin          int                     `json:"avg_salary_min"`
	SalaryMax          int                     `json:"avg_salary_max"`
	SalaryRange        string                  `json:"salary_range"`
	GrowthRate         float64                 `json:"growth_rate"`
	RequiredEducation  string                  `json:"required_education"`
	RequiredExperience string                  `json:"required_experience"`
	DemandScore        float64                 `json:"demand_score"`
	IsActive           bool                    `json:"is_active"`
	RequiredSkills     []RequiredSkillResponse `json:"required_skills"`
}

func NewCareerResponse(c career.Career) CareerResponse {
	skills := make([]RequiredSkillResponse, 0, len(c.Skills))
	for _, s := range c.Skills {
		skills = append(skills, RequiredSkillResponse{
			SkillID:             s.SkillID,
			SkillName:           s.SkillName,
			ImportanceLevel:     s.ImportanceLevel,
			RequiredProficiency: s.RequiredProficiency,
		})
	}
	return CareerResponse{
		ID:                 c.ID,
		Title:              c.Title,
		Industry:           c.Industry,
		Description:        c.Description,
		SalaryMin:          c.SalaryMin,
		SalaryMax:          c.SalaryMax,
		SalaryRange:        c.SalaryRange(),
		GrowthRate:         c.GrowthRate,
		RequiredEducation:  c.RequiredEducation,
		RequiredExperience: c.RequiredExperience,
		DemandScore:        c.DemandScore,
		IsActive:           c.IsActive,
		RequiredSkills:     skills,
	}
}

type CareerComparisonResponse struct {
	CareerResponse
	MatchScore *float64 `json:"match_score"`
}
