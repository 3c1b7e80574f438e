package dto

import (
	"career-compass/internal/domain/resume"
	"career-compass/internal/domain/skill"
)

type ResumeUploadResponse struct {
	Resume            resume.Parsed       `json:"resume"`
	CompletenessScore int                 `json:"completeness_score"`
	ExperienceYears   float64             `json:"experience_years"`
	ExtractedSkills   skill.Extraction    `json:"extracted_skills"`
	Skills            []UserSkillResponse `json:"skills"`
}
