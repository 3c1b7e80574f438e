package dto

import (
	"time"

	"career-compass/internal/domain/skill"

	"github.com/google/uuid"
)

type UserSkillResponse struct {
	ID               uuid.UUID `json:"id"`
	SkillID          uuid.UUID `json:"skill_id"`
	SkillName        string    `json:"skill_name"`
	Category         string    `json:"category"`
	ProficiencyLevel int       `json:"proficiency_level"`
	Source           string    `json:"source"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func NewUserSkillResponse(us skill.UserSkill) UserSkillResponse {
	return UserSkillResponse{
		ID:               us.ID,
		SkillID:          us.SkillID,
		SkillName:        us.SkillName,
		Category:         us.Category,
		ProficiencyLevel: us.ProficiencyLevel,
		Source:           us.Source,
		UpdatedAt:        us.UpdatedAt,
	}
}

func NewUserSkillResponses(items []skill.UserSkill) []UserSkillResponse {
	out := make([]UserSkillResponse, 0, len(items))
	for _, it := range items {
		out = append(out, NewUserSkillResponse(it))
	}
	return out
}

type SkillResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	ImportanceScore float64   `json:"importance_score"`
}

func NewSkillResponses(items []skill.Skill) []SkillResponse {
	out := make([]SkillResponse, 0, len(items))
	for _, it := range items {
		out = append(out, SkillResponse{
			ID:              it.ID,
			Name:            it.Name,
			Category:        it.Category,
			ImportanceScore: it.ImportanceScore,
		})
	}
	return out
}

// SkillExtractionResponse keeps the confidence map shape callers expect
// alongside the ordered list.
type SkillExtractionResponse struct {
	Skills     map[string]float64  `json:"skills"`
	Ranked     skill.Extraction    `json:"ranked"`
	Categories map[string][]string `json:"categories"`
	Levels     map[string]int      `json:"levels,omitempty"`
}
