package skill

import (
	"time"

	"github.com/google/uuid"
)

const (
	SourceResume = "Resume"
	SourceManual = "Manual"
)

const (
	MinProficiency = 1
	MaxProficiency = 5
)

// Skill is a catalog entry.
type Skill struct {
	ID              uuid.UUID
	Name            string
	Category        string
	ImportanceScore float64
	CreatedAt       time.Time
}

type UserSkill struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	SkillID          uuid.UUID
	SkillName        string
	Category         string
	ProficiencyLevel int
	Source           string
	UpdatedAt        time.Time
}

func ClampProficiency(v int) int {
	if v < MinProficiency {
		return MinProficiency
	}
	if v > MaxProficiency {
		return MaxProficiency
	}
	return v
}
