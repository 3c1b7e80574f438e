package assessment

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Assessment is one questionnaire submission. The newest one per user is
// the one scoring reads.
type Assessment struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Interests        []string
	WorkStyle        map[string]string
	CareerGoals      string
	RiskTolerance    int
	WorkLifeBalance  int
	SalaryImportance int
	CreatedAt        time.Time
}

func ValidRating(v int) bool {
	return v >= MinRating && v <= MaxRating
}
