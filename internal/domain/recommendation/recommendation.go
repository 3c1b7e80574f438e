package recommendation

import (
	"time"

	"career-compass/internal/domain/learning"
	"career-compass/internal/domain/matching"

	"github.com/google/uuid"
)

// Recommendation is one persisted (user, career) result. A user's set is only
// ever replaced as a whole.
type Recommendation struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	CareerID        uuid.UUID
	CareerTitle     string
	Industry        string
	MatchScore      float64
	SkillScore      float64
	EducationScore  float64
	ExperienceScore float64
	InterestScore   float64
	Reasoning       string
	SkillGaps       []string
	LearningPath    []learning.Step
	CreatedAt       time.Time
}

// Match is a scored career before it is persisted.
type Match struct {
	matching.Result
	CareerTitle string
	Industry    string
	Description string
	SalaryRange string
	GrowthRate  float64
}

func (m Match) Breakdown() Breakdown {
	return Breakdown{
		SkillMatch:      m.SkillScore,
		EducationMatch:  m.EducationScore,
		ExperienceMatch: m.ExperienceScore,
		InterestMatch:   m.InterestScore,
	}
}

type Breakdown struct {
	SkillMatch      float64 `json:"skill_match"`
	EducationMatch  float64 `json:"education_match"`
	ExperienceMatch float64 `json:"experience_match"`
	InterestMatch   float64 `json:"interest_match"`
}

// Enhanced is a match with its explanation and study plan attached.
type Enhanced struct {
	Match
	Reasoning    string
	LearningPath []learning.Step
}

func (e Enhanced) Record(userID uuid.UUID) Recommendation {
	return Recommendation{
		ID:              uuid.New(),
		UserID:          userID,
		CareerID:        e.CareerID,
		CareerTitle:     e.CareerTitle,
		Industry:        e.Industry,
		MatchScore:      e.MatchScore,
		SkillScore:      e.SkillScore,
		EducationScore:  e.EducationScore,
		ExperienceScore: e.ExperienceScore,
		InterestScore:   e.InterestScore,
		Reasoning:       e.Reasoning,
		SkillGaps:       e.SkillGaps,
		LearningPath:    e.LearningPath,
	}
}
