package career

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type RequiredSkill struct {
	SkillID             uuid.UUID
	SkillName           string
	ImportanceLevel     int
	RequiredProficiency int
}

type Career struct {
	ID                 uuid.UUID
	Title              string
	Industry           string
	Description        string
	SalaryMin          int
	SalaryMax          int
	GrowthRate         float64
	RequiredEducation  string
	RequiredExperience string
	DemandScore        float64
	IsActive           bool
	Skills             []RequiredSkill
	CreatedAt          time.Time
}

func (c Career) SkillNames() []string {
	out := make([]string, 0, len(c.Skills))
	for _, s := range c.Skills {
		out = append(out, s.SkillName)
	}
	return out
}

func (c Career) SalaryMidpoint() float64 {
	return float64(c.SalaryMin+c.SalaryMax) / 2
}

// SalaryRange renders "$min - $max" with thousands separators.
func (c Career) SalaryRange() string {
	return fmt.Sprintf("$%s - $%s", thousands(c.SalaryMin), thousands(c.SalaryMax))
}

// IndustryStats aggregates every career of one industry.
type IndustryStats struct {
	Industry             string
	CareerCount          int
	AverageSalary        float64
	AverageGrowthRate    float64
	TotalRecommendations int
	TopCareers           []IndustryCareer
}

// IndustryCareer is one of an industry's most in-demand careers.
type IndustryCareer struct {
	ID                  uuid.UUID
	Title               string
	DemandScore         float64
	RecommendationCount int
}

func thousands(v int) string {
	s := fmt.Sprintf("%d", v)
	neg := false
	if v < 0 {
		neg = true
		s = s[1:]
	}
	out := make([]byte, 0, len(s)+len(s)/3)
	for i := range len(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}
