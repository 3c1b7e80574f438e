package recommendation

import "strings"

type clause struct {
	min  float64
	text string
}

var (
	skillClauses = []clause{
		{0.7, "Strong skill alignment with your current expertise"},
		{0.4, "Good foundation with some skill gaps to bridge"},
		{0, "Opportunity to learn new skills in a growing field"},
	}
	experienceClauses = []clause{
		{0.8, "Your experience level matches well with typical requirements"},
		{0.5, "Your experience provides a good starting point"},
	}
	demandClauses = []clause{
		{0.8, "High market demand with excellent job prospects"},
		{0.6, "Steady market demand with good opportunities"},
	}
	growthClauses = []clause{
		{0.15, "Excellent career growth potential"},
		{0.10, "Good career growth prospects"},
	}
)

// Reason assembles the explanation for a match, one clause per dimension
// whose threshold is met.
func Reason(m Match) string {
	parts := make([]string, 0, 4)
	// the skill clause has a zero floor so it is always present
	parts = appendClause(parts, skillClauses, max(m.SkillScore, 0))
	parts = appendClause(parts, experienceClauses, m.ExperienceScore)
	parts = appendClause(parts, demandClauses, m.DemandScore)
	parts = appendClause(parts, growthClauses, m.GrowthRate)
	return strings.Join(parts, ". ") + "."
}

func appendClause(parts []string, clauses []clause, v float64) []string {
	for _, c := range clauses {
		if v >= c.min {
			return append(parts, c.text)
		}
	}
	return parts
}
