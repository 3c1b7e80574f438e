package recommendation

import (
	"fmt"
	"strings"
	"time"

	"career-compass/internal/domain/trend"
)

const (
	TopSkillLimit       = 5
	TrendingSkillLimit  = 5
	RecentLimit         = 3
	adviceTrendingNames = 3
	expertProficiency   = 4
)

type TopSkill struct {
	Name        string   `json:"skill_name"`
	Proficiency int      `json:"proficiency_level"`
	Category    string   `json:"category"`
	TrendScore  *float64 `json:"trend_score"`
}

type TrendingSkill struct {
	Name        string  `json:"skill_name"`
	TrendScore  float64 `json:"trend_score"`
	DemandLevel string  `json:"demand_level"`
	SalaryTrend float64 `json:"salary_trend"`
}

type Recent struct {
	MatchScore  float64   `json:"match_score"`
	CareerTitle string    `json:"career_title"`
	Industry    string    `json:"industry"`
	CreatedAt   time.Time `json:"created_at"`
}

type Advice struct {
	SkillDevelopment []string `json:"skill_development"`
	CareerMoves      []string `json:"career_moves"`
	MarketAlignment  []string `json:"market_alignment"`
}

type Insights struct {
	TopSkills             []TopSkill      `json:"top_skills"`
	TrendingSkills        []TrendingSkill `json:"trending_skills"`
	RecentRecommendations []Recent        `json:"recent_recommendations"`
	Advice                Advice          `json:"recommendations"`
}

// BuildInsights derives the advice sections from already-fetched inputs.
// top is ordered by proficiency then trend score, trending holds unowned skills
// only and recent is newest first.
func BuildInsights(top []TopSkill, trending []TrendingSkill, recent []Recent) Insights {
	top = nonNil(top)
	trending = nonNil(trending)
	recent = nonNil(recent)
	return Insights{
		TopSkills:             top,
		TrendingSkills:        trending,
		RecentRecommendations: recent,
		Advice: Advice{
			SkillDevelopment: SkillDevelopmentAdvice(top, trending),
			CareerMoves:      CareerMoveAdvice(recent),
			MarketAlignment:  MarketAlignmentAdvice(top),
		},
	}
}

func SkillDevelopmentAdvice(top []TopSkill, trending []TrendingSkill) []string {
	out := make([]string, 0, 2)
	if len(trending) > 0 {
		names := make([]string, 0, adviceTrendingNames)
		for _, t := range trending[:min(len(trending), adviceTrendingNames)] {
			names = append(names, t.Name)
		}
		out = append(out, "Consider learning these trending skills: "+strings.Join(names, ", "))
	}

	expert := make([]string, 0)
	for _, s := range top {
		if s.Proficiency >= expertProficiency {
			expert = append(expert, s.Name)
		}
	}
	if len(expert) > 0 {
		out = append(out, fmt.Sprintf("Leverage your expertise in %s for senior roles", strings.Join(expert, ", ")))
	}
	return out
}

func CareerMoveAdvice(recent []Recent) []string {
	out := make([]string, 0, 1)
	if len(recent) == 0 {
		return out
	}
	top := recent[0]
	switch {
	case top.MatchScore >= 0.8:
		out = append(out, fmt.Sprintf("You're well-suited for %s - consider applying!", top.CareerTitle))
	case top.MatchScore >= 0.6:
		out = append(out, fmt.Sprintf("With some preparation, %s could be a great fit", top.CareerTitle))
	}
	return out
}

// MarketAlignmentAdvice reports the owned top skills that are themselves
// trending.
func MarketAlignmentAdvice(top []TopSkill) []string {
	aligned := make([]string, 0)
	for _, s := range top {
		if s.TrendScore != nil && *s.TrendScore > trend.TrendingThreshold {
			aligned = append(aligned, s.Name)
		}
	}
	if len(aligned) == 0 {
		return []string{"Consider developing skills in high-demand areas to improve market positioning"}
	}
	return []string{fmt.Sprintf("Your skills in %s are highly valued in the current market", strings.Join(aligned, ", "))}
}

func nonNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
