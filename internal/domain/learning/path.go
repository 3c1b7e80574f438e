// Package learning turns the distance between a user's skills and a career's
// requirements into an ordered study plan.
package learning

import (
	"sort"
	"strings"

	"career-compass/internal/domain/career"
	"career-compass/internal/domain/vocabulary"
)

const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"

	maxTier = 3
)

type Step struct {
	Skill         string   `json:"skill"`
	CurrentLevel  int      `json:"current_level"`
	RequiredLevel int      `json:"required_level"`
	Gap           int      `json:"gap"`
	Importance    int      `json:"importance"`
	Priority      string   `json:"priority"`
	Resources     []string `json:"recommended_resources"`
}

type Generator struct {
	vocab *vocabulary.Vocabulary
}

func NewGenerator(vocab *vocabulary.Vocabulary) *Generator {
	return &Generator{vocab: vocab}
}

// Generate emits one step for every required skill the user holds below the
// required proficiency, most important first. current maps skill names, in
// any case, to the user's proficiency.
func (g *Generator) Generate(current map[string]int, required []career.RequiredSkill) []Step {
	levels := make(map[string]int, len(current))
	for name, lvl := range current {
		levels[vocabulary.Normalize(name)] = lvl
	}

	reqs := make([]career.RequiredSkill, len(required))
	copy(reqs, required)
	sort.SliceStable(reqs, func(i, j int) bool {
		return reqs[i].ImportanceLevel > reqs[j].ImportanceLevel
	})

	out := make([]Step, 0)
	for _, r := range reqs {
		have := levels[vocabulary.Normalize(r.SkillName)]
		if have >= r.RequiredProficiency {
			continue
		}
		gap := r.RequiredProficiency - have
		out = append(out, Step{
			Skill:         r.SkillName,
			CurrentLevel:  have,
			RequiredLevel: r.RequiredProficiency,
			Gap:           gap,
			Importance:    r.ImportanceLevel,
			Priority:      Priority(r.ImportanceLevel),
			Resources:     g.Resources(r.SkillName, gap),
		})
	}
	return out
}

func Priority(importance int) string {
	switch {
	case importance >= 4:
		return PriorityHigh
	case importance >= 3:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// Resources looks up study material for a gap, capped at tier 3. Skills
// without curated material get generic titles.
func (g *Generator) Resources(skill string, gap int) []string {
	tier := min(max(gap, 1), maxTier)
	if g != nil && g.vocab != nil {
		if res, ok := g.vocab.Resources(skill, tier); ok {
			return res
		}
	}

	name := strings.TrimSpace(skill)
	switch tier {
	case 1:
		return []string{"Introduction to " + name}
	case 2:
		return []string{"Intermediate " + name}
	default:
		return []string{"Advanced " + name}
	}
}
