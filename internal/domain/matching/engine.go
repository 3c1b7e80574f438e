package matching

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"career-compass/internal/domain/career"

	"github.com/google/uuid"
)

const (
	DefaultLimit = 10

	weightSkill      = 0.4
	weightEducation  = 0.2
	weightExperience = 0.2
	weightInterest   = 0.1
	weightDemand     = 0.1

	neutralExperience = 0.7
	defaultInterest   = 0.7
	boostedInterest   = 0.9
)

var educationRank = map[string]int{
	"high school": 1,
	"diploma":     2,
	"associate":   3,
	"bachelor":    4,
	"master":      5,
	"phd":         6,
}

var experienceRangeRe = regexp.MustCompile(`(?i)^\s*(\d+)\s*[-–]\s*(\d+)\s*(?:years?|yrs?)?\s*$`)

type UserSkill struct {
	Name        string
	Proficiency int
}

// Profile is the user side of a match.
type Profile struct {
	Skills          []UserSkill
	EducationLevel  string
	YearsExperience int
	Interests       []string
}

type Result struct {
	CareerID        uuid.UUID
	SkillScore      float64
	EducationScore  float64
	ExperienceScore float64
	InterestScore   float64
	DemandScore     float64
	MatchScore      float64
	SkillGaps       []string
}

// Score computes every component for one career. The overall score is
// 0.4 skill + 0.2 education + 0.2 experience + 0.1 interest + 0.1 demand,
// rounded to three decimals.
func Score(p Profile, c career.Career) Result {
	required := c.SkillNames()
	owned := make([]string, 0, len(p.Skills))
	for _, s := range p.Skills {
		owned = append(owned, s.Name)
	}

	demand := clampFloat(c.DemandScore, 0, 1)
	r := Result{
		CareerID:        c.ID,
		SkillScore:      SkillScore(owned, required),
		EducationScore:  EducationScore(p.EducationLevel, c.RequiredEducation),
		ExperienceScore: ExperienceScore(p.YearsExperience, c.RequiredExperience),
		InterestScore:   InterestScore(p.Interests, c.Description),
		DemandScore:     demand,
		SkillGaps:       SkillGaps(owned, required),
	}

	overall := weightSkill*r.SkillScore +
		weightEducation*r.EducationScore +
		weightExperience*r.ExperienceScore +
		weightInterest*r.InterestScore +
		weightDemand*r.DemandScore
	r.MatchScore = round3(clampFloat(overall, 0, 1))
	return r
}

// Rank scores every career and returns the best limit results. Equal scores
// keep the input order.
func Rank(p Profile, careers []career.Career, limit int) []Result {
	if limit <= 0 {
		limit = DefaultLimit
	}

	out := make([]Result, 0, len(careers))
	for _, c := range careers {
		out = append(out, Score(p, c))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchScore > out[j].MatchScore
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// SkillScore is the Jaccard similarity of the two name sets, compared
// case-insensitively.
func SkillScore(user, required []string) float64 {
	a := nameSet(user)
	b := nameSet(required)
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	inter := 0
	for k := range a {
		if _, ok := b[k]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}

// SkillGaps lists required skills the user does not hold, in requirement order.
func SkillGaps(user, required []string) []string {
	owned := nameSet(user)
	out := make([]string, 0)
	seen := map[string]struct{}{}
	for _, r := range required {
		k := normalize(r)
		if k == "" {
			continue
		}
		if _, ok := owned[k]; ok {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, r)
	}
	return out
}

func EducationLevelRank(level string) int {
	return educationRank[normalize(level)]
}

func EducationScore(user, required string) float64 {
	u := EducationLevelRank(user)
	r := EducationLevelRank(required)
	switch {
	case u >= r:
		return 1.0
	case u == r-1:
		return 0.8
	default:
		return 0.5
	}
}

// ParseExperienceRange reads "min-max years" strings such as "2-4 years".
func ParseExperienceRange(s string) (minYears, maxYears int, ok bool) {
	m := experienceRangeRe.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	minYears, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, false
	}
	if maxYears, err = strconv.Atoi(m[2]); err != nil {
		return 0, 0, false
	}
	return minYears, maxYears, true
}

func ExperienceScore(years int, required string) float64 {
	minYears, _, ok := ParseExperienceRange(required)
	if !ok {
		return neutralExperience
	}
	switch {
	case years >= minYears:
		return 1.0
	case years >= minYears-1:
		return 0.8
	default:
		return 0.5
	}
}

func InterestScore(interests []string, description string) float64 {
	if len(interests) == 0 {
		return defaultInterest
	}

	words := map[string]struct{}{}
	for _, w := range strings.Fields(strings.ToLower(description)) {
		w = strings.TrimFunc(w, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if w != "" {
			words[w] = struct{}{}
		}
	}
	for _, in := range interests {
		if _, ok := words[normalize(in)]; ok {
			return boostedInterest
		}
	}
	return defaultInterest
}

func nameSet(names []string) map[string]struct{} {
	out := make(map[string]struct{}, len(names))
	for _, n := range names {
		if k := normalize(n); k != "" {
			out[k] = struct{}{}
		}
	}
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func clampFloat(v, minV, maxV float64) float64 {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
