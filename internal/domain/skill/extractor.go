package skill

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"career-compass/internal/domain/vocabulary"
)

const (
	DefaultConfidenceThreshold = 0.6
	MaxExtractedSkills         = 25
	DefaultSuggestionLimit     = 5
	DefaultSkillLevel          = 3

	baseContextConfidence = 0.7
	indicatorBonus        = 0.1
	frequencyStep         = 0.1
	maxFrequencyBoost     = 0.3
	categoryKeywordBoost  = 0.05
	maxCategoryBoost      = 0.2

	confidenceWindow = 50
	levelWindow      = 100

	suggestionBase    = 0.6
	forwardSynergy    = 0.1
	reverseSynergy    = 0.15
	minSuggestionRank = 0.5
)

// SkillConfidence is one extracted skill.
type SkillConfidence struct {
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}

// Extraction is ordered by descending confidence.
type Extraction []SkillConfidence

func (e Extraction) AsMap() map[string]float64 {
	out := make(map[string]float64, len(e))
	for _, s := range e {
		out[s.Name] = s.Confidence
	}
	return out
}

func (e Extraction) Names() []string {
	out := make([]string, 0, len(e))
	for _, s := range e {
		out = append(out, s.Name)
	}
	return out
}

type Suggestion struct {
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Relevance float64 `json:"relevance"`
}

type MarketData struct {
	DemandLevel  string `json:"demand_level"`
	GrowthTrend  string `json:"growth_trend"`
	SalaryImpact string `json:"salary_impact"`
}

// Extractor scores skill mentions in free text against a vocabulary.
// It holds no mutable state and is safe for concurrent use.
type Extractor struct {
	vocab *vocabulary.Vocabulary
}

func NewExtractor(vocab *vocabulary.Vocabulary) *Extractor {
	return &Extractor{vocab: vocab}
}

func (e *Extractor) Vocabulary() *vocabulary.Vocabulary {
	return e.vocab
}

func (e *Extractor) ExtractSkills(text string, threshold float64) Extraction {
	if strings.TrimSpace(text) == "" {
		return Extraction{}
	}
	lower := strings.ToLower(text)

	out := make(Extraction, 0)
	for _, entry := range e.vocab.Entries() {
		matches := 0
		confidence := 0.0
		for _, variant := range entry.Variations {
			ms := findMentions(lower, variant)
			if len(ms) == 0 {
				continue
			}
			matches += len(ms)
			confidence += e.contextConfidence(lower, ms)
		}
		if matches == 0 {
			continue
		}

		frequency := math.Min(float64(matches)*frequencyStep, maxFrequencyBoost)
		score := math.Min(confidence+frequency+e.categoryBoost(lower, entry.Category), 1.0)
		if score < threshold {
			continue
		}
		out = append(out, SkillConfidence{
			Name:       vocabulary.DisplayName(entry.Name),
			Category:   entry.Category,
			Confidence: score,
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Confidence > out[j].Confidence })
	if len(out) > MaxExtractedSkills {
		out = out[:MaxExtractedSkills]
	}
	return out
}

func (e *Extractor) contextConfidence(lower string, ms []mention) float64 {
	c := baseContextConfidence
	for _, m := range ms {
		w := window(lower, m, confidenceWindow)
		for _, ind := range e.vocab.ProficiencyIndicators() {
			if strings.Contains(w, ind) {
				c += indicatorBonus
			}
		}
	}
	return math.Min(c, 1.0)
}

func (e *Extractor) categoryBoost(lower, category string) float64 {
	boost := 0.0
	for _, kw := range e.vocab.CategoryContext(category) {
		if strings.Contains(lower, kw) {
			boost += categoryKeywordBoost
		}
	}
	return math.Min(boost, maxCategoryBoost)
}

// ExtractSkillLevels estimates a 1-5 proficiency for each given skill. Every
// skill starts at DefaultSkillLevel; level phrases near a mention and explicit
// "N years ... skill" statements can only raise it.
func (e *Extractor) ExtractSkillLevels(text string, skills []string) map[string]int {
	out := make(map[string]int, len(skills))
	lower := strings.ToLower(text)

	for _, name := range skills {
		skill := vocabulary.Normalize(name)
		level := DefaultSkillLevel
		if skill == "" {
			out[name] = level
			continue
		}

		for _, m := range findMentions(lower, skill) {
			w := window(lower, m, levelWindow)
		levels:
			for _, li := range e.vocab.LevelIndicators() {
				for _, phrase := range li.Phrases {
					if strings.Contains(w, phrase) {
						if li.Level > level {
							level = li.Level
						}
						break levels
					}
				}
			}
		}

		if years, ok := yearsWith(lower, skill); ok {
			switch {
			case years >= 5:
				level = 5
			case years >= 3:
				level = max(level, 4)
			case years >= 1:
				level = max(level, 3)
			}
		}

		out[name] = level
	}
	return out
}

func yearsWith(lower, skill string) (int, bool) {
	re, err := regexp.Compile(`(\d+)\s*(?:years?|yrs?)\s*(?:of\s*)?(?:experience\s*)?(?:with\s*|in\s*|using\s*)?` + regexp.QuoteMeta(skill))
	if err != nil {
		return 0, false
	}
	m := re.FindStringSubmatch(lower)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// SuggestRelated ranks vocabulary skills that share a category with the current
// skills, boosted by the affinity table in both directions.
func (e *Extractor) SuggestRelated(current []string, limit int) []Suggestion {
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}

	owned := make(map[string]struct{}, len(current))
	for _, s := range current {
		if n := vocabulary.Normalize(s); n != "" {
			owned[n] = struct{}{}
		}
	}
	if len(owned) == 0 {
		return []Suggestion{}
	}

	touched := map[string]bool{}
	for s := range owned {
		if cat, ok := e.vocab.CategoryOf(s); ok {
			touched[cat] = true
		}
	}

	seen := map[string]bool{}
	out := make([]Suggestion, 0)
	for _, cat := range e.vocab.Categories() {
		if !touched[cat.Name] {
			continue
		}
		for _, candidate := range cat.Skills {
			if _, ok := owned[candidate]; ok || seen[candidate] {
				continue
			}
			seen[candidate] = true

			relevance := suggestionBase
			for _, a := range e.vocab.Affinities(candidate) {
				if _, ok := owned[a]; ok {
					relevance += forwardSynergy
				}
			}
			for s := range owned {
				for _, a := range e.vocab.Affinities(s) {
					if a == candidate {
						relevance += reverseSynergy
						break
					}
				}
			}
			relevance = math.Min(relevance, 1.0)
			if relevance <= minSuggestionRank {
				continue
			}
			out = append(out, Suggestion{Name: vocabulary.DisplayName(candidate), Category: cat.Name, Relevance: relevance})
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Relevance > out[j].Relevance })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Categorize groups skills by vocabulary category; anything unknown lands in "other".
func (e *Extractor) Categorize(skills []string) map[string][]string {
	out := map[string][]string{}
	for _, s := range skills {
		cat, ok := e.vocab.CategoryOf(s)
		if !ok {
			cat = "other"
		}
		out[cat] = append(out[cat], s)
	}
	return out
}

func (e *Extractor) MarketData(skills []string) map[string]MarketData {
	out := make(map[string]MarketData, len(skills))
	for _, s := range skills {
		switch e.vocab.DemandTier(s) {
		case "High":
			out[s] = MarketData{DemandLevel: "High", GrowthTrend: "Growing", SalaryImpact: "Positive"}
		case "Medium":
			out[s] = MarketData{DemandLevel: "Medium", GrowthTrend: "Stable", SalaryImpact: "Positive"}
		default:
			out[s] = MarketData{DemandLevel: "Low", GrowthTrend: "Stable", SalaryImpact: "Neutral"}
		}
	}
	return out
}
