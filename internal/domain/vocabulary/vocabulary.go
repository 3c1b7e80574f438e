// Package vocabulary holds the controlled skill vocabulary and the lookup tables
// derived from it: name variations, category context words, level indicators,
// skill affinities, learning resources and static market trends.
//
// The tables are data, not code. The embedded default.yaml is used unless a
// replacement document is supplied through Load.
package vocabulary

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultDocument []byte

var ErrInvalidDocument = errors.New("invalid vocabulary document")

type Category struct {
	Name    string   `yaml:"name"`
	Context []string `yaml:"context"`
	Skills  []string `yaml:"skills"`
}

type LevelIndicator struct {
	Level   int      `yaml:"level"`
	Phrases []string `yaml:"phrases"`
}

type Resource struct {
	Skill string     `yaml:"skill"`
	Tiers [][]string `yaml:"tiers"`
}

type Trend struct {
	Skill       string  `yaml:"skill" json:"skill"`
	TrendScore  float64 `yaml:"trend_score" json:"trend_score"`
	DemandLevel string  `yaml:"demand_level" json:"demand_level"`
	SalaryTrend float64 `yaml:"salary_trend" json:"salary_trend"`
}

type CatalogDefaults struct {
	KnownWeight     float64 `yaml:"known_weight"`
	UnknownCategory string  `yaml:"unknown_category"`
	UnknownWeight   float64 `yaml:"unknown_weight"`
}

type MarketDemand struct {
	High   []string `yaml:"high"`
	Medium []string `yaml:"medium"`
}

// Document is the on-disk shape of a vocabulary file.
type Document struct {
	Categories            []Category          `yaml:"categories"`
	Abbreviations         map[string][]string `yaml:"abbreviations"`
	ProficiencyIndicators []string            `yaml:"proficiency_indicators"`
	LevelIndicators       []LevelIndicator    `yaml:"level_indicators"`
	Affinities            map[string][]string `yaml:"affinities"`
	Resources             []Resource          `yaml:"resources"`
	MarketDemand          MarketDemand        `yaml:"market_demand"`
	Trends                []Trend             `yaml:"trends"`
	DefaultTrend          Trend               `yaml:"default_trend"`
	CatalogDefaults       CatalogDefaults     `yaml:"catalog_defaults"`
}

// Entry is one vocabulary skill with its precomputed match variations.
type Entry struct {
	Name       string
	Category   string
	Variations []string
}

// SkillLookup is the result of resolving a skill name against the vocabulary.
// Known is false for names outside the vocabulary; Category and Weight then carry
// the unknown-skill defaults.
type SkillLookup struct {
	Name     string
	Category string
	Weight   float64
	Known    bool
}

type Vocabulary struct {
	categories []Category
	entries    []Entry
	byName     map[string]int
	context    map[string][]string
	indicators []string
	levels     []LevelIndicator
	affinities map[string][]string
	resources  map[string][][]string
	high       []string
	medium     []string
	trends     []Trend
	trendIndex map[string]Trend
	defTrend   Trend
	defaults   CatalogDefaults
}

func Default() (*Vocabulary, error) {
	return Parse(defaultDocument)
}

// MustDefault panics if the embedded document is broken; it is meant for tests
// and package-level wiring.
func MustDefault() *Vocabulary {
	v, err := Default()
	if err != nil {
		panic(err)
	}
	return v
}

// Load reads a vocabulary document from path, or the embedded default when path
// is empty.
func Load(path string) (*Vocabulary, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Default()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary %s: %w", path, err)
	}
	return Parse(b)
}

func Parse(data []byte) (*Vocabulary, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return New(doc)
}

func New(doc Document) (*Vocabulary, error) {
	if len(doc.Categories) == 0 {
		return nil, fmt.Errorf("%w: no categories", ErrInvalidDocument)
	}

	v := &Vocabulary{
		byName:     map[string]int{},
		context:    map[string][]string{},
		affinities: map[string][]string{},
		resources:  map[string][][]string{},
		trendIndex: map[string]Trend{},
		defTrend:   doc.DefaultTrend,
		defaults:   doc.CatalogDefaults,
	}

	for _, c := range doc.Categories {
		name := Normalize(c.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: category without name", ErrInvalidDocument)
		}
		cat := Category{Name: name, Context: normalizeAll(c.Context)}
		for _, s := range c.Skills {
			s = Normalize(s)
			if s == "" {
				continue
			}
			cat.Skills = append(cat.Skills, s)
			if _, dup := v.byName[s]; dup {
				continue
			}
			v.byName[s] = len(v.entries)
			v.entries = append(v.entries, Entry{
				Name:       s,
				Category:   name,
				Variations: variations(s, normalizeAll(doc.Abbreviations[s])),
			})
		}
		v.categories = append(v.categories, cat)
		v.context[name] = cat.Context
	}

	v.indicators = normalizeAll(doc.ProficiencyIndicators)

	for _, li := range doc.LevelIndicators {
		if li.Level < 1 || li.Level > 5 {
			return nil, fmt.Errorf("%w: level %d out of range", ErrInvalidDocument, li.Level)
		}
		v.levels = append(v.levels, LevelIndicator{Level: li.Level, Phrases: normalizeAll(li.Phrases)})
	}
	sort.SliceStable(v.levels, func(i, j int) bool { return v.levels[i].Level > v.levels[j].Level })

	for k, list := range doc.Affinities {
		v.affinities[Normalize(k)] = normalizeAll(list)
	}

	for _, r := range doc.Resources {
		if len(r.Tiers) == 0 {
			continue
		}
		v.resources[Normalize(r.Skill)] = r.Tiers
	}

	v.high = normalizeAll(doc.MarketDemand.High)
	v.medium = normalizeAll(doc.MarketDemand.Medium)

	for _, t := range doc.Trends {
		v.trends = append(v.trends, t)
		v.trendIndex[Normalize(t.Skill)] = t
	}

	return v, nil
}

func (v *Vocabulary) Entries() []Entry {
	return v.entries
}

func (v *Vocabulary) Categories() []Category {
	return v.categories
}

// CategoryOf reports the vocabulary category of a skill name.
func (v *Vocabulary) CategoryOf(name string) (string, bool) {
	i, ok := v.byName[Normalize(name)]
	if !ok {
		return "", false
	}
	return v.entries[i].Category, true
}

func (v *Vocabulary) CategoryContext(category string) []string {
	return v.context[Normalize(category)]
}

func (v *Vocabulary) ProficiencyIndicators() []string {
	return v.indicators
}

// LevelIndicators are ordered from the highest level down.
func (v *Vocabulary) LevelIndicators() []LevelIndicator {
	return v.levels
}

func (v *Vocabulary) Affinities(name string) []string {
	return v.affinities[Normalize(name)]
}

// Resources returns the learning resources for a skill at a gap tier (1-3).
func (v *Vocabulary) Resources(skill string, tier int) ([]string, bool) {
	tiers, ok := v.resources[Normalize(skill)]
	if !ok || tier < 1 {
		return nil, false
	}
	if tier > len(tiers) {
		tier = len(tiers)
	}
	out := make([]string, len(tiers[tier-1]))
	copy(out, tiers[tier-1])
	return out, true
}

// DemandTier classifies a skill as High, Medium or Low by substring match against
// the demand lists.
func (v *Vocabulary) DemandTier(skill string) string {
	s := Normalize(skill)
	for _, h := range v.high {
		if strings.Contains(s, h) {
			return "High"
		}
	}
	for _, m := range v.medium {
		if strings.Contains(s, m) {
			return "Medium"
		}
	}
	return "Low"
}

// TrendFor returns the static trend for a skill, or the default trend.
func (v *Vocabulary) TrendFor(skill string) Trend {
	if t, ok := v.trendIndex[Normalize(skill)]; ok {
		return t
	}
	t := v.defTrend
	t.Skill = DisplayName(skill)
	return t
}

func (v *Vocabulary) Trends() []Trend {
	return v.trends
}

func (v *Vocabulary) Lookup(name string) SkillLookup {
	if cat, ok := v.CategoryOf(name); ok {
		return SkillLookup{Name: DisplayName(name), Category: cat, Weight: v.defaults.KnownWeight, Known: true}
	}
	return SkillLookup{
		Name:     DisplayName(name),
		Category: v.defaults.UnknownCategory,
		Weight:   v.defaults.UnknownWeight,
		Known:    false,
	}
}

func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// DisplayName renders a skill name in title case: the first letter after any
// non-letter is upper-cased, every other letter lower-cased ("node.js" becomes
// "Node.Js", "ui/ux design" becomes "Ui/Ux Design").
func DisplayName(s string) string {
	s = strings.TrimSpace(s)
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}
	return b.String()
}

func variations(name string, abbrevs []string) []string {
	out := []string{name}
	if strings.Contains(name, " ") {
		out = append(out,
			strings.ReplaceAll(name, " ", "-"),
			strings.ReplaceAll(name, " ", "_"),
			strings.ReplaceAll(name, " ", ""),
		)
	}
	out = append(out, abbrevs...)

	seen := make(map[string]struct{}, len(out))
	uniq := out[:0]
	for _, s := range out {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		uniq = append(uniq, s)
	}
	return uniq
}

func normalizeAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = Normalize(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
