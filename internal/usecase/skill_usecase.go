package usecase

import (
	"context"
	"strings"

	"career-compass/internal/domain/skill"
	"career-compass/internal/domain/vocabulary"
	"career-compass/internal/repository"
)

const DefaultConfidenceThreshold = 0.6

type ExtractSkillsInput struct {
	Text       string
	Threshold  float64
	WithLevels bool
}

type SkillExtraction struct {
	Skills     skill.Extraction    `json:"skills"`
	Categories map[string][]string `json:"categories"`
	Levels     map[string]int      `json:"levels,omitempty"`
}

type SkillUsecase interface {
	ExtractSkills(ctx context.Context, in ExtractSkillsInput) (SkillExtraction, error)
	MarketData(ctx context.Context, skills []string) (map[string]skill.MarketData, error)
	Autocomplete(ctx context.Context, q string) ([]skill.Skill, error)
}

type Skill struct {
	repo      repository.SkillRepository
	extractor *skill.Extractor
}

func NewSkillUsecase(repo repository.SkillRepository, extractor *skill.Extractor) *Skill {
	return &Skill{repo: repo, extractor: extractor}
}

func (u *Skill) ExtractSkills(ctx context.Context, in ExtractSkillsInput) (SkillExtraction, error) {
	threshold := in.Threshold
	if threshold == 0 {
		threshold = DefaultConfidenceThreshold
	}
	if threshold < 0 || threshold > 1 {
		return SkillExtraction{}, ErrInvalidInput
	}

	found := u.extractor.ExtractSkills(in.Text, threshold)
	out := SkillExtraction{
		Skills:     found,
		Categories: u.extractor.Categorize(found.Names()),
	}
	if in.WithLevels {
		out.Levels = u.extractor.ExtractSkillLevels(in.Text, found.Names())
	}
	return out, nil
}

func (u *Skill) MarketData(ctx context.Context, skills []string) (map[string]skill.MarketData, error) {
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		if s = strings.TrimSpace(s); s != "" {
			names = append(names, s)
		}
	}
	if len(names) == 0 {
		return nil, ErrInvalidInput
	}
	return u.extractor.MarketData(names), nil
}

func (u *Skill) Autocomplete(ctx context.Context, q string) ([]skill.Skill, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return []skill.Skill{}, nil
	}
	items, err := u.repo.Autocomplete(ctx, q, repository.AutocompleteLimit)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

// ensureCatalogSkill resolves name against the catalog, registering it with
// vocabulary defaults when it is not there yet.
func ensureCatalogSkill(ctx context.Context, repo repository.SkillRepository, vocab *vocabulary.Vocabulary, name string) (skill.Skill, error) {
	lookup := vocab.Lookup(name)
	return repo.Ensure(ctx, skill.Skill{
		Name:            lookup.Name,
		Category:        lookup.Category,
		ImportanceScore: lookup.Weight,
	})
}
