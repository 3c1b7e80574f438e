package usecase

import (
	"context"
	"strings"

	"career-compass/internal/domain/skill"
	"career-compass/internal/repository"

	"github.com/google/uuid"
)

type AddUserSkillInput struct {
	Name             string
	ProficiencyLevel int
}

type UserSkillUsecase interface {
	ListUserSkills(ctx context.Context, userID uuid.UUID) ([]skill.UserSkill, error)
	AddUserSkill(ctx context.Context, userID uuid.UUID, in AddUserSkillInput) (skill.UserSkill, error)
	SuggestSkills(ctx context.Context, userID uuid.UUID, limit int) ([]skill.Suggestion, error)
}

type UserSkill struct {
	repo      repository.UserSkillRepository
	skills    repository.SkillRepository
	extractor *skill.Extractor
	cache     Cache
}

func NewUserSkillUsecase(repo repository.UserSkillRepository, skills repository.SkillRepository, extractor *skill.Extractor, cache Cache) *UserSkill {
	if cache == nil {
		cache = noopCache{}
	}
	return &UserSkill{repo: repo, skills: skills, extractor: extractor, cache: cache}
}

func (u *UserSkill) ListUserSkills(ctx context.Context, userID uuid.UUID) ([]skill.UserSkill, error) {
	items, err := u.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *UserSkill) AddUserSkill(ctx context.Context, userID uuid.UUID, in AddUserSkillInput) (skill.UserSkill, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return skill.UserSkill{}, ErrInvalidInput
	}
	if !isValidProficiency(in.ProficiencyLevel) {
		return skill.UserSkill{}, ErrInvalidProficiencyLevel
	}

	catalog, err := ensureCatalogSkill(ctx, u.skills, u.extractor.Vocabulary(), name)
	if err != nil {
		return skill.UserSkill{}, ErrInternal
	}

	saved, err := u.repo.Upsert(ctx, skill.UserSkill{
		UserID:           userID,
		SkillID:          catalog.ID,
		ProficiencyLevel: in.ProficiencyLevel,
		Source:           skill.SourceManual,
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return skill.UserSkill{}, ErrUserNotFound
		}
		return skill.UserSkill{}, ErrInternal
	}

	invalidateInsights(ctx, u.cache, userID)
	return saved, nil
}

func (u *UserSkill) SuggestSkills(ctx context.Context, userID uuid.UUID, limit int) ([]skill.Suggestion, error) {
	items, err := u.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}

	current := make([]string, 0, len(items))
	for _, it := range items {
		current = append(current, it.SkillName)
	}
	return u.extractor.SuggestRelated(current, limit), nil
}

func isValidProficiency(v int) bool {
	return v >= skill.MinProficiency && v <= skill.MaxProficiency
}
