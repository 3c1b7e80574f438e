package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"career-compass/internal/domain/career"
	"career-compass/internal/domain/learning"
	"career-compass/internal/domain/matching"
	"career-compass/internal/domain/recommendation"
	"career-compass/internal/domain/skill"
	"career-compass/internal/domain/user"
	"career-compass/internal/infrastructure/cache"
	"career-compass/internal/repository"

	"github.com/google/uuid"
)

const regenerationLockTTL = 30 * time.Second

type RecommendationUsecase interface {
	PredictCareerMatches(ctx context.Context, userID uuid.UUID) ([]recommendation.Match, error)
	GenerateLearningPath(ctx context.Context, userID, careerID uuid.UUID) ([]learning.Step, error)
	GenerateRecommendations(ctx context.Context, userID uuid.UUID) ([]recommendation.Enhanced, error)
	ListRecommendations(ctx context.Context, userID uuid.UUID) ([]recommendation.Recommendation, error)
}

type RecommendationDeps struct {
	Users           user.Repository
	UserSkills      repository.UserSkillRepository
	Assessments     repository.AssessmentRepository
	Careers         repository.CareerRepository
	Recommendations repository.RecommendationRepository
	Generator       *learning.Generator
	Cache           Cache
	Notifier        Notifier
	Logger          *log.Logger
}

type Recommendation struct {
	users       user.Repository
	userSkills  repository.UserSkillRepository
	assessments repository.AssessmentRepository
	careers     repository.CareerRepository
	recs        repository.RecommendationRepository
	generator   *learning.Generator
	cache       Cache
	notifier    Notifier
	logger      *log.Logger
}

func NewRecommendationUsecase(d RecommendationDeps) *Recommendation {
	u := &Recommendation{
		users:       d.Users,
		userSkills:  d.UserSkills,
		assessments: d.Assessments,
		careers:     d.Careers,
		recs:        d.Recommendations,
		generator:   d.Generator,
		cache:       d.Cache,
		notifier:    d.Notifier,
		logger:      d.Logger,
	}
	if u.cache == nil {
		u.cache = noopCache{}
	}
	if u.notifier == nil {
		u.notifier = noopNotifier{}
	}
	if u.logger == nil {
		u.logger = log.Default()
	}
	return u
}

// scoringInput is everything one scoring run reads from the store.
type scoringInput struct {
	profile matching.Profile
	levels  map[string]int
	careers []career.Career
}

func (u *Recommendation) load(ctx context.Context, userID uuid.UUID) (scoringInput, error) {
	usr, err := u.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return scoringInput{}, ErrUserNotFound
		}
		return scoringInput{}, err
	}

	owned, err := u.userSkills.FindByUserID(ctx, userID)
	if err != nil {
		return scoringInput{}, err
	}

	var interests []string
	latest, err := u.assessments.LatestByUser(ctx, userID)
	switch {
	case err == nil:
		interests = latest.Interests
	case errors.Is(err, repository.ErrAssessmentNotFound):
	default:
		return scoringInput{}, err
	}

	careers, err := u.careers.ListActiveWithSkills(ctx)
	if err != nil {
		return scoringInput{}, err
	}

	return scoringInput{
		profile: profileOf(usr, owned, interests),
		levels:  levelsOf(owned),
		careers: careers,
	}, nil
}

func (u *Recommendation) rank(in scoringInput) ([]recommendation.Match, map[uuid.UUID]career.Career) {
	byID := make(map[uuid.UUID]career.Career, len(in.careers))
	for _, c := range in.careers {
		byID[c.ID] = c
	}

	results := matching.Rank(in.profile, in.careers, matching.DefaultLimit)
	out := make([]recommendation.Match, 0, len(results))
	for _, r := range results {
		c := byID[r.CareerID]
		out = append(out, recommendation.Match{
			Result:      r,
			CareerTitle: c.Title,
			Industry:    c.Industry,
			Description: c.Description,
			SalaryRange: c.SalaryRange(),
			GrowthRate:  c.GrowthRate,
		})
	}
	return out, byID
}

func (u *Recommendation) PredictCareerMatches(ctx context.Context, userID uuid.UUID) ([]recommendation.Match, error) {
	in, err := u.load(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, err
		}
		u.logger.Printf("matches status=error user_id=%s err=%v", userID, err)
		return nil, ErrInternal
	}
	matches, _ := u.rank(in)
	return matches, nil
}

func (u *Recommendation) GenerateLearningPath(ctx context.Context, userID, careerID uuid.UUID) ([]learning.Step, error) {
	if _, err := u.users.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, ErrInternal
	}

	c, err := u.careers.GetByIDWithSkills(ctx, careerID)
	if err != nil {
		if errors.Is(err, repository.ErrCareerNotFound) {
			return nil, ErrCareerNotFound
		}
		return nil, ErrInternal
	}

	owned, err := u.userSkills.FindByUserID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return u.generator.Generate(levelsOf(owned), c.Skills), nil
}

// GenerateRecommendations scores every active career, explains the top
// matches and replaces the user's stored set with them. An unknown user and
// a regeneration already running for the same user are reported; every other
// failure is logged and yields an empty list.
func (u *Recommendation) GenerateRecommendations(ctx context.Context, userID uuid.UUID) ([]recommendation.Enhanced, error) {
	start := time.Now()

	lockKey, token := cache.RecommendationLockKey(userID), uuid.NewString()
	acquired, lockErr := u.cache.SetIfNotExists(ctx, lockKey, token, regenerationLockTTL)
	switch {
	case lockErr != nil:
		// no cache: the store's advisory lock still serializes the replace
	case !acquired:
		return nil, ErrRegenerationInProgress
	default:
		defer func() {
			if released, err := u.cache.DeleteIfEquals(context.Background(), lockKey, token); err == nil && !released {
				u.logger.Printf("recommendations op=unlock status=expired user_id=%s", userID)
			}
		}()
	}

	in, err := u.load(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, err
		}
		u.logger.Printf("recommendations status=degraded user_id=%s stage=load err=%v", userID, err)
		return []recommendation.Enhanced{}, nil
	}

	matches, byID := u.rank(in)
	enhanced := make([]recommendation.Enhanced, 0, len(matches))
	records := make([]recommendation.Recommendation, 0, len(matches))
	for _, m := range matches {
		e := recommendation.Enhanced{
			Match:        m,
			Reasoning:    recommendation.Reason(m),
			LearningPath: u.generator.Generate(in.levels, byID[m.CareerID].Skills),
		}
		enhanced = append(enhanced, e)
		records = append(records, e.Record(userID))
	}

	if err := u.recs.ReplaceForUser(ctx, userID, records); err != nil {
		u.logger.Printf("recommendations status=degraded user_id=%s stage=persist err=%v", userID, err)
		return []recommendation.Enhanced{}, nil
	}

	invalidateInsights(ctx, u.cache, userID)

	top := ""
	if len(enhanced) > 0 {
		top = enhanced[0].CareerTitle
	}
	u.notifier.RecommendationsUpdated(userID, len(enhanced), top)

	u.logger.Printf("recommendations status=ok user_id=%s careers=%d stored=%d duration=%s",
		userID, len(in.careers), len(records), time.Since(start))
	return enhanced, nil
}

func (u *Recommendation) ListRecommendations(ctx context.Context, userID uuid.UUID) ([]recommendation.Recommendation, error) {
	items, err := u.recs.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func profileOf(usr user.User, owned []skill.UserSkill, interests []string) matching.Profile {
	skills := make([]matching.UserSkill, 0, len(owned))
	for _, s := range owned {
		skills = append(skills, matching.UserSkill{Name: s.SkillName, Proficiency: s.ProficiencyLevel})
	}
	if interests == nil {
		interests = []string{}
	}
	return matching.Profile{
		Skills:          skills,
		EducationLevel:  usr.EducationLevel,
		YearsExperience: usr.YearsExperience,
		Interests:       interests,
	}
}

func levelsOf(owned []skill.UserSkill) map[string]int {
	out := make(map[string]int, len(owned))
	for _, s := range owned {
		out[s.SkillName] = s.ProficiencyLevel
	}
	return out
}
