package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"career-compass/internal/domain/career"
	"career-compass/internal/domain/recommendation"
	"career-compass/internal/domain/user"
	"career-compass/internal/infrastructure/cache"
	"career-compass/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

const (
	insightsTTL = 10 * time.Minute
	industryTTL = time.Hour
)

type IndustryInsights struct {
	Industry             string                  `json:"industry"`
	CareerCount          int                     `json:"career_count"`
	AverageSalary        float64                 `json:"average_salary"`
	AverageGrowthRate    float64                 `json:"average_growth_rate"`
	TotalRecommendations int                     `json:"total_recommendations"`
	TopCareers           []career.IndustryCareer `json:"top_careers"`
}

type InsightUsecase interface {
	GetPersonalizedInsights(ctx context.Context, userID uuid.UUID) (recommendation.Insights, error)
	GetIndustryInsights(ctx context.Context, industry string) (IndustryInsights, error)
}

type Insight struct {
	users   user.Repository
	trends  repository.MarketTrendRepository
	recs    repository.RecommendationRepository
	careers repository.CareerRepository
	cache   Cache
	logger  *log.Logger

	industries singleflight.Group
}

func NewInsightUsecase(
	users user.Repository,
	trends repository.MarketTrendRepository,
	recs repository.RecommendationRepository,
	careers repository.CareerRepository,
	c Cache,
	logger *log.Logger,
) *Insight {
	if c == nil {
		c = noopCache{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Insight{users: users, trends: trends, recs: recs, careers: careers, cache: c, logger: logger}
}

func (u *Insight) GetPersonalizedInsights(ctx context.Context, userID uuid.UUID) (recommendation.Insights, error) {
	key := cache.InsightsKey(userID)

	var cached recommendation.Insights
	if ok, err := u.cache.GetJSON(ctx, key, &cached); err == nil && ok {
		return cached, nil
	}

	if _, err := u.users.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return recommendation.Insights{}, ErrUserNotFound
		}
		return recommendation.Insights{}, ErrInternal
	}

	top, err := u.trends.TopUserSkills(ctx, userID, recommendation.TopSkillLimit)
	if err != nil {
		u.logger.Printf("insights status=error user_id=%s stage=top_skills err=%v", userID, err)
		return recommendation.Insights{}, ErrInternal
	}
	trending, err := u.trends.TrendingUnowned(ctx, userID, recommendation.TrendingSkillLimit)
	if err != nil {
		u.logger.Printf("insights status=error user_id=%s stage=trending err=%v", userID, err)
		return recommendation.Insights{}, ErrInternal
	}
	recent, err := u.recs.ListRecent(ctx, userID, recommendation.RecentLimit)
	if err != nil {
		u.logger.Printf("insights status=error user_id=%s stage=recent err=%v", userID, err)
		return recommendation.Insights{}, ErrInternal
	}

	out := recommendation.BuildInsights(top, trending, recent)
	if err := u.cache.SetJSON(ctx, key, out, insightsTTL); err != nil {
		u.logger.Printf("insights op=cache_set status=error user_id=%s err=%v", userID, err)
	}
	return out, nil
}

// GetIndustryInsights aggregates an industry's careers. Concurrent misses for
// the same industry share one store query.
func (u *Insight) GetIndustryInsights(ctx context.Context, industry string) (IndustryInsights, error) {
	industry = strings.TrimSpace(industry)
	if industry == "" {
		return IndustryInsights{}, ErrInvalidInput
	}
	key := cache.IndustryKey(industry)

	var cached IndustryInsights
	if ok, err := u.cache.GetJSON(ctx, key, &cached); err == nil && ok {
		return cached, nil
	}

	v, err, _ := u.industries.Do(key, func() (any, error) {
		stats, err := u.careers.IndustryStats(ctx, industry)
		if err != nil {
			return nil, err
		}
		out := industryInsightsOf(stats)
		if err := u.cache.SetJSON(ctx, key, out, industryTTL); err != nil {
			u.logger.Printf("insights op=cache_set status=error industry=%q err=%v", industry, err)
		}
		return out, nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrIndustryNotFound) {
			return IndustryInsights{}, ErrIndustryNotFound
		}
		u.logger.Printf("insights status=error industry=%q err=%v", industry, err)
		return IndustryInsights{}, ErrInternal
	}
	return v.(IndustryInsights), nil
}

func industryInsightsOf(s career.IndustryStats) IndustryInsights {
	return IndustryInsights{
		Industry:             s.Industry,
		CareerCount:          s.CareerCount,
		AverageSalary:        roundTo(s.AverageSalary, 2),
		AverageGrowthRate:    roundTo(s.AverageGrowthRate, 4),
		TotalRecommendations: s.TotalRecommendations,
		TopCareers:           s.TopCareers,
	}
}

func invalidateInsights(ctx context.Context, c Cache, userID uuid.UUID) {
	if c == nil {
		return
	}
	_ = c.Delete(ctx, cache.InsightsKey(userID))
}
