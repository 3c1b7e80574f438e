package usecase

import (
	"context"
	"log"

	"career-compass/internal/domain/trend"
	"career-compass/internal/domain/vocabulary"
	"career-compass/internal/infrastructure/cache"
	"career-compass/internal/repository"
)

type MarketTrendUsecase interface {
	RefreshMarketTrends(ctx context.Context) (int, error)
}

type MarketTrend struct {
	skills repository.SkillRepository
	trends repository.MarketTrendRepository
	vocab  *vocabulary.Vocabulary
	cache  Cache
	logger *log.Logger
}

func NewMarketTrendUsecase(skills repository.SkillRepository, trends repository.MarketTrendRepository, vocab *vocabulary.Vocabulary, c Cache, logger *log.Logger) *MarketTrend {
	if c == nil {
		c = noopCache{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &MarketTrend{skills: skills, trends: trends, vocab: vocab, cache: c, logger: logger}
}

// RefreshMarketTrends writes one trend row per catalog skill from the static
// trend table. Skills missing from the table get the default trend.
func (u *MarketTrend) RefreshMarketTrends(ctx context.Context) (int, error) {
	skills, err := u.skills.GetAllSkills(ctx)
	if err != nil {
		return 0, ErrInternal
	}

	rows := make([]trend.MarketTrend, 0, len(skills))
	for _, s := range skills {
		t := u.vocab.TrendFor(s.Name)
		rows = append(rows, trend.MarketTrend{
			SkillID:     s.ID,
			SkillName:   s.Name,
			TrendScore:  t.TrendScore,
			DemandLevel: t.DemandLevel,
			SalaryTrend: t.SalaryTrend,
		})
	}

	n, err := u.trends.UpsertAll(ctx, rows)
	if err != nil {
		u.logger.Printf("market_trends status=error err=%v", err)
		return 0, ErrInternal
	}

	if err := u.cache.DeleteByPattern(ctx, cache.InsightsPattern); err != nil {
		u.logger.Printf("market_trends op=cache_invalidate status=error err=%v", err)
	}
	u.logger.Printf("market_trends status=ok skills=%d upserted=%d", len(skills), n)
	return n, nil
}
