package repository

import (
	"context"

	"career-compass/internal/database"
	"career-compass/internal/domain/recommendation"
	"career-compass/internal/domain/trend"

	"github.com/google/uuid"
)

type MarketTrendRepository interface {
	// UpsertAll writes one row per skill in a single transaction.
	UpsertAll(ctx context.Context, trends []trend.MarketTrend) (int, error)
	// TopUserSkills orders the user's skills by proficiency, then trend score.
	TopUserSkills(ctx context.Context, userID uuid.UUID, limit int) ([]recommendation.TopSkill, error)
	// TrendingUnowned lists skills above the trending threshold the user does
	// not hold, highest trend first.
	TrendingUnowned(ctx context.Context, userID uuid.UUID, limit int) ([]recommendation.TrendingSkill, error)
}

type PostgresMarketTrendRepository struct {
	db database.DB
}

func NewPostgresMarketTrendRepository(db database.DB) *PostgresMarketTrendRepository {
	return &PostgresMarketTrendRepository{db: db}
}

func (r *PostgresMarketTrendRepository) UpsertAll(ctx context.Context, trends []trend.MarketTrend) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	n := 0
	for _, t := range trends {
		affected, err := tx.Exec(ctx,
			`INSERT INTO market_trends (skill_id, trend_score, demand_level, salary_trend, updated_at)
			 VALUES ($1, $2, $3, $4, now())
			 ON CONFLICT (skill_id)
			 DO UPDATE SET trend_score = EXCLUDED.trend_score, demand_level = EXCLUDED.demand_level,
			               salary_trend = EXCLUDED.salary_trend, updated_at = now()`,
			t.SkillID, t.TrendScore, t.DemandLevel, t.SalaryTrend,
		)
		if err != nil {
			return 0, err
		}
		n += int(affected)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *PostgresMarketTrendRepository) TopUserSkills(ctx context.Context, userID uuid.UUID, limit int) ([]recommendation.TopSkill, error) {
	if limit <= 0 {
		limit = recommendation.TopSkillLimit
	}
	rows, err := r.db.Query(ctx,
		`SELECT s.name, us.proficiency_level, COALESCE(s.category, ''), mt.trend_score
		 FROM user_skills us
		 JOIN skills s ON s.id = us.skill_id
		 LEFT JOIN market_trends mt ON mt.skill_id = us.skill_id
		 WHERE us.user_id = $1
		 ORDER BY us.proficiency_level DESC, mt.trend_score DESC NULLS LAST, s.name ASC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]recommendation.TopSkill, 0)
	for rows.Next() {
		var s recommendation.TopSkill
		if err := rows.Scan(&s.Name, &s.Proficiency, &s.Category, &s.TrendScore); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresMarketTrendRepository) TrendingUnowned(ctx context.Context, userID uuid.UUID, limit int) ([]recommendation.TrendingSkill, error) {
	if limit <= 0 {
		limit = recommendation.TrendingSkillLimit
	}
	rows, err := r.db.Query(ctx,
		`SELECT s.name, mt.trend_score, mt.demand_level, mt.salary_trend
		 FROM market_trends mt
		 JOIN skills s ON s.id = mt.skill_id
		 WHERE mt.trend_score > $2
		   AND NOT EXISTS (
			SELECT 1 FROM user_skills us WHERE us.user_id = $1 AND us.skill_id = mt.skill_id
		   )
		 ORDER BY mt.trend_score DESC, s.name ASC
		 LIMIT $3`,
		userID, trend.TrendingThreshold, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]recommendation.TrendingSkill, 0)
	for rows.Next() {
		var s recommendation.TrendingSkill
		if err := rows.Scan(&s.Name, &s.TrendScore, &s.DemandLevel, &s.SalaryTrend); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
