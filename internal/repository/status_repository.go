package repository

import (
	"context"
	"database/sql"

	"career-compass/internal/database"
	"career-compass/internal/domain"
)

type StatusRepository interface {
	CountCareers(ctx context.Context) (total int, active int, err error)
	CountSkills(ctx context.Context) (int, error)
	CountRecommendationsToday(ctx context.Context) (int, error)
	GetIndustryStats(ctx context.Context) ([]domain.IndustryStat, error)
}

type PostgresStatusRepository struct {
	db database.DB
}

func NewPostgresStatusRepository(db database.DB) *PostgresStatusRepository {
	return &PostgresStatusRepository{db: db}
}

func (r *PostgresStatusRepository) CountCareers(ctx context.Context) (int, int, error) {
	row := r.db.QueryRow(ctx, `SELECT COUNT(*), COUNT(*) FILTER (WHERE is_active) FROM careers`)
	var total, active int
	if err := row.Scan(&total, &active); err != nil {
		return 0, 0, err
	}
	return total, active, nil
}

func (r *PostgresStatusRepository) CountSkills(ctx context.Context) (int, error) {
	row := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM skills`)
	var c int
	if err := row.Scan(&c); err != nil {
		return 0, err
	}
	return c, nil
}

func (r *PostgresStatusRepository) CountRecommendationsToday(ctx context.Context) (int, error) {
	row := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM recommendations WHERE created_at >= CURRENT_DATE`)
	var c int
	if err := row.Scan(&c); err != nil {
		return 0, err
	}
	return c, nil
}

func (r *PostgresStatusRepository) GetIndustryStats(ctx context.Context) ([]domain.IndustryStat, error) {
	rows, err := r.db.Query(ctx, `SELECT industry, COUNT(*) AS careers, MAX(created_at) AS last_updated FROM careers GROUP BY industry ORDER BY careers DESC, industry`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.IndustryStat, 0)
	for rows.Next() {
		var industry sql.NullString
		var total int
		var last sql.NullTime
		if err := rows.Scan(&industry, &total, &last); err != nil {
			return nil, err
		}
		st := domain.IndustryStat{Industry: "unknown", Careers: total}
		if industry.Valid && industry.String != "" {
			st.Industry = industry.String
		}
		if last.Valid {
			st.LastUpdated = last.Time
		}
		out = append(out, st)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
