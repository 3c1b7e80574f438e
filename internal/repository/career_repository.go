package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"career-compass/internal/database"
	"career-compass/internal/domain/career"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrCareerNotFound   = errors.New("career not found")
	ErrIndustryNotFound = errors.New("industry not found")
)

const careerColumns = `c.id, c.title, c.industry, c.description, c.salary_min, c.salary_max, c.growth_rate,
	COALESCE(c.education_required, ''), COALESCE(c.experience_required, ''), c.demand_score, c.is_active, c.created_at`

type CareerRepository interface {
	// ListActiveWithSkills returns every active career with its required
	// skills, in a stable catalog order.
	ListActiveWithSkills(ctx context.Context) ([]career.Career, error)
	GetByIDWithSkills(ctx context.Context, id uuid.UUID) (career.Career, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]career.Career, error)
	IndustryStats(ctx context.Context, industry string) (career.IndustryStats, error)
}

type PostgresCareerRepository struct {
	db database.DB
}

func NewPostgresCareerRepository(db database.DB) *PostgresCareerRepository {
	return &PostgresCareerRepository{db: db}
}

func (r *PostgresCareerRepository) ListActiveWithSkills(ctx context.Context) ([]career.Career, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+careerColumns+`
		 FROM careers c
		 WHERE c.is_active
		 ORDER BY c.created_at ASC, c.title ASC`,
	)
	if err != nil {
		return nil, err
	}
	careers, err := collectCareers(rows)
	if err != nil {
		return nil, err
	}

	skillRows, err := r.db.Query(ctx,
		`SELECT cs.career_id, cs.skill_id, s.name, cs.importance_level, cs.required_proficiency
		 FROM career_skills cs
		 JOIN careers c ON c.id = cs.career_id
		 JOIN skills s ON s.id = cs.skill_id
		 WHERE c.is_active
		 ORDER BY cs.importance_level DESC, s.name ASC`,
	)
	if err != nil {
		return nil, err
	}
	if err := attachSkills(skillRows, careers); err != nil {
		return nil, err
	}
	return careers, nil
}

func (r *PostgresCareerRepository) GetByIDWithSkills(ctx context.Context, id uuid.UUID) (career.Career, error) {
	out, err := r.ListByIDs(ctx, []uuid.UUID{id})
	if err != nil {
		return career.Career{}, err
	}
	if len(out) == 0 {
		return career.Career{}, ErrCareerNotFound
	}
	return out[0], nil
}

// ListByIDs returns the careers that exist among ids, in the order given.
// Unknown ids are skipped.
func (r *PostgresCareerRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]career.Career, error) {
	if len(ids) == 0 {
		return []career.Career{}, nil
	}
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, id.String())
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+careerColumns+`
		 FROM careers c
		 WHERE c.id = ANY($1::uuid[])`,
		keys,
	)
	if err != nil {
		return nil, err
	}
	found, err := collectCareers(rows)
	if err != nil {
		return nil, err
	}

	skillRows, err := r.db.Query(ctx,
		`SELECT cs.career_id, cs.skill_id, s.name, cs.importance_level, cs.required_proficiency
		 FROM career_skills cs
		 JOIN skills s ON s.id = cs.skill_id
		 WHERE cs.career_id = ANY($1::uuid[])
		 ORDER BY cs.importance_level DESC, s.name ASC`,
		keys,
	)
	if err != nil {
		return nil, err
	}
	if err := attachSkills(skillRows, found); err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]career.Career, len(found))
	for _, c := range found {
		byID[c.ID] = c
	}
	out := make([]career.Career, 0, len(found))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if c, ok := byID[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

// IndustryStats aggregates every career of an industry, matched
// case-insensitively. Inactive careers are included.
func (r *PostgresCareerRepository) IndustryStats(ctx context.Context, industry string) (career.IndustryStats, error) {
	industry = strings.TrimSpace(industry)
	row := r.db.QueryRow(ctx,
		`SELECT COALESCE(MIN(c.industry), ''),
		        COUNT(*),
		        COALESCE(AVG((c.salary_min + c.salary_max) / 2.0), 0),
		        COALESCE(AVG(c.growth_rate), 0),
		        (SELECT COUNT(*)
		         FROM recommendations r
		         JOIN careers c2 ON c2.id = r.career_id
		         WHERE lower(c2.industry) = lower($1))
		 FROM careers c
		 WHERE lower(c.industry) = lower($1)`,
		industry,
	)

	var stats career.IndustryStats
	if err := row.Scan(&stats.Industry, &stats.CareerCount, &stats.AverageSalary, &stats.AverageGrowthRate, &stats.TotalRecommendations); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return career.IndustryStats{}, ErrIndustryNotFound
		}
		return career.IndustryStats{}, err
	}
	if stats.CareerCount == 0 {
		return career.IndustryStats{}, ErrIndustryNotFound
	}

	top, err := r.topIndustryCareers(ctx, industry, topIndustryCareers)
	if err != nil {
		return career.IndustryStats{}, err
	}
	stats.TopCareers = top
	return stats, nil
}

const topIndustryCareers = 5

func (r *PostgresCareerRepository) topIndustryCareers(ctx context.Context, industry string, limit int) ([]career.IndustryCareer, error) {
	rows, err := r.db.Query(ctx,
		`SELECT c.id, c.title, c.demand_score, COUNT(r.id)
		 FROM careers c
		 LEFT JOIN recommendations r ON r.career_id = c.id
		 WHERE lower(c.industry) = lower($1)
		 GROUP BY c.id, c.title, c.demand_score
		 ORDER BY c.demand_score DESC, c.title ASC
		 LIMIT $2`,
		industry, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]career.IndustryCareer, 0, limit)
	for rows.Next() {
		var c career.IndustryCareer
		if err := rows.Scan(&c.ID, &c.Title, &c.DemandScore, &c.RecommendationCount); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func collectCareers(rows database.Rows) ([]career.Career, error) {
	defer rows.Close()

	out := make([]career.Career, 0)
	for rows.Next() {
		var c career.Career
		if err := rows.Scan(&c.ID, &c.Title, &c.Industry, &c.Description, &c.SalaryMin, &c.SalaryMax, &c.GrowthRate,
			&c.RequiredEducation, &c.RequiredExperience, &c.DemandScore, &c.IsActive, &c.CreatedAt); err != nil {
			return nil, err
		}
		c.Skills = []career.RequiredSkill{}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func attachSkills(rows database.Rows, careers []career.Career) error {
	defer rows.Close()

	index := make(map[uuid.UUID]int, len(careers))
	for i, c := range careers {
		index[c.ID] = i
	}
	for rows.Next() {
		var (
			careerID uuid.UUID
			rs       career.RequiredSkill
		)
		if err := rows.Scan(&careerID, &rs.SkillID, &rs.SkillName, &rs.ImportanceLevel, &rs.RequiredProficiency); err != nil {
			return err
		}
		if i, ok := index[careerID]; ok {
			careers[i].Skills = append(careers[i].Skills, rs)
		}
	}
	return rows.Err()
}
