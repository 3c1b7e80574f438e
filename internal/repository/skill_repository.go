package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"career-compass/internal/database"
	"career-compass/internal/domain/skill"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrSkillNotFound = errors.New("skill not found")

const AutocompleteLimit = 10

type SkillRepository interface {
	GetAllSkills(ctx context.Context) ([]skill.Skill, error)
	FindByName(ctx context.Context, name string) (skill.Skill, error)
	// Ensure returns the catalog row for s.Name, inserting s when no row
	// matches case-insensitively.
	Ensure(ctx context.Context, s skill.Skill) (skill.Skill, error)
	Autocomplete(ctx context.Context, q string, limit int) ([]skill.Skill, error)
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

func (r *PostgresSkillRepository) GetAllSkills(ctx context.Context) ([]skill.Skill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, COALESCE(category, ''), importance_score, created_at
		 FROM skills
		 ORDER BY name ASC`,
	)
	if err != nil {
		return nil, err
	}
	return collectSkills(rows)
}

func (r *PostgresSkillRepository) FindByName(ctx context.Context, name string) (skill.Skill, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name, COALESCE(category, ''), importance_score, created_at
		 FROM skills
		 WHERE lower(name) = lower($1)`,
		strings.TrimSpace(name),
	)

	var s skill.Skill
	if err := row.Scan(&s.ID, &s.Name, &s.Category, &s.ImportanceScore, &s.CreatedAt); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return skill.Skill{}, ErrSkillNotFound
		}
		return skill.Skill{}, err
	}
	return s, nil
}

func (r *PostgresSkillRepository) Ensure(ctx context.Context, s skill.Skill) (skill.Skill, error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO skills (id, name, category, importance_score)
		 VALUES ($1, $2, NULLIF($3, ''), $4)
		 ON CONFLICT ((lower(name))) DO NOTHING`,
		s.ID, strings.TrimSpace(s.Name), s.Category, s.ImportanceScore,
	)
	if err != nil {
		return skill.Skill{}, err
	}
	return r.FindByName(ctx, s.Name)
}

func (r *PostgresSkillRepository) Autocomplete(ctx context.Context, q string, limit int) ([]skill.Skill, error) {
	if limit <= 0 || limit > AutocompleteLimit {
		limit = AutocompleteLimit
	}
	rows, err := r.db.Query(ctx,
		`SELECT id, name, COALESCE(category, ''), importance_score, created_at
		 FROM skills
		 WHERE name ILIKE '%' || $1 || '%'
		 ORDER BY importance_score DESC, name ASC
		 LIMIT $2`,
		escapeLike(strings.TrimSpace(q)), limit,
	)
	if err != nil {
		return nil, err
	}
	return collectSkills(rows)
}

func collectSkills(rows database.Rows) ([]skill.Skill, error) {
	defer rows.Close()

	out := make([]skill.Skill, 0)
	for rows.Next() {
		var s skill.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.ImportanceScore, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
