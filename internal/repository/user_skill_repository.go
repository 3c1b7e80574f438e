package repository

import (
	"context"

	"career-compass/internal/database"
	"career-compass/internal/domain/skill"

	"github.com/google/uuid"
)

type UserSkillRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]skill.UserSkill, error)
	// Upsert sets the user's proficiency for a skill, replacing any previous
	// level and source.
	Upsert(ctx context.Context, us skill.UserSkill) (skill.UserSkill, error)
}

type PostgresUserSkillRepository struct {
	db database.DB
}

func NewPostgresUserSkillRepository(db database.DB) *PostgresUserSkillRepository {
	return &PostgresUserSkillRepository{db: db}
}

func (r *PostgresUserSkillRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]skill.UserSkill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT us.id, us.user_id, us.skill_id, s.name, COALESCE(s.category, ''), us.proficiency_level, us.source, us.updated_at
		 FROM user_skills us
		 JOIN skills s ON s.id = us.skill_id
		 WHERE us.user_id = $1
		 ORDER BY us.proficiency_level DESC, s.name ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.UserSkill, 0)
	for rows.Next() {
		var us skill.UserSkill
		if err := rows.Scan(&us.ID, &us.UserID, &us.SkillID, &us.SkillName, &us.Category, &us.ProficiencyLevel, &us.Source, &us.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, us)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresUserSkillRepository) Upsert(ctx context.Context, us skill.UserSkill) (skill.UserSkill, error) {
	if us.ID == uuid.Nil {
		us.ID = uuid.New()
	}
	if us.Source == "" {
		us.Source = skill.SourceManual
	}

	row := r.db.QueryRow(ctx,
		`WITH up AS (
			INSERT INTO user_skills (id, user_id, skill_id, proficiency_level, source)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (user_id, skill_id)
			DO UPDATE SET proficiency_level = EXCLUDED.proficiency_level, source = EXCLUDED.source, updated_at = now()
			RETURNING id, user_id, skill_id, proficiency_level, source, updated_at
		 )
		 SELECT up.id, up.user_id, up.skill_id, s.name, COALESCE(s.category, ''), up.proficiency_level, up.source, up.updated_at
		 FROM up
		 JOIN skills s ON s.id = up.skill_id`,
		us.ID, us.UserID, us.SkillID, skill.ClampProficiency(us.ProficiencyLevel), us.Source,
	)

	var out skill.UserSkill
	if err := row.Scan(&out.ID, &out.UserID, &out.SkillID, &out.SkillName, &out.Category, &out.ProficiencyLevel, &out.Source, &out.UpdatedAt); err != nil {
		return skill.UserSkill{}, err
	}
	return out, nil
}
