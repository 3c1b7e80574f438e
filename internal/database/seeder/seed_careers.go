package seeder

import (
	"context"
	"fmt"

	"career-compass/internal/database"
)

type CareersSeeder struct{}

func (CareersSeeder) Name() string { return "careers" }

func (CareersSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "careers",
		"id",
		"title",
		"industry",
		"description",
		"salary_min",
		"salary_max",
		"growth_rate",
		"education_required",
		"experience_required",
		"remote_friendly",
		"demand_score",
		"is_active",
	); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, c := range catalogCareers {
		if _, err := tx.Exec(ctx,
			`INSERT INTO careers (
				id, title, industry, description, salary_min, salary_max, growth_rate,
				education_required, experience_required, remote_friendly, demand_score, is_active
			) VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, true)
			ON CONFLICT (title) DO NOTHING`,
			c.Title, c.Industry, c.Description, c.SalaryMin, c.SalaryMax, c.GrowthRate,
			c.Education, c.Experience, c.Remote, c.Demand,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// CareerSkillsSeeder links careers to skills by name, so it must run after
// SkillsSeeder and CareersSeeder.
type CareerSkillsSeeder struct{}

func (CareerSkillsSeeder) Name() string { return "career_skills" }

func (CareerSkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "career_skills",
		"id", "career_id", "skill_id", "importance_level", "required_proficiency",
	); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, r := range catalogRequirements {
		if _, err := tx.Exec(ctx,
			`INSERT INTO career_skills (id, career_id, skill_id, importance_level, required_proficiency)
			 SELECT gen_random_uuid(), c.id, s.id, $3, $4
			 FROM careers c, skills s
			 WHERE c.title = $1 AND lower(s.name) = lower($2)
			 ON CONFLICT (career_id, skill_id) DO NOTHING`,
			r.Career, r.Skill, r.Importance, r.Proficiency,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
