package seeder

import (
	"context"
	"fmt"

	"career-compass/internal/database"
)

type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "skills", "id", "name", "category", "importance_score", "created_at"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, it := range catalogSkills {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO skills (id, name, category, importance_score)
			 VALUES (gen_random_uuid(), $1, $2, $3)
			 ON CONFLICT ((lower(name))) DO NOTHING`,
			it.Name,
			it.Category,
			it.Importance,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
