package repository

import (
	"context"
	"encoding/json"

	"career-compass/internal/database"
	"career-compass/internal/domain/recommendation"

	"github.com/google/uuid"
)

type RecommendationRepository interface {
	// ReplaceForUser deletes the user's stored set and inserts recs in one
	// transaction serialized per user.
	ReplaceForUser(ctx context.Context, userID uuid.UUID, recs []recommendation.Recommendation) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]recommendation.Recommendation, error)
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]recommendation.Recent, error)
	// LatestScores maps each career id to the user's newest stored score.
	// Careers never recommended are absent.
	LatestScores(ctx context.Context, userID uuid.UUID, careerIDs []uuid.UUID) (map[uuid.UUID]float64, error)
}

type PostgresRecommendationRepository struct {
	db database.DB
}

func NewPostgresRecommendationRepository(db database.DB) *PostgresRecommendationRepository {
	return &PostgresRecommendationRepository{db: db}
}

func (r *PostgresRecommendationRepository) ReplaceForUser(ctx context.Context, userID uuid.UUID, recs []recommendation.Recommendation) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1::text))`, userID.String()); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM recommendations WHERE user_id = $1`, userID); err != nil {
		return err
	}

	for _, rec := range recs {
		if rec.ID == uuid.Nil {
			rec.ID = uuid.New()
		}
		gaps, err := json.Marshal(nonNilSlice(rec.SkillGaps))
		if err != nil {
			return err
		}
		path, err := json.Marshal(nonNilSlice(rec.LearningPath))
		if err != nil {
			return err
		}

		if _, err := tx.Exec(ctx,
			`INSERT INTO recommendations (
				id, user_id, career_id, match_score, skill_score, education_score, experience_score, interest_score,
				reasoning, skill_gaps, learning_path
			 ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10::jsonb, $11::jsonb)`,
			rec.ID, userID, rec.CareerID, rec.MatchScore, rec.SkillScore, rec.EducationScore,
			rec.ExperienceScore, rec.InterestScore, rec.Reasoning, string(gaps), string(path),
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *PostgresRecommendationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]recommendation.Recommendation, error) {
	rows, err := r.db.Query(ctx,
		`SELECT r.id, r.user_id, r.career_id, COALESCE(c.title, ''), COALESCE(c.industry, ''),
		        r.match_score, r.skill_score, r.education_score, r.experience_score, r.interest_score,
		        r.reasoning, r.skill_gaps, r.learning_path, r.created_at
		 FROM recommendations r
		 LEFT JOIN careers c ON c.id = r.career_id
		 WHERE r.user_id = $1
		 ORDER BY r.match_score DESC, r.created_at ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]recommendation.Recommendation, 0)
	for rows.Next() {
		var (
			rec  recommendation.Recommendation
			gaps []byte
			path []byte
		)
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.CareerID, &rec.CareerTitle, &rec.Industry,
			&rec.MatchScore, &rec.SkillScore, &rec.EducationScore, &rec.ExperienceScore, &rec.InterestScore,
			&rec.Reasoning, &gaps, &path, &rec.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(gaps, &rec.SkillGaps); err != nil || rec.SkillGaps == nil {
			rec.SkillGaps = []string{}
		}
		if err := json.Unmarshal(path, &rec.LearningPath); err != nil {
			rec.LearningPath = nil
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresRecommendationRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]recommendation.Recent, error) {
	if limit <= 0 {
		limit = recommendation.RecentLimit
	}
	rows, err := r.db.Query(ctx,
		`SELECT r.match_score, COALESCE(c.title, ''), COALESCE(c.industry, ''), r.created_at
		 FROM recommendations r
		 LEFT JOIN careers c ON c.id = r.career_id
		 WHERE r.user_id = $1
		 ORDER BY r.created_at DESC, r.match_score DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]recommendation.Recent, 0)
	for rows.Next() {
		var rec recommendation.Recent
		if err := rows.Scan(&rec.MatchScore, &rec.CareerTitle, &rec.Industry, &rec.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresRecommendationRepository) LatestScores(ctx context.Context, userID uuid.UUID, careerIDs []uuid.UUID) (map[uuid.UUID]float64, error) {
	out := make(map[uuid.UUID]float64, len(careerIDs))
	if len(careerIDs) == 0 {
		return out, nil
	}
	keys := make([]string, 0, len(careerIDs))
	for _, id := range careerIDs {
		keys = append(keys, id.String())
	}

	rows, err := r.db.Query(ctx,
		`SELECT DISTINCT ON (career_id) career_id, match_score
		 FROM recommendations
		 WHERE user_id = $1 AND career_id = ANY($2::uuid[])
		 ORDER BY career_id, created_at DESC`,
		userID, keys,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id    uuid.UUID
			score float64
		)
		if err := rows.Scan(&id, &score); err != nil {
			return nil, err
		}
		out[id] = score
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func nonNilSlice[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
