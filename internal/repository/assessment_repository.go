package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"career-compass/internal/database"
	"career-compass/internal/domain/assessment"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrAssessmentNotFound = errors.New("assessment not found")

type AssessmentRepository interface {
	Create(ctx context.Context, a assessment.Assessment) (assessment.Assessment, error)
	LatestByUser(ctx context.Context, userID uuid.UUID) (assessment.Assessment, error)
}

type PostgresAssessmentRepository struct {
	db database.DB
}

func NewPostgresAssessmentRepository(db database.DB) *PostgresAssessmentRepository {
	return &PostgresAssessmentRepository{db: db}
}

func (r *PostgresAssessmentRepository) Create(ctx context.Context, a assessment.Assessment) (assessment.Assessment, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Interests == nil {
		a.Interests = []string{}
	}
	if a.WorkStyle == nil {
		a.WorkStyle = map[string]string{}
	}

	interests, err := json.Marshal(a.Interests)
	if err != nil {
		return assessment.Assessment{}, err
	}
	workStyle, err := json.Marshal(a.WorkStyle)
	if err != nil {
		return assessment.Assessment{}, err
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO assessments (id, user_id, interests, work_style, career_goals, risk_tolerance, work_life_balance, salary_importance)
		 VALUES ($1, $2, $3::jsonb, $4::jsonb, $5, $6, $7, $8)
		 RETURNING created_at`,
		a.ID, a.UserID, string(interests), string(workStyle), a.CareerGoals,
		a.RiskTolerance, a.WorkLifeBalance, a.SalaryImportance,
	)
	if err := row.Scan(&a.CreatedAt); err != nil {
		return assessment.Assessment{}, err
	}
	return a, nil
}

func (r *PostgresAssessmentRepository) LatestByUser(ctx context.Context, userID uuid.UUID) (assessment.Assessment, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, interests, work_style, career_goals, risk_tolerance, work_life_balance, salary_importance, created_at
		 FROM assessments
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT 1`,
		userID,
	)

	var (
		a         assessment.Assessment
		interests []byte
		workStyle []byte
	)
	if err := row.Scan(&a.ID, &a.UserID, &interests, &workStyle, &a.CareerGoals,
		&a.RiskTolerance, &a.WorkLifeBalance, &a.SalaryImportance, &a.CreatedAt); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return assessment.Assessment{}, ErrAssessmentNotFound
		}
		return assessment.Assessment{}, err
	}

	// malformed JSON degrades to empty collections
	if err := json.Unmarshal(interests, &a.Interests); err != nil || a.Interests == nil {
		a.Interests = []string{}
	}
	if err := json.Unmarshal(workStyle, &a.WorkStyle); err != nil || a.WorkStyle == nil {
		a.WorkStyle = map[string]string{}
	}
	return a, nil
}
