package usecase

import (
	"context"
	"errors"
	"strings"

	"career-compass/internal/domain/assessment"
	"career-compass/internal/repository"

	"github.com/google/uuid"
)

type SubmitAssessmentInput struct {
	Interests        []string
	WorkStyle        map[string]string
	CareerGoals      string
	RiskTolerance    int
	WorkLifeBalance  int
	SalaryImportance int
}

type AssessmentUsecase interface {
	Submit(ctx context.Context, userID uuid.UUID, in SubmitAssessmentInput) (assessment.Assessment, error)
	Latest(ctx context.Context, userID uuid.UUID) (assessment.Assessment, bool, error)
}

type Assessment struct {
	repo repository.AssessmentRepository
}

func NewAssessmentUsecase(repo repository.AssessmentRepository) *Assessment {
	return &Assessment{repo: repo}
}

func (u *Assessment) Submit(ctx context.Context, userID uuid.UUID, in SubmitAssessmentInput) (assessment.Assessment, error) {
	if !assessment.ValidRating(in.RiskTolerance) ||
		!assessment.ValidRating(in.WorkLifeBalance) ||
		!assessment.ValidRating(in.SalaryImportance) {
		return assessment.Assessment{}, ErrInvalidInput
	}

	interests := make([]string, 0, len(in.Interests))
	seen := map[string]struct{}{}
	for _, it := range in.Interests {
		it = strings.TrimSpace(it)
		key := strings.ToLower(it)
		if it == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		interests = append(interests, it)
	}

	workStyle := make(map[string]string, len(in.WorkStyle))
	for k, v := range in.WorkStyle {
		if k = strings.TrimSpace(k); k != "" {
			workStyle[k] = strings.TrimSpace(v)
		}
	}

	created, err := u.repo.Create(ctx, assessment.Assessment{
		ID:               uuid.New(),
		UserID:           userID,
		Interests:        interests,
		WorkStyle:        workStyle,
		CareerGoals:      strings.TrimSpace(in.CareerGoals),
		RiskTolerance:    in.RiskTolerance,
		WorkLifeBalance:  in.WorkLifeBalance,
		SalaryImportance: in.SalaryImportance,
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return assessment.Assessment{}, ErrUserNotFound
		}
		return assessment.Assessment{}, ErrInternal
	}
	return created, nil
}

// Latest reports false when the user never submitted an assessment.
func (u *Assessment) Latest(ctx context.Context, userID uuid.UUID) (assessment.Assessment, bool, error) {
	a, err := u.repo.LatestByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrAssessmentNotFound) {
			return assessment.Assessment{}, false, nil
		}
		return assessment.Assessment{}, false, ErrInternal
	}
	return a, true, nil
}
