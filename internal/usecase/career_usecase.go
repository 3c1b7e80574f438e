package usecase

import (
	"context"
	"errors"
	"math"

	"career-compass/internal/domain/career"
	"career-compass/internal/repository"

	"github.com/google/uuid"
)

const (
	MinCompareCareers = 2
	MaxCompareCareers = 5
)

// CareerComparison pairs a career with the user's newest stored match
// score; MatchScore is nil when the career was never recommended.
type CareerComparison struct {
	Career     career.Career
	MatchScore *float64
}

type CareerUsecase interface {
	GetCareer(ctx context.Context, careerID uuid.UUID) (career.Career, error)
	CompareCareers(ctx context.Context, userID uuid.UUID, careerIDs []uuid.UUID) ([]CareerComparison, error)
}

type Career struct {
	careers repository.CareerRepository
	recs    repository.RecommendationRepository
}

func NewCareerUsecase(careers repository.CareerRepository, recs repository.RecommendationRepository) *Career {
	return &Career{careers: careers, recs: recs}
}

func (u *Career) GetCareer(ctx context.Context, careerID uuid.UUID) (career.Career, error) {
	if careerID == uuid.Nil {
		return career.Career{}, ErrInvalidInput
	}
	c, err := u.careers.GetByIDWithSkills(ctx, careerID)
	if err != nil {
		if errors.Is(err, repository.ErrCareerNotFound) {
			return career.Career{}, ErrCareerNotFound
		}
		return career.Career{}, ErrInternal
	}
	return c, nil
}

func (u *Career) CompareCareers(ctx context.Context, userID uuid.UUID, careerIDs []uuid.UUID) ([]CareerComparison, error) {
	ids := make([]uuid.UUID, 0, len(careerIDs))
	seen := map[uuid.UUID]struct{}{}
	for _, id := range careerIDs {
		if id == uuid.Nil {
			return nil, ErrInvalidInput
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	if len(ids) < MinCompareCareers || len(ids) > MaxCompareCareers {
		return nil, ErrInvalidInput
	}

	found, err := u.careers.ListByIDs(ctx, ids)
	if err != nil {
		return nil, ErrInternal
	}
	if len(found) != len(ids) {
		return nil, ErrCareerNotFound
	}

	scores, err := u.recs.LatestScores(ctx, userID, ids)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]CareerComparison, 0, len(found))
	for _, c := range found {
		cmp := CareerComparison{Career: c}
		if s, ok := scores[c.ID]; ok {
			score := s
			cmp.MatchScore = &score
		}
		out = append(out, cmp)
	}
	return out, nil
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
