package usecase

import (
	"context"
	"time"

	"career-compass/internal/domain"
	"career-compass/internal/repository"
)

type StatusUsecase interface {
	GetStatus(ctx context.Context) (*domain.SystemStatus, error)
}

// Pinger is satisfied by the database pool and the Redis cache.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Status struct {
	repo  repository.StatusRepository
	db    Pinger
	redis Pinger
	now   func() time.Time
}

func NewStatusUsecase(repo repository.StatusRepository, db Pinger, redis Pinger) *Status {
	return &Status{repo: repo, db: db, redis: redis, now: time.Now}
}

func (u *Status) GetStatus(ctx context.Context) (*domain.SystemStatus, error) {
	total, active, err := u.repo.CountCareers(ctx)
	if err != nil {
		return nil, err
	}
	skills, err := u.repo.CountSkills(ctx)
	if err != nil {
		return nil, err
	}
	today, err := u.repo.CountRecommendationsToday(ctx)
	if err != nil {
		return nil, err
	}
	industries, err := u.repo.GetIndustryStats(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.SystemStatus{
		TotalCareers:         total,
		ActiveCareers:        active,
		TotalSkills:          skills,
		RecommendationsToday: today,
		Industries:           industries,
		DatabaseHealthy:      ping(ctx, u.db),
		RedisHealthy:         ping(ctx, u.redis),
		ServerTime:           u.now().UTC(),
	}, nil
}

func ping(ctx context.Context, p Pinger) bool {
	if p == nil {
		return false
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return p.Ping(pingCtx) == nil
}
