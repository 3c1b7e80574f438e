package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Cache is the subset of the Redis cache the usecases need. Implementations
// must treat an unreachable backend as a miss.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteByPattern(ctx context.Context, pattern string) error
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
	DeleteIfEquals(ctx context.Context, key string, value string) (bool, error)
}

// Notifier pushes events to a user's live connections.
type Notifier interface {
	RecommendationsUpdated(userID uuid.UUID, count int, topCareer string)
}

type noopCache struct{}

func (noopCache) GetJSON(context.Context, string, any) (bool, error)        { return false, nil }
func (noopCache) SetJSON(context.Context, string, any, time.Duration) error { return nil }
func (noopCache) Delete(context.Context, string) error                      { return nil }
func (noopCache) DeleteByPattern(context.Context, string) error             { return nil }
func (noopCache) SetIfNotExists(context.Context, string, string, time.Duration) (bool, error) {
	return true, nil
}
func (noopCache) DeleteIfEquals(context.Context, string, string) (bool, error) { return true, nil }

type noopNotifier struct{}

func (noopNotifier) RecommendationsUpdated(uuid.UUID, int, string) {}
