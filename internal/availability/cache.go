package availability

import (
	"context"
	"time"
)

type verdictStore interface {
	GetAvailability(ctx context.Context, candidate string) (string, bool, error)
	SetAvailability(ctx context.Context, candidate, status string, ttl time.Duration) error
}

type redisCache struct {
	store verdictStore
}

// NewRedisCache adapts the shared redis client into a verdict cache. Entries
// that do not decode to a definitive verdict count as misses.
func NewRedisCache(store verdictStore) Cache {
	return &redisCache{store: store}
}

func (c *redisCache) GetAvailability(ctx context.Context, candidate string) (Status, bool, error) {
	raw, ok, err := c.store.GetAvailability(ctx, candidate)
	if err != nil || !ok {
		return "", false, err
	}
	switch status := Status(raw); status {
	case StatusAvailable, StatusTaken:
		return status, true, nil
	}
	return "", false, nil
}

func (c *redisCache) SetAvailability(ctx context.Context, candidate string, status Status, ttl time.Duration) error {
	return c.store.SetAvailability(ctx, candidate, string(status), ttl)
}
