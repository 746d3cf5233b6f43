package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/unistay/rental-platform/internal/core/domain"
)

const holdTTL = 5 * time.Second

// PropertyLocker provides a short-lived per-property hold backed by Redis.
// Key format: hold:property:<property_id>
//
// The hold serializes the booking overlap check: only one request per
// property may be between read and write at a time. The TTL bounds the hold
// if a holder dies before releasing.
type PropertyLocker struct {
	client *redis.Client
}

// NewPropertyLocker creates a PropertyLocker wrapping the given Redis client.
func NewPropertyLocker(client *redis.Client) *PropertyLocker {
	return &PropertyLocker{client: client}
}

// Acquire takes the hold for propertyID and returns a release function. When
// another request already holds it, domain.ErrConflict is returned and the
// caller should retry.
func (l *PropertyLocker) Acquire(ctx context.Context, propertyID string) (func(), error) {
	key := l.key(propertyID)

	ok, err := l.client.SetNX(ctx, key, "1", holdTTL).Result()
	if err != nil {
		return nil, fmt.Errorf("property hold: %w", err)
	}
	if !ok {
		return nil, domain.ErrConflict
	}

	release := func() {
		// Releasing on a background context: the request context may already
		// be done, and the TTL covers a failed delete anyway.
		releaseCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = l.client.Del(releaseCtx, key).Err()
	}
	return release, nil
}

func (l *PropertyLocker) key(propertyID string) string {
	return "hold:property:" + propertyID
}
