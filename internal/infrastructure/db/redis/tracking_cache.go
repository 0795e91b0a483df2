package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sevakendra/portal-api/internal/api/metrics"
	"github.com/sevakendra/portal-api/internal/core/domain"
)

const trackingTTL = 5 * time.Minute

// TrackingCache caches request snapshots for the public tracking
// endpoint, which is polled far more often than it changes.
// Key format: track:<registration_no>
type TrackingCache struct {
	client *redis.Client
}

// NewTrackingCache creates a TrackingCache wrapping the given Redis client.
func NewTrackingCache(client *redis.Client) *TrackingCache {
	return &TrackingCache{client: client}
}

// Get returns the cached snapshot for registrationNo, or nil on a miss.
func (c *TrackingCache) Get(ctx context.Context, registrationNo string) (*domain.Request, error) {
	raw, err := c.client.Get(ctx, c.key(registrationNo)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.TrackingCacheTotal.WithLabelValues("miss").Inc()
			return nil, nil
		}
		return nil, fmt.Errorf("tracking cache get: %w", err)
	}

	var req domain.Request
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, fmt.Errorf("tracking cache decode: %w", err)
	}
	metrics.TrackingCacheTotal.WithLabelValues("hit").Inc()
	return &req, nil
}

// Set stores a snapshot of r, expiring after trackingTTL.
func (c *TrackingCache) Set(ctx context.Context, r *domain.Request) error {
	raw, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("tracking cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(r.RegistrationNo), raw, trackingTTL).Err()
}

// Invalidate drops the snapshot so the next lookup sees fresh state.
func (c *TrackingCache) Invalidate(ctx context.Context, registrationNo string) error {
	return c.client.Del(ctx, c.key(registrationNo)).Err()
}

func (c *TrackingCache) key(registrationNo string) string {
	return "track:" + registrationNo
}
