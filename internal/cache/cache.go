// Package cache memoizes plan results behind Redis. Because Plan is a
// pure, deterministic function of its input (§5's determinism guarantee),
// caching on a hash of the request is safe: a cache hit is
// indistinguishable from a fresh simulation.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/draymaster/hos-planner/internal/domain"
)

// DefaultTTL is how long a cached plan result survives before it must be
// recomputed.
const DefaultTTL = 15 * time.Minute

// PlanCache stores TripResults keyed by a hash of their request.
type PlanCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New builds a PlanCache over an existing Redis client.
func New(client *redis.Client) *PlanCache {
	return &PlanCache{client: client, ttl: DefaultTTL}
}

// Key derives the cache key from a request's fields. It does not cover the
// HOS rule set the plan runs under.
func Key(req domain.TripRequest) (string, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("marshal trip request: %w", err)
	}
	sum := sha256.Sum256(data)
	return "hos-planner:plan:" + hex.EncodeToString(sum[:]), nil
}

// Get returns the cached result for key, or ok=false on a miss.
func (c *PlanCache) Get(ctx context.Context, key string) (*domain.TripResult, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get plan cache key %s: %w", key, err)
	}

	var result domain.TripResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached plan: %w", err)
	}
	return &result, true, nil
}

// Set stores result under key with the cache's TTL.
func (c *PlanCache) Set(ctx context.Context, key string, result *domain.TripResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal plan result: %w", err)
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("set plan cache key %s: %w", key, err)
	}
	return nil
}
