// Package cache keeps short-lived snapshots of a tenant's scored population.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"barhub/internal/crm/models"
	id "barhub/pkg/domain"
	"barhub/pkg/platform/sentinel"
)

const keyPrefix = "barhub:crm:snapshot"

// RedisSnapshotCache stores JSON snapshots keyed by tenant and civil date, so a
// snapshot never outlives the day its recency values were computed for.
type RedisSnapshotCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisSnapshotCache returns a cache whose entries expire after ttl.
func NewRedisSnapshotCache(client redis.Cmdable, ttl time.Duration) *RedisSnapshotCache {
	return &RedisSnapshotCache{client: client, ttl: ttl}
}

func snapshotKey(tenantID id.TenantID, asOf time.Time) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, tenantID.String(), models.DateKey(models.CivilDate(asOf)))
}

// Get returns sentinel.ErrNotFound on a miss.
func (c *RedisSnapshotCache) Get(ctx context.Context, tenantID id.TenantID, asOf time.Time) (*models.ScoredPopulation, error) {
	raw, err := c.client.Get(ctx, snapshotKey(tenantID, asOf)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: redis get snapshot: %v", sentinel.ErrUnavailable, err)
	}

	var pop models.ScoredPopulation
	if err := json.Unmarshal(raw, &pop); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &pop, nil
}

func (c *RedisSnapshotCache) Put(ctx context.Context, tenantID id.TenantID, asOf time.Time, pop *models.ScoredPopulation) error {
	raw, err := json.Marshal(pop)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := c.client.Set(ctx, snapshotKey(tenantID, asOf), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: redis set snapshot: %v", sentinel.ErrUnavailable, err)
	}
	return nil
}
