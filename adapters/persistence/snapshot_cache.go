package persistence

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Autum7899/My-Portfolio/pkg/logger"
)

const (
	snapshotCacheKey = "portfolio:snapshot"
	snapshotCacheTTL = 5 * time.Minute
)

// SnapshotCache fronts the public snapshot read with redis. The cached value
// is the encoded response payload; misses and cache failures are absorbed,
// the database remains the source of truth.
type SnapshotCache interface {
	Get(ctx context.Context) ([]byte, bool)
	Set(ctx context.Context, payload []byte)
	Invalidate(ctx context.Context)
}

type redisSnapshotCache struct {
	rdb    *redis.Client
	logger logger.Logger
}

func NewRedisSnapshotCache(rdb *redis.Client, log logger.Logger) SnapshotCache {
	return &redisSnapshotCache{rdb: rdb, logger: log}
}

func (c *redisSnapshotCache) Get(ctx context.Context) ([]byte, bool) {
	data, err := c.rdb.Get(ctx, snapshotCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("snapshot cache read failed", zap.Error(err))
		}
		return nil, false
	}
	return data, true
}

func (c *redisSnapshotCache) Set(ctx context.Context, payload []byte) {
	if err := c.rdb.Set(ctx, snapshotCacheKey, payload, snapshotCacheTTL).Err(); err != nil {
		c.logger.Warn("snapshot cache write failed", zap.Error(err))
	}
}

func (c *redisSnapshotCache) Invalidate(ctx context.Context) {
	if err := c.rdb.Del(ctx, snapshotCacheKey).Err(); err != nil {
		c.logger.Warn("snapshot cache invalidation failed", zap.Error(err))
	}
}
