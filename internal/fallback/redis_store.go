package fallback

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Autum7899/My-Portfolio/internal/domain/content"
	"github.com/Autum7899/My-Portfolio/pkg/logger"
)

const snapshotKey = "portfolio:fallback:snapshot"

// RedisStore is the fallback variant for clients that already run next to a
// redis instance. Same contract as FileStore; no TTL, the snapshot is always
// the latest state.
type RedisStore struct {
	rdb *redis.Client
	log logger.Logger
}

func NewRedisStore(rdb *redis.Client, log logger.Logger) *RedisStore {
	return &RedisStore{rdb: rdb, log: log}
}

func (s *RedisStore) Save(ctx context.Context, snap content.Snapshot) {
	data, err := json.Marshal(snap)
	if err != nil {
		s.log.Warn("fallback: failed to encode snapshot", zap.Error(err))
		return
	}
	if err := s.rdb.Set(ctx, snapshotKey, data, 0).Err(); err != nil {
		s.log.Warn("fallback: failed to persist snapshot to redis", zap.Error(err))
	}
}

func (s *RedisStore) Load(ctx context.Context) (content.Snapshot, bool) {
	data, err := s.rdb.Get(ctx, snapshotKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.log.Warn("fallback: failed to read snapshot from redis", zap.Error(err))
		}
		return content.Snapshot{}, false
	}

	var snap content.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		s.log.Warn("fallback: stored snapshot is corrupt", zap.Error(err))
		return content.Snapshot{}, false
	}
	return snap, true
}
