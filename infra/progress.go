package infra

import (
	"context"
	"encoding/json"
	"time"

	"github.com/tnqbao/gau-dam-service/uploader"
)

// ProgressStore keeps transient per-batch upload progress in a Redis hash
// (field = filename) with a TTL. It implements uploader.ProgressSink.
type ProgressStore struct {
	redis  *RedisClient
	logger *LoggerClient
	ttl    time.Duration
}

func NewProgressStore(redis *RedisClient, logger *LoggerClient, ttl time.Duration) *ProgressStore {
	return &ProgressStore{
		redis:  redis,
		logger: logger,
		ttl:    ttl,
	}
}

func progressKey(batchID string) string {
	return "upload:progress:" + batchID
}

// Update writes one file's milestone. Progress tracking is best effort; a
// Redis failure is logged and never fails the upload itself.
func (s *ProgressStore) Update(ctx context.Context, batchID string, progress uploader.Progress) {
	key := progressKey(batchID)
	if err := s.redis.HSet(ctx, key, progress.Filename, progress); err != nil {
		s.logger.WarningWithContextf(ctx, "[Progress] Failed to record progress for %s in batch %s: %v", progress.Filename, batchID, err)
		return
	}
	if err := s.redis.Expire(ctx, key, s.ttl); err != nil {
		s.logger.WarningWithContextf(ctx, "[Progress] Failed to refresh TTL for batch %s: %v", batchID, err)
	}
}

// Batch returns every file's latest progress for a batch. An expired or
// unknown batch yields an empty slice.
func (s *ProgressStore) Batch(ctx context.Context, batchID string) ([]uploader.Progress, error) {
	fields, err := s.redis.HGetAll(ctx, progressKey(batchID))
	if err != nil {
		return nil, err
	}

	out := make([]uploader.Progress, 0, len(fields))
	for _, raw := range fields {
		var p uploader.Progress
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}
