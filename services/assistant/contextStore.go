// File: services/assistant/contextStore.go
package assistant

import (
	"context"
	"encoding/json"
	"time"

	"bot9palace/models"
	"bot9palace/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const chatContextPrefix = "chat:ctx:"

// HistoryStore caches the recent transcript window per session so a turn
// normally avoids a history read. It is best-effort: a miss or failure
// falls back to the transcript store.
type HistoryStore interface {
	Get(ctx context.Context, sessionID string) ([]models.TranscriptEntry, bool)
	Set(ctx context.Context, sessionID string, entries []models.TranscriptEntry)
	Clear(ctx context.Context, sessionID string)
}

type RedisHistoryStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisHistoryStore(client *redis.Client, ttl time.Duration) *RedisHistoryStore {
	return &RedisHistoryStore{client: client, ttl: ttl}
}

func (s *RedisHistoryStore) Get(ctx context.Context, sessionID string) ([]models.TranscriptEntry, bool) {
	key := chatContextPrefix + sessionID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		utils.GetLogger().Debug("history cache read failed", zap.Error(err))
		return nil, false
	}
	var entries []models.TranscriptEntry
	if err := json.Unmarshal([]byte(data), &entries); err != nil {
		utils.GetLogger().Debug("history cache decode failed", zap.Error(err))
		return nil, false
	}
	return entries, true
}

func (s *RedisHistoryStore) Set(ctx context.Context, sessionID string, entries []models.TranscriptEntry) {
	key := chatContextPrefix + sessionID
	b, err := json.Marshal(entries)
	if err != nil {
		utils.GetLogger().Debug("history cache encode failed", zap.Error(err))
		return
	}
	if err := s.client.Set(ctx, key, b, s.ttl).Err(); err != nil {
		utils.GetLogger().Debug("history cache write failed", zap.Error(err))
	}
}

func (s *RedisHistoryStore) Clear(ctx context.Context, sessionID string) {
	key := chatContextPrefix + sessionID
	if err := s.client.Del(ctx, key).Err(); err != nil {
		utils.GetLogger().Debug("history cache clear failed", zap.Error(err))
	}
}
