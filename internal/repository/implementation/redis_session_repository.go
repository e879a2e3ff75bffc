package implementation

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"ai-triage-be/internal/pkg/logger"
	"ai-triage-be/pkg/triage/dialog"
)

// RedisSessionRepository keeps dialogue contexts in Redis so sessions
// survive restarts and are shared across instances. Contexts go through
// their JSON export format on the wire.
type RedisSessionRepository struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger logger.ILogger
}

func NewRedisSessionRepository(rdb *redis.Client, ttl time.Duration, log logger.ILogger) *RedisSessionRepository {
	if ttl <= 0 {
		ttl = 1 * time.Hour
	}
	return &RedisSessionRepository{rdb: rdb, ttl: ttl, logger: log}
}

func sessionKey(id string) string {
	return "triage:session:" + id
}

func (r *RedisSessionRepository) Save(ctx *dialog.Context) {
	data, err := ctx.Export()
	if err != nil {
		r.logger.Error("RedisSessionRepo", "Failed to serialize session", map[string]interface{}{
			"session_id": ctx.SessionID,
			"error":      err.Error(),
		})
		return
	}
	if err := r.rdb.Set(context.Background(), sessionKey(ctx.SessionID), data, r.ttl).Err(); err != nil {
		r.logger.Error("RedisSessionRepo", "Failed to save session", map[string]interface{}{
			"session_id": ctx.SessionID,
			"error":      err.Error(),
		})
	}
}

func (r *RedisSessionRepository) Get(sessionID string) (*dialog.Context, bool) {
	data, err := r.rdb.Get(context.Background(), sessionKey(sessionID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			r.logger.Warn("RedisSessionRepo", "Failed to load session", map[string]interface{}{
				"session_id": sessionID,
				"error":      err.Error(),
			})
		}
		return nil, false
	}
	ctx, err := dialog.Import(data)
	if err != nil {
		r.logger.Warn("RedisSessionRepo", "Corrupt session payload", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		return nil, false
	}
	return ctx, true
}

func (r *RedisSessionRepository) Delete(sessionID string) {
	if err := r.rdb.Del(context.Background(), sessionKey(sessionID)).Err(); err != nil {
		r.logger.Warn("RedisSessionRepo", "Failed to delete session", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
	}
}
