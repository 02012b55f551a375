package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/BoomMccloud/interviewer-pro-sub001/internal/interview"
)

// StateCache holds GetActiveSessionState projections in Redis. Every
// method is best-effort: a Redis outage degrades reads to the database,
// it never fails a request. Implements interview.StateCache.
type StateCache struct {
	rdb *redis.Client
	ttl time.Duration
	log *zap.SugaredLogger
}

func NewStateCache(rdb *redis.Client, ttl time.Duration, log *zap.SugaredLogger) *StateCache {
	return &StateCache{rdb: rdb, ttl: ttl, log: log}
}

func stateKey(sessionID uuid.UUID) string {
	return "session_state:" + sessionID.String()
}

func (c *StateCache) Get(ctx context.Context, sessionID uuid.UUID) (*interview.SessionState, bool) {
	b, err := c.rdb.Get(ctx, stateKey(sessionID)).Bytes()
	if err != nil {
		if err != redis.Nil && c.log != nil {
			c.log.Warnw("state cache get", "session_id", sessionID, "err", err)
		}
		return nil, false
	}
	var state interview.SessionState
	if err := json.Unmarshal(b, &state); err != nil {
		if c.log != nil {
			c.log.Warnw("state cache decode", "session_id", sessionID, "err", err)
		}
		return nil, false
	}
	return &state, true
}

func (c *StateCache) Set(ctx context.Context, sessionID uuid.UUID, state *interview.SessionState) {
	b, err := json.Marshal(state)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, stateKey(sessionID), b, c.ttl).Err(); err != nil && c.log != nil {
		c.log.Warnw("state cache set", "session_id", sessionID, "err", err)
	}
}

func (c *StateCache) Invalidate(ctx context.Context, sessionID uuid.UUID) {
	if err := c.rdb.Del(ctx, stateKey(sessionID)).Err(); err != nil && c.log != nil {
		c.log.Warnw("state cache invalidate", "session_id", sessionID, "err", err)
	}
}
