package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/BoomMccloud/interviewer-pro-sub001/internal/interview"
)

// releaseScript deletes the lock only if this request still holds it,
// so a slow request cannot free a lock the TTL already handed to
// someone else.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// SessionLock serializes mutations per session with a Redis SET NX
// lock. It implements interview.Locker.
type SessionLock struct {
	rdb *redis.Client
	ttl time.Duration
	log *zap.SugaredLogger
}

func NewSessionLock(rdb *redis.Client, ttl time.Duration, log *zap.SugaredLogger) *SessionLock {
	return &SessionLock{rdb: rdb, ttl: ttl, log: log}
}

func lockKey(sessionID uuid.UUID) string {
	return "session_lock:" + sessionID.String()
}

// Acquire takes the per-session lock or reports ErrLockBusy when
// another mutation holds it. The TTL bounds how long a crashed request
// can block the session.
func (l *SessionLock) Acquire(ctx context.Context, sessionID uuid.UUID) (func(), error) {
	key := lockKey(sessionID)
	token := uuid.NewString()

	ok, err := l.rdb.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", key, err)
	}
	if !ok {
		return nil, interview.ErrLockBusy
	}

	release := func() {
		// release outlives the request context
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := releaseScript.Run(ctx, l.rdb, []string{key}, token).Err(); err != nil && l.log != nil {
			l.log.Warnw("release session lock", "key", key, "err", err)
		}
	}
	return release, nil
}
