package lock

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"lightmap/internal/domain/service"
	"lightmap/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	redisKeyPrefix    = "lightmap:region:"
	redisRetryBackoff = 10 * time.Millisecond
	redisReleaseWait  = 2 * time.Second
)

// releaseScript deletes the key only while it still carries our token, so an
// expired lock that was taken over is never released by its old holder.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// RedisLocker holds region locks as redis keys set with NX and a TTL.
type RedisLocker struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisLocker creates a locker whose locks expire after ttl if never released.
func NewRedisLocker(client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisLocker {
	return &RedisLocker{client: client, ttl: ttl, logger: logger}
}

var _ service.RegionLocker = (*RedisLocker)(nil)

// Lock acquires keys in the given order, polling until each is free or ctx is done.
func (l *RedisLocker) Lock(ctx context.Context, keys []int64) (func(), error) {
	token := uuid.NewString()
	acquired := make([]string, 0, len(keys))
	release := func() {
		releaseCtx, cancel := context.WithTimeout(context.Background(), redisReleaseWait)
		defer cancel()

		for i := len(acquired) - 1; i >= 0; i-- {
			if err := releaseScript.Run(releaseCtx, l.client, []string{acquired[i]}, token).Err(); err != nil {
				l.logger.Warn("Failed to release region lock",
					slog.String("key", acquired[i]),
					slog.Any("error", err),
				)
			}
		}
	}

	for _, key := range keys {
		redisKey := redisKeyPrefix + strconv.FormatInt(key, 10)
		if err := l.acquire(ctx, redisKey, token); err != nil {
			release()

			return nil, err
		}
		acquired = append(acquired, redisKey)
	}

	return onceFunc(release), nil
}

func (l *RedisLocker) acquire(ctx context.Context, key, token string) error {
	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return errors.Wrapf(err, "failed to acquire region lock %s", key)
		}
		if ok {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(redisRetryBackoff):
		}
	}
}
