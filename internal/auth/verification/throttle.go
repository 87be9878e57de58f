package verification

import (
	"context"
	"time"

	"github.com/shad03152015/HotRide/internal/redis"
)

const (
	throttlePrefix = "codesend:"
	throttleLimit  = 5
	throttleWindow = time.Hour
)

// RedisThrottle counts sends per identifier in a rolling window. It exists
// to keep SMS/email costs bounded; correctness of verification never
// depends on it.
type RedisThrottle struct {
	client *redis.Client
}

func NewRedisThrottle(client *redis.Client) *RedisThrottle {
	return &RedisThrottle{client: client}
}

func (t *RedisThrottle) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := throttlePrefix + key

	count, err := t.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, err
	}

	if count == 1 {
		if err := t.client.Expire(ctx, redisKey, throttleWindow).Err(); err != nil {
			return false, err
		}
	}

	return count <= throttleLimit, nil
}
