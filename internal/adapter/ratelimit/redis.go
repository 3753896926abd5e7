package ratelimit

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"proxymarket/internal/adapter/config"
)

// RedisLimiter is a sliding-window rate limiter on a Redis sorted set per
// key. When Redis is unreachable the limiter fails open: availability of
// the order path wins over strict limiting.
type RedisLimiter struct {
	client *redis.Client
	logger *zap.Logger
}

func NewRedisLimiter(cfg *config.Redis, log *zap.Logger) *RedisLimiter {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
	})

	return &RedisLimiter{
		client: client,
		logger: log,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) bool {
	now := time.Now()
	windowStart := now.Add(-window)

	pipe := l.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart.UnixNano(), 10))
	count := pipe.ZCard(ctx, key)
	_, err := pipe.Exec(ctx)
	if err != nil {
		l.logger.Warn("rate limiter unavailable, allowing request",
			zap.String("key", key), zap.Error(err))
		return true
	}

	if count.Val() >= int64(limit) {
		return false
	}

	// The member must be unique per request: two requests in the same
	// nanosecond would otherwise collapse into one set entry.
	pipe = l.client.TxPipeline()
	pipe.ZAdd(ctx, key, redis.Z{
		Score:  float64(now.UnixNano()),
		Member: strconv.FormatInt(now.UnixNano(), 10) + ":" + uuid.NewString(),
	})
	pipe.Expire(ctx, key, window)
	_, err = pipe.Exec(ctx)
	if err != nil {
		l.logger.Warn("rate limiter record failed, allowing request",
			zap.String("key", key), zap.Error(err))
	}

	return true
}

func (l *RedisLimiter) Close() error {
	return l.client.Close()
}
