package rediscache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "locker:attempts:"

var ErrInvalidWindow = errors.New("attempt window must be positive")

type Options struct {
	Addr     string
	Password string
	DB       int
}

// AttemptLimiter is a fixed window counter shared by every service replica.
// Each key gets at most limit attempts per window.
type AttemptLimiter struct {
	c      *redis.Client
	limit  int64
	window time.Duration
	now    func() time.Time
}

func NewAttemptLimiter(opts Options, limit int, window time.Duration) *AttemptLimiter {
	return newAttemptLimiter(redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	}), limit, window, time.Now)
}

func newAttemptLimiter(c *redis.Client, limit int, window time.Duration, now func() time.Time) *AttemptLimiter {
	return &AttemptLimiter{
		c:      c,
		limit:  int64(limit),
		window: window,
		now:    now,
	}
}

// Allow increments the counter of the current window for key.
func (l *AttemptLimiter) Allow(ctx context.Context, key string) (bool, error) {
	n, err := l.Count(ctx, key)
	if err != nil {
		return false, err
	}
	return n <= l.limit, nil
}

// Count increments and returns the counter of the current window.
func (l *AttemptLimiter) Count(ctx context.Context, key string) (int64, error) {
	if l.window <= 0 {
		return 0, ErrInvalidWindow
	}
	bucket := l.now().UnixNano() / int64(l.window)
	redisKey := keyPrefix + key + ":" + strconv.FormatInt(bucket, 10)

	pipe := l.c.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("redis attempt counter: %w", err)
	}
	return incr.Val(), nil
}

func (l *AttemptLimiter) Ping(ctx context.Context) error {
	if err := l.c.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

func (l *AttemptLimiter) Close() error {
	return l.c.Close()
}
