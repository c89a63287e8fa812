package cache

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"strings"
	"sync/atomic"
	"time"

	"grad-match/internal/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	defaultTTL     = 600 * time.Second
	defaultLockTTL = 30 * time.Second
)

var ErrUnavailable = errors.New("redis unavailable")

// releaseScript deletes a lock only while it still holds the caller's token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

// Redis is a JSON cache that degrades to a no-op when the server cannot be
// reached. Every method is safe on a nil receiver.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger

	warnedUnavailable atomic.Bool
}

func NewRedis(cfg config.RedisConfig, log *zap.Logger) *Redis {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("cache")

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if !cfg.Enabled {
		log.Info("ranking cache disabled")
		return &Redis{ttl: ttl, log: log}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(strings.TrimSpace(cfg.Host), strings.TrimSpace(cfg.Port)),
		Password: cfg.Password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("redis unavailable, bypassing cache", zap.Error(err))
		_ = client.Close()
		return &Redis{ttl: ttl, log: log}
	}

	return &Redis{client: client, ttl: ttl, log: log}
}

func (r *Redis) isUnavailable() bool {
	return r == nil || r.client == nil
}

func (r *Redis) warnUnavailableOnce(err error) {
	if r == nil || r.log == nil {
		return
	}
	if r.warnedUnavailable.CompareAndSwap(false, true) {
		r.log.Warn("redis command failed, results will not be cached", zap.Error(err))
	}
}

func (r *Redis) Ping(ctx context.Context) error {
	if r.isUnavailable() {
		return ErrUnavailable
	}
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Close() error {
	if r.isUnavailable() {
		return nil
	}
	return r.client.Close()
}

func (r *Redis) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	if r.isUnavailable() {
		return false, nil
	}
	b, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		r.warnUnavailableOnce(err)
		return false, err
	}
	if len(b) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Redis) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if r.isUnavailable() {
		return nil
	}
	if ttl <= 0 {
		ttl = r.ttl
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, key, b, ttl).Err(); err != nil {
		r.warnUnavailableOnce(err)
		return err
	}
	return nil
}

// DeleteByPattern removes every key matching a SCAN pattern.
func (r *Redis) DeleteByPattern(ctx context.Context, pattern string) error {
	if r.isUnavailable() {
		return nil
	}
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return nil
	}

	iter := r.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		k := iter.Val()
		if err := r.client.Del(ctx, k).Err(); err != nil {
			r.log.Warn("redis delete failed", zap.String("key", k), zap.String("pattern", pattern), zap.Error(err))
		}
	}
	return iter.Err()
}

// AcquireLock sets key to token when absent. It reports false when the cache
// is unavailable so callers compute without coordination.
func (r *Redis) AcquireLock(ctx context.Context, key, token string, ttl time.Duration) (bool, error) {
	if r.isUnavailable() {
		return false, nil
	}
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	ok, err := r.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		r.warnUnavailableOnce(err)
		return false, err
	}
	return ok, nil
}

func (r *Redis) ReleaseLock(ctx context.Context, key, token string) error {
	if r.isUnavailable() {
		return nil
	}
	if err := releaseScript.Run(ctx, r.client, []string{key}, token).Err(); err != nil && !errors.Is(err, redis.Nil) {
		r.warnUnavailableOnce(err)
		return err
	}
	return nil
}
