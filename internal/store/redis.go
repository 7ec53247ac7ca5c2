package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig carries connection settings for the networked store.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

// Redis is a Store backed by a Redis server. Every operation falls back to a
// shared in-process Memory store when the server is unreachable, logging
// instead of failing, so callers never observe store-layer errors as request
// failures. The fallback is a development convenience, not durability.
type Redis struct {
	client   *redis.Client
	fallback *Memory
	logger   *log.Logger

	warnedUnavailable atomic.Bool
}

func NewRedis(cfg RedisConfig, logger *log.Logger) *Redis {
	if logger == nil {
		logger = log.Default()
	}

	host := cfg.Host
	if host == "" {
		host = "localhost"
	}
	port := cfg.Port
	if port == "" {
		port = "6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: cfg.Password,
		DB:       0,
	})

	r := &Redis{client: client, fallback: NewMemory(), logger: logger}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		r.warnUnavailableOnce(err)
	}

	return r
}

func (r *Redis) warnUnavailableOnce(err error) {
	if r.warnedUnavailable.CompareAndSwap(false, true) {
		r.logger.Printf("[store] Redis unavailable, using in-memory fallback: %v", err)
	}
}

func (r *Redis) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, key, b, ttl).Err(); err != nil {
		r.warnUnavailableOnce(err)
		return r.fallback.Set(ctx, key, value, ttl)
	}
	return nil
}

func (r *Redis) Get(ctx context.Context, key string, out any) (bool, error) {
	b, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		r.warnUnavailableOnce(err)
		return r.fallback.Get(ctx, key, out)
	}
	if len(b) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.warnUnavailableOnce(err)
		return r.fallback.Delete(ctx, key)
	}
	return nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}
