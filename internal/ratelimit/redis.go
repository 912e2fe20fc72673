// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-qr-attendance/internal/config"
	"github.com/MKhiriev/go-qr-attendance/internal/utils"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "attendance:ratelimit"

// RedisLimiter counts events with INCR on a per-window key that expires
// together with the window.
type RedisLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
	clock  utils.Clock
}

// NewRedisClient connects to redis with short timeouts.
func NewRedisClient(cfg config.Redis) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  1 * time.Second,
		WriteTimeout: 1 * time.Second,
	})
}

// NewRedisLimiter allows limit events per window for every key.
func NewRedisLimiter(client *redis.Client, limit int, window time.Duration, clock utils.Clock) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		limit:  limit,
		window: window,
		clock:  clock,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := windowKey(redisKeyPrefix, key, l.clock.Now(), l.window)

	var incr *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, k)
		pipe.Expire(ctx, k, l.window)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrLimiterUnavailable, err)
	}

	return incr.Val() <= int64(l.limit), nil
}

// Healthy verifies redis connectivity.
func (l *RedisLimiter) Healthy(ctx context.Context) bool {
	return l.client.Ping(ctx).Err() == nil
}
