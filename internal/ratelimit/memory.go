// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ratelimit

import (
	"context"
	"time"

	"github.com/MKhiriev/go-qr-attendance/internal/utils"
	"github.com/patrickmn/go-cache"
)

const memoryKeyPrefix = "ratelimit"

// MemoryLimiter keeps per-window counters in a go-cache instance. Counters
// of past windows are evicted by the cache janitor.
type MemoryLimiter struct {
	counters *cache.Cache
	limit    int
	window   time.Duration
	clock    utils.Clock
}

// NewMemoryLimiter allows limit events per window for every key.
func NewMemoryLimiter(limit int, window time.Duration, clock utils.Clock) *MemoryLimiter {
	return &MemoryLimiter{
		counters: cache.New(window, 2*window),
		limit:    limit,
		window:   window,
		clock:    clock,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	k := windowKey(memoryKeyPrefix, key, l.clock.Now(), l.window)

	for {
		if err := l.counters.Add(k, 1, l.window); err == nil {
			return l.limit >= 1, nil
		}
		// the counter may expire between Add and IncrementInt
		count, err := l.counters.IncrementInt(k, 1)
		if err == nil {
			return count <= l.limit, nil
		}
	}
}
