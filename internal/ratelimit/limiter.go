// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=limiter.go -destination=../mock/limiter_mock.go -package=mock

package ratelimit

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/MKhiriev/go-qr-attendance/internal/config"
	"github.com/MKhiriev/go-qr-attendance/internal/utils"
)

// MarkWindow is the window of the attendance submission limit.
const MarkWindow = time.Minute

// ErrLimiterUnavailable wraps backend failures of a [Limiter].
var ErrLimiterUnavailable = errors.New("rate limiter unavailable")

// Limiter decides whether one more event for key fits into the current window.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// windowKey names the counter of key for the window containing now.
func windowKey(prefix, key string, now time.Time, window time.Duration) string {
	start := now.Truncate(window).Unix()
	return prefix + ":" + key + ":" + strconv.FormatInt(start, 10)
}

// New returns the attendance submission limiter for cfg, or nil when
// App.MarkRateLimit disables it.
func New(cfg config.StructuredConfig, clock utils.Clock) Limiter {
	if cfg.App.MarkRateLimit <= 0 {
		return nil
	}
	if cfg.Storage.Redis.Address == "" {
		return NewMemoryLimiter(cfg.App.MarkRateLimit, MarkWindow, clock)
	}
	return NewRedisLimiter(NewRedisClient(cfg.Storage.Redis), cfg.App.MarkRateLimit, MarkWindow, clock)
}
