// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"time"

	"github.com/MKhiriev/go-qr-attendance/internal/logger"
	"github.com/MKhiriev/go-qr-attendance/internal/metrics"
	"github.com/MKhiriev/go-qr-attendance/internal/ratelimit"
	"github.com/MKhiriev/go-qr-attendance/internal/service"
)

// HealthChecker reports whether the backing database is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Dependencies are the optional collaborators of the handler. A nil Limiter
// disables rate limiting; a nil Metrics is replaced with a private registry.
type Dependencies struct {
	Health  HealthChecker
	Limiter ratelimit.Limiter
	Metrics *metrics.Metrics

	// RequestTimeout bounds every request. Zero disables the timeout.
	RequestTimeout time.Duration
}

type Handler struct {
	services *service.Services

	health         HealthChecker
	limiter        ratelimit.Limiter
	metrics        *metrics.Metrics
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, deps Dependencies, logger *logger.Logger) *Handler {
	m := deps.Metrics
	if m == nil {
		m = metrics.New()
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		health:         deps.Health,
		limiter:        deps.Limiter,
		metrics:        m,
		requestTimeout: deps.RequestTimeout,
		logger:         logger,
	}
}
