// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/go-qr-attendance/internal/config"
	"github.com/MKhiriev/go-qr-attendance/internal/handler/http"
	"github.com/MKhiriev/go-qr-attendance/internal/logger"
	"github.com/MKhiriev/go-qr-attendance/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, deps http.Dependencies, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	if deps.RequestTimeout == 0 {
		deps.RequestTimeout = cfg.RequestTimeout
	}

	return &Handlers{
		HTTP: http.NewHandler(services, deps, logger),
	}, nil
}
