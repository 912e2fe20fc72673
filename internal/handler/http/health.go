// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-qr-attendance/internal/logger"
	"github.com/MKhiriev/go-qr-attendance/internal/utils"
	"github.com/MKhiriev/go-qr-attendance/models"
)

// healthz reports 200 when the database answers a ping and 503 otherwise.
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	if h.health == nil {
		utils.WriteJSON(w, models.HealthResponse{Status: "ok"}, http.StatusOK)
		return
	}

	if err := h.health.Ping(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Msg("database ping failed")
		utils.WriteJSON(w, models.HealthResponse{Status: "unavailable"}, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, models.HealthResponse{Status: "ok", DB: true}, http.StatusOK)
}
