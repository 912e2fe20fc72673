// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-qr-attendance/internal/logger"
	"github.com/MKhiriev/go-qr-attendance/internal/metrics"
	"github.com/MKhiriev/go-qr-attendance/internal/utils"
)

// withMarkRateLimit limits attendance submissions per authenticated student.
// When the limiter backend fails the request is let through.
func (h *Handler) withMarkRateLimit(next http.Handler) http.Handler {
	if h.limiter == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		user, err := currentUser(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		allowed, err := h.limiter.Allow(r.Context(), user.ID)
		if err != nil {
			log.Warn().Err(err).Msg("rate limiter failed, request let through")
			next.ServeHTTP(w, r)
			return
		}
		if !allowed {
			h.metrics.ObserveMark(metrics.MarkOutcomeRateLimited)
			utils.WriteMessage(w, "Too many attendance submissions, try again later", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
