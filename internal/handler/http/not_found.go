// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-qr-attendance/internal/utils"
)

// routeNotFound answers unknown paths and unsupported methods alike with 404,
// so that callers cannot probe which methods a path accepts.
func (h *Handler) routeNotFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteMessage(w, "Route not found", http.StatusNotFound)
}
