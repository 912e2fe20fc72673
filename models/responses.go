// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AuthResponse is returned by register and login: the public profile plus a
// freshly issued bearer token.
type AuthResponse struct {
	UserProfile

	Token string `json:"token"`
}

// MessageResponse is the body of every error response and of acknowledgements
// that carry no data.
type MessageResponse struct {
	Message string `json:"message"`
}

// MarkAttendanceResponse is returned after a successful scan.
type MarkAttendanceResponse struct {
	Message    string     `json:"message"`
	Attendance Attendance `json:"attendance"`
}

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
	DB     bool   `json:"db"`
}

// VersionResponse is returned by GET /api/version.
type VersionResponse struct {
	Version string `json:"version"`
}
