// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-qr-attendance/internal/logger"
	"github.com/MKhiriev/go-qr-attendance/internal/qr"
	"github.com/MKhiriev/go-qr-attendance/internal/service"
	"github.com/MKhiriev/go-qr-attendance/internal/store"
	"github.com/MKhiriev/go-qr-attendance/internal/utils"
	"github.com/MKhiriev/go-qr-attendance/internal/validators"
)

const serverErrorMessage = "Server error"

type errorMapping struct {
	target  error
	status  int
	message string
}

// errorMappings is scanned in order and the first match wins, so more
// specific sentinels come before the ones they may be wrapped with.
var errorMappings = []errorMapping{
	{ErrBodyTooLarge, http.StatusRequestEntityTooLarge, "Request body too large"},
	{ErrInvalidJSON, http.StatusBadRequest, "Invalid JSON was passed"},
	{utils.ErrInvalidDate, http.StatusBadRequest, "Invalid date"},

	{validators.ErrStudentFieldsRequired, http.StatusBadRequest, "Semester and course are required for students"},
	{service.ErrInvalidUserData, http.StatusBadRequest, "Invalid user data"},
	{store.ErrIdentifierAlreadyExists, http.StatusConflict, "User already exists"},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, "Not authorized, token failed"},

	{validators.ErrInvalidLectureWindow, http.StatusBadRequest, "End time must be after start time"},
	{service.ErrInvalidLectureData, http.StatusBadRequest, "Invalid lecture data"},
	{service.ErrForbidden, http.StatusForbidden, "Not authorized"},
	{store.ErrLectureNotFound, http.StatusNotFound, "Lecture not found"},
	{store.ErrUserNotFound, http.StatusNotFound, "User not found"},

	{qr.ErrMalformedPayload, http.StatusBadRequest, "Invalid QR code"},
	{qr.ErrInvalidPayload, http.StatusBadRequest, "QR code is expired or invalid"},
	{service.ErrPayloadExpired, http.StatusBadRequest, "QR code is expired or invalid"},
	{service.ErrSessionClosed, http.StatusBadRequest, "Lecture has ended or QR code is expired"},
	{service.ErrAlreadyMarked, http.StatusBadRequest, "Attendance already marked for this lecture"},
}

// statusFromError returns the HTTP status and the public message for err.
// Errors with no mapping are reported as 500 with a generic message.
func statusFromError(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, serverErrorMessage
}

// writeError logs err and writes its mapped {"message": ...} response.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error occurred")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteMessage(w, message, status)
}
