// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-qr-attendance/internal/logger"
	"github.com/MKhiriev/go-qr-attendance/internal/metrics"
	"github.com/MKhiriev/go-qr-attendance/internal/qr"
	"github.com/MKhiriev/go-qr-attendance/internal/service"
	"github.com/MKhiriev/go-qr-attendance/internal/store"
	"github.com/MKhiriev/go-qr-attendance/internal/utils"
	"github.com/MKhiriev/go-qr-attendance/models"
)

func (h *Handler) markAttendance(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	student, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.MarkAttendanceRequest
	if err = decodeJSON(w, r, &req); err != nil {
		h.metrics.ObserveMark(metrics.MarkOutcomeInvalidPayload)
		writeError(w, r, err)
		return
	}

	attendance, err := h.services.AttendanceService.MarkAttendance(r.Context(), student.ID, req)
	if err != nil {
		h.metrics.ObserveMark(markOutcome(err))
		writeError(w, r, err)
		return
	}

	h.metrics.ObserveMark(string(attendance.Status))
	log.Debug().Str("lecture_id", attendance.LectureID).Msg("attendance recorded")

	utils.WriteJSON(w, models.MarkAttendanceResponse{
		Message:    fmt.Sprintf("Attendance marked successfully as %s", attendance.Status),
		Attendance: attendance,
	}, http.StatusCreated)
}

// markOutcome maps a rejected mark to its metrics label.
func markOutcome(err error) string {
	switch {
	case errors.Is(err, service.ErrAlreadyMarked):
		return metrics.MarkOutcomeAlreadyMarked
	case errors.Is(err, service.ErrSessionClosed):
		return metrics.MarkOutcomeSessionClosed
	case errors.Is(err, service.ErrPayloadExpired):
		return metrics.MarkOutcomePayloadExpired
	case errors.Is(err, qr.ErrMalformedPayload), errors.Is(err, qr.ErrInvalidPayload):
		return metrics.MarkOutcomeInvalidPayload
	case errors.Is(err, store.ErrLectureNotFound):
		return metrics.MarkOutcomeNotFound
	default:
		return metrics.MarkOutcomeError
	}
}

// attendanceHistory serves GET /api/student/attendance. Supported query
// parameters: startDate, endDate, course, subject.
func (h *Handler) attendanceHistory(w http.ResponseWriter, r *http.Request) {
	student, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	query := r.URL.Query()
	from, to, err := utils.ParseDateRange(query.Get("startDate"), query.Get("endDate"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	history, err := h.services.AttendanceService.History(r.Context(), student.ID, models.HistoryFilter{
		From:    from,
		To:      to,
		Course:  query.Get("course"),
		Subject: query.Get("subject"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, history, http.StatusOK)
}

func (h *Handler) attendancePercentage(w http.ResponseWriter, r *http.Request) {
	student, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	pct, err := h.services.AttendanceService.Percentage(r.Context(), student.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, pct, http.StatusOK)
}
