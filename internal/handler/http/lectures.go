// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-qr-attendance/internal/logger"
	"github.com/MKhiriev/go-qr-attendance/internal/utils"
	"github.com/MKhiriev/go-qr-attendance/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createLecture(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	faculty, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var body createLectureBody
	if err = decodeJSON(w, r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	req, err := body.request()
	if err != nil {
		writeError(w, r, err)
		return
	}

	lecture, err := h.services.LectureService.CreateLecture(ctx, faculty.ID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("lecture_id", lecture.ID).Msg("lecture created")
	utils.WriteJSON(w, lecture, http.StatusCreated)
}

func (h *Handler) listLectures(w http.ResponseWriter, r *http.Request) {
	faculty, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	lectures, err := h.services.LectureService.ListLectures(r.Context(), faculty.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, lectures, http.StatusOK)
}

func (h *Handler) lectureAttendance(w http.ResponseWriter, r *http.Request) {
	faculty, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	records, err := h.services.LectureService.GetLectureAttendance(r.Context(), faculty.ID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, records, http.StatusOK)
}

func (h *Handler) expireLecture(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	faculty, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	lectureID := chi.URLParam(r, "id")
	if err = h.services.LectureService.ExpireLecture(r.Context(), faculty.ID, lectureID); err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("lecture_id", lectureID).Msg("lecture expired")
	utils.WriteMessage(w, "Lecture QR code expired successfully", http.StatusOK)
}

// courseReport serves GET /api/faculty/reports/course/{course}. The optional
// startDate and endDate query parameters bound the lecture start time.
func (h *Handler) courseReport(w http.ResponseWriter, r *http.Request) {
	faculty, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	// chi matches on RawPath when it is set, leaving the param escaped.
	course := chi.URLParam(r, "course")
	if r.URL.RawPath != "" {
		if unescaped, err := url.PathUnescape(course); err == nil {
			course = unescaped
		}
	}

	query := r.URL.Query()
	from, to, err := utils.ParseDateRange(query.Get("startDate"), query.Get("endDate"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	report, err := h.services.LectureService.CourseReport(r.Context(), models.CourseReportRequest{
		FacultyID: faculty.ID,
		Course:    course,
		From:      from,
		To:        to,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}

// createLectureBody is the wire form of POST /api/faculty/lectures. Start and
// end accept RFC 3339 as well as the zone-less values of datetime-local
// inputs, so they are decoded as text and parsed here.
type createLectureBody struct {
	Subject   string `json:"subject"`
	Course    string `json:"course"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Room      string `json:"room"`
}

func (b createLectureBody) request() (models.CreateLectureRequest, error) {
	start, err := parseOptionalTime(b.StartTime)
	if err != nil {
		return models.CreateLectureRequest{}, err
	}
	end, err := parseOptionalTime(b.EndTime)
	if err != nil {
		return models.CreateLectureRequest{}, err
	}

	return models.CreateLectureRequest{
		Subject:   b.Subject,
		Course:    b.Course,
		StartTime: start,
		EndTime:   end,
		Room:      b.Room,
	}, nil
}

// parseOptionalTime leaves a missing value as the zero time for the request
// validator to reject as required.
func parseOptionalTime(value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, nil
	}
	return utils.ParseDate(value)
}
