// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-qr-attendance/internal/config"
	"github.com/MKhiriev/go-qr-attendance/internal/logger"
	"github.com/MKhiriev/go-qr-attendance/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// cfg.HTTPAddress, applies the request timeout and preloads cfg.Token.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	a := &httpServerAdapter{client: client, logger: logger}
	a.SetToken(cfg.Token)
	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&auth).
		Post("/api/auth/register")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(auth.Token)
	return auth, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&auth).
		Post("/api/auth/login")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	h.SetToken(auth.Token)
	return auth, nil
}

func (h *httpServerAdapter) Profile(ctx context.Context) (models.UserProfile, error) {
	var profile models.UserProfile
	err := h.get(ctx, "profile", "/api/auth/profile", nil, &profile)
	return profile, err
}

func (h *httpServerAdapter) CreateLecture(ctx context.Context, req models.CreateLectureRequest) (models.Lecture, error) {
	var lecture models.Lecture

	resp, err := h.authedRequest(ctx).
		SetBody(req).
		SetResult(&lecture).
		Post("/api/faculty/lectures")
	if err != nil {
		return models.Lecture{}, fmt.Errorf("create lecture request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Lecture{}, err
	}

	return lecture, nil
}

func (h *httpServerAdapter) ListLectures(ctx context.Context) ([]models.Lecture, error) {
	var lectures []models.Lecture
	err := h.get(ctx, "list lectures", "/api/faculty/lectures", nil, &lectures)
	return lectures, err
}

func (h *httpServerAdapter) ExpireLecture(ctx context.Context, lectureID string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", lectureID).
		Put("/api/faculty/lectures/{id}/expire")
	if err != nil {
		return fmt.Errorf("expire lecture request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) LectureAttendance(ctx context.Context, lectureID string) ([]models.LectureAttendance, error) {
	var records []models.LectureAttendance

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", lectureID).
		SetResult(&records).
		Get("/api/faculty/lectures/{id}/attendance")
	if err != nil {
		return nil, fmt.Errorf("lecture attendance request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return records, nil
}

func (h *httpServerAdapter) CourseReport(ctx context.Context, course, startDate, endDate string) (models.CourseReport, error) {
	var report models.CourseReport

	resp, err := h.authedRequest(ctx).
		SetPathParam("course", course).
		SetQueryParams(nonEmpty(map[string]string{"startDate": startDate, "endDate": endDate})).
		SetResult(&report).
		Get("/api/faculty/reports/course/{course}")
	if err != nil {
		return models.CourseReport{}, fmt.Errorf("course report request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CourseReport{}, err
	}

	return report, nil
}

func (h *httpServerAdapter) MarkAttendance(ctx context.Context, qrData string) (models.MarkAttendanceResponse, error) {
	var marked models.MarkAttendanceResponse

	resp, err := h.authedRequest(ctx).
		SetBody(models.MarkAttendanceRequest{QRData: qrData}).
		SetResult(&marked).
		Post("/api/student/attendance")
	if err != nil {
		return models.MarkAttendanceResponse{}, fmt.Errorf("mark attendance request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MarkAttendanceResponse{}, err
	}

	return marked, nil
}

func (h *httpServerAdapter) History(ctx context.Context, query HistoryQuery) ([]models.AttendanceHistoryEntry, error) {
	var history []models.AttendanceHistoryEntry
	params := nonEmpty(map[string]string{
		"startDate": query.StartDate,
		"endDate":   query.EndDate,
		"course":    query.Course,
		"subject":   query.Subject,
	})
	err := h.get(ctx, "history", "/api/student/attendance", params, &history)
	return history, err
}

func (h *httpServerAdapter) Percentage(ctx context.Context) (models.AttendancePercentage, error) {
	var pct models.AttendancePercentage
	err := h.get(ctx, "percentage", "/api/student/attendance/percentage", nil, &pct)
	return pct, err
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	var version models.VersionResponse
	err := h.get(ctx, "version", "/api/version", nil, &version)
	return version.Version, err
}

// get issues an authenticated GET and decodes a 2xx body into result.
func (h *httpServerAdapter) get(ctx context.Context, op, path string, params map[string]string, result any) error {
	resp, err := h.authedRequest(ctx).
		SetQueryParams(params).
		SetResult(result).
		Get(path)
	if err != nil {
		return fmt.Errorf("%s request: %w", op, err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func nonEmpty(params map[string]string) map[string]string {
	for k, v := range params {
		if v == "" {
			delete(params, k)
		}
	}
	return params
}
