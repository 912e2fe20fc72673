// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport to the attendance
// server.
//
// The primary abstraction is [ServerAdapter], which decouples the attendctl
// command tree from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Non-2xx responses are mapped to the sentinel errors of errors.go by
// mapHTTPError, so callers can use [errors.Is] (e.g. [ErrConflict] for 409,
// [ErrUnauthorized] for 401). The server's {"message"} text is kept in the
// wrapped error.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-qr-attendance/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// HistoryQuery holds the optional filters of a student's history. Dates are
// passed through verbatim; the server accepts RFC 3339 or YYYY-MM-DD.
type HistoryQuery struct {
	StartDate string
	EndDate   string
	Course    string
	Subject   string
}

// ServerAdapter defines transport-agnostic communication with the attendance
// server. Implementations are responsible for serialisation, authentication
// header management and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored, or "" if none is set.
	Token() string

	// Register creates an account. On success the returned token is stored
	// via SetToken.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// Login authenticates with identifier and password. On success the
	// returned token is stored via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	Profile(ctx context.Context) (models.UserProfile, error)

	CreateLecture(ctx context.Context, req models.CreateLectureRequest) (models.Lecture, error)
	ListLectures(ctx context.Context) ([]models.Lecture, error)
	ExpireLecture(ctx context.Context, lectureID string) error
	LectureAttendance(ctx context.Context, lectureID string) ([]models.LectureAttendance, error)

	// CourseReport fetches the report of course. The date bounds are
	// optional and only applied by the server when both are set.
	CourseReport(ctx context.Context, course, startDate, endDate string) (models.CourseReport, error)

	// MarkAttendance submits the payload string decoded from a lecture's QR
	// image.
	MarkAttendance(ctx context.Context, qrData string) (models.MarkAttendanceResponse, error)
	History(ctx context.Context, query HistoryQuery) ([]models.AttendanceHistoryEntry, error)
	Percentage(ctx context.Context) (models.AttendancePercentage, error)

	// Version returns the server application version.
	Version(ctx context.Context) (string, error)
}
