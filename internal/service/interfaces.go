// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-qr-attendance/models"
)

type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// ResolveSession verifies tokenString and loads the current stored record
	// of its owner.
	ResolveSession(ctx context.Context, tokenString string) (models.User, error)
	Profile(ctx context.Context, userID string) (models.UserProfile, error)
}

// LectureService is the faculty-facing session registry.
type LectureService interface {
	CreateLecture(ctx context.Context, facultyID string, req models.CreateLectureRequest) (models.Lecture, error)
	ListLectures(ctx context.Context, facultyID string) ([]models.Lecture, error)
	ExpireLecture(ctx context.Context, facultyID, lectureID string) error
	GetLectureAttendance(ctx context.Context, facultyID, lectureID string) ([]models.LectureAttendance, error)
	CourseReport(ctx context.Context, req models.CourseReportRequest) (models.CourseReport, error)
}

// AttendanceService is the student-facing marking flow and reporting.
type AttendanceService interface {
	MarkAttendance(ctx context.Context, studentID string, req models.MarkAttendanceRequest) (models.Attendance, error)
	History(ctx context.Context, studentID string, filter models.HistoryFilter) ([]models.AttendanceHistoryEntry, error)
	Percentage(ctx context.Context, studentID string) (models.AttendancePercentage, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
