// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// RegisterRequest is the body of POST /api/auth/register.
// Semester and Course are required only when Role is student.
type RegisterRequest struct {
	Name       string `json:"name" validate:"required"`
	Role       Role   `json:"role" validate:"required,oneof=student faculty"`
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required,min=6,max=72"`
	Department string `json:"department" validate:"required"`
	Semester   string `json:"semester,omitempty" validate:"required_if=Role student"`
	Course     string `json:"course,omitempty" validate:"required_if=Role student"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// CreateLectureRequest is the body of POST /api/faculty/lectures.
type CreateLectureRequest struct {
	Subject   string    `json:"subject" validate:"required"`
	Course    string    `json:"course" validate:"required"`
	StartTime time.Time `json:"startTime" validate:"required"`
	EndTime   time.Time `json:"endTime" validate:"required,gtfield=StartTime"`
	Room      string    `json:"room" validate:"required"`
}

// MarkAttendanceRequest is the body of POST /api/student/attendance.
// QRData is the payload string decoded from the scanned QR image. An empty
// string is reported as a malformed payload.
type MarkAttendanceRequest struct {
	QRData string `json:"qrData"`
}

// CourseReportRequest selects the lectures of a course report. The start
// range is applied only when both bounds are present.
type CourseReportRequest struct {
	FacultyID string
	Course    string
	From      *time.Time
	To        *time.Time
}
