// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AttendanceStatus is the closed set of ledger statuses.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "present"
	StatusLate    AttendanceStatus = "late"

	// StatusAbsent is declared for completeness. Nothing writes it: absence is
	// the lack of a record.
	StatusAbsent AttendanceStatus = "absent"
)

// IsValid reports whether s is a declared status.
func (s AttendanceStatus) IsValid() bool {
	switch s {
	case StatusPresent, StatusLate, StatusAbsent:
		return true
	}
	return false
}

// Attendance is one student's presence claim against one lecture.
// At most one exists per (LectureID, StudentID).
type Attendance struct {
	ID        string           `json:"id"`
	LectureID string           `json:"lecture"`
	StudentID string           `json:"student"`
	Timestamp time.Time        `json:"timestamp"`
	Status    AttendanceStatus `json:"status"`
	CreatedAt time.Time        `json:"createdAt"`
}

// LectureAttendance is a ledger entry of one lecture joined with the
// student's public fields.
type LectureAttendance struct {
	ID        string           `json:"id"`
	LectureID string           `json:"lecture"`
	Student   StudentSummary   `json:"student"`
	Timestamp time.Time        `json:"timestamp"`
	Status    AttendanceStatus `json:"status"`
}

// LectureSummary is the lecture part joined into a student's history.
type LectureSummary struct {
	ID          string    `json:"id"`
	Subject     string    `json:"subject"`
	Course      string    `json:"course"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Room        string    `json:"room"`
	FacultyID   string    `json:"facultyId"`
	FacultyName string    `json:"facultyName"`
}

// AttendanceHistoryEntry is a ledger entry of one student enriched with its
// lecture.
type AttendanceHistoryEntry struct {
	ID        string           `json:"id"`
	Lecture   LectureSummary   `json:"lecture"`
	Timestamp time.Time        `json:"timestamp"`
	Status    AttendanceStatus `json:"status"`
}

// HistoryFilter holds the optional post-fetch predicates of a student's
// history. The date range applies only when both bounds are set.
type HistoryFilter struct {
	From    *time.Time
	To      *time.Time
	Course  string
	Subject string
}
