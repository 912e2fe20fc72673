// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-qr-attendance/models"
)

// UserRepository is the credential store.
type UserRepository interface {
	// CreateUser inserts user if its identifier is free. A taken identifier
	// yields ErrIdentifierAlreadyExists, also under concurrent inserts.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByIdentifier(ctx context.Context, identifier string) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
}

// LectureRepository is the session registry.
type LectureRepository interface {
	CreateLecture(ctx context.Context, lecture models.Lecture) (models.Lecture, error)
	FindLectureByID(ctx context.Context, id string) (models.Lecture, error)

	// ListLectures returns lectures matching filter ordered by start time
	// descending.
	ListLectures(ctx context.Context, filter models.LectureFilter) ([]models.Lecture, error)

	// ExpireLecture sets the expiry flag. Setting it again is not an error.
	ExpireLecture(ctx context.Context, id string, updatedAt time.Time) error

	// CountEndedLectures counts, system-wide, the lectures whose end time is
	// strictly before endedBefore, grouped by (course, subject).
	CountEndedLectures(ctx context.Context, endedBefore time.Time) (map[models.LectureKey]int, error)

	// CountRunningLectures counts non-expired lectures whose window contains now.
	CountRunningLectures(ctx context.Context, now time.Time) (int, error)
}

// AttendanceRepository is the attendance ledger.
type AttendanceRepository interface {
	// InsertAttendanceIfAbsent atomically writes attendance unless a record
	// for the same (lecture, student) pair exists, in which case it returns
	// ErrAttendanceConflict and writes nothing.
	InsertAttendanceIfAbsent(ctx context.Context, attendance models.Attendance) (models.Attendance, error)
	AttendanceExists(ctx context.Context, lectureID, studentID string) (bool, error)

	// ListLectureAttendance returns the ledger of one lecture joined with the
	// students' public fields, ordered by marking time.
	ListLectureAttendance(ctx context.Context, lectureID string) ([]models.LectureAttendance, error)

	// ListStudentHistory returns the ledger of one student joined with each
	// lecture and its faculty name, ordered by lecture start descending.
	ListStudentHistory(ctx context.Context, studentID string) ([]models.AttendanceHistoryEntry, error)

	// ListAttendanceRows returns the aggregation projection of the records
	// matching filter.
	ListAttendanceRows(ctx context.Context, filter AttendanceRowFilter) ([]models.StudentAttendanceRow, error)
}

// AttendanceRowFilter narrows [AttendanceRepository.ListAttendanceRows].
// Set fields are combined with AND; a non-nil empty LectureIDs matches nothing.
type AttendanceRowFilter struct {
	StudentID  string
	LectureIDs []string
}
