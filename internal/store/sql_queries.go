// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-qr-attendance/models"
)

const (
	tableUsers      = "users"
	tableLectures   = "lectures"
	tableAttendance = "attendance"
)

var (
	userColumns = []string{
		"id", "identifier", "name", "role", "department",
		"password_hash", "semester", "course", "created_at",
	}

	lectureColumns = []string{
		"id", "subject", "course", "faculty_id", "start_time", "end_time",
		"room", "qr_code", "qr_data", "qr_expired", "created_at", "updated_at",
	}

	attendanceColumns = []string{
		"id", "lecture_id", "student_id", "marked_at", "status", "created_at",
	}
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	var semester, course any
	if user.Student != nil {
		semester = user.Student.Semester
		course = user.Student.Course
	}

	return b.Insert(tableUsers).
		Columns(userColumns...).
		Values(
			user.ID, user.Identifier, user.Name, string(user.Role), user.Department,
			user.PasswordHash, semester, course, user.CreatedAt.UTC(),
		).
		Suffix("ON CONFLICT (identifier) DO NOTHING RETURNING id").
		ToSql()
}

func buildFindUserQuery(b sq.StatementBuilderType, column, value string) (string, []any, error) {
	return b.Select(userColumns...).
		From(tableUsers).
		Where(sq.Eq{column: value}).
		ToSql()
}

func buildCreateLectureQuery(b sq.StatementBuilderType, lecture models.Lecture) (string, []any, error) {
	return b.Insert(tableLectures).
		Columns(lectureColumns...).
		Values(
			lecture.ID, lecture.Subject, lecture.Course, lecture.FacultyID,
			lecture.StartTime.UTC(), lecture.EndTime.UTC(), lecture.Room,
			lecture.QRCode, lecture.QRData, lecture.QRExpired,
			lecture.CreatedAt.UTC(), lecture.UpdatedAt.UTC(),
		).
		ToSql()
}

func buildFindLectureQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select(lectureColumns...).
		From(tableLectures).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildListLecturesQuery applies every set field of filter. The start range
// is applied only when both bounds are present.
func buildListLecturesQuery(b sq.StatementBuilderType, filter models.LectureFilter) (string, []any, error) {
	query := b.Select(lectureColumns...).From(tableLectures)

	if filter.FacultyID != "" {
		query = query.Where(sq.Eq{"faculty_id": filter.FacultyID})
	}
	if filter.Course != "" {
		query = query.Where(sq.Eq{"course": filter.Course})
	}
	if filter.From != nil && filter.To != nil {
		query = query.Where(sq.GtOrEq{"start_time": filter.From.UTC()}).
			Where(sq.LtOrEq{"start_time": filter.To.UTC()})
	}
	if filter.EndedBefore != nil {
		query = query.Where(sq.Lt{"end_time": filter.EndedBefore.UTC()})
	}

	return query.OrderBy("start_time DESC", "id").ToSql()
}

func buildExpireLectureQuery(b sq.StatementBuilderType, id string, updatedAt time.Time) (string, []any, error) {
	return b.Update(tableLectures).
		Set("qr_expired", true).
		Set("updated_at", updatedAt.UTC()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildCountEndedLecturesQuery(b sq.StatementBuilderType, endedBefore time.Time) (string, []any, error) {
	return b.Select("course", "subject", "COUNT(*)").
		From(tableLectures).
		Where(sq.Lt{"end_time": endedBefore.UTC()}).
		GroupBy("course", "subject").
		ToSql()
}

func buildCountRunningLecturesQuery(b sq.StatementBuilderType, now time.Time) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(tableLectures).
		Where(sq.Eq{"qr_expired": false}).
		Where(sq.LtOrEq{"start_time": now.UTC()}).
		Where(sq.GtOrEq{"end_time": now.UTC()}).
		ToSql()
}

func buildInsertAttendanceQuery(b sq.StatementBuilderType, attendance models.Attendance) (string, []any, error) {
	return b.Insert(tableAttendance).
		Columns(attendanceColumns...).
		Values(
			attendance.ID, attendance.LectureID, attendance.StudentID,
			attendance.Timestamp.UTC(), string(attendance.Status), attendance.CreatedAt.UTC(),
		).
		Suffix("ON CONFLICT (lecture_id, student_id) DO NOTHING RETURNING id").
		ToSql()
}

func buildAttendanceExistsQuery(b sq.StatementBuilderType, lectureID, studentID string) (string, []any, error) {
	return b.Select("1").
		From(tableAttendance).
		Where(sq.Eq{"lecture_id": lectureID, "student_id": studentID}).
		Limit(1).
		ToSql()
}

func buildListLectureAttendanceQuery(b sq.StatementBuilderType, lectureID string) (string, []any, error) {
	return b.Select(
		"a.id", "a.lecture_id", "a.marked_at", "a.status",
		"u.id", "u.name", "u.identifier", "u.department",
	).
		From(tableAttendance + " a").
		Join(tableUsers + " u ON u.id = a.student_id").
		Where(sq.Eq{"a.lecture_id": lectureID}).
		OrderBy("a.marked_at", "a.id").
		ToSql()
}

func buildListStudentHistoryQuery(b sq.StatementBuilderType, studentID string) (string, []any, error) {
	return b.Select(
		"a.id", "a.marked_at", "a.status",
		"l.id", "l.subject", "l.course", "l.start_time", "l.end_time", "l.room",
		"l.faculty_id", "f.name",
	).
		From(tableAttendance + " a").
		Join(tableLectures + " l ON l.id = a.lecture_id").
		Join(tableUsers + " f ON f.id = l.faculty_id").
		Where(sq.Eq{"a.student_id": studentID}).
		OrderBy("l.start_time DESC", "a.id").
		ToSql()
}

func buildListAttendanceRowsQuery(b sq.StatementBuilderType, filter AttendanceRowFilter) (string, []any, error) {
	query := b.Select(
		"u.id", "u.name", "u.identifier", "u.department",
		"a.lecture_id", "l.course", "l.subject",
	).
		From(tableAttendance + " a").
		Join(tableUsers + " u ON u.id = a.student_id").
		Join(tableLectures + " l ON l.id = a.lecture_id")

	if filter.StudentID != "" {
		query = query.Where(sq.Eq{"a.student_id": filter.StudentID})
	}
	if filter.LectureIDs != nil {
		query = query.Where(sq.Eq{"a.lecture_id": filter.LectureIDs})
	}

	return query.OrderBy("u.identifier", "a.lecture_id").ToSql()
}
