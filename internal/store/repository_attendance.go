// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-qr-attendance/internal/logger"
	"github.com/MKhiriev/go-qr-attendance/models"
)

// attendanceRepository is the SQL-backed [AttendanceRepository]. The
// (lecture_id, student_id) unique constraint is the ledger's only duplicate
// guard.
type attendanceRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewAttendanceRepository constructs the SQL-backed [AttendanceRepository].
func NewAttendanceRepository(db *DB, logger *logger.Logger) AttendanceRepository {
	return &attendanceRepository{
		db:     db,
		logger: logger,
	}
}

func (r *attendanceRepository) InsertAttendanceIfAbsent(ctx context.Context, attendance models.Attendance) (models.Attendance, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertAttendanceQuery(r.db.builder, attendance)
	if err != nil {
		return models.Attendance{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&id)
	switch {
	case err == nil:
	case isNoRows(err), r.db.errorClassificator.IsUniqueViolation(err):
		return models.Attendance{}, ErrAttendanceConflict
	default:
		log.Err(err).
			Str("func", "attendanceRepository.InsertAttendanceIfAbsent").
			Str("lecture_id", attendance.LectureID).
			Str("student_id", attendance.StudentID).
			Msg("failed to insert attendance")
		return models.Attendance{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	attendance.ID = id
	attendance.Timestamp = utcTime(attendance.Timestamp)
	attendance.CreatedAt = utcTime(attendance.CreatedAt)

	return attendance, nil
}

func (r *attendanceRepository) AttendanceExists(ctx context.Context, lectureID, studentID string) (bool, error) {
	query, args, err := buildAttendanceExistsQuery(r.db.builder, lectureID, studentID)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if err != nil {
		if isNoRows(err) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return true, nil
}

func (r *attendanceRepository) ListLectureAttendance(ctx context.Context, lectureID string) ([]models.LectureAttendance, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListLectureAttendanceQuery(r.db.builder, lectureID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "attendanceRepository.ListLectureAttendance").
			Str("lecture_id", lectureID).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.LectureAttendance, 0, 32)
	for rows.Next() {
		var (
			entry  models.LectureAttendance
			status string
		)
		scanErr := rows.Scan(
			&entry.ID,
			&entry.LectureID,
			&entry.Timestamp,
			&status,
			&entry.Student.ID,
			&entry.Student.Name,
			&entry.Student.Identifier,
			&entry.Student.Department,
		)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		entry.Status = models.AttendanceStatus(status)
		entry.Timestamp = utcTime(entry.Timestamp)
		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return entries, nil
}

func (r *attendanceRepository) ListStudentHistory(ctx context.Context, studentID string) ([]models.AttendanceHistoryEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListStudentHistoryQuery(r.db.builder, studentID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "attendanceRepository.ListStudentHistory").
			Str("student_id", studentID).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	history := make([]models.AttendanceHistoryEntry, 0, 32)
	for rows.Next() {
		var (
			entry  models.AttendanceHistoryEntry
			status string
		)
		scanErr := rows.Scan(
			&entry.ID,
			&entry.Timestamp,
			&status,
			&entry.Lecture.ID,
			&entry.Lecture.Subject,
			&entry.Lecture.Course,
			&entry.Lecture.StartTime,
			&entry.Lecture.EndTime,
			&entry.Lecture.Room,
			&entry.Lecture.FacultyID,
			&entry.Lecture.FacultyName,
		)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		entry.Status = models.AttendanceStatus(status)
		entry.Timestamp = utcTime(entry.Timestamp)
		entry.Lecture.StartTime = utcTime(entry.Lecture.StartTime)
		entry.Lecture.EndTime = utcTime(entry.Lecture.EndTime)
		history = append(history, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return history, nil
}

func (r *attendanceRepository) ListAttendanceRows(ctx context.Context, filter AttendanceRowFilter) ([]models.StudentAttendanceRow, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListAttendanceRowsQuery(r.db.builder, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "attendanceRepository.ListAttendanceRows").
			Str("student_id", filter.StudentID).
			Int("lecture ids count", len(filter.LectureIDs)).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make([]models.StudentAttendanceRow, 0, 64)
	for rows.Next() {
		var row models.StudentAttendanceRow
		scanErr := rows.Scan(
			&row.Student.ID,
			&row.Student.Name,
			&row.Student.Identifier,
			&row.Student.Department,
			&row.LectureID,
			&row.Course,
			&row.Subject,
		)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		result = append(result, row)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return result, nil
}
