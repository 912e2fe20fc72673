// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-qr-attendance/internal/logger"
	"github.com/MKhiriev/go-qr-attendance/models"
)

// lectureRepository is the SQL-backed [LectureRepository].
type lectureRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewLectureRepository constructs the SQL-backed [LectureRepository].
func NewLectureRepository(db *DB, logger *logger.Logger) LectureRepository {
	return &lectureRepository{
		db:     db,
		logger: logger,
	}
}

// CreateLecture persists the lecture together with its rendered QR code in
// a single statement.
func (r *lectureRepository) CreateLecture(ctx context.Context, lecture models.Lecture) (models.Lecture, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateLectureQuery(r.db.builder, lecture)
	if err != nil {
		return models.Lecture{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "lectureRepository.CreateLecture").
			Str("lecture_id", lecture.ID).
			Msg("failed to insert lecture")
		return models.Lecture{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return lecture, nil
}

func (r *lectureRepository) FindLectureByID(ctx context.Context, id string) (models.Lecture, error) {
	log := logger.FromContext(ctx)

	if !r.db.isKey(id) {
		return models.Lecture{}, ErrLectureNotFound
	}

	query, args, err := buildFindLectureQuery(r.db.builder, id)
	if err != nil {
		return models.Lecture{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	lecture, err := scanLecture(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return models.Lecture{}, ErrLectureNotFound
		}
		log.Err(err).
			Str("func", "lectureRepository.FindLectureByID").
			Str("lecture_id", id).
			Msg("failed to find lecture")
		return models.Lecture{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return lecture, nil
}

func (r *lectureRepository) ListLectures(ctx context.Context, filter models.LectureFilter) ([]models.Lecture, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListLecturesQuery(r.db.builder, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "lectureRepository.ListLectures").
			Str("faculty_id", filter.FacultyID).
			Msg("failed to execute query for listing lectures")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	lectures := make([]models.Lecture, 0, 16)
	for rows.Next() {
		lecture, scanErr := scanLecture(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "lectureRepository.ListLectures").Msg("failed to scan lecture row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		lectures = append(lectures, lecture)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "lectureRepository.ListLectures").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return lectures, nil
}

func (r *lectureRepository) ExpireLecture(ctx context.Context, id string, updatedAt time.Time) error {
	log := logger.FromContext(ctx)

	if !r.db.isKey(id) {
		return ErrLectureNotFound
	}

	query, args, err := buildExpireLectureQuery(r.db.builder, id, updatedAt)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "lectureRepository.ExpireLecture").
			Str("lecture_id", id).
			Msg("failed to expire lecture")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrLectureNotFound
	}

	return nil
}

func (r *lectureRepository) CountEndedLectures(ctx context.Context, endedBefore time.Time) (map[models.LectureKey]int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountEndedLecturesQuery(r.db.builder, endedBefore)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "lectureRepository.CountEndedLectures").Msg("failed to count ended lectures")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	counts := make(map[models.LectureKey]int)
	for rows.Next() {
		var (
			key   models.LectureKey
			count int
		)
		if scanErr := rows.Scan(&key.Course, &key.Subject, &count); scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		counts[key] = count
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return counts, nil
}

func (r *lectureRepository) CountRunningLectures(ctx context.Context, now time.Time) (int, error) {
	query, args, err := buildCountRunningLecturesQuery(r.db.builder, now)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

func scanLecture(row rowScanner) (models.Lecture, error) {
	var lecture models.Lecture

	err := row.Scan(
		&lecture.ID,
		&lecture.Subject,
		&lecture.Course,
		&lecture.FacultyID,
		&lecture.StartTime,
		&lecture.EndTime,
		&lecture.Room,
		&lecture.QRCode,
		&lecture.QRData,
		&lecture.QRExpired,
		&lecture.CreatedAt,
		&lecture.UpdatedAt,
	)
	if err != nil {
		return models.Lecture{}, err
	}

	lecture.StartTime = utcTime(lecture.StartTime)
	lecture.EndTime = utcTime(lecture.EndTime)
	lecture.CreatedAt = utcTime(lecture.CreatedAt)
	lecture.UpdatedAt = utcTime(lecture.UpdatedAt)

	return lecture, nil
}
