// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-qr-attendance/internal/config"
	"github.com/MKhiriev/go-qr-attendance/internal/logger"
	"github.com/MKhiriev/go-qr-attendance/internal/qr"
	"github.com/MKhiriev/go-qr-attendance/internal/store"
	"github.com/MKhiriev/go-qr-attendance/internal/utils"
	"github.com/MKhiriev/go-qr-attendance/models"
)

type attendanceService struct {
	lectures   store.LectureRepository
	attendance store.AttendanceRepository

	clock utils.Clock
	ids   utils.IDGenerator

	// lateAfter is the grace period after a lecture's start during which a
	// mark is still present.
	lateAfter time.Duration

	logger *logger.Logger
}

func NewAttendanceService(lectures store.LectureRepository, attendance store.AttendanceRepository, deps Dependencies, cfg config.App, logger *logger.Logger) AttendanceService {
	return &attendanceService{
		lectures:   lectures,
		attendance: attendance,
		clock:      deps.Clock,
		ids:        deps.IDs,
		lateAfter:  cfg.LateAfter,
		logger:     logger,
	}
}

// MarkAttendance validates a scanned payload and records the student's
// attendance for its lecture.
//
// The checks run in order and the first failure is returned:
//   - qr.ErrMalformedPayload, qr.ErrInvalidPayload: the payload cannot be used.
//   - ErrPayloadExpired: the end time embedded in the payload has passed.
//   - store.ErrLectureNotFound: the lecture does not exist.
//   - ErrSessionClosed: the lecture is expired or its live end time has passed.
//   - ErrAlreadyMarked: the student already has a record for the lecture,
//     including when a concurrent request wins the insert.
//
// A mark later than start+lateAfter is late; at exactly start+lateAfter it is
// still present.
func (s *attendanceService) MarkAttendance(ctx context.Context, studentID string, req models.MarkAttendanceRequest) (models.Attendance, error) {
	log := logger.FromContext(ctx)

	payload, err := qr.Decode(req.QRData)
	if err != nil {
		log.Debug().Err(err).Msg("rejected QR payload")
		return models.Attendance{}, err
	}

	now := s.clock.Now()
	if now.After(*payload.EndTime) {
		return models.Attendance{}, ErrPayloadExpired
	}

	lecture, err := s.lectures.FindLectureByID(ctx, payload.LectureID)
	if err != nil {
		return models.Attendance{}, fmt.Errorf("lecture search ended with error: %w", err)
	}

	if !lecture.IsActive(now) {
		return models.Attendance{}, ErrSessionClosed
	}

	exists, err := s.attendance.AttendanceExists(ctx, lecture.ID, studentID)
	if err != nil {
		return models.Attendance{}, fmt.Errorf("attendance lookup ended with error: %w", err)
	}
	if exists {
		return models.Attendance{}, ErrAlreadyMarked
	}

	attendance, err := s.attendance.InsertAttendanceIfAbsent(ctx, models.Attendance{
		ID:        s.ids.Generate(),
		LectureID: lecture.ID,
		StudentID: studentID,
		Timestamp: now,
		Status:    s.classify(lecture, now),
		CreatedAt: now,
	})
	if err != nil {
		if errors.Is(err, store.ErrAttendanceConflict) {
			return models.Attendance{}, ErrAlreadyMarked
		}
		return models.Attendance{}, fmt.Errorf("attendance insert ended with error: %w", err)
	}

	log.Info().
		Str("lecture_id", lecture.ID).
		Str("status", string(attendance.Status)).
		Msg("attendance marked")
	return attendance, nil
}

func (s *attendanceService) classify(lecture models.Lecture, now time.Time) models.AttendanceStatus {
	if now.After(lecture.StartTime.Add(s.lateAfter)) {
		return models.StatusLate
	}
	return models.StatusPresent
}

// History returns the student's records filtered by the optional predicates
// of filter. Course and subject match case-insensitively; the date range is
// inclusive on the lecture start and applies only when both bounds are set.
func (s *attendanceService) History(ctx context.Context, studentID string, filter models.HistoryFilter) ([]models.AttendanceHistoryEntry, error) {
	history, err := s.attendance.ListStudentHistory(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("listing history ended with error: %w", err)
	}

	filtered := make([]models.AttendanceHistoryEntry, 0, len(history))
	for _, entry := range history {
		if matchesHistoryFilter(entry, filter) {
			filtered = append(filtered, entry)
		}
	}

	return filtered, nil
}

func matchesHistoryFilter(entry models.AttendanceHistoryEntry, filter models.HistoryFilter) bool {
	if filter.Course != "" && !strings.EqualFold(entry.Lecture.Course, filter.Course) {
		return false
	}
	if filter.Subject != "" && !strings.EqualFold(entry.Lecture.Subject, filter.Subject) {
		return false
	}
	if filter.From != nil && filter.To != nil {
		start := entry.Lecture.StartTime
		if start.Before(*filter.From) || start.After(*filter.To) {
			return false
		}
	}
	return true
}

// Percentage aggregates the student's records against every lecture that
// has ended, system-wide.
func (s *attendanceService) Percentage(ctx context.Context, studentID string) (models.AttendancePercentage, error) {
	rows, err := s.attendance.ListAttendanceRows(ctx, store.AttendanceRowFilter{StudentID: studentID})
	if err != nil {
		return models.AttendancePercentage{}, fmt.Errorf("listing attendance ended with error: %w", err)
	}

	ended, err := s.lectures.CountEndedLectures(ctx, s.clock.Now())
	if err != nil {
		return models.AttendancePercentage{}, fmt.Errorf("counting lectures ended with error: %w", err)
	}

	return buildPercentage(rows, ended), nil
}
