// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-qr-attendance/internal/logger"
	"github.com/MKhiriev/go-qr-attendance/internal/qr"
	"github.com/MKhiriev/go-qr-attendance/internal/store"
	"github.com/MKhiriev/go-qr-attendance/internal/utils"
	"github.com/MKhiriev/go-qr-attendance/internal/validators"
	"github.com/MKhiriev/go-qr-attendance/models"
)

type lectureService struct {
	lectures   store.LectureRepository
	attendance store.AttendanceRepository

	clock     utils.Clock
	ids       utils.IDGenerator
	validator validators.Validator

	logger *logger.Logger
}

func NewLectureService(lectures store.LectureRepository, attendance store.AttendanceRepository, deps Dependencies, logger *logger.Logger) LectureService {
	return &lectureService{
		lectures:   lectures,
		attendance: attendance,
		clock:      deps.Clock,
		ids:        deps.IDs,
		validator:  deps.Validator,
		logger:     logger,
	}
}

// CreateLecture stores a new lecture of facultyID together with its QR
// payload and rendered image. The end time must be after the start time;
// a start time in the past is accepted.
func (s *lectureService) CreateLecture(ctx context.Context, facultyID string, req models.CreateLectureRequest) (models.Lecture, error) {
	log := logger.FromContext(ctx)

	req.Subject = strings.TrimSpace(req.Subject)
	req.Course = strings.TrimSpace(req.Course)
	req.Room = strings.TrimSpace(req.Room)
	if err := s.validator.Validate(ctx, req); err != nil {
		if errors.Is(err, validators.ErrInvalidLectureWindow) {
			return models.Lecture{}, err
		}
		return models.Lecture{}, fmt.Errorf("%w: %w", ErrInvalidLectureData, err)
	}

	now := s.clock.Now()
	lecture := models.Lecture{
		ID:        s.ids.Generate(),
		Subject:   req.Subject,
		Course:    req.Course,
		FacultyID: facultyID,
		StartTime: req.StartTime.UTC(),
		EndTime:   req.EndTime.UTC(),
		Room:      req.Room,
		CreatedAt: now,
		UpdatedAt: now,
	}

	payload, err := qr.Encode(qr.NewPayload(lecture, now))
	if err != nil {
		return models.Lecture{}, err
	}
	image, err := qr.Render(payload)
	if err != nil {
		log.Err(err).Str("lecture_id", lecture.ID).Msg("failed to render QR code")
		return models.Lecture{}, err
	}
	lecture.QRData = payload
	lecture.QRCode = image

	created, err := s.lectures.CreateLecture(ctx, lecture)
	if err != nil {
		return models.Lecture{}, fmt.Errorf("lecture creation ended with error: %w", err)
	}

	log.Info().Str("lecture_id", created.ID).Str("course", created.Course).Msg("lecture created")
	return created, nil
}

func (s *lectureService) ListLectures(ctx context.Context, facultyID string) ([]models.Lecture, error) {
	lectures, err := s.lectures.ListLectures(ctx, models.LectureFilter{FacultyID: facultyID})
	if err != nil {
		return nil, fmt.Errorf("listing lectures ended with error: %w", err)
	}

	return lectures, nil
}

// ExpireLecture sets the expiry flag of a lecture owned by facultyID.
// Expiring an already expired lecture succeeds.
func (s *lectureService) ExpireLecture(ctx context.Context, facultyID, lectureID string) error {
	lecture, err := s.ownedLecture(ctx, facultyID, lectureID)
	if err != nil {
		return err
	}
	if lecture.QRExpired {
		return nil
	}

	if err = s.lectures.ExpireLecture(ctx, lecture.ID, s.clock.Now()); err != nil {
		return fmt.Errorf("expiring lecture ended with error: %w", err)
	}

	logger.FromContext(ctx).Info().Str("lecture_id", lecture.ID).Msg("lecture expired")
	return nil
}

func (s *lectureService) GetLectureAttendance(ctx context.Context, facultyID, lectureID string) ([]models.LectureAttendance, error) {
	if _, err := s.ownedLecture(ctx, facultyID, lectureID); err != nil {
		return nil, err
	}

	entries, err := s.attendance.ListLectureAttendance(ctx, lectureID)
	if err != nil {
		return nil, fmt.Errorf("listing lecture attendance ended with error: %w", err)
	}

	return entries, nil
}

// CourseReport computes, for every student with at least one record in the
// selected lectures, attended/len(lectures)*100. The denominator is the same
// for every student.
func (s *lectureService) CourseReport(ctx context.Context, req models.CourseReportRequest) (models.CourseReport, error) {
	lectures, err := s.lectures.ListLectures(ctx, models.LectureFilter{
		FacultyID: req.FacultyID,
		Course:    req.Course,
		From:      req.From,
		To:        req.To,
	})
	if err != nil {
		return models.CourseReport{}, fmt.Errorf("listing lectures ended with error: %w", err)
	}

	ids := make([]string, 0, len(lectures))
	for _, lecture := range lectures {
		ids = append(ids, lecture.ID)
	}

	rows, err := s.attendance.ListAttendanceRows(ctx, store.AttendanceRowFilter{LectureIDs: ids})
	if err != nil {
		return models.CourseReport{}, fmt.Errorf("listing attendance ended with error: %w", err)
	}

	return buildCourseReport(req.Course, len(lectures), rows), nil
}

// ownedLecture loads lectureID and checks that facultyID owns it.
func (s *lectureService) ownedLecture(ctx context.Context, facultyID, lectureID string) (models.Lecture, error) {
	lecture, err := s.lectures.FindLectureByID(ctx, lectureID)
	if err != nil {
		return models.Lecture{}, fmt.Errorf("lecture search ended with error: %w", err)
	}
	if lecture.FacultyID != facultyID {
		logger.FromContext(ctx).Warn().
			Str("lecture_id", lectureID).
			Str("faculty_id", facultyID).
			Msg("access to lecture of another faculty member")
		return models.Lecture{}, ErrForbidden
	}

	return lecture, nil
}
