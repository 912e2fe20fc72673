// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-qr-attendance/internal/logger"
	"github.com/MKhiriev/go-qr-attendance/internal/mock"
	"github.com/MKhiriev/go-qr-attendance/internal/qr"
	"github.com/MKhiriev/go-qr-attendance/internal/store"
	"github.com/MKhiriev/go-qr-attendance/internal/utils"
	"github.com/MKhiriev/go-qr-attendance/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type attendanceSvcFixture struct {
	svc        AttendanceService
	lectures   *mock.MockLectureRepository
	attendance *mock.MockAttendanceRepository
	clock      *utils.FixedClock
}

func newTestAttendanceSvc(t *testing.T, now time.Time) attendanceSvcFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := attendanceSvcFixture{
		lectures:   mock.NewMockLectureRepository(ctrl),
		attendance: mock.NewMockAttendanceRepository(ctrl),
		clock:      utils.NewFixedClock(now),
	}
	f.svc = NewAttendanceService(f.lectures, f.attendance, testDeps(f.clock), testAppConfig(), logger.Nop())
	return f
}

func insertEcho(_ context.Context, a models.Attendance) (models.Attendance, error) {
	return a, nil
}

func TestAttendanceService_MarkAttendance_Punctuality(t *testing.T) {
	tests := []struct {
		name  string
		after time.Duration
		want  models.AttendanceStatus
	}{
		{name: "before start", after: -5 * time.Minute, want: models.StatusPresent},
		{name: "five minutes in", after: 5 * time.Minute, want: models.StatusPresent},
		{name: "one second before threshold", after: 15*time.Minute - time.Second, want: models.StatusPresent},
		{name: "exactly at threshold", after: 15 * time.Minute, want: models.StatusPresent},
		{name: "one second after threshold", after: 15*time.Minute + time.Second, want: models.StatusLate},
		{name: "last second of lecture", after: time.Hour, want: models.StatusLate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := lectureStart.Add(tt.after)
			f := newTestAttendanceSvc(t, now)
			ctx := context.Background()
			lecture := testLecture("l-1", "f-1")

			f.lectures.EXPECT().FindLectureByID(ctx, "l-1").Return(lecture, nil)
			f.attendance.EXPECT().AttendanceExists(ctx, "l-1", "u-1").Return(false, nil)
			f.attendance.EXPECT().InsertAttendanceIfAbsent(ctx, gomock.Any()).DoAndReturn(insertEcho)

			got, err := f.svc.MarkAttendance(ctx, "u-1", models.MarkAttendanceRequest{QRData: payloadOf(t, lecture)})
			require.NoError(t, err)

			assert.Equal(t, tt.want, got.Status)
			assert.Equal(t, "id-1", got.ID)
			assert.Equal(t, "l-1", got.LectureID)
			assert.Equal(t, "u-1", got.StudentID)
			assert.Equal(t, now, got.Timestamp)
		})
	}
}

func TestAttendanceService_MarkAttendance_RejectedPayloads(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{name: "empty", raw: "", wantErr: qr.ErrMalformedPayload},
		{name: "not json", raw: "https://example.com/lecture", wantErr: qr.ErrMalformedPayload},
		{name: "missing lecture id", raw: `{"startTime":"2026-03-02T09:00:00Z","endTime":"2026-03-02T10:00:00Z"}`, wantErr: qr.ErrInvalidPayload},
		{name: "missing end time", raw: `{"lectureId":"l-1","startTime":"2026-03-02T09:00:00Z"}`, wantErr: qr.ErrInvalidPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no repository call is expected
			f := newTestAttendanceSvc(t, lectureStart)

			_, err := f.svc.MarkAttendance(context.Background(), "u-1", models.MarkAttendanceRequest{QRData: tt.raw})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAttendanceService_MarkAttendance_PayloadExpired(t *testing.T) {
	f := newTestAttendanceSvc(t, lectureStart.Add(61*time.Minute))

	_, err := f.svc.MarkAttendance(context.Background(), "u-1", models.MarkAttendanceRequest{
		QRData: payloadOf(t, testLecture("l-1", "f-1")),
	})
	assert.ErrorIs(t, err, ErrPayloadExpired)
}

func TestAttendanceService_MarkAttendance_LectureNotFound(t *testing.T) {
	f := newTestAttendanceSvc(t, lectureStart)

	f.lectures.EXPECT().FindLectureByID(gomock.Any(), "l-1").Return(models.Lecture{}, store.ErrLectureNotFound)

	_, err := f.svc.MarkAttendance(context.Background(), "u-1", models.MarkAttendanceRequest{
		QRData: payloadOf(t, testLecture("l-1", "f-1")),
	})
	assert.ErrorIs(t, err, store.ErrLectureNotFound)
}

func TestAttendanceService_MarkAttendance_SessionClosed(t *testing.T) {
	t.Run("expired by owner", func(t *testing.T) {
		f := newTestAttendanceSvc(t, lectureStart.Add(5*time.Minute))
		lecture := testLecture("l-1", "f-1")
		payload := payloadOf(t, lecture)
		lecture.QRExpired = true

		f.lectures.EXPECT().FindLectureByID(gomock.Any(), "l-1").Return(lecture, nil)

		_, err := f.svc.MarkAttendance(context.Background(), "u-1", models.MarkAttendanceRequest{QRData: payload})
		assert.ErrorIs(t, err, ErrSessionClosed)
	})

	t.Run("live end time passed while payload copy has not", func(t *testing.T) {
		f := newTestAttendanceSvc(t, lectureStart.Add(45*time.Minute))
		lecture := testLecture("l-1", "f-1")
		payload := payloadOf(t, lecture)
		lecture.EndTime = lectureStart.Add(30 * time.Minute)

		f.lectures.EXPECT().FindLectureByID(gomock.Any(), "l-1").Return(lecture, nil)

		_, err := f.svc.MarkAttendance(context.Background(), "u-1", models.MarkAttendanceRequest{QRData: payload})
		assert.ErrorIs(t, err, ErrSessionClosed)
	})
}

func TestAttendanceService_MarkAttendance_AlreadyMarked(t *testing.T) {
	t.Run("existing record", func(t *testing.T) {
		f := newTestAttendanceSvc(t, lectureStart)
		f.lectures.EXPECT().FindLectureByID(gomock.Any(), "l-1").Return(testLecture("l-1", "f-1"), nil)
		f.attendance.EXPECT().AttendanceExists(gomock.Any(), "l-1", "u-1").Return(true, nil)

		_, err := f.svc.MarkAttendance(context.Background(), "u-1", models.MarkAttendanceRequest{
			QRData: payloadOf(t, testLecture("l-1", "f-1")),
		})
		assert.ErrorIs(t, err, ErrAlreadyMarked)
	})

	t.Run("concurrent insert wins", func(t *testing.T) {
		f := newTestAttendanceSvc(t, lectureStart)
		f.lectures.EXPECT().FindLectureByID(gomock.Any(), "l-1").Return(testLecture("l-1", "f-1"), nil)
		f.attendance.EXPECT().AttendanceExists(gomock.Any(), "l-1", "u-1").Return(false, nil)
		f.attendance.EXPECT().InsertAttendanceIfAbsent(gomock.Any(), gomock.Any()).
			Return(models.Attendance{}, store.ErrAttendanceConflict)

		_, err := f.svc.MarkAttendance(context.Background(), "u-1", models.MarkAttendanceRequest{
			QRData: payloadOf(t, testLecture("l-1", "f-1")),
		})
		assert.ErrorIs(t, err, ErrAlreadyMarked)
	})
}

func historyEntry(id, course, subject string, start time.Time) models.AttendanceHistoryEntry {
	return models.AttendanceHistoryEntry{
		ID:     id,
		Status: models.StatusPresent,
		Lecture: models.LectureSummary{
			ID:        "l-" + id,
			Course:    course,
			Subject:   subject,
			StartTime: start,
			EndTime:   start.Add(time.Hour),
		},
	}
}

func TestAttendanceService_History(t *testing.T) {
	day := 24 * time.Hour
	history := []models.AttendanceHistoryEntry{
		historyEntry("3", "BCA", "DBMS", lectureStart.Add(2*day)),
		historyEntry("2", "BCA", "Operating Systems", lectureStart.Add(day)),
		historyEntry("1", "MCA", "Operating Systems", lectureStart),
	}
	from := lectureStart.Add(day)
	to := lectureStart.Add(2 * day)

	tests := []struct {
		name   string
		filter models.HistoryFilter
		want   []string
	}{
		{name: "no filter", filter: models.HistoryFilter{}, want: []string{"3", "2", "1"}},
		{name: "course case-insensitive", filter: models.HistoryFilter{Course: "bca"}, want: []string{"3", "2"}},
		{name: "subject case-insensitive", filter: models.HistoryFilter{Subject: "OPERATING SYSTEMS"}, want: []string{"2", "1"}},
		{name: "course and subject", filter: models.HistoryFilter{Course: "BCA", Subject: "operating systems"}, want: []string{"2"}},
		{name: "inclusive range", filter: models.HistoryFilter{From: &from, To: &to}, want: []string{"3", "2"}},
		{name: "single bound ignored", filter: models.HistoryFilter{From: &to}, want: []string{"3", "2", "1"}},
		{name: "no match", filter: models.HistoryFilter{Course: "BBA"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestAttendanceSvc(t, lectureStart)
			f.attendance.EXPECT().ListStudentHistory(gomock.Any(), "u-1").Return(history, nil)

			got, err := f.svc.History(context.Background(), "u-1", tt.filter)
			require.NoError(t, err)

			ids := make([]string, 0, len(got))
			for _, e := range got {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestAttendanceService_Percentage(t *testing.T) {
	now := lectureStart.Add(10 * 24 * time.Hour)
	f := newTestAttendanceSvc(t, now)
	ctx := context.Background()

	rows := []models.StudentAttendanceRow{
		{LectureID: "l-1", Course: "BCA", Subject: "OS"},
		{LectureID: "l-2", Course: "BCA", Subject: "OS"},
		{LectureID: "l-3", Course: "BCA", Subject: "DBMS"},
	}
	ended := map[models.LectureKey]int{
		{Course: "BCA", Subject: "OS"}:       4,
		{Course: "BCA", Subject: "DBMS"}:     1,
		{Course: "BCA", Subject: "Networks"}: 3,
		{Course: "MCA", Subject: "OS"}:       2,
	}

	f.attendance.EXPECT().ListAttendanceRows(ctx, store.AttendanceRowFilter{StudentID: "u-1"}).Return(rows, nil)
	f.lectures.EXPECT().CountEndedLectures(ctx, now).Return(ended, nil)

	got, err := f.svc.Percentage(ctx, "u-1")
	require.NoError(t, err)

	assert.Equal(t, models.AttendancePercentage{
		Overall: models.PercentageSummary{Attended: 3, Total: 10, Percentage: 30},
		Courses: []models.CoursePercentage{
			{
				Course:        "BCA",
				TotalAttended: 3,
				TotalLectures: 8,
				Percentage:    37.5,
				Subjects: []models.SubjectPercentage{
					{Subject: "DBMS", Attended: 1, Total: 1, Percentage: 100},
					{Subject: "OS", Attended: 2, Total: 4, Percentage: 50},
				},
			},
		},
	}, got)
}

func TestAttendanceService_Percentage_NoEndedLectures(t *testing.T) {
	f := newTestAttendanceSvc(t, lectureStart)
	ctx := context.Background()

	// a record for a lecture that is still running
	f.attendance.EXPECT().ListAttendanceRows(ctx, gomock.Any()).
		Return([]models.StudentAttendanceRow{{LectureID: "l-1", Course: "BCA", Subject: "OS"}}, nil)
	f.lectures.EXPECT().CountEndedLectures(ctx, lectureStart).Return(map[models.LectureKey]int{}, nil)

	got, err := f.svc.Percentage(ctx, "u-1")
	require.NoError(t, err)

	assert.Equal(t, 0.0, got.Overall.Percentage)
	require.Len(t, got.Courses, 1)
	assert.Equal(t, 0.0, got.Courses[0].Percentage)
	assert.Equal(t, 0.0, got.Courses[0].Subjects[0].Percentage)
}

func TestAttendanceService_Percentage_NoRecords(t *testing.T) {
	f := newTestAttendanceSvc(t, lectureStart)

	f.attendance.EXPECT().ListAttendanceRows(gomock.Any(), gomock.Any()).Return(nil, nil)
	f.lectures.EXPECT().CountEndedLectures(gomock.Any(), gomock.Any()).
		Return(map[models.LectureKey]int{{Course: "BCA", Subject: "OS"}: 5}, nil)

	got, err := f.svc.Percentage(context.Background(), "u-1")
	require.NoError(t, err)

	assert.Equal(t, models.PercentageSummary{Attended: 0, Total: 5, Percentage: 0}, got.Overall)
	assert.NotNil(t, got.Courses)
	assert.Empty(t, got.Courses)
}
