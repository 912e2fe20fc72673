// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-qr-attendance/internal/adapter"
	"github.com/MKhiriev/go-qr-attendance/internal/config"
	"github.com/MKhiriev/go-qr-attendance/internal/logger"
	"github.com/MKhiriev/go-qr-attendance/internal/mock"
	"github.com/MKhiriev/go-qr-attendance/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testApp struct {
	app     *App
	adapter *mock.MockServerAdapter
	out     *bytes.Buffer
	cfg     *config.ClientAdapter
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	ctrl := gomock.NewController(t)

	ta := &testApp{adapter: mock.NewMockServerAdapter(ctrl), out: &bytes.Buffer{}}
	factory := func(cfg config.ClientAdapter, _ *logger.Logger) (adapter.ServerAdapter, error) {
		ta.cfg = &cfg
		return ta.adapter, nil
	}
	ta.app = NewApp(ta.out, factory, logger.Nop())
	return ta
}

func (ta *testApp) run(t *testing.T, args ...string) error {
	t.Helper()
	return ta.app.Run(context.Background(), args)
}

func TestRun_FlagsOverrideDefaults(t *testing.T) {
	ta := newTestApp(t)
	ta.adapter.EXPECT().Profile(gomock.Any()).Return(models.UserProfile{ID: "s-1"}, nil)

	err := ta.run(t, "profile", "--address", "http://attendance.local:9000", "--token", "tok", "--timeout", "3s")

	require.NoError(t, err)
	require.NotNil(t, ta.cfg)
	assert.Equal(t, "http://attendance.local:9000", ta.cfg.HTTPAddress)
	assert.Equal(t, "tok", ta.cfg.Token)
	assert.Equal(t, 3*time.Second, ta.cfg.RequestTimeout)

	var profile models.UserProfile
	require.NoError(t, json.Unmarshal(ta.out.Bytes(), &profile))
	assert.Equal(t, "s-1", profile.ID)
}

func TestRun_Register(t *testing.T) {
	ta := newTestApp(t)
	ta.adapter.EXPECT().
		Register(gomock.Any(), models.RegisterRequest{
			Name:       "Alice",
			Role:       models.RoleStudent,
			Identifier: "BCA-01",
			Password:   "secret1",
			Department: "CS",
			Semester:   "3",
			Course:     "BCA",
		}).
		Return(models.AuthResponse{Token: "signed"}, nil)

	err := ta.run(t, "register", "--name", "Alice", "--identifier", "BCA-01", "--password", "secret1",
		"--department", "CS", "--semester", "3", "--course", "BCA")

	require.NoError(t, err)
	assert.Contains(t, ta.out.String(), `"token": "signed"`)
}

func TestRun_LoginRequiresFlags(t *testing.T) {
	ta := newTestApp(t)

	err := ta.run(t, "login", "--identifier", "F-01")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "password")
}

func TestRun_LoginPropagatesServerError(t *testing.T) {
	ta := newTestApp(t)
	ta.adapter.EXPECT().
		Login(gomock.Any(), models.LoginRequest{Identifier: "F-01", Password: "bad"}).
		Return(models.AuthResponse{}, adapter.ErrUnauthorized)

	err := ta.run(t, "login", "--identifier", "F-01", "--password", "bad")

	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Empty(t, ta.out.String())
}

func TestRun_CreateLecture(t *testing.T) {
	ta := newTestApp(t)
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	ta.adapter.EXPECT().
		CreateLecture(gomock.Any(), models.CreateLectureRequest{
			Subject:   "OS",
			Course:    "BCA",
			Room:      "R1",
			StartTime: start,
			EndTime:   start.Add(time.Hour),
		}).
		Return(models.Lecture{ID: "l-1"}, nil)

	err := ta.run(t, "lectures", "create", "--subject", "OS", "--course", "BCA", "--room", "R1",
		"--start", "2026-03-02T09:00:00Z", "--end", "2026-03-02T10:00:00Z")

	require.NoError(t, err)
	assert.Contains(t, ta.out.String(), `"id": "l-1"`)
}

func TestRun_CreateLectureRejectsBadTime(t *testing.T) {
	ta := newTestApp(t)

	err := ta.run(t, "lectures", "create", "--subject", "OS", "--course", "BCA", "--room", "R1",
		"--start", "tomorrow", "--end", "2026-03-02T10:00:00Z")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--start")
}

func TestRun_LectureSubcommands(t *testing.T) {
	ta := newTestApp(t)
	gomock.InOrder(
		ta.adapter.EXPECT().ListLectures(gomock.Any()).Return([]models.Lecture{{ID: "l-1"}}, nil),
		ta.adapter.EXPECT().ExpireLecture(gomock.Any(), "l-1").Return(nil),
		ta.adapter.EXPECT().LectureAttendance(gomock.Any(), "l-1").Return([]models.LectureAttendance{}, nil),
	)

	require.NoError(t, ta.run(t, "lectures", "list"))
	require.NoError(t, ta.run(t, "lectures", "expire", "l-1"))
	require.NoError(t, ta.run(t, "lectures", "attendance", "l-1"))

	assert.Contains(t, ta.out.String(), "Lecture QR code expired successfully")
}

func TestRun_ExpireNeedsLectureID(t *testing.T) {
	ta := newTestApp(t)

	assert.Error(t, ta.run(t, "lectures", "expire"))
}

func TestRun_CourseReport(t *testing.T) {
	ta := newTestApp(t)
	ta.adapter.EXPECT().
		CourseReport(gomock.Any(), "B Tech", "2026-03-01", "2026-03-31").
		Return(models.CourseReport{Course: "B Tech", TotalLectures: 4}, nil)

	err := ta.run(t, "report", "course", "B Tech", "--start-date", "2026-03-01", "--end-date", "2026-03-31")

	require.NoError(t, err)

	var report models.CourseReport
	require.NoError(t, json.Unmarshal(ta.out.Bytes(), &report))
	assert.Equal(t, 4, report.TotalLectures)
}

func TestRun_MarkFromFile(t *testing.T) {
	ta := newTestApp(t)
	path := filepath.Join(t.TempDir(), "qr.txt")
	require.NoError(t, os.WriteFile(path, []byte("{\"lectureId\":\"l-1\"}\n"), 0o600))

	ta.adapter.EXPECT().
		MarkAttendance(gomock.Any(), `{"lectureId":"l-1"}`).
		Return(models.MarkAttendanceResponse{Message: "Attendance marked successfully as present"}, nil)

	require.NoError(t, ta.run(t, "attend", "mark", "--qr-file", path))
	assert.Contains(t, ta.out.String(), "present")
}

func TestRun_MarkWithoutPayload(t *testing.T) {
	ta := newTestApp(t)

	err := ta.run(t, "attend", "mark")

	assert.ErrorIs(t, err, errNoQRData)
}

func TestRun_MarkRateLimited(t *testing.T) {
	ta := newTestApp(t)
	ta.adapter.EXPECT().
		MarkAttendance(gomock.Any(), "payload").
		Return(models.MarkAttendanceResponse{}, adapter.ErrTooManyRequests)

	err := ta.run(t, "attend", "mark", "--qr-data", "payload")

	assert.True(t, errors.Is(err, adapter.ErrTooManyRequests))
}

func TestRun_HistoryAndPercentage(t *testing.T) {
	ta := newTestApp(t)
	ta.adapter.EXPECT().
		History(gomock.Any(), adapter.HistoryQuery{Course: "BCA", Subject: "OS"}).
		Return([]models.AttendanceHistoryEntry{{ID: "a-1"}}, nil)
	ta.adapter.EXPECT().
		Percentage(gomock.Any()).
		Return(models.AttendancePercentage{Overall: models.PercentageSummary{Attended: 3, Total: 4, Percentage: 75}}, nil)

	require.NoError(t, ta.run(t, "attend", "history", "--course", "BCA", "--subject", "OS"))
	require.NoError(t, ta.run(t, "attend", "percentage"))

	assert.Contains(t, ta.out.String(), `"id": "a-1"`)
	assert.Contains(t, ta.out.String(), `"percentage": 75`)
}

func TestRun_Version(t *testing.T) {
	ta := newTestApp(t)
	ta.adapter.EXPECT().Version(gomock.Any()).Return("1.0.0", nil)

	require.NoError(t, ta.run(t, "version"))
	assert.JSONEq(t, `{"version":"1.0.0"}`, ta.out.String())
}

func TestRun_AdapterFactoryError(t *testing.T) {
	wantErr := errors.New("boom")
	app := NewApp(&bytes.Buffer{}, func(config.ClientAdapter, *logger.Logger) (adapter.ServerAdapter, error) {
		return nil, wantErr
	}, logger.Nop())

	err := app.Run(context.Background(), []string{"profile"})

	assert.ErrorIs(t, err, wantErr)
}
