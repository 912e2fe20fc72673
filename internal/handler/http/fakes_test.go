// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-qr-attendance/internal/logger"
	"github.com/MKhiriev/go-qr-attendance/internal/metrics"
	"github.com/MKhiriev/go-qr-attendance/internal/service"
	"github.com/MKhiriev/go-qr-attendance/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAuthService implements service.AuthService. Unset fields panic when
// called, which surfaces unexpected calls in tests.
type fakeAuthService struct {
	registerFn       func(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)
	loginFn          func(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	parseTokenFn     func(ctx context.Context, token string) (models.Token, error)
	resolveSessionFn func(ctx context.Context, token string) (models.User, error)
	profileFn        func(ctx context.Context, userID string) (models.UserProfile, error)
}

func (f *fakeAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	return f.registerFn(ctx, req)
}

func (f *fakeAuthService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	return f.loginFn(ctx, req)
}

func (f *fakeAuthService) ParseToken(ctx context.Context, token string) (models.Token, error) {
	return f.parseTokenFn(ctx, token)
}

func (f *fakeAuthService) ResolveSession(ctx context.Context, token string) (models.User, error) {
	return f.resolveSessionFn(ctx, token)
}

func (f *fakeAuthService) Profile(ctx context.Context, userID string) (models.UserProfile, error) {
	return f.profileFn(ctx, userID)
}

type fakeLectureService struct {
	createFn     func(ctx context.Context, facultyID string, req models.CreateLectureRequest) (models.Lecture, error)
	listFn       func(ctx context.Context, facultyID string) ([]models.Lecture, error)
	expireFn     func(ctx context.Context, facultyID, lectureID string) error
	attendanceFn func(ctx context.Context, facultyID, lectureID string) ([]models.LectureAttendance, error)
	reportFn     func(ctx context.Context, req models.CourseReportRequest) (models.CourseReport, error)
}

func (f *fakeLectureService) CreateLecture(ctx context.Context, facultyID string, req models.CreateLectureRequest) (models.Lecture, error) {
	return f.createFn(ctx, facultyID, req)
}

func (f *fakeLectureService) ListLectures(ctx context.Context, facultyID string) ([]models.Lecture, error) {
	return f.listFn(ctx, facultyID)
}

func (f *fakeLectureService) ExpireLecture(ctx context.Context, facultyID, lectureID string) error {
	return f.expireFn(ctx, facultyID, lectureID)
}

func (f *fakeLectureService) GetLectureAttendance(ctx context.Context, facultyID, lectureID string) ([]models.LectureAttendance, error) {
	return f.attendanceFn(ctx, facultyID, lectureID)
}

func (f *fakeLectureService) CourseReport(ctx context.Context, req models.CourseReportRequest) (models.CourseReport, error) {
	return f.reportFn(ctx, req)
}

type fakeAttendanceService struct {
	markFn       func(ctx context.Context, studentID string, req models.MarkAttendanceRequest) (models.Attendance, error)
	historyFn    func(ctx context.Context, studentID string, filter models.HistoryFilter) ([]models.AttendanceHistoryEntry, error)
	percentageFn func(ctx context.Context, studentID string) (models.AttendancePercentage, error)
}

func (f *fakeAttendanceService) MarkAttendance(ctx context.Context, studentID string, req models.MarkAttendanceRequest) (models.Attendance, error) {
	return f.markFn(ctx, studentID, req)
}

func (f *fakeAttendanceService) History(ctx context.Context, studentID string, filter models.HistoryFilter) ([]models.AttendanceHistoryEntry, error) {
	return f.historyFn(ctx, studentID, filter)
}

func (f *fakeAttendanceService) Percentage(ctx context.Context, studentID string) (models.AttendancePercentage, error) {
	return f.percentageFn(ctx, studentID)
}

type fakeAppInfoService struct {
	version string
}

func (f *fakeAppInfoService) GetAppVersion(_ context.Context) string {
	return f.version
}

type fakeHealth struct {
	err error
}

func (f fakeHealth) Ping(_ context.Context) error {
	return f.err
}

// Tokens accepted by sessionAuth.
const (
	facultyToken = "faculty-token"
	studentToken = "student-token"
)

var (
	testFaculty = models.User{ID: "f-1", Identifier: "FAC-7", Name: "Dr. Rao", Role: models.RoleFaculty}
	testStudent = models.User{
		ID: "u-1", Identifier: "BCA-01", Name: "Alice", Role: models.RoleStudent,
		Student: &models.StudentProfile{Semester: "4", Course: "BCA"},
	}
)

// sessionAuth resolves facultyToken and studentToken and rejects anything
// else as an invalid token.
func sessionAuth() *fakeAuthService {
	return &fakeAuthService{
		resolveSessionFn: func(_ context.Context, token string) (models.User, error) {
			switch token {
			case facultyToken:
				return testFaculty, nil
			case studentToken:
				return testStudent, nil
			}
			return models.User{}, service.ErrTokenIsExpiredOrInvalid
		},
	}
}

type testServer struct {
	handler    *Handler
	router     http.Handler
	auth       *fakeAuthService
	lectures   *fakeLectureService
	attendance *fakeAttendanceService
	metrics    *metrics.Metrics
}

func newTestServer(t *testing.T, deps Dependencies) *testServer {
	t.Helper()

	ts := &testServer{
		auth:       sessionAuth(),
		lectures:   &fakeLectureService{},
		attendance: &fakeAttendanceService{},
		metrics:    metrics.New(),
	}
	deps.Metrics = ts.metrics

	services := &service.Services{
		AuthService:       ts.auth,
		LectureService:    ts.lectures,
		AttendanceService: ts.attendance,
		AppInfoService:    &fakeAppInfoService{version: "1.2.3"},
	}

	ts.handler = NewHandler(services, deps, logger.Nop())
	ts.router = ts.handler.Init()
	return ts
}

// do sends a request through the router. body is JSON-encoded unless it is
// a string, which is sent as is.
func (ts *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func messageOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[models.MessageResponse](t, rec).Message
}

// assertMarkCounted scrapes /metrics and checks that outcome was counted once.
func assertMarkCounted(t *testing.T, ts *testServer, outcome string) {
	t.Helper()
	rec := ts.do(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), fmt.Sprintf(`attendance_marks_total{outcome=%q} 1`, outcome))
}
