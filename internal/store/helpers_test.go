// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-qr-attendance/internal/config"
	"github.com/MKhiriev/go-qr-attendance/internal/logger"
	"github.com/MKhiriev/go-qr-attendance/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

// newMockDB returns a postgres-dialect DB over sqlmock.
func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return newDB(conn, config.DriverPostgres, NewPostgresErrorClassifier(), logger.Nop()), mock
}

// newSQLiteStorages returns migrated repositories over a temp-file database.
func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()
	cfg := config.DB{
		DSN:    filepath.Join(t.TempDir(), "attendance.db"),
		Driver: config.DriverSQLite,
	}

	storages, err := NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	return storages
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func testStudent(id, identifier string) models.User {
	return models.User{
		ID:           id,
		Identifier:   identifier,
		Name:         "Student " + identifier,
		Role:         models.RoleStudent,
		Department:   "CS",
		PasswordHash: "hash",
		Student:      &models.StudentProfile{Semester: "4", Course: "BCA"},
		CreatedAt:    baseTime,
	}
}

func testFaculty(id, identifier string) models.User {
	return models.User{
		ID:           id,
		Identifier:   identifier,
		Name:         "Professor " + identifier,
		Role:         models.RoleFaculty,
		Department:   "CS",
		PasswordHash: "hash",
		CreatedAt:    baseTime,
	}
}

func testLecture(id, facultyID, course, subject string, start time.Time) models.Lecture {
	return models.Lecture{
		ID:        id,
		Subject:   subject,
		Course:    course,
		FacultyID: facultyID,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Room:      "A-101",
		QRCode:    "data:image/png;base64,AAAA",
		QRData:    `{"lectureId":"` + id + `"}`,
		CreatedAt: baseTime,
		UpdatedAt: baseTime,
	}
}
