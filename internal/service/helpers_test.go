// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-qr-attendance/internal/config"
	"github.com/MKhiriev/go-qr-attendance/internal/qr"
	"github.com/MKhiriev/go-qr-attendance/internal/utils"
	"github.com/MKhiriev/go-qr-attendance/internal/validators"
	"github.com/MKhiriev/go-qr-attendance/models"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// lectureStart is 09:00 of the lecture used throughout the tests.
var lectureStart = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

// sequenceIDs issues "<prefix>-1", "<prefix>-2", ...
type sequenceIDs struct {
	mu     sync.Mutex
	prefix string
	n      int
}

func (g *sequenceIDs) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("%s-%d", g.prefix, g.n)
}

func testDeps(clock utils.Clock) Dependencies {
	return Dependencies{
		Clock:     clock,
		IDs:       &sequenceIDs{prefix: "id"},
		Validator: validators.NewRequestValidator(),
	}
}

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "attendance-test",
		TokenDuration: 720 * time.Hour,
		BcryptCost:    bcrypt.MinCost,
		LateAfter:     15 * time.Minute,
		Version:       "1.0.0",
	}
}

func testLecture(id, facultyID string) models.Lecture {
	return models.Lecture{
		ID:        id,
		Subject:   "Operating Systems",
		Course:    "BCA",
		FacultyID: facultyID,
		StartTime: lectureStart,
		EndTime:   lectureStart.Add(time.Hour),
		Room:      "A-101",
		CreatedAt: lectureStart.Add(-time.Hour),
		UpdatedAt: lectureStart.Add(-time.Hour),
	}
}

// payloadOf returns the scanned string a student would submit for lecture.
func payloadOf(t *testing.T, lecture models.Lecture) string {
	t.Helper()
	raw, err := qr.Encode(qr.NewPayload(lecture, lecture.CreatedAt))
	require.NoError(t, err)
	return raw
}
