// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-qr-attendance/internal/service"
	"github.com/MKhiriev/go-qr-attendance/internal/store"
	"github.com/MKhiriev/go-qr-attendance/internal/validators"
	"github.com/MKhiriev/go-qr-attendance/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	tests := []struct {
		name        string
		body        any
		serviceErr  error
		wantStatus  int
		wantMessage string
	}{
		{
			name:       "created",
			body:       models.RegisterRequest{Name: "Alice", Role: models.RoleStudent, Identifier: "BCA-01", Password: "secret1"},
			wantStatus: http.StatusCreated,
		},
		{
			name:        "malformed body",
			body:        "{not json",
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid JSON was passed",
		},
		{
			name:        "student without course",
			body:        models.RegisterRequest{Role: models.RoleStudent},
			serviceErr:  validators.ErrStudentFieldsRequired,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Semester and course are required for students",
		},
		{
			name:        "invalid data",
			body:        models.RegisterRequest{},
			serviceErr:  service.ErrInvalidUserData,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid user data",
		},
		{
			name:        "duplicate identifier",
			body:        models.RegisterRequest{Identifier: "BCA-01"},
			serviceErr:  store.ErrIdentifierAlreadyExists,
			wantStatus:  http.StatusConflict,
			wantMessage: "User already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, Dependencies{})
			ts.auth.registerFn = func(_ context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
				if tt.serviceErr != nil {
					return models.AuthResponse{}, tt.serviceErr
				}
				return models.AuthResponse{
					UserProfile: models.UserProfile{ID: "u-1", Name: req.Name, Role: req.Role, Identifier: req.Identifier},
					Token:       "signed",
				}, nil
			}

			rec := ts.do(t, http.MethodPost, "/api/auth/register", "", tt.body)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, messageOf(t, rec))
				return
			}
			resp := decodeBody[models.AuthResponse](t, rec)
			assert.Equal(t, "signed", resp.Token)
			assert.Equal(t, "BCA-01", resp.Identifier)
		})
	}
}

func TestRegister_ResponseHasNoPasswordHash(t *testing.T) {
	ts := newTestServer(t, Dependencies{})
	ts.auth.registerFn = func(_ context.Context, _ models.RegisterRequest) (models.AuthResponse, error) {
		return models.AuthResponse{UserProfile: testStudent.Public(), Token: "signed"}, nil
	}

	rec := ts.do(t, http.MethodPost, "/api/auth/register", "", models.RegisterRequest{})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
	assert.Contains(t, rec.Body.String(), `"semester":"4"`)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name        string
		serviceErr  error
		wantStatus  int
		wantMessage string
	}{
		{name: "ok", wantStatus: http.StatusOK},
		{name: "bad credentials", serviceErr: service.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized, wantMessage: "Invalid credentials"},
		{name: "storage failure", serviceErr: store.ErrExecutingQuery, wantStatus: http.StatusInternalServerError, wantMessage: "Server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, Dependencies{})
			ts.auth.loginFn = func(_ context.Context, req models.LoginRequest) (models.AuthResponse, error) {
				assert.Equal(t, "FAC-7", req.Identifier)
				if tt.serviceErr != nil {
					return models.AuthResponse{}, tt.serviceErr
				}
				return models.AuthResponse{UserProfile: testFaculty.Public(), Token: "signed"}, nil
			}

			rec := ts.do(t, http.MethodPost, "/api/auth/login", "", models.LoginRequest{Identifier: "FAC-7", Password: "secret1"})

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, messageOf(t, rec))
			}
		})
	}
}

func TestProfile(t *testing.T) {
	ts := newTestServer(t, Dependencies{})
	ts.auth.profileFn = func(_ context.Context, userID string) (models.UserProfile, error) {
		require.Equal(t, testStudent.ID, userID)
		return testStudent.Public(), nil
	}

	rec := ts.do(t, http.MethodGet, "/api/auth/profile", studentToken, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, testStudent.Public(), decodeBody[models.UserProfile](t, rec))
}

func TestProfile_UserDeleted(t *testing.T) {
	ts := newTestServer(t, Dependencies{})
	ts.auth.profileFn = func(_ context.Context, _ string) (models.UserProfile, error) {
		return models.UserProfile{}, store.ErrUserNotFound
	}

	rec := ts.do(t, http.MethodGet, "/api/auth/profile", facultyToken, nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", messageOf(t, rec))
}
