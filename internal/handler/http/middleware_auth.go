// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-qr-attendance/internal/logger"
	"github.com/MKhiriev/go-qr-attendance/internal/service"
	"github.com/MKhiriev/go-qr-attendance/internal/utils"
	"github.com/MKhiriev/go-qr-attendance/models"
)

// auth is an HTTP middleware that enforces bearer token authentication.
//
// It extracts the token from the "Authorization: Bearer <token>" header,
// resolves it to the stored user via [service.AuthService.ResolveSession] and
// stores that user in the request context under [utils.UserCtxKey]. The
// request logger is enriched with the user's ID and role.
//
// The middleware rejects requests with HTTP 401 Unauthorized when:
//   - the header is absent or is not a bearer header ("Not authorized, no token");
//   - the token is invalid or expired, or its user no longer exists
//     ("Not authorized, token failed").
//
// Any other failure while resolving the session is reported as 500.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteMessage(w, "Not authorized, no token", http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(ErrInvalidAuthorizationHeader).Send()
			utils.WriteMessage(w, "Not authorized, no token", http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.ResolveSession(ctx, tokenString)
		if err != nil {
			if errors.Is(err, service.ErrTokenIsExpiredOrInvalid) {
				log.Debug().Err(err).Msg("token rejected")
				utils.WriteMessage(w, "Not authorized, token failed", http.StatusUnauthorized)
				return
			}
			writeError(w, r, err)
			return
		}

		ctx = utils.WithUser(ctx, user)
		ctx = log.WithUser(user.ID, string(user.Role)).WithContext(ctx)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireRole admits only users of the given role. Everyone else receives
// 403 with message. It must run after auth.
func (h *Handler) requireRole(role models.Role, message string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := utils.GetUserFromContext(r.Context())
			if !ok {
				writeError(w, r, ErrUserNotInContext)
				return
			}
			if user.Role != role {
				utils.WriteMessage(w, message, http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// currentUser returns the user stored by auth.
func currentUser(r *http.Request) (models.User, error) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		return models.User{}, ErrUserNotInContext
	}
	return user, nil
}
