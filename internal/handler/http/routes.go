// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-qr-attendance/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(middleware.Compress(5, "application/json"))

	router.NotFound(h.routeNotFound)
	router.MethodNotAllowed(h.routeNotFound)

	router.Get("/healthz", h.healthz)
	router.Handle("/metrics", h.metrics.Handler())
	router.Get("/api/version", h.getServerVersion)

	router.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.With(h.auth).Get("/profile", h.profile)
	})

	router.Route("/api/faculty", func(r chi.Router) {
		r.Use(h.auth, h.requireRole(models.RoleFaculty, "Not authorized, faculty only"))

		r.Post("/lectures", h.createLecture)
		r.Get("/lectures", h.listLectures)
		r.Get("/lectures/{id}/attendance", h.lectureAttendance)
		r.Put("/lectures/{id}/expire", h.expireLecture)
		r.Get("/reports/course/{course}", h.courseReport)
	})

	router.Route("/api/student", func(r chi.Router) {
		r.Use(h.auth, h.requireRole(models.RoleStudent, "Not authorized, student only"))

		r.With(h.withMarkRateLimit).Post("/attendance", h.markAttendance)
		r.Get("/attendance", h.attendanceHistory)
		r.Get("/attendance/percentage", h.attendancePercentage)
	})

	return router
}
