// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-qr-attendance/internal/config"
	"github.com/MKhiriev/go-qr-attendance/internal/logger"
	"github.com/MKhiriev/go-qr-attendance/internal/store"
	"github.com/MKhiriev/go-qr-attendance/internal/utils"
	"github.com/MKhiriev/go-qr-attendance/internal/validators"
)

type Services struct {
	AuthService       AuthService
	LectureService    LectureService
	AttendanceService AttendanceService
	AppInfoService    AppInfoService
}

// Dependencies are the collaborators shared by every service.
type Dependencies struct {
	Clock     utils.Clock
	IDs       utils.IDGenerator
	Validator validators.Validator
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, deps Dependencies, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, deps, cfg.App, logger),
		LectureService:    NewLectureService(storages.LectureRepository, storages.AttendanceRepository, deps, logger),
		AttendanceService: NewAttendanceService(storages.LectureRepository, storages.AttendanceRepository, deps, cfg.App, logger),
		AppInfoService:    appInfoService,
	}, nil
}
