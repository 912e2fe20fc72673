// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-qr-attendance/internal/config"
	"github.com/MKhiriev/go-qr-attendance/internal/logger"
)

// Storages bundles the repositories sharing one database pool.
type Storages struct {
	DB                   *DB
	UserRepository       UserRepository
	LectureRepository    LectureRepository
	AttendanceRepository AttendanceRepository
}

// NewStorages connects to the configured database, applies migrations and
// builds every repository on top of the pool.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return NewStoragesFromDB(db, log), nil
}

// NewStoragesFromDB builds the repositories on an already prepared pool.
func NewStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		DB:                   db,
		UserRepository:       NewUserRepository(db, log),
		LectureRepository:    NewLectureRepository(db, log),
		AttendanceRepository: NewAttendanceRepository(db, log),
	}
}

// Ping checks that the database is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

// Close releases the database pool.
func (s *Storages) Close() error {
	return s.DB.Close()
}
