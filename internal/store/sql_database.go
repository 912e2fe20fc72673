// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-qr-attendance/internal/config"
	"github.com/MKhiriev/go-qr-attendance/internal/logger"
	"github.com/MKhiriev/go-qr-attendance/migrations"
	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
)

// ErrorClassificator decides how a failed database operation is handled.
type ErrorClassificator interface {
	// Classify reports whether the operation that produced err may be retried.
	Classify(err error) ErrorClassification

	// IsUniqueViolation reports whether err is a unique constraint violation.
	IsUniqueViolation(err error) bool
}

// DB wraps a database/sql pool with the dialect-specific pieces the
// repositories need: the placeholder format of the query builder and the
// driver error classifier.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, driver string, classifier ErrorClassificator, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Dollar
	if driver == config.DriverSQLite {
		placeholder = sq.Question
	}

	return &DB{
		DB:                 conn,
		driver:             driver,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classifier,
		logger:             log,
	}
}

// Driver returns the database/sql driver name the pool was opened with.
func (db *DB) Driver() string {
	return db.driver
}

// isKey reports whether id can identify a row of the pool's dialect. Postgres
// keys are UUID columns, so any other text can never match and must not be
// sent to the server; SQLite keys are plain text.
func (db *DB) isKey(id string) bool {
	if db.driver != config.DriverPostgres {
		return true
	}
	_, err := uuid.Parse(id)
	return err == nil
}

// Migrate applies the embedded schema for the pool's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// NewConnect opens the database configured by cfg.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres, "":
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Connect retry policy.
const (
	pingBaseDelay  = 200 * time.Millisecond
	pingMaxRetries = 5
)

// pingWithRetry pings conn, retrying with exponential backoff while the
// classifier deems the failure transient.
func pingWithRetry(ctx context.Context, conn *sql.DB, classifier ErrorClassificator, log *logger.Logger) error {
	backoff := retry.WithMaxRetries(pingMaxRetries, retry.NewExponential(pingBaseDelay))

	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := conn.PingContext(ctx)
		if err == nil {
			return nil
		}

		if classifier.Classify(err) == Retryable {
			log.Warn().Err(err).Int("attempt", attempt).Msg("database is not ready, retrying ping")
			return retry.RetryableError(err)
		}
		return err
	})
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// utcTime normalizes driver-returned times so values round-trip equal
// regardless of dialect.
func utcTime(t time.Time) time.Time {
	return t.UTC()
}
