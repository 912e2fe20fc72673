// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrIdentifierAlreadyExists is returned when a registration loses the
	// uniqueness race on the identifier column.
	ErrIdentifierAlreadyExists = errors.New("identifier already exists")

	// ErrUserNotFound is returned when no user matches the lookup key.
	ErrUserNotFound = errors.New("no user was found")

	// ErrLectureNotFound is returned when no lecture matches the lookup key.
	ErrLectureNotFound = errors.New("lecture was not found")

	// ErrAttendanceConflict is returned when an attendance record for the
	// same (lecture, student) pair already exists. It is the only reliable
	// duplicate signal under concurrent marking.
	ErrAttendanceConflict = errors.New("attendance already recorded for lecture and student")

	// ErrUnsupportedDriver is returned when the configured database driver is
	// neither pgx nor sqlite3.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
