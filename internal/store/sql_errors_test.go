// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("boom"), want: NonRetryable},
		{name: "connect error", err: &pgconn.ConnectError{}, want: Retryable},
		{name: "connection failure", err: pgError(pgerrcode.ConnectionFailure), want: Retryable},
		{name: "deadlock", err: pgError(pgerrcode.DeadlockDetected), want: Retryable},
		{name: "serialization failure", err: pgError(pgerrcode.SerializationFailure), want: Retryable},
		{name: "cannot connect now", err: pgError(pgerrcode.CannotConnectNow), want: Retryable},
		{name: "wrapped connection exception", err: fmt.Errorf("ping: %w", pgError(pgerrcode.ConnectionException)), want: Retryable},
		{name: "unique violation", err: pgError(pgerrcode.UniqueViolation), want: NonRetryable},
		{name: "syntax error", err: pgError(pgerrcode.SyntaxError), want: NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(tt.err))
		})
	}
}

func TestPostgresErrorClassifier_IsUniqueViolation(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	assert.True(t, classifier.IsUniqueViolation(pgError(pgerrcode.UniqueViolation)))
	assert.True(t, classifier.IsUniqueViolation(fmt.Errorf("insert: %w", pgError(pgerrcode.UniqueViolation))))
	assert.False(t, classifier.IsUniqueViolation(pgError(pgerrcode.ForeignKeyViolation)))
	assert.False(t, classifier.IsUniqueViolation(errors.New("duplicate")))
}

func TestSQLiteErrorClassifier(t *testing.T) {
	classifier := NewSQLiteErrorClassifier()

	busy := sqlite3.Error{Code: sqlite3.ErrBusy}
	locked := sqlite3.Error{Code: sqlite3.ErrLocked}
	unique := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}
	primaryKey := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}
	foreignKey := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}

	assert.Equal(t, Retryable, classifier.Classify(busy))
	assert.Equal(t, Retryable, classifier.Classify(fmt.Errorf("wrapped: %w", locked)))
	assert.Equal(t, NonRetryable, classifier.Classify(unique))
	assert.Equal(t, NonRetryable, classifier.Classify(errors.New("boom")))

	assert.True(t, classifier.IsUniqueViolation(unique))
	assert.True(t, classifier.IsUniqueViolation(primaryKey))
	assert.False(t, classifier.IsUniqueViolation(foreignKey))
	assert.False(t, classifier.IsUniqueViolation(errors.New("UNIQUE constraint failed")))
}

func Test_sqliteDSN(t *testing.T) {
	assert.Equal(t, "file.db?"+sqliteParams, sqliteDSN("file.db"))
	assert.Equal(t, "file:test.db?mode=rwc&"+sqliteParams, sqliteDSN("file:test.db?mode=rwc"))
}
