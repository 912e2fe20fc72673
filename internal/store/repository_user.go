// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-qr-attendance/internal/logger"
	"github.com/MKhiriev/go-qr-attendance/models"
)

type userRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewUserRepository constructs the SQL-backed [UserRepository].
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("UserRepository created")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser relies on ON CONFLICT DO NOTHING: an empty result means the
// identifier was taken, by an earlier or a concurrent registration.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(r.db.builder, user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&id)
	switch {
	case err == nil:
		user.ID = id
		user.CreatedAt = utcTime(user.CreatedAt)
		return user, nil
	case isNoRows(err), r.db.errorClassificator.IsUniqueViolation(err):
		log.Debug().Str("func", "*userRepository.CreateUser").Str("identifier", user.Identifier).Msg("identifier already exists")
		return models.User{}, ErrIdentifierAlreadyExists
	default:
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}

func (r *userRepository) FindUserByIdentifier(ctx context.Context, identifier string) (models.User, error) {
	return r.findUser(ctx, "identifier", identifier)
}

func (r *userRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return r.findUser(ctx, "id", id)
}

func (r *userRepository) findUser(ctx context.Context, column, value string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserQuery(r.db.builder, column, value)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.findUser").Str("by", column).Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user             models.User
		role             string
		semester, course sql.NullString
	)

	err := row.Scan(
		&user.ID,
		&user.Identifier,
		&user.Name,
		&role,
		&user.Department,
		&user.PasswordHash,
		&semester,
		&course,
		&user.CreatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	user.Role = models.Role(role)
	user.CreatedAt = utcTime(user.CreatedAt)
	if user.Role == models.RoleStudent {
		user.Student = &models.StudentProfile{
			Semester: semester.String,
			Course:   course.String,
		}
	}

	return user, nil
}
