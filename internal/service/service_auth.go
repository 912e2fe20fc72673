// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-qr-attendance/internal/config"
	"github.com/MKhiriev/go-qr-attendance/internal/logger"
	"github.com/MKhiriev/go-qr-attendance/internal/store"
	"github.com/MKhiriev/go-qr-attendance/internal/utils"
	"github.com/MKhiriev/go-qr-attendance/internal/validators"
	"github.com/MKhiriev/go-qr-attendance/models"
)

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification and the token lifecycle,
// using a UserRepository for persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	clock     utils.Clock
	ids       utils.IDGenerator
	validator validators.Validator

	// bcryptCost is the work factor of newly created password hashes.
	bcryptCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, deps Dependencies, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		clock:          deps.Clock,
		ids:            deps.IDs,
		validator:      deps.Validator,
		bcryptCost:     cfg.BcryptCost,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new account and issues its first token.
//
// Returns:
//   - validators.ErrStudentFieldsRequired if a student omits semester or course.
//   - ErrInvalidUserData for any other invalid field.
//   - store.ErrIdentifierAlreadyExists (wrapped) if the identifier is taken.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	req = trimRegisterRequest(req)
	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("identifier", req.Identifier).Msg("invalid registration data")
		if errors.Is(err, validators.ErrStudentFieldsRequired) {
			return models.AuthResponse{}, err
		}
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrInvalidUserData, err)
	}

	passwordHash, err := utils.HashPassword(req.Password, a.bcryptCost)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("error hashing password: %w", err)
	}

	user := models.User{
		ID:           a.ids.Generate(),
		Identifier:   req.Identifier,
		Name:         req.Name,
		Role:         req.Role,
		Department:   req.Department,
		PasswordHash: passwordHash,
		CreatedAt:    a.clock.Now(),
	}
	if req.Role == models.RoleStudent {
		user.Student = &models.StudentProfile{Semester: req.Semester, Course: req.Course}
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("identifier", user.Identifier).Msg("user creation ended with error")
		return models.AuthResponse{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return a.authResponse(registeredUser)
}

// Login authenticates an existing account. An unknown identifier and a wrong
// password are indistinguishable to the caller: both yield
// ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	req.Identifier = strings.TrimSpace(req.Identifier)
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.AuthResponse{}, ErrInvalidCredentials
	}

	foundUser, err := a.userRepository.FindUserByIdentifier(ctx, req.Identifier)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.AuthResponse{}, ErrInvalidCredentials
		}
		log.Err(err).Str("identifier", req.Identifier).Msg("user search by identifier failed")
		return models.AuthResponse{}, fmt.Errorf("user search by identifier failed: %w", err)
	}

	if !utils.CheckPassword(foundUser.PasswordHash, req.Password) {
		log.Info().Str("user_id", foundUser.ID).Msg("wrong password")
		return models.AuthResponse{}, ErrInvalidCredentials
	}

	return a.authResponse(foundUser)
}

// ParseToken validates and parses a raw JWT string. Any validation failure
// (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.clock.Now())
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func (a *authService) ResolveSession(ctx context.Context, tokenString string) (models.User, error) {
	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrTokenIsExpiredOrInvalid
		}
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}
	user.PasswordHash = ""

	return user, nil
}

func (a *authService) Profile(ctx context.Context, userID string) (models.UserProfile, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user.Public(), nil
}

func (a *authService) authResponse(user models.User) (models.AuthResponse, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, user.Role, a.tokenDuration, a.tokenSignKey, a.clock.Now())
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.AuthResponse{
		UserProfile: user.Public(),
		Token:       token.String(),
	}, nil
}

func trimRegisterRequest(req models.RegisterRequest) models.RegisterRequest {
	req.Name = strings.TrimSpace(req.Name)
	req.Identifier = strings.TrimSpace(req.Identifier)
	req.Department = strings.TrimSpace(req.Department)
	req.Semester = strings.TrimSpace(req.Semester)
	req.Course = strings.TrimSpace(req.Course)
	return req
}
