// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidUserData    = errors.New("invalid user data")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrForbidden is returned when a faculty member accesses a lecture owned
	// by someone else.
	ErrForbidden = errors.New("lecture belongs to another faculty member")

	ErrInvalidLectureData = errors.New("invalid lecture data")

	// ErrPayloadExpired is returned when the end time embedded in the scanned
	// payload has passed.
	ErrPayloadExpired = errors.New("QR payload is expired")

	// ErrSessionClosed is returned when the lecture is expired by its owner or
	// its live end time has passed.
	ErrSessionClosed = errors.New("lecture has ended or was expired")

	ErrAlreadyMarked = errors.New("attendance already marked for this lecture")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
