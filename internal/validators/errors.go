// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrValidation is the generic failure: a required field is missing or a
	// value is outside its allowed set.
	ErrValidation = errors.New("validation failed")

	ErrStudentFieldsRequired = errors.New("semester and course are required for students")
	ErrInvalidLectureWindow  = errors.New("lecture end time must be after start time")
)
