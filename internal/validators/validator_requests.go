// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Struct field names with dedicated error mappings.
const (
	FieldSemester = "Semester"
	FieldCourse   = "Course"
	FieldEndTime  = "EndTime"
)

// RequestValidator validates request DTOs through their `validate` struct
// tags. Errors are reported with JSON field names.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator constructs a RequestValidator and returns it as the
// Validator interface.
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	return &RequestValidator{validate: v}
}

// Validate checks obj against its struct tags. When fields are given, only
// those struct fields are checked.
//
// A missing semester or course on a student registration yields
// ErrStudentFieldsRequired; an end time not after the start time yields
// ErrInvalidLectureWindow. Every other failure wraps ErrValidation.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	for _, fe := range fieldErrors {
		switch {
		case fe.Tag() == "required_if" && (fe.StructField() == FieldSemester || fe.StructField() == FieldCourse):
			return ErrStudentFieldsRequired
		case fe.Tag() == "gtfield" && fe.StructField() == FieldEndTime:
			return ErrInvalidLectureWindow
		}
	}

	return fmt.Errorf("%w: %s", ErrValidation, describe(fieldErrors))
}

func describe(fieldErrors validator.ValidationErrors) string {
	parts := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, ", ")
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}
