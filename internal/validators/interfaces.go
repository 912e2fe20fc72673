// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks incoming request DTOs before they reach the
// services. Failures wrap [ErrValidation] or one of the more specific
// sentinels so the HTTP layer can choose the public message.
package validators

import "context"

// Validator validates obj, optionally restricted to the named struct fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
