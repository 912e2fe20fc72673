// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package qr

import "errors"

var (
	// ErrMalformedPayload is returned when the scanned string is not a JSON
	// payload object.
	ErrMalformedPayload = errors.New("malformed QR payload")

	// ErrInvalidPayload is returned when the payload decodes but lacks the
	// lecture ID, start time or end time.
	ErrInvalidPayload = errors.New("invalid QR payload")

	// ErrRenderingFailed is returned when the QR image cannot be produced.
	ErrRenderingFailed = errors.New("failed to render QR code")
)
