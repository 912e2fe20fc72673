// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package qr

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-qr-attendance/models"
)

// NewPayload derives the payload of lecture, stamped with generatedAt.
func NewPayload(lecture models.Lecture, generatedAt time.Time) models.QRPayload {
	start := lecture.StartTime.UTC()
	end := lecture.EndTime.UTC()

	return models.QRPayload{
		LectureID: lecture.ID,
		Subject:   lecture.Subject,
		Course:    lecture.Course,
		FacultyID: lecture.FacultyID,
		StartTime: &start,
		EndTime:   &end,
		Timestamp: generatedAt.UTC(),
	}
}

// Encode serializes payload to the string embedded in the QR image.
func Encode(payload models.QRPayload) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("error encoding QR payload: %w", err)
	}

	return string(data), nil
}

// Decode parses a scanned payload string.
//
// It returns [ErrMalformedPayload] if raw is not a JSON object matching the
// payload shape, and [ErrInvalidPayload] if the lecture ID, start time or end
// time is missing.
func Decode(raw string) (models.QRPayload, error) {
	var payload models.QRPayload

	decoder := json.NewDecoder(strings.NewReader(raw))
	if err := decoder.Decode(&payload); err != nil {
		return models.QRPayload{}, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	if decoder.More() {
		return models.QRPayload{}, fmt.Errorf("%w: trailing data after payload", ErrMalformedPayload)
	}

	if err := Validate(payload); err != nil {
		return models.QRPayload{}, err
	}

	return payload, nil
}

// Validate checks the structural requirements of a decoded payload.
func Validate(payload models.QRPayload) error {
	if strings.TrimSpace(payload.LectureID) == "" {
		return fmt.Errorf("%w: missing lecture id", ErrInvalidPayload)
	}
	if payload.StartTime == nil || payload.StartTime.IsZero() {
		return fmt.Errorf("%w: missing start time", ErrInvalidPayload)
	}
	if payload.EndTime == nil || payload.EndTime.IsZero() {
		return fmt.Errorf("%w: missing end time", ErrInvalidPayload)
	}

	return nil
}
