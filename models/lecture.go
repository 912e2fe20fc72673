// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Lecture is one scheduled, time-bounded class during which attendance can be
// recorded. It is owned by the faculty member who created it.
type Lecture struct {
	ID        string    `json:"id"`
	Subject   string    `json:"subject"`
	Course    string    `json:"course"`
	FacultyID string    `json:"faculty"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Room      string    `json:"room"`

	// QRCode is the rendered QR image as a PNG data URL.
	QRCode string `json:"qrCode"`

	// QRData is the JSON payload encoded inside QRCode.
	QRData string `json:"qrData"`

	// QRExpired is the faculty-controlled expiry flag. It only ever moves
	// from false to true.
	QRExpired bool `json:"qrExpired"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsActive reports whether attendance can still be marked at now.
func (l Lecture) IsActive(now time.Time) bool {
	return !l.QRExpired && !now.After(l.EndTime)
}

// LectureFilter narrows lecture lookups. Zero fields are not applied.
// The start range is applied only when both From and To are set.
type LectureFilter struct {
	FacultyID string
	Course    string
	From      *time.Time
	To        *time.Time

	// EndedBefore keeps lectures whose end time is strictly before it.
	EndedBefore *time.Time
}
