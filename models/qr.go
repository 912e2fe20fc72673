// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// QRPayload is the structure encoded as JSON inside a lecture's QR image.
// The start and end times are copies taken when the payload was generated.
type QRPayload struct {
	LectureID string     `json:"lectureId"`
	Subject   string     `json:"subject"`
	Course    string     `json:"course"`
	FacultyID string     `json:"faculty"`
	StartTime *time.Time `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
	Timestamp time.Time  `json:"timestamp"`
}
