// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CourseReport is the faculty-facing aggregate for one course. TotalLectures
// is the size of the filtered lecture set and is the denominator of every
// student row.
type CourseReport struct {
	Course        string                 `json:"course"`
	TotalLectures int                    `json:"totalLectures"`
	Students      []StudentCourseSummary `json:"students"`
}

// StudentCourseSummary is one student's row in a [CourseReport].
type StudentCourseSummary struct {
	Student          StudentSummary `json:"student"`
	AttendedLectures int            `json:"attendedLectures"`
	TotalLectures    int            `json:"totalLectures"`
	Percentage       float64        `json:"percentage"`
}

// AttendancePercentage is the student-facing aggregate.
type AttendancePercentage struct {
	Overall PercentageSummary  `json:"overall"`
	Courses []CoursePercentage `json:"courses"`
}

// PercentageSummary is a single attended/total ratio.
type PercentageSummary struct {
	Attended   int     `json:"attended"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// CoursePercentage aggregates one course of a student.
type CoursePercentage struct {
	Course        string              `json:"course"`
	TotalAttended int                 `json:"totalAttended"`
	TotalLectures int                 `json:"totalLectures"`
	Percentage    float64             `json:"percentage"`
	Subjects      []SubjectPercentage `json:"subjects"`
}

// SubjectPercentage aggregates one (course, subject) pair of a student.
type SubjectPercentage struct {
	Subject    string  `json:"subject"`
	Attended   int     `json:"attended"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// LectureKey identifies the (course, subject) bucket of a lecture. It is the
// projection used when counting past lectures.
type LectureKey struct {
	Course  string
	Subject string
}

// StudentAttendanceRow is a ledger entry joined with the lecture bucket and
// the student summary, used for aggregation.
type StudentAttendanceRow struct {
	Student   StudentSummary
	LectureID string
	Course    string
	Subject   string
}
