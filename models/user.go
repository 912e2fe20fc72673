// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Role is the closed set of account kinds.
type Role string

const (
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleStudent || r == RoleFaculty
}

// StudentProfile holds the fields that exist only for students.
type StudentProfile struct {
	Semester string `json:"semester"`
	Course   string `json:"course"`
}

// User represents an account used for authentication and authorization.
//
// The role-specific part is a variant: Student is non-nil if and only if
// Role is [RoleStudent]. Faculty accounts carry no extra fields.
type User struct {
	// ID is the server-assigned identifier (UUID v7).
	ID string `json:"id"`

	// Identifier is the globally unique login: roll number for students,
	// faculty code for faculty.
	Identifier string `json:"identifier"`

	// Name is the display name of the user.
	Name string `json:"name"`

	Role       Role   `json:"role"`
	Department string `json:"department"`

	// PasswordHash is the bcrypt hash of the secret. It never leaves the
	// server: excluded from JSON and dropped by [User.Public].
	PasswordHash string `json:"-"`

	// Student is set only for students.
	Student *StudentProfile `json:"-"`

	CreatedAt time.Time `json:"-"`
}

// IsStudent reports whether the account is a student account.
func (u User) IsStudent() bool {
	return u.Role == RoleStudent
}

// IsFaculty reports whether the account is a faculty account.
func (u User) IsFaculty() bool {
	return u.Role == RoleFaculty
}

// Public returns the profile that may be shown to the account owner.
func (u User) Public() UserProfile {
	profile := UserProfile{
		ID:         u.ID,
		Name:       u.Name,
		Role:       u.Role,
		Identifier: u.Identifier,
		Department: u.Department,
	}
	if u.Role == RoleStudent && u.Student != nil {
		profile.Semester = u.Student.Semester
		profile.Course = u.Student.Course
	}
	return profile
}

// UserProfile is the public projection of a [User]. Semester and Course are
// emitted only for students.
type UserProfile struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Role       Role   `json:"role"`
	Identifier string `json:"identifier"`
	Department string `json:"department"`
	Semester   string `json:"semester,omitempty"`
	Course     string `json:"course,omitempty"`
}

// StudentSummary is the slice of a student profile joined into faculty-facing
// attendance listings and reports.
type StudentSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Identifier string `json:"identifier"`
	Department string `json:"department"`
}
