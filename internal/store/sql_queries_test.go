// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-qr-attendance/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	dollarBuilder   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	questionBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func Test_buildCreateUserQuery(t *testing.T) {
	query, args, err := buildCreateUserQuery(dollarBuilder, testStudent("u-1", "S1"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "INSERT INTO users (id,identifier,name,role,department,password_hash,semester,course,created_at)"))
	assert.True(t, strings.HasSuffix(query, "ON CONFLICT (identifier) DO NOTHING RETURNING id"))
	assert.Contains(t, query, "$9")
	assert.Equal(t, []any{"u-1", "S1", "Student S1", "student", "CS", "hash", "4", "BCA", baseTime}, args)
}

func Test_buildCreateUserQuery_FacultyHasNullStudentFields(t *testing.T) {
	_, args, err := buildCreateUserQuery(questionBuilder, testFaculty("f-1", "F1"))
	require.NoError(t, err)

	require.Len(t, args, 9)
	assert.Nil(t, args[6])
	assert.Nil(t, args[7])
}

func Test_buildCreateUserQuery_StoresUTC(t *testing.T) {
	user := testStudent("u-1", "S1")
	user.CreatedAt = baseTime.In(time.FixedZone("IST", 5*3600+1800))

	_, args, err := buildCreateUserQuery(dollarBuilder, user)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, args[8].(time.Time).Location())
}

func Test_buildListLecturesQuery(t *testing.T) {
	from := baseTime
	to := baseTime.Add(48 * time.Hour)

	tests := []struct {
		name      string
		filter    models.LectureFilter
		wantWhere string
		wantArgs  []any
	}{
		{
			name:      "no filter",
			filter:    models.LectureFilter{},
			wantWhere: "",
			wantArgs:  nil,
		},
		{
			name:      "faculty and course",
			filter:    models.LectureFilter{FacultyID: "f-1", Course: "BCA"},
			wantWhere: " WHERE faculty_id = $1 AND course = $2",
			wantArgs:  []any{"f-1", "BCA"},
		},
		{
			name:      "only one date bound is ignored",
			filter:    models.LectureFilter{Course: "BCA", From: &from},
			wantWhere: " WHERE course = $1",
			wantArgs:  []any{"BCA"},
		},
		{
			name:      "full date range",
			filter:    models.LectureFilter{Course: "BCA", From: &from, To: &to},
			wantWhere: " WHERE course = $1 AND start_time >= $2 AND start_time <= $3",
			wantArgs:  []any{"BCA", from, to},
		},
		{
			name:      "ended before",
			filter:    models.LectureFilter{EndedBefore: &to},
			wantWhere: " WHERE end_time < $1",
			wantArgs:  []any{to},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListLecturesQuery(dollarBuilder, tt.filter)
			require.NoError(t, err)

			want := "SELECT " + strings.Join(lectureColumns, ", ") + " FROM lectures" +
				tt.wantWhere + " ORDER BY start_time DESC, id"
			assert.Equal(t, want, query)
			if tt.wantArgs == nil {
				assert.Empty(t, args)
				return
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func Test_buildInsertAttendanceQuery_QuestionPlaceholders(t *testing.T) {
	attendance := models.Attendance{
		ID:        "a-1",
		LectureID: "l-1",
		StudentID: "u-1",
		Timestamp: baseTime,
		Status:    models.StatusLate,
		CreatedAt: baseTime,
	}

	query, args, err := buildInsertAttendanceQuery(questionBuilder, attendance)
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO attendance (id,lecture_id,student_id,marked_at,status,created_at) VALUES (?,?,?,?,?,?) "+
			"ON CONFLICT (lecture_id, student_id) DO NOTHING RETURNING id",
		query)
	assert.Equal(t, []any{"a-1", "l-1", "u-1", baseTime, "late", baseTime}, args)
}

func Test_buildListAttendanceRowsQuery(t *testing.T) {
	t.Run("by student", func(t *testing.T) {
		query, args, err := buildListAttendanceRowsQuery(dollarBuilder, AttendanceRowFilter{StudentID: "u-1"})
		require.NoError(t, err)
		assert.Contains(t, query, "WHERE a.student_id = $1")
		assert.NotContains(t, query, "a.lecture_id IN")
		assert.Equal(t, []any{"u-1"}, args)
	})

	t.Run("by lecture ids", func(t *testing.T) {
		query, args, err := buildListAttendanceRowsQuery(dollarBuilder, AttendanceRowFilter{LectureIDs: []string{"l-1", "l-2"}})
		require.NoError(t, err)
		assert.Contains(t, query, "WHERE a.lecture_id IN ($1,$2)")
		assert.Equal(t, []any{"l-1", "l-2"}, args)
	})

	t.Run("empty lecture ids match nothing", func(t *testing.T) {
		query, args, err := buildListAttendanceRowsQuery(dollarBuilder, AttendanceRowFilter{LectureIDs: []string{}})
		require.NoError(t, err)
		assert.Contains(t, query, "(1=0)")
		assert.Empty(t, args)
	})

	t.Run("ordered by identifier", func(t *testing.T) {
		query, _, err := buildListAttendanceRowsQuery(dollarBuilder, AttendanceRowFilter{})
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(query, "ORDER BY u.identifier, a.lecture_id"))
	})
}

func Test_buildExpireLectureQuery(t *testing.T) {
	query, args, err := buildExpireLectureQuery(dollarBuilder, "l-1", baseTime)
	require.NoError(t, err)

	assert.Equal(t, "UPDATE lectures SET qr_expired = $1, updated_at = $2 WHERE id = $3", query)
	assert.Equal(t, []any{true, baseTime, "l-1"}, args)
}
