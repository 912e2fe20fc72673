// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sort"

	"github.com/MKhiriev/go-qr-attendance/models"
)

// percentage returns attended/total*100, or 0 when total is 0.
func percentage(attended, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(attended) / float64(total) * 100
}

// buildCourseReport groups rows by student. rows are expected in identifier
// order, which the report keeps.
func buildCourseReport(course string, totalLectures int, rows []models.StudentAttendanceRow) models.CourseReport {
	report := models.CourseReport{
		Course:        course,
		TotalLectures: totalLectures,
		Students:      make([]models.StudentCourseSummary, 0),
	}

	index := make(map[string]int)
	for _, row := range rows {
		i, ok := index[row.Student.ID]
		if !ok {
			i = len(report.Students)
			index[row.Student.ID] = i
			report.Students = append(report.Students, models.StudentCourseSummary{
				Student:       row.Student,
				TotalLectures: totalLectures,
			})
		}
		report.Students[i].AttendedLectures++
	}

	for i := range report.Students {
		s := &report.Students[i]
		s.Percentage = percentage(s.AttendedLectures, s.TotalLectures)
	}

	sort.SliceStable(report.Students, func(i, j int) bool {
		return report.Students[i].Student.Identifier < report.Students[j].Student.Identifier
	})

	return report
}

// buildPercentage aggregates a student's rows against the system-wide counts
// of ended lectures. Only courses the student has a record in are listed;
// within such a course every ended lecture counts toward the course total
// and every (course, subject) pair with a record gets its own entry.
func buildPercentage(rows []models.StudentAttendanceRow, ended map[models.LectureKey]int) models.AttendancePercentage {
	attendedBySubject := make(map[models.LectureKey]int)
	attendedByCourse := make(map[string]int)
	for _, row := range rows {
		attendedBySubject[models.LectureKey{Course: row.Course, Subject: row.Subject}]++
		attendedByCourse[row.Course]++
	}

	endedByCourse := make(map[string]int)
	totalEnded := 0
	for key, count := range ended {
		endedByCourse[key.Course] += count
		totalEnded += count
	}

	courses := make([]models.CoursePercentage, 0, len(attendedByCourse))
	for course, attended := range attendedByCourse {
		courses = append(courses, models.CoursePercentage{
			Course:        course,
			TotalAttended: attended,
			TotalLectures: endedByCourse[course],
			Percentage:    percentage(attended, endedByCourse[course]),
			Subjects:      make([]models.SubjectPercentage, 0),
		})
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].Course < courses[j].Course })

	for i := range courses {
		for key, attended := range attendedBySubject {
			if key.Course != courses[i].Course {
				continue
			}
			courses[i].Subjects = append(courses[i].Subjects, models.SubjectPercentage{
				Subject:    key.Subject,
				Attended:   attended,
				Total:      ended[key],
				Percentage: percentage(attended, ended[key]),
			})
		}
		subjects := courses[i].Subjects
		sort.Slice(subjects, func(a, b int) bool { return subjects[a].Subject < subjects[b].Subject })
	}

	return models.AttendancePercentage{
		Overall: models.PercentageSummary{
			Attended:   len(rows),
			Total:      totalEnded,
			Percentage: percentage(len(rows), totalEnded),
		},
		Courses: courses,
	}
}
