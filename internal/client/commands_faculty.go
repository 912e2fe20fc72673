// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"

	"github.com/MKhiriev/go-qr-attendance/internal/utils"
	"github.com/MKhiriev/go-qr-attendance/models"
	"github.com/spf13/cobra"
)

func (a *App) lecturesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lectures",
		Short: "Manage your lectures (faculty)",
	}

	cmd.AddCommand(
		a.createLectureCommand(),
		a.listLecturesCommand(),
		a.expireLectureCommand(),
		a.lectureAttendanceCommand(),
	)
	return cmd
}

func (a *App) createLectureCommand() *cobra.Command {
	var (
		req        models.CreateLectureRequest
		start, end string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Schedule a lecture and print it with its QR code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if req.StartTime, err = utils.ParseDate(start); err != nil {
				return fmt.Errorf("--start: %w", err)
			}
			if req.EndTime, err = utils.ParseDate(end); err != nil {
				return fmt.Errorf("--end: %w", err)
			}

			sa, err := a.serverAdapter()
			if err != nil {
				return err
			}

			lecture, err := sa.CreateLecture(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.printJSON(cmd, lecture)
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.Subject, "subject", "", "subject")
	f.StringVar(&req.Course, "course", "", "course")
	f.StringVar(&req.Room, "room", "", "room")
	f.StringVar(&start, "start", "", "start time, RFC 3339")
	f.StringVar(&end, "end", "", "end time, RFC 3339")
	for _, name := range []string{"subject", "course", "room", "start", "end"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func (a *App) listLecturesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your lectures, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sa, err := a.serverAdapter()
			if err != nil {
				return err
			}

			lectures, err := sa.ListLectures(cmd.Context())
			if err != nil {
				return err
			}
			return a.printJSON(cmd, lectures)
		},
	}
}

func (a *App) expireLectureCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "expire LECTURE_ID",
		Short: "Stop accepting attendance for a lecture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sa, err := a.serverAdapter()
			if err != nil {
				return err
			}

			if err = sa.ExpireLecture(cmd.Context(), args[0]); err != nil {
				return err
			}
			return a.printJSON(cmd, models.MessageResponse{Message: "Lecture QR code expired successfully"})
		},
	}
}

func (a *App) lectureAttendanceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "attendance LECTURE_ID",
		Short: "List the attendance records of a lecture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sa, err := a.serverAdapter()
			if err != nil {
				return err
			}

			records, err := sa.LectureAttendance(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.printJSON(cmd, records)
		},
	}
}

func (a *App) reportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Attendance reports (faculty)",
	}

	var startDate, endDate string
	course := &cobra.Command{
		Use:   "course COURSE",
		Short: "Per-student attendance over your lectures of a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sa, err := a.serverAdapter()
			if err != nil {
				return err
			}

			report, err := sa.CourseReport(cmd.Context(), args[0], startDate, endDate)
			if err != nil {
				return err
			}
			return a.printJSON(cmd, report)
		},
	}
	course.Flags().StringVar(&startDate, "start-date", "", "range start, YYYY-MM-DD or RFC 3339")
	course.Flags().StringVar(&endDate, "end-date", "", "range end, YYYY-MM-DD or RFC 3339")

	cmd.AddCommand(course)
	return cmd
}
