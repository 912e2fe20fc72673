// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-qr-attendance/internal/adapter"
	"github.com/spf13/cobra"
)

var errNoQRData = errors.New("one of --qr-data or --qr-file is required")

func (a *App) attendCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attend",
		Short: "Mark and review your attendance (student)",
	}

	cmd.AddCommand(
		a.markCommand(),
		a.historyCommand(),
		a.percentageCommand(),
	)
	return cmd
}

func (a *App) markCommand() *cobra.Command {
	var qrData, qrFile string

	cmd := &cobra.Command{
		Use:   "mark",
		Short: "Submit the payload of a scanned lecture QR code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if qrFile != "" {
				raw, err := os.ReadFile(qrFile)
				if err != nil {
					return fmt.Errorf("read qr file: %w", err)
				}
				qrData = strings.TrimSpace(string(raw))
			}
			if qrData == "" {
				return errNoQRData
			}

			sa, err := a.serverAdapter()
			if err != nil {
				return err
			}

			resp, err := sa.MarkAttendance(cmd.Context(), qrData)
			if err != nil {
				return err
			}
			return a.printJSON(cmd, resp)
		},
	}

	cmd.Flags().StringVar(&qrData, "qr-data", "", "QR payload text")
	cmd.Flags().StringVar(&qrFile, "qr-file", "", "file holding the QR payload text")
	cmd.MarkFlagsMutuallyExclusive("qr-data", "qr-file")

	return cmd
}

func (a *App) historyCommand() *cobra.Command {
	var query adapter.HistoryQuery

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List your attendance records, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sa, err := a.serverAdapter()
			if err != nil {
				return err
			}

			history, err := sa.History(cmd.Context(), query)
			if err != nil {
				return err
			}
			return a.printJSON(cmd, history)
		},
	}

	f := cmd.Flags()
	f.StringVar(&query.StartDate, "start-date", "", "range start, YYYY-MM-DD or RFC 3339")
	f.StringVar(&query.EndDate, "end-date", "", "range end, YYYY-MM-DD or RFC 3339")
	f.StringVar(&query.Course, "course", "", "only this course")
	f.StringVar(&query.Subject, "subject", "", "only this subject")

	return cmd
}

func (a *App) percentageCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "percentage",
		Short: "Show your attendance percentage per course and subject",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sa, err := a.serverAdapter()
			if err != nil {
				return err
			}

			pct, err := sa.Percentage(cmd.Context())
			if err != nil {
				return err
			}
			return a.printJSON(cmd, pct)
		},
	}
}
