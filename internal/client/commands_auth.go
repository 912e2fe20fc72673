// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"github.com/MKhiriev/go-qr-attendance/models"
	"github.com/spf13/cobra"
)

func (a *App) registerCommand() *cobra.Command {
	var (
		req  models.RegisterRequest
		role string
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and print its token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sa, err := a.serverAdapter()
			if err != nil {
				return err
			}

			req.Role = models.Role(role)
			resp, err := sa.Register(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.printJSON(cmd, resp)
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.Name, "name", "", "display name")
	f.StringVar(&role, "role", string(models.RoleStudent), "student or faculty")
	f.StringVar(&req.Identifier, "identifier", "", "roll number or faculty code")
	f.StringVar(&req.Password, "password", "", "account password")
	f.StringVar(&req.Department, "department", "", "department")
	f.StringVar(&req.Semester, "semester", "", "semester, students only")
	f.StringVar(&req.Course, "course", "", "course, students only")
	_ = cmd.MarkFlagRequired("identifier")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func (a *App) loginCommand() *cobra.Command {
	var req models.LoginRequest

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and print a fresh token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sa, err := a.serverAdapter()
			if err != nil {
				return err
			}

			resp, err := sa.Login(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.printJSON(cmd, resp)
		},
	}

	cmd.Flags().StringVar(&req.Identifier, "identifier", "", "roll number or faculty code")
	cmd.Flags().StringVar(&req.Password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("identifier")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func (a *App) profileCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show the authenticated account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sa, err := a.serverAdapter()
			if err != nil {
				return err
			}

			profile, err := sa.Profile(cmd.Context())
			if err != nil {
				return err
			}
			return a.printJSON(cmd, profile)
		},
	}
}

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the server version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sa, err := a.serverAdapter()
			if err != nil {
				return err
			}

			version, err := sa.Version(cmd.Context())
			if err != nil {
				return err
			}
			return a.printJSON(cmd, models.VersionResponse{Version: version})
		},
	}
}
