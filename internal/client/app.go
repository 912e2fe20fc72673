// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-qr-attendance/internal/adapter"
	"github.com/MKhiriev/go-qr-attendance/internal/config"
	"github.com/MKhiriev/go-qr-attendance/internal/logger"
	"github.com/spf13/cobra"
)

// AdapterFactory builds the transport used by a command.
type AdapterFactory func(cfg config.ClientAdapter, logger *logger.Logger) (adapter.ServerAdapter, error)

// App is the attendctl command tree.
type App struct {
	out        io.Writer
	newAdapter AdapterFactory
	logger     *logger.Logger

	address string
	token   string
	timeout time.Duration
}

// NewApp returns an App writing command results to out. A nil factory
// selects the HTTP adapter.
func NewApp(out io.Writer, newAdapter AdapterFactory, logger *logger.Logger) *App {
	if newAdapter == nil {
		newAdapter = adapter.NewHTTPServerAdapter
	}
	return &App{out: out, newAdapter: newAdapter, logger: logger}
}

// Run executes the command selected by args.
func (a *App) Run(ctx context.Context, args []string) error {
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(a.out)
	return root.ExecuteContext(ctx)
}

func (a *App) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "attendctl",
		Short:         "Command-line client of the QR attendance server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.address, "address", "", "server base URL (default "+config.DefaultClientAddress+")")
	flags.StringVar(&a.token, "token", "", "bearer token for authenticated commands")
	flags.DurationVar(&a.timeout, "timeout", 0, "request timeout")

	root.AddCommand(
		a.registerCommand(),
		a.loginCommand(),
		a.profileCommand(),
		a.lecturesCommand(),
		a.reportCommand(),
		a.attendCommand(),
		a.versionCommand(),
	)

	return root
}

// serverAdapter resolves the client configuration with the persistent flags
// applied on top and builds the adapter.
func (a *App) serverAdapter() (adapter.ServerAdapter, error) {
	cfg, err := config.GetClientConfig(config.ClientConfig{
		Adapter: config.ClientAdapter{
			HTTPAddress:    a.address,
			RequestTimeout: a.timeout,
			Token:          a.token,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("load client config: %w", err)
	}

	return a.newAdapter(cfg.Adapter, a.logger)
}

func (a *App) printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
