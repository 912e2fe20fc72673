// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/MKhiriev/go-qr-attendance/internal/client"
	"github.com/MKhiriev/go-qr-attendance/internal/logger"
	"github.com/MKhiriev/go-qr-attendance/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "--build-info" {
		printBuildInfo()
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log := logger.NewCLILogger("attendctl", os.Stderr)
	app := client.NewApp(os.Stdout, nil, log)

	if err := app.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

func printBuildInfo() {
	fmt.Print(models.NewBuildInfo(buildVersion, buildDate, buildCommit))
}
