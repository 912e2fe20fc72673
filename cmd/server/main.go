// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-qr-attendance/internal/config"
	"github.com/MKhiriev/go-qr-attendance/internal/handler"
	handlerhttp "github.com/MKhiriev/go-qr-attendance/internal/handler/http"
	"github.com/MKhiriev/go-qr-attendance/internal/logger"
	"github.com/MKhiriev/go-qr-attendance/internal/metrics"
	"github.com/MKhiriev/go-qr-attendance/internal/ratelimit"
	"github.com/MKhiriev/go-qr-attendance/internal/server"
	"github.com/MKhiriev/go-qr-attendance/internal/service"
	"github.com/MKhiriev/go-qr-attendance/internal/store"
	"github.com/MKhiriev/go-qr-attendance/internal/utils"
	"github.com/MKhiriev/go-qr-attendance/internal/validators"
	"github.com/MKhiriev/go-qr-attendance/internal/workers"
	"github.com/MKhiriev/go-qr-attendance/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("attendance-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	clock := utils.NewRealClock()
	appMetrics := metrics.New()

	services, err := service.NewServices(storages, *cfg, service.Dependencies{
		Clock:     clock,
		IDs:       utils.NewUUIDGenerator(),
		Validator: validators.NewRequestValidator(),
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, handlerhttp.Dependencies{
		Health:  storages,
		Limiter: ratelimit.New(*cfg, clock),
		Metrics: appMetrics,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	background := workers.NewWorkers(
		workers.NewActiveLecturesCollector(storages.LectureRepository, appMetrics, clock, cfg.Workers.MetricsInterval, log),
	)
	background.Run(ctx)

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}

	stop()
	background.Wait()
	log.Info().Msg("server exited")
}

func printBuildInfo() {
	fmt.Print(models.NewBuildInfo(buildVersion, buildDate, buildCommit))
}
