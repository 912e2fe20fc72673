// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-qr-attendance/internal/logger"
	"github.com/MKhiriev/go-qr-attendance/internal/utils"
)

// RunningLectureCounter is the part of the session registry the collector
// reads.
type RunningLectureCounter interface {
	CountRunningLectures(ctx context.Context, now time.Time) (int, error)
}

// ActiveLecturesGauge receives the collected value.
type ActiveLecturesGauge interface {
	SetActiveLectures(n int)
}

// ActiveLecturesCollector periodically refreshes the active lectures gauge.
type ActiveLecturesCollector struct {
	counter  RunningLectureCounter
	gauge    ActiveLecturesGauge
	clock    utils.Clock
	interval time.Duration
	logger   *logger.Logger
}

func NewActiveLecturesCollector(counter RunningLectureCounter, gauge ActiveLecturesGauge, clock utils.Clock, interval time.Duration, logger *logger.Logger) *ActiveLecturesCollector {
	return &ActiveLecturesCollector{
		counter:  counter,
		gauge:    gauge,
		clock:    clock,
		interval: interval,
		logger:   logger,
	}
}

// Run collects once immediately, then on every tick until ctx is done.
func (c *ActiveLecturesCollector) Run(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.collect(ctx)
	for {
		select {
		case <-ctx.Done():
			c.logger.Debug().Str("func", "ActiveLecturesCollector.Run").Msg("collector stopped")
			return
		case <-ticker.C:
			c.collect(ctx)
		}
	}
}

func (c *ActiveLecturesCollector) collect(ctx context.Context) {
	count, err := c.counter.CountRunningLectures(ctx, c.clock.Now())
	if err != nil {
		if ctx.Err() == nil {
			c.logger.Err(err).Str("func", "ActiveLecturesCollector.collect").Msg("failed to count running lectures")
		}
		return
	}
	c.gauge.SetActiveLectures(count)
}
