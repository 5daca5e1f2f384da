// File: workhub/cron/worker.go
package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"workhub/database"
	"workhub/services/alerts"
	"workhub/services/booking"
)

// Worker drives the two background tasks: the periodic sweep (booking
// lifecycle advance followed by alert evaluation) and, when enabled, the
// store snapshot. Jobs never overlap themselves; a tick that fires while
// the previous one is still running is skipped.
type Worker struct {
	Bookings    booking.Service
	Alerts      alerts.Engine
	Snapshotter *database.Snapshotter
	Logger      *zap.Logger

	SweepInterval    time.Duration
	SnapshotInterval time.Duration

	runner *cron.Cron
	ctx    context.Context
	cancel context.CancelFunc
}

// Start schedules the jobs and begins running them. The sweep fires once
// immediately so the dashboard is populated right after boot.
func (w *Worker) Start() error {
	w.ctx, w.cancel = context.WithCancel(context.Background())
	w.runner = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DiscardLogger),
		cron.Recover(cron.DiscardLogger),
	))

	sweepSpec := fmt.Sprintf("@every %s", w.SweepInterval)
	if _, err := w.runner.AddFunc(sweepSpec, w.sweep); err != nil {
		return err
	}

	if w.Snapshotter != nil {
		snapSpec := fmt.Sprintf("@every %s", w.SnapshotInterval)
		if _, err := w.runner.AddFunc(snapSpec, w.snapshot); err != nil {
			return err
		}
	}

	go w.sweep()
	w.runner.Start()
	w.Logger.Info("background worker started",
		zap.Duration("sweepInterval", w.SweepInterval),
		zap.Bool("snapshots", w.Snapshotter != nil))
	return nil
}

// Stop halts scheduling, waits for in-flight jobs, and takes a final
// snapshot so a clean shutdown loses nothing.
func (w *Worker) Stop() {
	if w.runner != nil {
		stopCtx := w.runner.Stop()
		<-stopCtx.Done()
	}
	if w.cancel != nil {
		w.cancel()
	}
	if w.Snapshotter != nil {
		if err := w.Snapshotter.Save(context.Background()); err != nil {
			w.Logger.Error("final snapshot failed", zap.Error(err))
		}
	}
	w.Logger.Info("background worker stopped")
}

// sweep advances booking lifecycles, then evaluates alert conditions. Each
// half is independently safe to rerun, so a sweep cancelled part-way leaves
// no partial state behind.
func (w *Worker) sweep() {
	now := time.Now().UTC()
	if err := w.Bookings.Advance(now); err != nil {
		w.Logger.Error("booking lifecycle advance failed", zap.Error(err))
	}
	if err := w.Alerts.Evaluate(w.ctx); err != nil {
		w.Logger.Error("alert evaluation failed", zap.Error(err))
	}
}

func (w *Worker) snapshot() {
	if err := w.Snapshotter.Save(w.ctx); err != nil {
		w.Logger.Error("store snapshot failed", zap.Error(err))
	}
}
