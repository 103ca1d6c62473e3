package jobs

import (
	"context"
	"log/slog"

	"ordermanagement/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// sweepSchedule fires five minutes after the previous run started.
const sweepSchedule = "@every 5m"

// OrderSweepJob manages the scheduled promotion of pending orders.
// Runs every five minutes and moves every PENDING order to PROCESSING. Runs never
// overlap: if a sweep is still going when the next tick fires, that tick is skipped.
type OrderSweepJob struct {
	handler commands.SweepPendingOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderSweepJob creates a new job for sweeping pending orders.
// Uses SweepPendingOrdersCommandHandler to promote the pending set on each run.
func NewOrderSweepJob(handler commands.SweepPendingOrdersCommandHandler, logger *slog.Logger) *OrderSweepJob {
	jobLogger := logger.With("component", "order_sweep_job")

	return &OrderSweepJob{
		handler: handler,
		cron: cron.New(cron.WithChain(
			cron.SkipIfStillRunning(cron.DefaultLogger),
		)),
		logger: jobLogger,
	}
}

// Start begins the order sweep job on its five-minute schedule.
func (j *OrderSweepJob) Start() error {
	_, err := j.cron.AddFunc(sweepSchedule, func() {
		ctx := context.Background()
		cmd := commands.NewSweepPendingOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// A failed sweep is retried by the next tick; log and keep the schedule.
			j.logger.ErrorContext(ctx, "Order sweep job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order sweep job started (running every 5 minutes)")
	return nil
}

// Stop stops the order sweep job.
func (j *OrderSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order sweep job stopped")
}
