package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// FanOutRetryJob periodically notifies couriers about confirmed orders whose
// fan-out never happened or found nobody.
type FanOutRetryJob struct {
	service  commands.FulfillmentService
	cmd      commands.RetryFanOutCommand
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewFanOutRetryJob validates the batch size up front. schedule is a
// six-field cron expression (seconds first).
func NewFanOutRetryJob(
	service commands.FulfillmentService,
	schedule string,
	batch int,
	logger *slog.Logger,
) (*FanOutRetryJob, error) {
	cmd, err := commands.NewRetryFanOutCommand(batch)
	if err != nil {
		return nil, err
	}
	return &FanOutRetryJob{
		service:  service,
		cmd:      cmd,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "fan_out_retry_job"),
	}, nil
}

// Start registers the sweep and starts the scheduler.
func (j *FanOutRetryJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Fan-out retry job started", "schedule", j.schedule)
	return nil
}

// Run performs one sweep.
func (j *FanOutRetryJob) Run(ctx context.Context) {
	summary, err := j.service.RetryFanOut(ctx, j.cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Fan-out retry job failed", "error", err)
		return
	}
	if summary.Scanned > 0 {
		j.logger.InfoContext(ctx, "Fan-out retry sweep finished",
			"scanned", summary.Scanned,
			"notified", summary.Notified,
			"failed", summary.Failed)
	}
}

// Stop stops the scheduler and waits for a running sweep.
func (j *FanOutRetryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Fan-out retry job stopped")
}
