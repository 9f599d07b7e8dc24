package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// NotificationExpiryJob expires Pending notifications older than the TTL.
type NotificationExpiryJob struct {
	service  commands.FulfillmentService
	cmd      commands.ExpireNotificationsCommand
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewNotificationExpiryJob(
	service commands.FulfillmentService,
	schedule string,
	cmd commands.ExpireNotificationsCommand,
	logger *slog.Logger,
) *NotificationExpiryJob {
	return &NotificationExpiryJob{
		service:  service,
		cmd:      cmd,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "notification_expiry_job"),
	}
}

func (j *NotificationExpiryJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification expiry job started",
		"schedule", j.schedule, "ttl", j.cmd.TTL().String())
	return nil
}

func (j *NotificationExpiryJob) Run(ctx context.Context) {
	expired, err := j.service.ExpireNotifications(ctx, j.cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Notification expiry job failed", "error", err)
		return
	}
	if expired > 0 {
		j.logger.InfoContext(ctx, "Notifications expired", "count", expired)
	}
}

func (j *NotificationExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Notification expiry job stopped")
}
