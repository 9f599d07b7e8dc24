package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
)

// Job is a scheduled task with an explicit lifecycle.
type Job interface {
	Start() error
	Stop()
}

// Settings configures which jobs run and how often.
type Settings struct {
	FanOutRetrySchedule string
	FanOutRetryBatch    int
	// NotificationTTL of zero disables the expiry job.
	NotificationTTL            time.Duration
	NotificationExpirySchedule string
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	jobs    []Job
	started []Job
}

// NewJobManager builds the jobs enabled by settings.
func NewJobManager(service commands.FulfillmentService, settings Settings, logger *slog.Logger) (*JobManager, error) {
	fanOutRetry, err := NewFanOutRetryJob(service, settings.FanOutRetrySchedule, settings.FanOutRetryBatch, logger)
	if err != nil {
		return nil, fmt.Errorf("fan-out retry job: %w", err)
	}
	jm := &JobManager{jobs: []Job{fanOutRetry}}

	if settings.NotificationTTL > 0 {
		cmd, cmdErr := commands.NewExpireNotificationsCommand(settings.NotificationTTL)
		if cmdErr != nil {
			return nil, fmt.Errorf("notification expiry job: %w", cmdErr)
		}
		jm.jobs = append(jm.jobs, NewNotificationExpiryJob(service, settings.NotificationExpirySchedule, cmd, logger))
	}

	return jm, nil
}

// Jobs returns the configured jobs in start order.
func (jm *JobManager) Jobs() []Job {
	return jm.jobs
}

// StartAll starts all scheduled jobs.
// If one fails to start, the ones already running are stopped.
func (jm *JobManager) StartAll() error {
	for _, job := range jm.jobs {
		if err := job.Start(); err != nil {
			jm.StopAll()
			return fmt.Errorf("failed to start %T: %w", job, err)
		}
		jm.started = append(jm.started, job)
	}
	return nil
}

// StopAll stops the started jobs in reverse order.
func (jm *JobManager) StopAll() {
	for i := len(jm.started) - 1; i >= 0; i-- {
		jm.started[i].Stop()
	}
	jm.started = nil
}
