package jobs_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/commands/commandsmock"
	"fulfillment/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, nil))
}

func validSettings() jobs.Settings {
	return jobs.Settings{
		FanOutRetrySchedule:        "*/30 * * * * *",
		FanOutRetryBatch:           50,
		NotificationExpirySchedule: "0 * * * * *",
	}
}

func TestNewJobManager_ExpiryDisabledByDefault(t *testing.T) {
	jm, err := jobs.NewJobManager(&commandsmock.FulfillmentService{}, validSettings(), testLogger(&bytes.Buffer{}))

	require.NoError(t, err)
	require.Len(t, jm.Jobs(), 1)
	assert.IsType(t, &jobs.FanOutRetryJob{}, jm.Jobs()[0])
}

func TestNewJobManager_ExpiryEnabledByTTL(t *testing.T) {
	settings := validSettings()
	settings.NotificationTTL = 5 * time.Minute

	jm, err := jobs.NewJobManager(&commandsmock.FulfillmentService{}, settings, testLogger(&bytes.Buffer{}))

	require.NoError(t, err)
	require.Len(t, jm.Jobs(), 2)
	assert.IsType(t, &jobs.NotificationExpiryJob{}, jm.Jobs()[1])
}

func TestNewJobManager_InvalidBatch(t *testing.T) {
	settings := validSettings()
	settings.FanOutRetryBatch = 0

	_, err := jobs.NewJobManager(&commandsmock.FulfillmentService{}, settings, testLogger(&bytes.Buffer{}))

	require.Error(t, err)
}

func TestJobManager_StartAllAndStopAll(t *testing.T) {
	settings := validSettings()
	settings.NotificationTTL = time.Minute
	jm, err := jobs.NewJobManager(&commandsmock.FulfillmentService{}, settings, testLogger(&bytes.Buffer{}))
	require.NoError(t, err)

	require.NoError(t, jm.StartAll())
	jm.StopAll()
}

func TestJobManager_StartAll_BadScheduleStopsStartedJobs(t *testing.T) {
	settings := validSettings()
	settings.NotificationTTL = time.Minute
	settings.NotificationExpirySchedule = "not a schedule"
	logs := &bytes.Buffer{}
	jm, err := jobs.NewJobManager(&commandsmock.FulfillmentService{}, settings, testLogger(logs))
	require.NoError(t, err)

	err = jm.StartAll()

	require.Error(t, err)
	assert.Contains(t, logs.String(), "Fan-out retry job stopped")
}

func TestFanOutRetryJob_Run(t *testing.T) {
	service := &commandsmock.FulfillmentService{}
	cmd, err := commands.NewRetryFanOutCommand(20)
	require.NoError(t, err)
	service.On("RetryFanOut", mock.Anything, cmd).
		Return(commands.RetryFanOutSummary{Scanned: 3, Notified: 2, Failed: 1}, nil).Once()
	logs := &bytes.Buffer{}
	job, err := jobs.NewFanOutRetryJob(service, "* * * * * *", 20, testLogger(logs))
	require.NoError(t, err)

	job.Run(context.Background())

	service.AssertExpectations(t)
	assert.Contains(t, logs.String(), `"notified":2`)
}

func TestFanOutRetryJob_RunLogsFailure(t *testing.T) {
	service := &commandsmock.FulfillmentService{}
	service.On("RetryFanOut", mock.Anything, mock.Anything).
		Return(commands.RetryFanOutSummary{}, errors.New("db down"))
	logs := &bytes.Buffer{}
	job, err := jobs.NewFanOutRetryJob(service, "* * * * * *", 10, testLogger(logs))
	require.NoError(t, err)

	job.Run(context.Background())

	assert.Contains(t, logs.String(), `"level":"ERROR"`)
	assert.Contains(t, logs.String(), "db down")
}

func TestNotificationExpiryJob_Run(t *testing.T) {
	service := &commandsmock.FulfillmentService{}
	cmd, err := commands.NewExpireNotificationsCommand(time.Minute)
	require.NoError(t, err)
	service.On("ExpireNotifications", mock.Anything, cmd).Return(int64(4), nil).Once()
	logs := &bytes.Buffer{}
	job := jobs.NewNotificationExpiryJob(service, "0 * * * * *", cmd, testLogger(logs))

	job.Run(context.Background())

	service.AssertExpectations(t)
	assert.Contains(t, logs.String(), `"count":4`)
}

func TestFanOutRetryJob_ScheduledTick(t *testing.T) {
	service := &commandsmock.FulfillmentService{}
	called := make(chan struct{}, 1)
	service.On("RetryFanOut", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) {
			select {
			case called <- struct{}{}:
			default:
			}
		}).
		Return(commands.RetryFanOutSummary{}, nil)
	job, err := jobs.NewFanOutRetryJob(service, "* * * * * *", 10, testLogger(&bytes.Buffer{}))
	require.NoError(t, err)

	require.NoError(t, job.Start())
	defer job.Stop()

	select {
	case <-called:
	case <-time.After(3 * time.Second):
		t.Fatal("sweep did not run")
	}
}
