// Package jobs provides scheduled background tasks for the fulfillment engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Schedules are six-field expressions with a leading seconds field.
//
// # Available Jobs
//
// 1. FanOutRetryJob - finds Confirmed orders still waiting for a courier with no
// notification ever sent, and fans them out again
// 2. NotificationExpiryJob - expires Pending notifications older than the
// configured TTL; only built when the TTL is positive
//
// # Usage
//
//	jobManager, err := jobs.NewJobManager(service, jobs.Settings{
//		FanOutRetrySchedule: "*/30 * * * * *",
//		FanOutRetryBatch:    50,
//	}, logger)
//	if err != nil {
//		return err
//	}
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed sweep is logged at Error and retried on the next tick. Orders that
// individually fail to fan out are counted in the sweep summary, not raised.
package jobs
