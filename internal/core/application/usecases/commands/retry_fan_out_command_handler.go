package commands

import (
	"context"
	"log/slog"
)

// RetryFanOutSummary counts what one sweep did.
type RetryFanOutSummary struct {
	Scanned  int
	Notified int
	Failed   int
}

// RetryFanOutCommandHandler re-runs fan-out for Confirmed, unassigned orders
// that have no notifications yet: confirmations whose fan-out failed, and
// orders for which no courier was eligible at confirmation time.
// One failing order does not stop the sweep.
type RetryFanOutCommandHandler struct {
	uowFactory UoWFactory
	fanOut     OrderFanOut
	logger     *slog.Logger
}

func NewRetryFanOutCommandHandler(uowFactory UoWFactory, fanOut OrderFanOut, logger *slog.Logger) *RetryFanOutCommandHandler {
	return &RetryFanOutCommandHandler{
		uowFactory: uowFactory,
		fanOut:     fanOut,
		logger:     logger.With("component", "retry_fan_out"),
	}
}

func (h *RetryFanOutCommandHandler) Handle(ctx context.Context, cmd RetryFanOutCommand) (RetryFanOutSummary, error) {
	if err := cmd.Validate(); err != nil {
		return RetryFanOutSummary{}, err
	}

	ids, err := h.uowFactory.Create().OrderRepository().ListAwaitingCourierWithoutNotifications(ctx, cmd.Batch())
	if err != nil {
		return RetryFanOutSummary{}, err
	}

	summary := RetryFanOutSummary{Scanned: len(ids)}
	for _, id := range ids {
		if ctx.Err() != nil {
			return summary, ctx.Err()
		}

		fanOutCmd, err := NewFanOutCommand(id)
		if err != nil {
			return summary, err
		}

		result, err := h.fanOut.Handle(ctx, fanOutCmd)
		if err != nil {
			summary.Failed++
			h.logger.WarnContext(ctx, "fan-out retry failed", "order.id", id.String(), "error", err)
			continue
		}
		if result.Outcome == OutcomeNotified {
			summary.Notified++
		}
	}

	return summary, nil
}
