// Package observability decorates the fulfillment service with tracing,
// structured logging and metrics.
package observability

import (
	"context"
	"io"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/order"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"
)

const instrumentationName = "fulfillment/internal/adapters/observability"

// Service wraps a commands.FulfillmentService. Every call gets a span, a
// duration sample and an outcome counter tagged with the error kind.
type Service struct {
	inner   commands.FulfillmentService
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

var _ commands.FulfillmentService = (*Service)(nil)

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger.With("component", "fulfillment_service")
		}
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		if tr != nil {
			s.tracer = tr
		}
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

func New(inner commands.FulfillmentService, opts ...Option) *Service {
	s := &Service{
		inner:  inner,
		tracer: nooptrace.NewTracerProvider().Tracer(instrumentationName),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *Service) CreateOrder(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error) {
	ctx, span := s.start(ctx, "CreateOrder",
		attribute.String("order.requester_id", cmd.RequesterID().String()),
		attribute.String("order.supplier_id", cmd.SupplierID().String()),
		attribute.String("product.id", cmd.ProductID().String()),
		attribute.Int("order.quantity", cmd.Quantity()))
	defer span.End()
	started := time.Now()

	o, err := s.inner.CreateOrder(ctx, cmd)
	if err != nil {
		return nil, s.fail(ctx, span, "CreateOrder", started, err)
	}
	s.orderPlaced(ctx, span, "CreateOrder", started, o)
	return o, nil
}

func (s *Service) CreateBulkOrder(ctx context.Context, cmd commands.CreateBulkOrderCommand) (*order.Order, error) {
	ctx, span := s.start(ctx, "CreateBulkOrder",
		attribute.String("order.requester_id", cmd.RequesterID().String()),
		attribute.String("order.supplier_id", cmd.SupplierID().String()),
		attribute.Int("order.lines", len(cmd.Lines())))
	defer span.End()
	started := time.Now()

	o, err := s.inner.CreateBulkOrder(ctx, cmd)
	if err != nil {
		return nil, s.fail(ctx, span, "CreateBulkOrder", started, err)
	}
	s.orderPlaced(ctx, span, "CreateBulkOrder", started, o)
	return o, nil
}

func (s *Service) UpdateOrderStatus(
	ctx context.Context,
	cmd commands.UpdateOrderStatusCommand,
) (commands.UpdateOrderStatusResult, error) {
	attrs := []attribute.KeyValue{
		attribute.String("order.id", cmd.OrderID().String()),
		attribute.String("order.status", cmd.Status().String()),
	}
	if ds := cmd.DeliveryStatus(); ds != nil {
		attrs = append(attrs, attribute.String("order.delivery_status", ds.String()))
	}
	ctx, span := s.start(ctx, "UpdateOrderStatus", attrs...)
	defer span.End()
	started := time.Now()

	result, err := s.inner.UpdateOrderStatus(ctx, cmd)
	if err != nil {
		return result, s.fail(ctx, span, "UpdateOrderStatus", started, err)
	}
	if result.FanOut != nil {
		span.SetAttributes(attribute.String("fanout.outcome", string(result.FanOut.Outcome)))
		s.metrics.recordNotified(ctx, result.FanOut.Outcome, len(result.FanOut.Notifications))
	}
	if result.NotificationDeferred {
		span.SetAttributes(attribute.Bool("fanout.deferred", true))
		s.logger.WarnContext(ctx, "courier notification deferred", "order.id", cmd.OrderID().String())
	}
	s.succeed(ctx, "UpdateOrderStatus", started)
	return result, nil
}

func (s *Service) FanOut(ctx context.Context, cmd commands.FanOutCommand) (commands.FanOutResult, error) {
	ctx, span := s.start(ctx, "FanOut", attribute.String("order.id", cmd.OrderID().String()))
	defer span.End()
	started := time.Now()

	result, err := s.inner.FanOut(ctx, cmd)
	if err != nil {
		return result, s.fail(ctx, span, "FanOut", started, err)
	}
	span.SetAttributes(
		attribute.String("fanout.outcome", string(result.Outcome)),
		attribute.Int("fanout.notifications", len(result.Notifications)),
	)
	s.metrics.recordNotified(ctx, result.Outcome, len(result.Notifications))
	s.succeed(ctx, "FanOut", started)
	return result, nil
}

// AcceptNotification logs a lost race at Info: it is an expected outcome.
func (s *Service) AcceptNotification(
	ctx context.Context,
	cmd commands.AcceptNotificationCommand,
) (commands.AcceptResult, error) {
	ctx, span := s.start(ctx, "AcceptNotification",
		attribute.String("notification.id", cmd.NotificationID().String()),
		attribute.String("courier.id", cmd.CourierID().String()))
	defer span.End()
	started := time.Now()

	result, err := s.inner.AcceptNotification(ctx, cmd)
	if err != nil {
		if result.ErrorKind == commands.KindAlreadyAssigned {
			span.SetAttributes(attribute.String("error.kind", string(result.ErrorKind)))
			s.metrics.record(ctx, "AcceptNotification", started, result.ErrorKind)
			s.logger.InfoContext(ctx, "acceptance lost to another courier",
				"notification.id", cmd.NotificationID().String(),
				"courier.id", cmd.CourierID().String())
			return result, err
		}
		return result, s.fail(ctx, span, "AcceptNotification", started, err)
	}
	span.SetAttributes(attribute.String("order.id", result.Order.ID().String()))
	s.logger.InfoContext(ctx, "courier assigned",
		"order.id", result.Order.ID().String(),
		"courier.id", cmd.CourierID().String())
	s.succeed(ctx, "AcceptNotification", started)
	return result, nil
}

func (s *Service) RejectNotification(ctx context.Context, cmd commands.RejectNotificationCommand) error {
	ctx, span := s.start(ctx, "RejectNotification",
		attribute.String("notification.id", cmd.NotificationID().String()),
		attribute.String("courier.id", cmd.CourierID().String()))
	defer span.End()
	started := time.Now()

	if err := s.inner.RejectNotification(ctx, cmd); err != nil {
		return s.fail(ctx, span, "RejectNotification", started, err)
	}
	s.succeed(ctx, "RejectNotification", started)
	return nil
}

func (s *Service) CheckoutCart(ctx context.Context, cmd commands.CheckoutCartCommand) (commands.CheckoutResult, error) {
	ctx, span := s.start(ctx, "CheckoutCart", attribute.String("order.requester_id", cmd.RequesterID().String()))
	defer span.End()
	started := time.Now()

	result, err := s.inner.CheckoutCart(ctx, cmd)
	if err != nil {
		return result, s.fail(ctx, span, "CheckoutCart", started, err)
	}
	placed, failed := result.Placed(), result.Failed()
	span.SetAttributes(
		attribute.Int("checkout.placed", len(placed)),
		attribute.Int("checkout.failed", len(failed)),
	)
	for _, o := range placed {
		s.metrics.recordPlaced(ctx, o)
	}
	for _, f := range failed {
		s.logger.WarnContext(ctx, "supplier group not placed",
			"supplier.id", f.SupplierID.String(),
			"error.kind", string(f.ErrorKind),
			"error", f.Err)
	}
	s.succeed(ctx, "CheckoutCart", started)
	return result, nil
}

func (s *Service) ExpireNotifications(ctx context.Context, cmd commands.ExpireNotificationsCommand) (int64, error) {
	ctx, span := s.start(ctx, "ExpireNotifications", attribute.String("notification.ttl", cmd.TTL().String()))
	defer span.End()
	started := time.Now()

	expired, err := s.inner.ExpireNotifications(ctx, cmd)
	if err != nil {
		return expired, s.fail(ctx, span, "ExpireNotifications", started, err)
	}
	span.SetAttributes(attribute.Int64("notification.expired", expired))
	s.succeed(ctx, "ExpireNotifications", started)
	return expired, nil
}

func (s *Service) RetryFanOut(ctx context.Context, cmd commands.RetryFanOutCommand) (commands.RetryFanOutSummary, error) {
	ctx, span := s.start(ctx, "RetryFanOut", attribute.Int("fanout.batch", cmd.Batch()))
	defer span.End()
	started := time.Now()

	summary, err := s.inner.RetryFanOut(ctx, cmd)
	if err != nil {
		return summary, s.fail(ctx, span, "RetryFanOut", started, err)
	}
	span.SetAttributes(
		attribute.Int("fanout.scanned", summary.Scanned),
		attribute.Int("fanout.notified", summary.Notified),
		attribute.Int("fanout.failed", summary.Failed),
	)
	s.succeed(ctx, "RetryFanOut", started)
	return summary, nil
}

func (s *Service) start(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "FulfillmentService."+op, trace.WithAttributes(attrs...))
}

func (s *Service) orderPlaced(ctx context.Context, span trace.Span, op string, started time.Time, o *order.Order) {
	span.SetAttributes(
		attribute.String("order.id", o.ID().String()),
		attribute.String("order.total", o.Total().String()),
	)
	s.metrics.recordPlaced(ctx, o)
	s.logger.InfoContext(ctx, "order placed",
		"order.id", o.ID().String(),
		"order.total", o.Total().String(),
		"order.items", len(o.Items()))
	s.succeed(ctx, op, started)
}

func (s *Service) succeed(ctx context.Context, op string, started time.Time) {
	s.metrics.record(ctx, op, started, commands.KindNone)
}

// fail records err on the span and logs it. Business outcomes are logged at
// Info, everything else at Error.
func (s *Service) fail(ctx context.Context, span trace.Span, op string, started time.Time, err error) error {
	kind := commands.KindOf(err)
	span.SetAttributes(attribute.String("error.kind", string(kind)))
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	s.metrics.record(ctx, op, started, kind)

	level := slog.LevelInfo
	if kind == commands.KindInternal || kind == commands.KindTransactionAborted {
		level = slog.LevelError
	}
	s.logger.Log(ctx, level, op+" failed", "error.kind", string(kind), "error", err)
	return err
}

type serviceMetrics struct {
	calls         metric.Int64Counter
	duration      metric.Float64Histogram
	ordersPlaced  metric.Int64Counter
	notifications metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	calls, _ := m.Int64Counter("fulfillment.service.calls",
		metric.WithDescription("Fulfillment operations by outcome"))
	duration, _ := m.Float64Histogram("fulfillment.service.duration",
		metric.WithDescription("Fulfillment operation latency"), metric.WithUnit("ms"))
	ordersPlaced, _ := m.Int64Counter("fulfillment.orders_placed",
		metric.WithDescription("Orders placed"))
	notifications, _ := m.Int64Counter("fulfillment.notifications_created",
		metric.WithDescription("Courier notifications created by fan-out"))
	return serviceMetrics{calls: calls, duration: duration, ordersPlaced: ordersPlaced, notifications: notifications}
}

func (m serviceMetrics) record(ctx context.Context, op string, started time.Time, kind commands.ErrorKind) {
	outcome := "ok"
	if kind != commands.KindNone {
		outcome = string(kind)
	}
	attrs := metric.WithAttributes(attribute.String("operation", op), attribute.String("outcome", outcome))
	if m.calls != nil {
		m.calls.Add(ctx, 1, attrs)
	}
	if m.duration != nil {
		m.duration.Record(ctx, float64(time.Since(started).Microseconds())/1000, attrs)
	}
}

func (m serviceMetrics) recordPlaced(ctx context.Context, o *order.Order) {
	if m.ordersPlaced != nil {
		m.ordersPlaced.Add(ctx, 1, metric.WithAttributes(attribute.String("order.supplier_id", o.SupplierID().String())))
	}
}

func (m serviceMetrics) recordNotified(ctx context.Context, outcome commands.FanOutOutcome, n int) {
	if m.notifications != nil && n > 0 {
		m.notifications.Add(ctx, int64(n), metric.WithAttributes(attribute.String("fanout.outcome", string(outcome))))
	}
}
