// Package observability decorates the lifecycle engine with tracing, metrics
// and structured logging.
package observability

import (
	"context"
	"log/slog"
	"time"

	"ordering/internal/core/application/lifecycle"
	"ordering/internal/core/application/readmodel"
	"ordering/internal/core/domain/model/identity"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"
)

const tracerName = "ordering/internal/adapters/observability"

var _ lifecycle.Engine = (*Engine)(nil)

// Engine wraps a lifecycle.Engine.
type Engine struct {
	inner   lifecycle.Engine
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics engineMetrics
}

type Option func(*Engine)

func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(e *Engine) {
		e.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(e *Engine) {
		e.metrics = newEngineMetrics(m)
	}
}

// New wraps inner. Without options it traces to a no-op provider and
// discards logs.
func New(inner lifecycle.Engine, opts ...Option) *Engine {
	e := &Engine{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  slog.New(slog.DiscardHandler),
		metrics: newEngineMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	if e.tracer == nil {
		e.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if e.logger == nil {
		e.logger = slog.New(slog.DiscardHandler)
	}
	return e
}

func (e *Engine) CreateOrder(ctx context.Context, req lifecycle.CreateOrderRequest) (readmodel.OrderView, error) {
	return e.transition(ctx, "CreateOrder", req.OrderID,
		[]attribute.KeyValue{attribute.String("order.owner", req.OwnerUsername), attribute.Int("order.items", len(req.Items))},
		func(ctx context.Context) (readmodel.OrderView, error) { return e.inner.CreateOrder(ctx, req) })
}

func (e *Engine) Approve(ctx context.Context, orderID kernel.UUID, approverUsername string, comments string) (readmodel.OrderView, error) {
	return e.transition(ctx, "Approve", orderID,
		[]attribute.KeyValue{attribute.String("order.actor", approverUsername)},
		func(ctx context.Context) (readmodel.OrderView, error) {
			return e.inner.Approve(ctx, orderID, approverUsername, comments)
		})
}

func (e *Engine) Reject(ctx context.Context, orderID kernel.UUID, approverUsername string, comments string) (readmodel.OrderView, error) {
	return e.transition(ctx, "Reject", orderID,
		[]attribute.KeyValue{attribute.String("order.actor", approverUsername)},
		func(ctx context.Context) (readmodel.OrderView, error) {
			return e.inner.Reject(ctx, orderID, approverUsername, comments)
		})
}

func (e *Engine) Accept(ctx context.Context, orderID kernel.UUID, agentUsername string, deliveryAddress string) (readmodel.OrderView, error) {
	return e.transition(ctx, "Accept", orderID,
		[]attribute.KeyValue{attribute.String("order.actor", agentUsername)},
		func(ctx context.Context) (readmodel.OrderView, error) {
			return e.inner.Accept(ctx, orderID, agentUsername, deliveryAddress)
		})
}

func (e *Engine) RecordDispatch(ctx context.Context, req lifecycle.RecordDispatchRequest) (readmodel.OrderView, error) {
	return e.transition(ctx, "RecordDispatch", req.OrderID,
		[]attribute.KeyValue{
			attribute.String("order.actor", req.ActorUsername),
			attribute.String("courier.name", req.CourierName),
			attribute.String("courier.tracking_number", req.TrackingNumber),
		},
		func(ctx context.Context) (readmodel.OrderView, error) { return e.inner.RecordDispatch(ctx, req) })
}

func (e *Engine) MarkFulfilled(ctx context.Context, orderID kernel.UUID, actorUsername string) (readmodel.OrderView, error) {
	return e.transition(ctx, "MarkFulfilled", orderID,
		[]attribute.KeyValue{attribute.String("order.actor", actorUsername)},
		func(ctx context.Context) (readmodel.OrderView, error) {
			return e.inner.MarkFulfilled(ctx, orderID, actorUsername)
		})
}

func (e *Engine) GetOrder(ctx context.Context, orderID kernel.UUID) (readmodel.OrderView, error) {
	ctx, span := e.tracer.Start(ctx, "OrderLifecycle.GetOrder",
		trace.WithAttributes(attribute.String("order.id", orderID.String())))
	defer span.End()

	start := time.Now()
	view, err := e.inner.GetOrder(ctx, orderID)
	e.metrics.recordDuration(ctx, "GetOrder", start, err)
	if err != nil {
		return view, e.handleError(ctx, span, err, "failed to load order", slog.String("order.id", orderID.String()))
	}
	span.SetAttributes(attribute.String("order.status", view.Status.String()))
	return view, nil
}

func (e *Engine) ListOrdersForUser(ctx context.Context, username string) ([]readmodel.OrderView, error) {
	return e.list(ctx, "ListOrdersForUser",
		[]attribute.KeyValue{attribute.String("user.username", username)},
		func(ctx context.Context) ([]readmodel.OrderView, error) { return e.inner.ListOrdersForUser(ctx, username) })
}

func (e *Engine) ListAllOrders(ctx context.Context) ([]readmodel.OrderView, error) {
	return e.list(ctx, "ListAllOrders", nil, e.inner.ListAllOrders)
}

func (e *Engine) ListOrdersByStatus(
	ctx context.Context,
	viewerRole identity.Role,
	statuses ...order.Status,
) ([]readmodel.OrderView, error) {
	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, s.String())
	}

	return e.list(ctx, "ListOrdersByStatus",
		[]attribute.KeyValue{attribute.String("viewer.role", viewerRole.String()), attribute.StringSlice("order.statuses", names)},
		func(ctx context.Context) ([]readmodel.OrderView, error) {
			return e.inner.ListOrdersByStatus(ctx, viewerRole, statuses...)
		})
}

func (e *Engine) LatestNotifications(ctx context.Context, limit int) ([]readmodel.NotificationView, error) {
	ctx, span := e.tracer.Start(ctx, "OrderLifecycle.LatestNotifications",
		trace.WithAttributes(attribute.Int("notifications.limit", limit)))
	defer span.End()

	start := time.Now()
	result, err := e.inner.LatestNotifications(ctx, limit)
	e.metrics.recordDuration(ctx, "LatestNotifications", start, err)
	if err != nil {
		return nil, e.handleError(ctx, span, err, "failed to list notifications", slog.Int("limit", limit))
	}
	span.SetAttributes(attribute.Int("notifications.count", len(result)))
	return result, nil
}

func (e *Engine) transition(
	ctx context.Context,
	operation string,
	orderID kernel.UUID,
	attrs []attribute.KeyValue,
	call func(context.Context) (readmodel.OrderView, error),
) (readmodel.OrderView, error) {
	ctx, span := e.tracer.Start(ctx, "OrderLifecycle."+operation,
		trace.WithAttributes(append(attrs, attribute.String("order.id", orderID.String()))...))
	defer span.End()

	e.logInfo(ctx, "order transition started",
		slog.String("operation", operation), slog.String("order.id", orderID.String()))

	start := time.Now()
	view, err := call(ctx)
	e.metrics.recordDuration(ctx, operation, start, err)
	if err != nil {
		return view, e.handleError(ctx, span, err, "order transition failed",
			slog.String("operation", operation), slog.String("order.id", orderID.String()))
	}

	e.metrics.recordTransition(ctx, operation, view.Status)
	span.SetAttributes(attribute.String("order.status", view.Status.String()))
	e.logInfo(ctx, "order transition completed",
		slog.String("operation", operation),
		slog.String("order.id", view.ID.String()),
		slog.String("status", view.Status.String()))
	return view, nil
}

func (e *Engine) list(
	ctx context.Context,
	operation string,
	attrs []attribute.KeyValue,
	call func(context.Context) ([]readmodel.OrderView, error),
) ([]readmodel.OrderView, error) {
	ctx, span := e.tracer.Start(ctx, "OrderLifecycle."+operation, trace.WithAttributes(attrs...))
	defer span.End()

	start := time.Now()
	result, err := call(ctx)
	e.metrics.recordDuration(ctx, operation, start, err)
	if err != nil {
		return nil, e.handleError(ctx, span, err, "failed to list orders", slog.String("operation", operation))
	}
	span.SetAttributes(attribute.Int("orders.count", len(result)))
	return result, nil
}

func (e *Engine) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	e.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (e *Engine) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	attrs = append(attrs, slog.String("error", err.Error()))
	e.logger.LogAttrs(ctx, slog.LevelWarn, msg, attrs...)
	return err
}

type engineMetrics struct {
	transitions metric.Int64Counter
	duration    metric.Float64Histogram
}

func newEngineMetrics(m metric.Meter) engineMetrics {
	if m == nil {
		return engineMetrics{}
	}
	transitions, _ := m.Int64Counter("ordering.lifecycle.transitions",
		metric.WithDescription("Number of committed order transitions"))
	duration, _ := m.Float64Histogram("ordering.lifecycle.duration",
		metric.WithDescription("Duration of lifecycle operations"), metric.WithUnit("ms"))
	return engineMetrics{transitions: transitions, duration: duration}
}

func (m engineMetrics) recordTransition(ctx context.Context, operation string, status order.Status) {
	if m.transitions != nil {
		m.transitions.Add(ctx, 1, metric.WithAttributes(
			attribute.String("operation", operation),
			attribute.String("order.status", status.String()),
		))
	}
}

func (m engineMetrics) recordDuration(ctx context.Context, operation string, start time.Time, err error) {
	if m.duration != nil {
		m.duration.Record(ctx, float64(time.Since(start).Microseconds())/1000, metric.WithAttributes(
			attribute.String("operation", operation),
			attribute.Bool("error", err != nil),
		))
	}
}
