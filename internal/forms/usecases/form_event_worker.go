package usecases

import (
	"context"
	"fmt"
	"log/slog"

	"form-server/internal/infra/async"
	"form-server/internal/infra/pubsub"
	"form-server/internal/shared_kernel/avro"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

const _formsTopic = "forms"

func NewFormEventWorker(consumerFactory pubsub.ConsumerFactory) *FormEventWorker {
	return &FormEventWorker{
		consumerFactory: consumerFactory,
	}
}

var _ async.Worker = &FormEventWorker{}

// FormEventWorker keeps an audit trail of form changes and counts them.
type FormEventWorker struct {
	consumerFactory pubsub.ConsumerFactory
	eventCounter    metric.Int64Counter
}

func (w *FormEventWorker) Run(ctx context.Context, done func()) {
	slog.Debug("form event worker started")
	defer done()

	if err := w.initializeMetrics(); err != nil {
		slog.Error("initializing metrics", slog.String("error", err.Error()))
		return
	}

	consumer := w.consumerFactory.New()
	err := consumer.Consume(ctx, pubsub.Topic(_formsTopic), w.handle, &avro.AvroFormEvent{})
	if err != nil {
		slog.Error("consuming form events", slog.String("error", err.Error()))
	}
}

func (w *FormEventWorker) Shutdown() {
	slog.Debug("form event worker shutdown")
}

func (w *FormEventWorker) initializeMetrics() error {
	counter, err := otel.Meter("form_server").Int64Counter(
		"form_server.form_events",
		metric.WithDescription("Form change events by type"),
	)
	if err != nil {
		return err
	}
	w.eventCounter = counter
	return nil
}

func (w *FormEventWorker) handle(ctx context.Context, key pubsub.Key, message pubsub.Prototype) error {
	var event avro.AvroFormEvent
	switch value := message.(type) {
	case *avro.AvroFormEvent:
		event = *value
	case avro.AvroFormEvent:
		event = value
	default:
		return fmt.Errorf("unexpected form event type %T", message)
	}

	slog.Info("form changed",
		slog.String("key", string(key)),
		slog.String("event_type", event.EventType),
		slog.String("id", event.ID),
		slog.String("name", event.Name),
		slog.Int("fields", len(event.Fields)),
		slog.Time("occurred_at", event.OccurredAt))

	w.eventCounter.Add(ctx, 1, metric.WithAttributes(
		semconv.ServiceNameKey.String("form_server"),
		attribute.String("event_type", event.EventType),
	))

	return nil
}
