package service

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/dmehra2102/prod-golang-projects/labdesk/pkg/metrics"
)

// Clock returns the reference time for date-based views.
type Clock func() time.Time

const tracerName = "github.com/dmehra2102/prod-golang-projects/labdesk/internal/service"

// telemetry is embedded by every service. A nil collector disables metrics.
type telemetry struct {
	log     *zap.Logger
	metrics *metrics.Collector
	tracer  trace.Tracer
}

func newTelemetry(log *zap.Logger, m *metrics.Collector) telemetry {
	return telemetry{log: log, metrics: m, tracer: otel.Tracer(tracerName)}
}

// evaluate opens a span for one view evaluation. The returned func records
// the result size and ends the span.
func (t telemetry) evaluate(ctx context.Context, screen Screen) (context.Context, func(n int)) {
	start := time.Now()
	ctx, span := t.tracer.Start(ctx, "view."+string(screen),
		trace.WithAttributes(attribute.String("labdesk.screen", string(screen))),
	)

	return ctx, func(n int) {
		if t.metrics != nil {
			label := string(screen)
			t.metrics.ViewEvaluationsTotal.WithLabelValues(label).Inc()
			t.metrics.ViewEvaluationDuration.WithLabelValues(label).Observe(time.Since(start).Seconds())
			t.metrics.ViewResultSize.WithLabelValues(label).Observe(float64(n))
		}
		span.SetAttributes(attribute.Int("labdesk.result_size", n))
		span.End()
	}
}

// invalidDate logs and counts a record dropped from a date-based view.
func (t telemetry) invalidDate(entity, id string, err error) {
	t.countInvalidDate(entity)
	t.log.Warn("excluding record with invalid date",
		zap.String("entity", entity),
		zap.String("id", id),
		zap.Error(err),
	)
}

// unreadableDate logs and counts a date-derived marker that was cleared
// because the date could not be parsed. The record itself stays listed.
func (t telemetry) unreadableDate(entity, id string, err error) {
	t.countInvalidDate(entity)
	t.log.Warn("clearing date marker on record with invalid date",
		zap.String("entity", entity),
		zap.String("id", id),
		zap.Error(err),
	)
}

func (t telemetry) countInvalidDate(entity string) {
	if t.metrics != nil {
		t.metrics.InvalidDatesTotal.WithLabelValues(entity).Inc()
	}
}
