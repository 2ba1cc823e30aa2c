package services

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const meterName = "github.com/sevakart/marketplace/services/order"

type orderMetrics struct {
	placed      metric.Int64Counter
	transitions metric.Int64Counter
}

// newOrderMetrics registers the order counters on the global meter provider,
// which telemetry.Setup points at the Prometheus and OTLP readers.
func newOrderMetrics() *orderMetrics {
	meter := otel.Meter(meterName)
	noopMeter := noop.NewMeterProvider().Meter(meterName)

	placed, err := meter.Int64Counter("orders_placed_total",
		metric.WithDescription("Orders committed, by origin"))
	if err != nil {
		placed, _ = noopMeter.Int64Counter("orders_placed_total")
	}
	transitions, err := meter.Int64Counter("order_transitions_total",
		metric.WithDescription("Order lifecycle transitions, by action"))
	if err != nil {
		transitions, _ = noopMeter.Int64Counter("order_transitions_total")
	}
	return &orderMetrics{placed: placed, transitions: transitions}
}

func (m *orderMetrics) orderPlaced(ctx context.Context, origin string) {
	m.placed.Add(ctx, 1, metric.WithAttributes(attribute.String("origin", origin)))
}

func (m *orderMetrics) transitioned(ctx context.Context, action string) {
	m.transitions.Add(ctx, 1, metric.WithAttributes(attribute.String("action", action)))
}
