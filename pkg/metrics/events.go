package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// EventMetrics records metadata for the order event pipeline.
type EventMetrics struct {
	ordersPlaced    *prometheus.CounterVec
	publishFailures *prometheus.CounterVec
	consumeDuration *prometheus.HistogramVec
	notifications   *prometheus.CounterVec
}

// NewEventMetrics registers the event pipeline metrics on the provided registerer.
func NewEventMetrics(reg prometheus.Registerer) *EventMetrics {
	if reg == nil {
		return &EventMetrics{}
	}
	ordersPlaced := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orders_placed_total",
		Help: "Orders placed against used listings.",
	}, []string{"status"})
	publishFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "event_publish_failures_total",
		Help: "Failed event publishes by event type.",
	}, []string{"event"})
	consumeDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "event_consume_duration_seconds",
		Help:    "Duration of event handling in the worker.",
		Buckets: prometheus.DefBuckets,
	}, []string{"event"})
	notifications := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "notifications_written_total",
		Help: "Notifications written by outcome.",
	}, []string{"outcome"})
	reg.MustRegister(ordersPlaced, publishFailures, consumeDuration, notifications)
	return &EventMetrics{
		ordersPlaced:    ordersPlaced,
		publishFailures: publishFailures,
		consumeDuration: consumeDuration,
		notifications:   notifications,
	}
}

// IncOrderPlaced increments the placed-order counter for the given status.
func (e *EventMetrics) IncOrderPlaced(status string) {
	if e == nil || e.ordersPlaced == nil {
		return
	}
	e.ordersPlaced.WithLabelValues(normalizeLabel(status)).Inc()
}

// IncPublishFailure increments the publish failure counter for the event type.
func (e *EventMetrics) IncPublishFailure(event string) {
	if e == nil || e.publishFailures == nil {
		return
	}
	e.publishFailures.WithLabelValues(normalizeLabel(event)).Inc()
}

// ObserveConsumeDuration records how long the worker spent handling an event.
func (e *EventMetrics) ObserveConsumeDuration(event string, duration time.Duration) {
	if e == nil || e.consumeDuration == nil {
		return
	}
	e.consumeDuration.WithLabelValues(normalizeLabel(event)).Observe(duration.Seconds())
}

// IncNotification increments the notification counter for the given outcome.
func (e *EventMetrics) IncNotification(outcome string) {
	if e == nil || e.notifications == nil {
		return
	}
	e.notifications.WithLabelValues(normalizeLabel(outcome)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
