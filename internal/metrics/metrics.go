// Package metrics exposes state operation counters and slice gauges to
// Prometheus.
package metrics

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/alexisbeaulieu97/statedeck/internal/ports"
)

// Collector is the Prometheus implementation of ports.MetricsRecorder.
type Collector struct {
	operations    *prometheus.CounterVec
	notifications prometheus.Gauge
	session       prometheus.Gauge
	darkMode      prometheus.Gauge
	items         prometheus.Gauge
}

// NewCollector creates a Collector and registers it on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "statedeck_state_operations_total",
			Help: "Applied state operations by slice and operation.",
		}, []string{"slice", "operation"}),
		notifications: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "statedeck_notifications",
			Help: "Notifications currently in the list.",
		}),
		session: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "statedeck_session_active",
			Help: "1 while a user is logged in.",
		}),
		darkMode: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "statedeck_theme_dark",
			Help: "1 while the dark theme is active.",
		}),
		items: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "statedeck_items",
			Help: "Generated items currently loaded.",
		}),
	}

	reg.MustRegister(c.operations, c.notifications, c.session, c.darkMode, c.items)
	return c
}

// RecordOperation counts one applied operation.
func (c *Collector) RecordOperation(slice, operation string) {
	c.operations.WithLabelValues(slice, operation).Inc()
}

// SetNotificationCount records the notification list length.
func (c *Collector) SetNotificationCount(n int) {
	c.notifications.Set(float64(n))
}

// SetSessionActive records whether a user is logged in.
func (c *Collector) SetSessionActive(active bool) {
	c.session.Set(boolGauge(active))
}

// SetDarkMode records the theme.
func (c *Collector) SetDarkMode(dark bool) {
	c.darkMode.Set(boolGauge(dark))
}

// SetItemCount records the loaded item count.
func (c *Collector) SetItemCount(n int) {
	c.items.Set(float64(n))
}

func boolGauge(v bool) float64 {
	if v {
		return 1
	}
	return 0
}

var _ ports.MetricsRecorder = (*Collector)(nil)

// Subscribe feeds every state event published on publisher into recorder.
func Subscribe(publisher ports.EventPublisher, recorder ports.MetricsRecorder) (ports.Subscription, error) {
	sub, err := publisher.Subscribe(ports.AllEvents, func(_ context.Context, event ports.DomainEvent) error {
		return Record(recorder, event)
	})
	if err != nil {
		return nil, fmt.Errorf("subscribe metrics: %w", err)
	}
	return sub, nil
}

// Record translates one state event into recorder calls.
func Record(recorder ports.MetricsRecorder, event ports.DomainEvent) error {
	data, ok := event.Payload().(map[string]any)
	if !ok || data == nil {
		return fmt.Errorf("event %s: unexpected payload %T", event.EventType(), event.Payload())
	}

	slice, _ := data["slice"].(string)
	operation, _ := data["operation"].(string)
	if slice != "" && operation != "" {
		recorder.RecordOperation(slice, operation)
	}

	switch event.EventType() {
	case ports.EventNotificationAdded, ports.EventNotificationRemoved:
		if count, ok := data["count"].(int); ok {
			recorder.SetNotificationCount(count)
		}
	case ports.EventSessionLogin, ports.EventSessionLogout:
		if active, ok := data["active"].(bool); ok {
			recorder.SetSessionActive(active)
		}
	case ports.EventThemeToggled:
		if mode, ok := data["mode"].(string); ok {
			recorder.SetDarkMode(mode == "dark")
		}
	case ports.EventItemsLoaded:
		if count, ok := data["count"].(int); ok {
			recorder.SetItemCount(count)
		}
	}
	return nil
}
