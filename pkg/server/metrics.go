package server

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the Prometheus metrics for Pulse.
type metrics struct {
	eventsTotal    *prometheus.CounterVec
	eventDuration  *prometheus.HistogramVec
	opsSent        prometheus.Counter
	activeSessions prometheus.Gauge
	sessionsTotal  prometheus.Counter
	scopeCloses    prometheus.Counter
	wsErrors       *prometheus.CounterVec
}

var (
	globalMetrics     *metrics
	globalMetricsOnce sync.Once
)

func initMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)

	return &metrics{
		eventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pulse",
			Name:      "events_total",
			Help:      "Total number of client events processed",
		}, []string{"type", "status"}),

		eventDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pulse",
			Name:      "event_duration_seconds",
			Help:      "Event processing duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"type"}),

		opsSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "pulse",
			Name:      "ops_sent_total",
			Help:      "Total number of DOM operations sent to clients",
		}),

		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "pulse",
			Name:      "active_sessions",
			Help:      "Number of currently connected sessions",
		}),

		sessionsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "pulse",
			Name:      "sessions_total",
			Help:      "Total number of sessions started",
		}),

		scopeCloses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "pulse",
			Name:      "session_scope_closes_total",
			Help:      "Total number of session scopes closed",
		}),

		wsErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pulse",
			Name:      "websocket_errors_total",
			Help:      "WebSocket errors by kind",
		}, []string{"kind"}),
	}
}

// sharedMetrics returns the process-wide metrics instance, registering the
// collectors on first use. Collectors can only be registered once per
// registry, so every Server shares this set.
func sharedMetrics() *metrics {
	globalMetricsOnce.Do(func() {
		globalMetrics = initMetrics(prometheus.DefaultRegisterer)
	})
	return globalMetrics
}
