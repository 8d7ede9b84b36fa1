// Package observability bridges engine lifecycle hooks to Prometheus
// metrics. Wire Hooks() into the engine and the Registry into an HTTP
// /metrics endpoint.
package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/atelier-tools/sift/pkg/domain"
)

// Metrics holds the engine metric collectors.
type Metrics struct {
	queries       *prometheus.CounterVec
	queryDuration prometheus.Histogram
	matched       prometheus.Histogram
	actions       *prometheus.CounterVec
	exportErrors  prometheus.Counter
}

// New creates the collectors and registers them. Pass
// prometheus.DefaultRegisterer or a private registry.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sift_queries_total",
			Help: "Total number of query runs",
		}, []string{"scope", "action"}),
		queryDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "sift_query_duration_seconds",
			Help:    "Duration of query runs",
			Buckets: prometheus.DefBuckets,
		}),
		matched: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "sift_query_matched_elements",
			Help:    "Number of elements matched per query",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
		actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sift_actions_applied_total",
			Help: "Total elements acted on, by action",
		}, []string{"action"}),
		exportErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sift_export_errors_total",
			Help: "Total per-node export failures",
		}),
	}
	reg.MustRegister(m.queries, m.queryDuration, m.matched, m.actions, m.exportErrors)
	return m
}

// Hooks returns lifecycle hooks that record into the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnQueryEnd: func(ctx context.Context, e *domain.QueryEvent) {
			m.queries.WithLabelValues(string(e.Scope), string(e.Action)).Inc()
			m.queryDuration.Observe(e.Duration.Seconds())
			m.matched.Observe(float64(e.Matched))
		},
		OnAction: func(ctx context.Context, e *domain.ActionEvent) {
			m.actions.WithLabelValues(string(e.Action)).Add(float64(e.Applied))
		},
		OnExportError: func(ctx context.Context, e *domain.ExportErrorEvent) {
			m.exportErrors.Inc()
		},
	}
}
