package lca

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "lvlca"

// Metrics holds the Prometheus collectors an Engine records into.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	// QueriesTotal counts LCA calls by mode and result.
	// Results: the Reason names, plus "budget_exceeded", "canceled", "error".
	QueriesTotal *prometheus.CounterVec

	// QueryDuration observes LCA call latency by mode.
	QueryDuration *prometheus.HistogramVec

	// VisitedNodes observes how many nodes one LCA call expanded across all walks.
	VisitedNodes prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered. Registering twice with the same
// registry panics, as promauto does.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		QueriesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "queries_total",
				Help:      "Total LCA queries by mode and result",
			},
			[]string{"mode", "result"},
		),
		QueryDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "query_duration_seconds",
				Help:      "LCA query duration",
				Buckets:   []float64{0.000001, 0.00001, 0.0001, 0.001, 0.01, 0.1},
			},
			[]string{"mode"},
		),
		VisitedNodes: f.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "visited_nodes",
				Help:      "Nodes expanded per LCA query",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
			},
		),
	}
}

// observe records one finished LCA call.
func (m *Metrics) observe(mode string, reason Reason, err error, d time.Duration, visited int) {
	if m == nil {
		return
	}
	result := reason.String()
	if err != nil {
		result = classifyError(err)
	}
	m.QueriesTotal.WithLabelValues(mode, result).Inc()
	m.QueryDuration.WithLabelValues(mode).Observe(d.Seconds())
	m.VisitedNodes.Observe(float64(visited))
}

// classifyError categorizes errors for metric labels and span status.
func classifyError(err error) string {
	switch {
	case errors.Is(err, ErrVisitBudgetExceeded):
		return "budget_exceeded"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "error"
	}
}
