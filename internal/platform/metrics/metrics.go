// Package metrics exposes prometheus instrumentation for the ontology
// service: counters for repository mutations and reasoner queries, plus
// decorators that wrap the store ports so callers stay unaware of the
// instrumentation.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns the prometheus registry and the core counters.
type Metrics struct {
	registry *prometheus.Registry

	repositoryOps   *prometheus.CounterVec
	reasonerQueries *prometheus.CounterVec
}

// New creates a registry with the core counters and the Go runtime
// collectors registered.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		repositoryOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ontos",
			Subsystem: "repository",
			Name:      "operations_total",
			Help:      "Repository operations by operation and status.",
		}, []string{"operation", "status"}),
		reasonerQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ontos",
			Subsystem: "reasoner",
			Name:      "queries_total",
			Help:      "Reasoning queries by operation and status.",
		}, []string{"operation", "status"}),
	}

	registry.MustRegister(
		m.repositoryOps,
		m.reasonerQueries,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Registry returns the underlying prometheus registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns the HTTP handler serving the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRepositoryOp records one repository operation.
func (m *Metrics) ObserveRepositoryOp(operation string, err error) {
	m.repositoryOps.WithLabelValues(operation, statusLabel(err)).Inc()
}

// ObserveReasonerQuery records one reasoning query.
func (m *Metrics) ObserveReasonerQuery(operation string, err error) {
	m.reasonerQueries.WithLabelValues(operation, statusLabel(err)).Inc()
}

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
