// Package telemetry exposes the service's Prometheus metrics.
package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the counters shared by the generation flows.
type Metrics struct {
	registry *prometheus.Registry

	// Generations counts producing requests by flow and outcome:
	// ok, degraded (fallback substituted), or error (upstream failure).
	Generations *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		Generations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "generation_requests_total",
			Help: "Generation requests by flow and outcome.",
		}, []string{"flow", "outcome"}),
	}
}

func (m *Metrics) RecordOK(flow string)       { m.Generations.WithLabelValues(flow, "ok").Inc() }
func (m *Metrics) RecordDegraded(flow string) { m.Generations.WithLabelValues(flow, "degraded").Inc() }
func (m *Metrics) RecordError(flow string)    { m.Generations.WithLabelValues(flow, "error").Inc() }

// Handler serves the /metrics endpoint for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
