// Package metrics defines the Prometheus collectors recorded by the solution
// runner and exposes an HTTP handler for scraping.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus collectors for the polymer tool.
type Metrics struct {
	PhaseDuration *prometheus.HistogramVec
	Failures      *prometheus.CounterVec
	Residue       *prometheus.GaugeVec
	InputUnits    prometheus.Gauge
}

// New creates the collectors and registers them with reg.
// A nil reg uses the default Prometheus registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		PhaseDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "polymer_phase_duration_seconds",
				Help:    "Duration of the generate and run phases per solution.",
				Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
			[]string{"solution", "phase"},
		),
		Failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "polymer_failures_total",
				Help: "Failed solution executions by phase.",
			},
			[]string{"solution", "phase"},
		),
		Residue: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "polymer_residue_units",
				Help: "Residue length produced by the last successful run of a solution.",
			},
			[]string{"solution"},
		),
		InputUnits: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "polymer_input_units",
				Help: "Number of units in the last parsed input.",
			},
		),
	}

	reg.MustRegister(
		m.PhaseDuration,
		m.Failures,
		m.Residue,
		m.InputUnits,
	)

	return m
}

// Handler returns the scrape handler for g, or the default gatherer when g is nil.
func Handler(g prometheus.Gatherer) http.Handler {
	if g == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
