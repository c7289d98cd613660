// Package metrics exposes Prometheus instrumentation for the split service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "tabsplit"

// Metrics holds the collectors registered on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	Calculations    prometheus.Counter
	Underfunded     prometheus.Counter
	Participants    prometheus.Histogram
	SettlementCount prometheus.Histogram
	RPCDuration     *prometheus.HistogramVec
	RPCErrors       *prometheus.CounterVec
}

// New creates a Metrics instance with its own registry, including Go runtime
// and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Calculations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calculations_total",
			Help:      "Number of bill split calculations performed.",
		}),
		Underfunded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "underfunded_bills_total",
			Help:      "Calculations where the group paid less than the bill total.",
		}),
		Participants: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "calculation_participants",
			Help:      "Participants per calculation.",
			Buckets:   []float64{1, 2, 3, 4, 6, 8, 12, 20, 50},
		}),
		SettlementCount: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "calculation_settlements",
			Help:      "Settlements produced per calculation.",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 13, 21},
		}),
		RPCDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "RPC handling latency by procedure.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
		RPCErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_errors_total",
			Help:      "RPC errors by procedure and Connect code.",
		}, []string{"procedure", "code"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.Calculations,
		m.Underfunded,
		m.Participants,
		m.SettlementCount,
		m.RPCDuration,
		m.RPCErrors,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveCalculation records one completed calculation.
func (m *Metrics) ObserveCalculation(participants, settlements int, underfunded bool) {
	m.Calculations.Inc()
	m.Participants.Observe(float64(participants))
	m.SettlementCount.Observe(float64(settlements))
	if underfunded {
		m.Underfunded.Inc()
	}
}
