package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the research agent collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	TurnsTotal       *prometheus.CounterVec
	SessionsStarted  prometheus.Counter
	FallbackLookups  prometheus.Counter
	TurnDuration     prometheus.Histogram
	ActiveWebsockets prometheus.Gauge
}

// New registers all collectors. Pass withRuntime=false in tests to keep output small.
func New(withRuntime bool) *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		TurnsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "research_turns_total",
			Help: "Processed chat turns by resolved intent.",
		}, []string{"intent"}),
		SessionsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "research_sessions_started_total",
			Help: "Sessions that completed their first turn.",
		}),
		FallbackLookups: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "research_fallback_lookups_total",
			Help: "Turns answered with the default company report.",
		}),
		TurnDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "research_turn_duration_seconds",
			Help:    "Wall time spent producing a reply, pacing delay included.",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 1.5, 2, 5},
		}),
		ActiveWebsockets: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "research_websocket_connections",
			Help: "Open live chat connections on this instance.",
		}),
	}
	reg.MustRegister(m.TurnsTotal, m.SessionsStarted, m.FallbackLookups, m.TurnDuration, m.ActiveWebsockets)
	if withRuntime {
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}
	return m
}

// ObserveTurn records one processed turn.
func (m *Metrics) ObserveTurn(intent string, firstTurn, companyFound bool, d time.Duration) {
	m.TurnsTotal.WithLabelValues(intent).Inc()
	if firstTurn {
		m.SessionsStarted.Inc()
	}
	if !companyFound {
		m.FallbackLookups.Inc()
	}
	m.TurnDuration.Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
