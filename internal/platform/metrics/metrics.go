package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Fetch outcomes recorded by the dashboard views.
const (
	OutcomeLoaded    = "loaded"
	OutcomeEmpty     = "empty"
	OutcomeError     = "error"
	OutcomeDiscarded = "discarded"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	registry prometheus.Gatherer

	// Request latency by chi route pattern and status code
	RequestLatency *prometheus.HistogramVec

	// Records loaded from the fixture source
	FixtureRecords *prometheus.GaugeVec

	// Dashboard fetch outcomes by component
	ViewFetches *prometheus.CounterVec
}

// New creates and registers all metrics on a private registry so tests and
// multiple servers in one process do not collide.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		RequestLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "casedesk_http_request_duration_seconds",
			Help:    "Duration of HTTP requests including simulated latency",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.2, 0.3, 0.5, 1, 2.5},
		}, []string{"route", "status"}),

		FixtureRecords: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "casedesk_fixture_records",
			Help: "Number of fixture records loaded by kind",
		}, []string{"kind"}), // kind: "cases", "details"

		ViewFetches: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "casedesk_view_fetches_total",
			Help: "Dashboard data fetches by component and outcome",
		}, []string{"component", "outcome"}),
	}
}

// ObserveRequest records the duration of a served request.
func (m *Metrics) ObserveRequest(route string, status int, d time.Duration) {
	if m != nil {
		m.RequestLatency.WithLabelValues(route, strconv.Itoa(status)).Observe(d.Seconds())
	}
}

// SetFixtureRecords publishes the size of the loaded fixture set.
func (m *Metrics) SetFixtureRecords(cases, details int) {
	if m != nil {
		m.FixtureRecords.WithLabelValues("cases").Set(float64(cases))
		m.FixtureRecords.WithLabelValues("details").Set(float64(details))
	}
}

// IncrementViewFetch records the outcome of a dashboard fetch.
func (m *Metrics) IncrementViewFetch(component, outcome string) {
	if m != nil {
		m.ViewFetches.WithLabelValues(component, outcome).Inc()
	}
}

// Handler exposes the registry for scraping.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
