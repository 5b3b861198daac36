// Package metrics defines the Prometheus collectors exported by bigoref.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/HerbHall/bigoref/pkg/complexity"
)

const namespace = "bigoref"

// Metrics holds the service collectors on a private registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	classifications *prometheus.CounterVec
	filterQueries   *prometheus.CounterVec
	filterResults   *prometheus.HistogramVec
	httpRequests    *prometheus.CounterVec
}

// New creates the collectors and registers them, along with the Go runtime
// and process collectors, on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		classifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "classifications_total",
			Help:      "Complexity notations classified, by resulting rating.",
		}, []string{"rating"}),
		filterQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "filter_queries_total",
			Help:      "Catalog filter queries, by catalog.",
		}, []string{"catalog"}),
		filterResults: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "filter_results",
			Help:      "Number of entries returned per filter query.",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50},
		}, []string{"catalog"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served, by route pattern and status code.",
		}, []string{"route", "code"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.classifications,
		m.filterQueries,
		m.filterResults,
		m.httpRequests,
	)
	return m
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveClassification counts one classification.
func (m *Metrics) ObserveClassification(r complexity.Rating) {
	if m == nil {
		return
	}
	m.classifications.WithLabelValues(r.String()).Inc()
}

// ObserveFilter records a filter query against catalog returning n entries.
func (m *Metrics) ObserveFilter(catalog string, n int) {
	if m == nil {
		return
	}
	m.filterQueries.WithLabelValues(catalog).Inc()
	m.filterResults.WithLabelValues(catalog).Observe(float64(n))
}

// ObserveRequest counts one HTTP response.
func (m *Metrics) ObserveRequest(route string, code int) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, strconv.Itoa(code)).Inc()
}
