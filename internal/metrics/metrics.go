// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records HTTP and catalog metrics.
type Collector struct {
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	catalogRequests *prometheus.CounterVec
	catalogLatency  prometheus.Histogram
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "podshelf_http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "podshelf_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		catalogRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "podshelf_catalog_requests_total",
			Help: "Catalog search requests by outcome.",
		}, []string{"outcome"}),
		catalogLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "podshelf_catalog_request_duration_seconds",
			Help:    "Catalog search latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		c.httpRequests,
		c.httpDuration,
		c.catalogRequests,
		c.catalogLatency,
	)

	return c
}

// RecordHTTPRequest records one served request. route is the matched mux
// pattern, never the raw path.
func (c *Collector) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordCatalogRequest records one upstream catalog call.
func (c *Collector) RecordCatalogRequest(outcome string, duration time.Duration) {
	c.catalogRequests.WithLabelValues(outcome).Inc()
	c.catalogLatency.Observe(duration.Seconds())
}

// Handler returns the Prometheus scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
