// Package metric provides Prometheus metrics for the Demo Forums API.
//
// It exposes request rates, latencies, live session counts, and entity
// store sizes in Prometheus format.
package metric

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds all application metrics behind a dedicated Prometheus
// registry so tests can construct isolated instances.
type Registry struct {
	registry *prometheus.Registry

	// RequestsTotal counts HTTP requests by method, route, and status.
	RequestsTotal *prometheus.CounterVec

	// RequestDuration samples HTTP request latency by method and route.
	RequestDuration *prometheus.HistogramVec

	// SessionsActive tracks the number of live sessions.
	SessionsActive prometheus.GaugeFunc

	// EntityCount tracks entity store sizes by collection.
	EntityCount *prometheus.GaugeVec
}

// NewRegistry creates a metrics registry. sessionCount is sampled on each
// scrape; pass nil to skip the gauge.
func NewRegistry(sessionCount func() int) *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "forums",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests processed, by method, route, and status code.",
		}, []string{"method", "route", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "forums",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency, by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		EntityCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "forums",
			Subsystem: "store",
			Name:      "entities",
			Help:      "Entities held in the in-memory store, by collection.",
		}, []string{"collection"}),
	}

	reg.MustRegister(r.RequestsTotal, r.RequestDuration, r.EntityCount)

	if sessionCount != nil {
		r.SessionsActive = prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "forums",
			Subsystem: "sessions",
			Name:      "active",
			Help:      "Live sessions in the session table.",
		}, func() float64 {
			return float64(sessionCount())
		})
		reg.MustRegister(r.SessionsActive)
	}

	return r
}

// ObserveRequest records one completed HTTP request.
func (r *Registry) ObserveRequest(method, route string, status int, duration time.Duration) {
	r.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.RequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// SetEntityCounts updates the store size gauges.
func (r *Registry) SetEntityCounts(users, forums, posts, comments int) {
	r.EntityCount.WithLabelValues("users").Set(float64(users))
	r.EntityCount.WithLabelValues("forums").Set(float64(forums))
	r.EntityCount.WithLabelValues("posts").Set(float64(posts))
	r.EntityCount.WithLabelValues("comments").Set(float64(comments))
}

// Handler returns the HTTP handler for the /metrics endpoint.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
