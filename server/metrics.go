package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the counters exposed on /metrics.
type Metrics struct {
	registry    *prometheus.Registry
	requests    *prometheus.CounterVec
	resolutions *prometheus.CounterVec
	failures    *prometheus.CounterVec
}

// NewMetrics registers the counters on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kipdayo_requests_total",
			Help: "HTTP requests received, by route and status code",
		}, []string{"route", "code"}),
		resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kipdayo_resolutions_total",
			Help: "Successful resolutions, by stream format",
		}, []string{"format"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kipdayo_failures_total",
			Help: "Failed resolutions, by error kind",
		}, []string{"kind"}),
	}

	m.registry.MustRegister(m.requests, m.resolutions, m.failures)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
