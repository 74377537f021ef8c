// Package metrics exposes Prometheus collectors for the office-manager service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is what handlers, middleware and the assistant use.
type Recorder interface {
	RecordRequest(method, route string, status int, duration time.Duration)
	RecordCreated(kind string)
	RecordAssistant(outcome string)
}

type Collector struct {
	requests  *prometheus.CounterVec
	latency   *prometheus.HistogramVec
	created   *prometheus.CounterVec
	assistant *prometheus.CounterVec
}

// NewCollector creates the collectors and registers them with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "office_manager_http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "office_manager_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		created: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "office_manager_records_created_total",
			Help: "Records persisted by kind.",
		}, []string{"kind"}),
		assistant: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "office_manager_assistant_responses_total",
			Help: "Text responses by outcome (external or fallback reason).",
		}, []string{"outcome"}),
	}
	reg.MustRegister(c.requests, c.latency, c.created, c.assistant)
	return c
}

func (c *Collector) RecordRequest(method, route string, status int, duration time.Duration) {
	c.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.latency.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (c *Collector) RecordCreated(kind string) {
	c.created.WithLabelValues(kind).Inc()
}

func (c *Collector) RecordAssistant(outcome string) {
	c.assistant.WithLabelValues(outcome).Inc()
}

// Handler serves the Prometheus exposition format for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop discards everything.
type Nop struct{}

func (Nop) RecordRequest(string, string, int, time.Duration) {}
func (Nop) RecordCreated(string)                             {}
func (Nop) RecordAssistant(string)                           {}
