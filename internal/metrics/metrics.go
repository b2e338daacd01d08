// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector gathers the service's operational metrics.
type Collector struct {
	httpRequests    *prometheus.CounterVec
	httpLatency     prometheus.Histogram
	scanRequests    *prometheus.CounterVec
	remindersSent   prometheus.Counter
	reminderCycles  prometheus.Counter
	reminderLastRun prometheus.Gauge
}

// NewCollector registers the service metrics on the given registry.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "expiry_http_requests_total",
			Help: "HTTP requests by status code.",
		}, []string{"status_code"}),
		httpLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "expiry_http_latency_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
		scanRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "expiry_scan_requests_total",
			Help: "Packaging scan attempts by outcome (hit, miss, cached, error).",
		}, []string{"outcome"}),
		remindersSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "expiry_reminders_sent_total",
			Help: "Expiry reminder notifications created by the worker.",
		}),
		reminderCycles: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "expiry_reminder_cycles_total",
			Help: "Completed reminder worker cycles.",
		}),
		reminderLastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "expiry_reminder_last_run_timestamp",
			Help: "Unix time of the last completed reminder cycle.",
		}),
	}

	reg.MustRegister(
		c.httpRequests,
		c.httpLatency,
		c.scanRequests,
		c.remindersSent,
		c.reminderCycles,
		c.reminderLastRun,
	)

	return c
}

func (c *Collector) RecordHTTPRequest(statusCode int, duration time.Duration) {
	c.httpRequests.WithLabelValues(strconv.Itoa(statusCode)).Inc()
	c.httpLatency.Observe(duration.Seconds())
}

func (c *Collector) RecordScan(outcome string) {
	c.scanRequests.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordReminderCycle(sent int) {
	c.remindersSent.Add(float64(sent))
	c.reminderCycles.Inc()
	c.reminderLastRun.SetToCurrentTime()
}

// Handler returns the Prometheus scrape handler.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
