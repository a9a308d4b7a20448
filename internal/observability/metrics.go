package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application. Each instance has
// its own registry so tests can create as many as they need.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	DocumentUpdates prometheus.Counter
	DocumentVersion prometheus.Gauge

	AssistCalls    *prometheus.CounterVec
	AssistDuration *prometheus.HistogramVec

	VoiceCommands *prometheus.CounterVec

	SnapshotOps *prometheus.CounterVec

	Exports *prometheus.CounterVec
}

// NewMetrics creates and registers the application metrics under namespace.
func NewMetrics(namespace string) *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		DocumentUpdates: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "document_updates_total",
				Help:      "Total number of applied document updates",
			},
		),
		DocumentVersion: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "document_version",
				Help:      "Current version of the document",
			},
		),
		AssistCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "assist_calls_total",
				Help:      "Total number of AI assist calls by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		AssistDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "assist_call_duration_seconds",
				Help:      "AI assist call duration in seconds",
				Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 30},
			},
			[]string{"operation"},
		),
		VoiceCommands: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "voice_commands_total",
				Help:      "Total number of interpreted voice commands by intent",
			},
			[]string{"intent"},
		),
		SnapshotOps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "snapshot_operations_total",
				Help:      "Total number of snapshot operations",
			},
			[]string{"operation", "backend", "status"},
		),
		Exports: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "pdf_exports_total",
				Help:      "Total number of PDF exports",
			},
			[]string{"status"},
		),
	}

	registry.MustRegister(
		m.HTTPRequests,
		m.HTTPDuration,
		m.DocumentUpdates,
		m.DocumentVersion,
		m.AssistCalls,
		m.AssistDuration,
		m.VoiceCommands,
		m.SnapshotOps,
		m.Exports,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Registry returns the registry the metrics are registered with.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// ObserveDocument records an applied update.
func (m *Metrics) ObserveDocument(version uint64) {
	m.DocumentUpdates.Inc()
	m.DocumentVersion.Set(float64(version))
}

// ObserveAssist records one AI assist call.
func (m *Metrics) ObserveAssist(operation, outcome string, d time.Duration) {
	m.AssistCalls.WithLabelValues(operation, outcome).Inc()
	m.AssistDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// ObserveVoiceCommand records an interpreted voice command.
func (m *Metrics) ObserveVoiceCommand(intent string) {
	m.VoiceCommands.WithLabelValues(intent).Inc()
}

// ObserveSnapshot records a snapshot load, save or clear.
func (m *Metrics) ObserveSnapshot(operation, backend string, err error) {
	m.SnapshotOps.WithLabelValues(operation, backend, status(err)).Inc()
}

// ObserveExport records a PDF export attempt.
func (m *Metrics) ObserveExport(err error) {
	m.Exports.WithLabelValues(status(err)).Inc()
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
