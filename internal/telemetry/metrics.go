package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsConfig configures the generation metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "routegen").
	Namespace string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for generation duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures Metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "routegen",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics records generation outcomes and store operations.
type Metrics struct {
	generations *prometheus.CounterVec
	duration    prometheus.Histogram
	routes      prometheus.Gauge
	pages       prometheus.Gauge
	storeOps    *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// NewMetrics registers the generation metrics. Registering twice on the
// same registry panics, as with any promauto collector.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	m := &Metrics{
		generations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "generations_total",
			Help:        "Total number of manifest generations",
			ConstLabels: config.ConstLabels,
		}, []string{"status"}),

		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Name:        "generation_duration_seconds",
			Help:        "Manifest generation duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		routes: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Name:        "routes",
			Help:        "Number of route descriptors in the last generation",
			ConstLabels: config.ConstLabels,
		}),

		pages: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Name:        "pages",
			Help:        "Number of page routes in the last generation",
			ConstLabels: config.ConstLabels,
		}),

		storeOps: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "store_operations_total",
			Help:        "Total number of store operations",
			ConstLabels: config.ConstLabels,
		}, []string{"op", "status"}),
	}

	if g, ok := config.Registry.(prometheus.Gatherer); ok {
		m.gatherer = g
	} else {
		m.gatherer = prometheus.DefaultGatherer
	}
	return m
}

// ObserveGeneration records one Generate call.
func (m *Metrics) ObserveGeneration(d time.Duration, routes, pages int, err error) {
	m.generations.WithLabelValues(status(err)).Inc()
	m.duration.Observe(d.Seconds())
	if err == nil {
		m.routes.Set(float64(routes))
		m.pages.Set(float64(pages))
	}
}

// ObserveStoreOp records one store call.
func (m *Metrics) ObserveStoreOp(op string, err error) {
	m.storeOps.WithLabelValues(op, status(err)).Inc()
}

// Handler serves the registry the metrics were registered on.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
