// Package telemetry records metrics and trace spans for sync operations.
//
// Metrics live in a Recorder-owned Prometheus registry so that a CLI run can
// dump them with WriteTextfile and `termkit serve` can expose them, without
// touching prometheus.DefaultRegisterer. Spans use the global OpenTelemetry
// tracer provider, which is a no-op unless the embedding program installs one.
package telemetry

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultNamespace  = "termkit"
	defaultTracerName = "termkit"
)

// Config configures a Recorder.
type Config struct {
	// Namespace prefixes every metric name (default: "termkit").
	Namespace string

	// TracerName names the OpenTelemetry tracer (default: "termkit").
	TracerName string

	// Buckets are the histogram buckets for operation duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry receives the metrics. Default: a fresh prometheus.Registry.
	Registry *prometheus.Registry
}

// Option configures a Recorder.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithTracerName sets the tracer name.
func WithTracerName(name string) Option {
	return func(c *Config) {
		c.TracerName = name
	}
}

// WithBuckets sets the duration histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

// Recorder records the outcome of sync operations.
//
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	registry *prometheus.Registry
	tracer   trace.Tracer

	components   *prometheus.CounterVec
	filesWritten prometheus.Counter
	fileDrift    *prometheus.CounterVec
	duration     *prometheus.HistogramVec
}

// New creates a Recorder.
func New(opts ...Option) *Recorder {
	config := Config{
		Namespace:  defaultNamespace,
		TracerName: defaultTracerName,
		Buckets:    prometheus.DefBuckets,
	}
	for _, opt := range opts {
		opt(&config)
	}
	if config.Registry == nil {
		config.Registry = prometheus.NewRegistry()
	}

	factory := promauto.With(config.Registry)

	return &Recorder{
		registry: config.Registry,
		tracer:   otel.Tracer(config.TracerName),

		components: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "components_total",
			Help:      "Components processed, by operation and result status",
		}, []string{"operation", "status"}),

		filesWritten: factory.NewCounter(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "files_written_total",
			Help:      "Component files written to the project",
		}),

		fileDrift: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "file_drift_total",
			Help:      "Files classified by drift state",
		}, []string{"state"}),

		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: config.Namespace,
			Name:      "operation_duration_seconds",
			Help:      "Duration of sync operations in seconds",
			Buckets:   config.Buckets,
		}, []string{"operation"}),
	}
}

// Registry returns the registry holding the Recorder's metrics.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// Span is an in-flight operation started by Recorder.Start.
type Span struct {
	recorder  *Recorder
	operation string
	start     time.Time
	span      trace.Span
}

// Start begins an operation span. The returned context carries the span.
func (r *Recorder) Start(ctx context.Context, operation string, attrs ...attribute.KeyValue) (context.Context, *Span) {
	if r == nil {
		return ctx, nil
	}

	attrs = append([]attribute.KeyValue{attribute.String("termkit.operation", operation)}, attrs...)
	ctx, span := r.tracer.Start(ctx, "termkit."+operation,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)

	return ctx, &Span{
		recorder:  r,
		operation: operation,
		start:     time.Now(),
		span:      span,
	}
}

// SetAttributes adds attributes to the span.
func (s *Span) SetAttributes(attrs ...attribute.KeyValue) {
	if s == nil {
		return
	}
	s.span.SetAttributes(attrs...)
}

// End finishes the span and observes the operation's duration.
func (s *Span) End(err error) {
	if s == nil {
		return
	}

	s.recorder.duration.WithLabelValues(s.operation).Observe(time.Since(s.start).Seconds())

	if err != nil {
		s.span.RecordError(err)
		s.span.SetStatus(codes.Error, err.Error())
	} else {
		s.span.SetStatus(codes.Ok, "")
	}
	s.span.End()
}

// Component counts one per-component result.
func (r *Recorder) Component(operation, status string) {
	if r == nil {
		return
	}
	r.components.WithLabelValues(operation, status).Inc()
}

// FilesWritten counts files written to the project.
func (r *Recorder) FilesWritten(n int) {
	if r == nil || n <= 0 {
		return
	}
	r.filesWritten.Add(float64(n))
}

// Drift counts one file classification.
func (r *Recorder) Drift(state string) {
	if r == nil {
		return
	}
	r.fileDrift.WithLabelValues(state).Inc()
}

// WriteTextfile writes the current metrics in the Prometheus text format,
// suitable for the node_exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, r.registry)
}
