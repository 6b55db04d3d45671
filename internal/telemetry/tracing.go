package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation name used by Tracer.
const TracerName = "github.com/vango-dev/routegen"

// Tracer returns the global tracer for routegen.
func Tracer() trace.Tracer {
	return otel.Tracer(TracerName)
}

// Store is the storage port TracedStore wraps.
type Store interface {
	MkdirAll(ctx context.Context, dir string) error
	WriteFile(ctx context.Context, name string, data []byte) error
}

// TracedStore records a span and a metric for each store call.
type TracedStore struct {
	next    Store
	backend string
	tracer  trace.Tracer
	metrics *Metrics
}

// NewTracedStore wraps next. backend names the store in span attributes.
// metrics may be nil.
func NewTracedStore(next Store, backend string, tracer trace.Tracer, metrics *Metrics) *TracedStore {
	if tracer == nil {
		tracer = Tracer()
	}
	return &TracedStore{next: next, backend: backend, tracer: tracer, metrics: metrics}
}

func (s *TracedStore) MkdirAll(ctx context.Context, dir string) error {
	ctx, span := s.tracer.Start(ctx, "store.MkdirAll", trace.WithAttributes(
		attribute.String("routegen.store", s.backend),
		attribute.String("routegen.path", dir),
	))
	err := s.next.MkdirAll(ctx, dir)
	s.finish(span, "mkdir", err)
	return err
}

func (s *TracedStore) WriteFile(ctx context.Context, name string, data []byte) error {
	ctx, span := s.tracer.Start(ctx, "store.WriteFile", trace.WithAttributes(
		attribute.String("routegen.store", s.backend),
		attribute.String("routegen.path", name),
		attribute.Int("routegen.bytes", len(data)),
	))
	err := s.next.WriteFile(ctx, name, data)
	s.finish(span, "write", err)
	return err
}

func (s *TracedStore) finish(span trace.Span, op string, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
	if s.metrics != nil {
		s.metrics.ObserveStoreOp(op, err)
	}
}
