package manifest

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/routegen/pkg/route"
)

const tracerName = "github.com/vango-dev/routegen/pkg/manifest"

// Store creates directories and writes files for the generator.
type Store interface {
	MkdirAll(ctx context.Context, dir string) error
	WriteFile(ctx context.Context, name string, data []byte) error
}

// Recorder receives the outcome of every Generate call.
type Recorder interface {
	ObserveGeneration(d time.Duration, routes, pages int, err error)
}

// Generator writes the client and server manifests to a Store.
type Generator struct {
	store    Store
	logger   *slog.Logger
	tracer   trace.Tracer
	recorder Recorder
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger. If nil, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithTracer sets the tracer used for generation spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(g *Generator) {
		g.tracer = tracer
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(g *Generator) {
		g.recorder = r
	}
}

// New creates a Generator writing to store.
func New(store Store, opts ...Option) *Generator {
	g := &Generator{store: store}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	if g.tracer == nil {
		g.tracer = otel.Tracer(tracerName)
	}
	return g
}

// Generate ensures the manifest directory exists and writes ClientFile and
// ServerFile into it, replacing any previous content. Store failures are
// returned wrapped with the failing path; nothing is retried.
func (g *Generator) Generate(ctx context.Context, routes []route.Descriptor, opts Options) (err error) {
	start := time.Now()
	pages := len(route.Pages(routes))

	ctx, span := g.tracer.Start(ctx, "manifest.Generate",
		trace.WithAttributes(
			attribute.Int("routegen.routes", len(routes)),
			attribute.Int("routegen.pages", pages),
			attribute.Bool("routegen.dev", opts.Dev),
			attribute.String("routegen.dir", opts.dir()),
		),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}
		span.End()

		if g.recorder != nil {
			g.recorder.ObserveGeneration(time.Since(start), len(routes), pages, err)
		}
	}()

	dir := opts.dir()
	if err := g.store.MkdirAll(ctx, dir); err != nil {
		return fmt.Errorf("create manifest directory %s: %w", dir, err)
	}

	files := []struct {
		name string
		data []byte
	}{
		{filepath.Join(dir, ClientFile), GenerateClient(routes, opts)},
		{filepath.Join(dir, ServerFile), GenerateServer(routes, opts)},
	}

	for _, f := range files {
		if err := g.store.WriteFile(ctx, f.name, f.data); err != nil {
			return fmt.Errorf("write %s: %w", f.name, err)
		}
		g.logger.Debug("wrote manifest", "file", f.name, "bytes", len(f.data))
	}

	g.logger.Info("generated manifests",
		"dir", dir,
		"routes", len(routes),
		"pages", pages,
		"dev", opts.Dev,
		"duration", time.Since(start),
	)
	return nil
}
