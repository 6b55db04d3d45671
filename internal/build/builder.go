package build

import (
	"context"
	stderrors "errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/vango-dev/routegen/internal/config"
	"github.com/vango-dev/routegen/internal/errors"
	"github.com/vango-dev/routegen/internal/storage"
	"github.com/vango-dev/routegen/internal/telemetry"
	"github.com/vango-dev/routegen/pkg/manifest"
	"github.com/vango-dev/routegen/pkg/route"
)

// Result contains the build output.
type Result struct {
	// Duration is how long the build took.
	Duration time.Duration

	// Routes is the number of descriptors loaded.
	Routes int

	// Pages is the number of page descriptors.
	Pages int

	// Files are the manifest paths written, relative to the project root
	// unless the output directory is absolute.
	Files []string

	// Published reports whether the manifests were mirrored to a bucket.
	Published bool
}

// Options configures the builder.
type Options struct {
	// Dev emits the live-reload bootstrap in the client manifest.
	Dev bool

	// Publish mirrors the manifests to cfg.Publish after writing them.
	Publish bool

	// Stores receive every write in addition to the project directory.
	Stores []storage.Store

	// PublishStore overrides the store built from cfg.Publish.
	PublishStore storage.Store

	// Logger defaults to slog.Default().
	Logger *slog.Logger

	// Metrics records generation and store metrics. May be nil.
	Metrics *telemetry.Metrics

	// OnProgress is called with progress updates.
	OnProgress func(step string)
}

// Builder runs the manifest pipeline.
type Builder struct {
	config  *config.Config
	options Options
	logger  *slog.Logger
}

// New creates a new builder.
func New(cfg *config.Config, options Options) *Builder {
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{
		config:  cfg,
		options: options,
		logger:  logger,
	}
}

// ManifestOptions returns the generator options derived from the config.
func (b *Builder) ManifestOptions() manifest.Options {
	return manifest.Options{
		Src:          b.config.Src,
		Dir:          b.config.Output,
		Root:         b.config.Dir(),
		Dev:          b.options.Dev,
		DevPort:      b.config.Dev.Port,
		ReloadClient: b.config.Dev.ReloadClient,
	}
}

// Load reads and validates the descriptor file.
func (b *Builder) Load() ([]route.Descriptor, error) {
	path := b.config.RoutesPath()

	routes, err := route.LoadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.New("E200").WithFile(path).Wrap(err).
				WithSuggestion("Run route discovery first or set \"routes\" in routegen.json")
		}
		return nil, errors.New("E201").WithFile(path).Wrap(err)
	}

	if err := route.Validate(routes); err != nil {
		return nil, errors.New("E202").WithFile(path).WithDetail(err.Error())
	}
	return routes, nil
}

// Build loads, validates and writes the manifests.
func (b *Builder) Build(ctx context.Context) (*Result, error) {
	start := time.Now()

	b.progress("Loading route descriptors...")
	routes, err := b.Load()
	if err != nil {
		return nil, err
	}

	b.progress("Generating manifests...")
	memory := storage.NewMemory()
	stores := append([]storage.Store{storage.NewOS(b.config.Dir()), memory}, b.options.Stores...)
	local := telemetry.NewTracedStore(storage.NewMulti(stores...), "local", nil, b.options.Metrics)

	genOpts := []manifest.Option{manifest.WithLogger(b.logger)}
	if b.options.Metrics != nil {
		genOpts = append(genOpts, manifest.WithRecorder(b.options.Metrics))
	}
	gen := manifest.New(local, genOpts...)

	if err := gen.Generate(ctx, routes, b.ManifestOptions()); err != nil {
		return nil, errors.New("E300").WithFile(b.config.OutputPath()).Wrap(err)
	}

	result := &Result{
		Routes: len(routes),
		Pages:  len(route.Pages(routes)),
		Files:  memory.Files(),
	}

	if b.options.Publish {
		b.progress("Publishing manifests...")
		if err := b.publish(ctx, memory); err != nil {
			return nil, err
		}
		result.Published = true
	}

	result.Duration = time.Since(start)
	return result, nil
}

func (b *Builder) publish(ctx context.Context, memory *storage.Memory) error {
	remote := b.options.PublishStore
	if remote == nil {
		if !b.config.Publish.Enabled() {
			return errors.New("E351").WithDetail("publish.backend is not set in routegen.json")
		}
		var err error
		remote, err = NewPublishStore(b.config.Publish)
		if err != nil {
			return errors.New("E351").Wrap(err)
		}
	}
	remote = telemetry.NewTracedStore(remote, b.config.Publish.Backend, nil, b.options.Metrics)

	for _, name := range memory.Files() {
		data, _ := memory.Get(name)
		if err := remote.WriteFile(ctx, name, data); err != nil {
			return errors.New("E350").WithFile(name).Wrap(err)
		}
		b.logger.Debug("published manifest", "file", name, "backend", b.config.Publish.Backend)
	}
	return nil
}

// NewPublishStore builds the object storage backend named by p.
func NewPublishStore(p config.PublishConfig) (storage.Store, error) {
	switch p.Backend {
	case config.BackendS3:
		return storage.NewS3(storage.S3Config{
			Bucket:    p.Bucket,
			Prefix:    p.Prefix,
			Region:    p.Region,
			Endpoint:  p.Endpoint,
			AccessKey: p.AccessKey,
			SecretKey: p.SecretKey,
		})
	case config.BackendMinIO:
		return storage.NewMinIO(storage.MinIOConfig{
			Endpoint:  p.Endpoint,
			Region:    p.Region,
			AccessKey: p.AccessKey,
			SecretKey: p.SecretKey,
			Bucket:    p.Bucket,
			Prefix:    p.Prefix,
			UseSSL:    p.UseSSL,
		})
	default:
		return nil, fmt.Errorf("unknown publish backend %q", p.Backend)
	}
}

func (b *Builder) progress(step string) {
	if b.options.OnProgress != nil {
		b.options.OnProgress(step)
	}
	b.logger.Debug(step)
}
