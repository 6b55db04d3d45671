package dev

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vango-dev/routegen/internal/build"
	"github.com/vango-dev/routegen/internal/config"
	"github.com/vango-dev/routegen/internal/errors"
	"github.com/vango-dev/routegen/internal/storage"
	"github.com/vango-dev/routegen/internal/telemetry"
	"github.com/vango-dev/routegen/pkg/manifest"
)

// ServerOptions configures the development server.
type ServerOptions struct {
	// Config is the project configuration.
	Config *config.Config

	// Logger defaults to slog.Default().
	Logger *slog.Logger

	// Registry receives the generation metrics served at /metrics.
	// Default: a new registry owned by the server.
	Registry *prometheus.Registry

	// Interval is the descriptor polling interval (default: 100ms).
	Interval time.Duration

	// OnGenerate is called after every regeneration.
	OnGenerate func(result *build.Result, err error)
}

// Server watches the descriptor file, regenerates both manifests on change
// and notifies browsers over the reload socket.
type Server struct {
	config     *config.Config
	options    ServerOptions
	logger     *slog.Logger
	builder    *build.Builder
	memory     *storage.Memory
	metrics    *telemetry.Metrics
	watcher    *Watcher
	hub        *ReloadHub
	router     chi.Router
	changeCh   chan Change
	httpServer *http.Server
	mu         sync.Mutex
	running    bool
}

// NewServer creates a new development server.
func NewServer(options ServerOptions) *Server {
	cfg := options.Config
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}
	registry := options.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	memory := storage.NewMemory()
	metrics := telemetry.NewMetrics(telemetry.WithRegistry(registry))

	s := &Server{
		config:  cfg,
		options: options,
		logger:  logger,
		memory:  memory,
		metrics: metrics,
		builder: build.New(cfg, build.Options{
			Dev:     true,
			Stores:  []storage.Store{memory},
			Logger:  logger,
			Metrics: metrics,
		}),
		watcher: NewWatcher(WatcherConfig{
			Paths:    []string{filepath.Dir(cfg.RoutesPath())},
			Interval: cfg.Dev.PollInterval(options.Interval),
		}),
		hub:      NewReloadHub(logger),
		changeCh: make(chan Change, 64),
	}
	s.router = s.routes()
	return s
}

// Handler returns the dev server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Hub returns the reload hub.
func (s *Server) Hub() *ReloadHub {
	return s.hub
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get(ReloadPath, s.hub.HandleWebSocket)
	r.Get("/reload-client.js", s.handleReloadClient)
	r.Get("/manifest/{name}", s.handleManifest)
	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", s.metrics.Handler())

	return r
}

// Start generates the manifests once, then watches and serves until ctx
// is canceled.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	s.httpServer = &http.Server{
		Addr:              s.config.DevAddress(),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.mu.Unlock()

	s.Regenerate(ctx)

	s.watcher.OnChange(func(change Change) {
		select {
		case s.changeCh <- change:
		default:
		}
	})
	go s.watcher.Start(ctx)
	go s.processChanges(ctx)

	s.logger.Info("dev server running", "url", s.config.DevURL(), "routes", s.config.RoutesPath())

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		s.Stop()
		return nil
	case err := <-errCh:
		s.Stop()
		return err
	}
}

// Stop stops the development server.
func (s *Server) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.running = false
	s.watcher.Stop()
	s.hub.Close()

	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.httpServer.Shutdown(ctx)
	}
}

// Regenerate rebuilds both manifests and notifies connected browsers.
func (s *Server) Regenerate(ctx context.Context) error {
	result, err := s.builder.Build(ctx)

	if err != nil {
		s.logger.Error("manifest generation failed", "error", err)
		s.hub.NotifyError(overlayMessage(err))
	} else {
		s.logger.Info("manifests regenerated",
			"routes", result.Routes,
			"pages", result.Pages,
			"duration", result.Duration.Round(time.Millisecond),
		)
		s.hub.ClearError()
		s.hub.NotifyReload()
		s.logger.Debug("reloaded browsers", "clients", s.hub.ClientCount())
	}

	if s.options.OnGenerate != nil {
		s.options.OnGenerate(result, err)
	}
	return err
}

// processChanges serializes change handling and coalesces bursts.
func (s *Server) processChanges(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case change := <-s.changeCh:
			changes := []Change{change}
			draining := true
			for draining {
				select {
				case next := <-s.changeCh:
					changes = append(changes, next)
				default:
					draining = false
				}
			}
			s.handleChanges(ctx, changes)
		}
	}
}

func (s *Server) handleChanges(ctx context.Context, changes []Change) {
	regenerate := false
	for _, change := range changes {
		s.logger.Debug("file changed", "path", change.Path, "type", change.Type.String(), "removed", change.Removed)
		if change.Type == ChangeDescriptor {
			regenerate = true
		}
	}
	if regenerate {
		s.Regenerate(ctx)
	}
}

func (s *Server) handleReloadClient(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.Write([]byte(ReloadClientScript))
}

func (s *Server) handleManifest(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name != manifest.ClientFile && name != manifest.ServerFile {
		http.NotFound(w, r)
		return
	}

	data, ok := s.memory.Lookup(name)
	if !ok {
		http.Error(w, "manifest not generated yet", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", storage.ContentType+"; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.Write(data)
}

type healthResponse struct {
	Status  string `json:"status"`
	Clients int    `json:"clients"`
	Error   string `json:"error,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok", Clients: s.hub.ClientCount()}
	if msg := s.hub.PendingError(); msg != "" {
		resp.Status = "error"
		resp.Error = msg
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// overlayMessage renders err for the browser overlay, without colors.
func overlayMessage(err error) string {
	re := errors.FromError(err, "E300")

	parts := []string{re.FormatCompact()}
	if re.Detail != "" {
		parts = append(parts, re.Detail)
	}
	if re.Wrapped != nil {
		parts = append(parts, re.Wrapped.Error())
	}
	return strings.Join(parts, "\n\n")
}
