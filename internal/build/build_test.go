package build

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vango-dev/routegen/internal/config"
	"github.com/vango-dev/routegen/internal/errors"
	"github.com/vango-dev/routegen/internal/storage"
	"github.com/vango-dev/routegen/pkg/manifest"
)

const routesJSON = `[
  {"id": "home", "type": "page", "file": "index.js", "pattern": "/^\\/$/", "dynamic": []},
  {"id": "blog_slug", "type": "page", "file": "blog/[slug].js", "pattern": "/^\\/blog\\/([^\\/]+?)\\/?$/", "dynamic": ["slug"]},
  {"id": "api_posts", "type": "route", "file": "api/posts.js", "pattern": "/^\\/api\\/posts\\/?$/", "dynamic": []},
  {"id": "_4xx", "type": "page", "file": "_error.js", "pattern": "", "dynamic": []}
]`

// newProject writes routegen.json and routes.json into a temp dir and
// loads the config from it.
func newProject(t *testing.T, routes string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	if err := config.New().SaveTo(filepath.Join(dir, config.ConfigFileName)); err != nil {
		t.Fatal(err)
	}
	if routes != "" {
		if err := os.WriteFile(filepath.Join(dir, config.DefaultRoutesFile), []byte(routes), 0644); err != nil {
			t.Fatal(err)
		}
	}
	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	return cfg
}

func errorCode(err error) string {
	var re *errors.RoutegenError
	if stderrors.As(err, &re) {
		return re.Code
	}
	return ""
}

func TestBuild(t *testing.T) {
	cfg := newProject(t, routesJSON)

	var steps []string
	builder := New(cfg, Options{OnProgress: func(step string) { steps = append(steps, step) }})

	result, err := builder.Build(context.Background())
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	if result.Routes != 4 || result.Pages != 3 {
		t.Errorf("Routes/Pages = %d/%d, want 4/3", result.Routes, result.Pages)
	}
	if result.Published {
		t.Error("Published should be false without Publish option")
	}
	if len(steps) != 2 {
		t.Errorf("steps = %v", steps)
	}

	client, err := os.ReadFile(filepath.Join(cfg.OutputPath(), manifest.ClientFile))
	if err != nil {
		t.Fatalf("client manifest not written: %v", err)
	}
	if !strings.HasPrefix(string(client), manifest.Header) {
		t.Error("client manifest missing header")
	}
	if !strings.Contains(string(client), "'../../routes/blog/[slug].js'") {
		t.Errorf("client manifest has wrong import path:\n%s", client)
	}
	if strings.Contains(string(client), "api_posts") {
		t.Error("client manifest must not contain non-page routes")
	}
	if strings.Contains(string(client), "module.hot") {
		t.Error("dev block must be absent outside dev mode")
	}

	server, err := os.ReadFile(filepath.Join(cfg.OutputPath(), manifest.ServerFile))
	if err != nil {
		t.Fatalf("server manifest not written: %v", err)
	}
	if !strings.Contains(string(server), "import * as api_posts from '../../routes/api/posts.js';") {
		t.Errorf("server manifest missing namespace import:\n%s", server)
	}
}

func TestBuildDev(t *testing.T) {
	cfg := newProject(t, routesJSON)
	cfg.Dev.Port = 4321
	cfg.Dev.ReloadClient = "/reload-client.js"

	if _, err := New(cfg, Options{Dev: true}).Build(context.Background()); err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	client, err := os.ReadFile(filepath.Join(cfg.OutputPath(), manifest.ClientFile))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(client), "import('/reload-client.js')") {
		t.Errorf("dev block missing reload client:\n%s", client)
	}
	if !strings.Contains(string(client), "client.connect(4321);") {
		t.Errorf("dev block missing port:\n%s", client)
	}
}

func TestBuildExtraStores(t *testing.T) {
	cfg := newProject(t, routesJSON)
	mem := storage.NewMemory()

	if _, err := New(cfg, Options{Stores: []storage.Store{mem}}).Build(context.Background()); err != nil {
		t.Fatal(err)
	}
	if _, ok := mem.Lookup(manifest.ServerFile); !ok {
		t.Error("extra store did not receive the server manifest")
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name   string
		routes string
		want   string
	}{
		{"missing descriptor file", "", "E200"},
		{"malformed descriptor file", "{not json", "E201"},
		{"invalid descriptors", `[{"id": "a", "type": "page", "file": "a.js", "pattern": "x"}, {"id": "a", "type": "page", "file": "b.js", "pattern": "y"}]`, "E202"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newProject(t, tt.routes)
			_, err := New(cfg, Options{}).Build(context.Background())
			if got := errorCode(err); got != tt.want {
				t.Errorf("Build() error = %v (code %q), want %s", err, got, tt.want)
			}
			if _, statErr := os.Stat(cfg.OutputPath()); !os.IsNotExist(statErr) {
				t.Error("no manifest directory should be created on failure")
			}
		})
	}
}

type failingStore struct{}

func (failingStore) MkdirAll(context.Context, string) error { return nil }
func (failingStore) WriteFile(context.Context, string, []byte) error {
	return stderrors.New("disk full")
}

func TestBuildWriteFailure(t *testing.T) {
	cfg := newProject(t, routesJSON)

	_, err := New(cfg, Options{Stores: []storage.Store{failingStore{}}}).Build(context.Background())
	if errorCode(err) != "E300" {
		t.Fatalf("Build() error = %v, want E300", err)
	}
	if !strings.Contains(err.Error(), "disk full") {
		t.Errorf("cause should be preserved: %v", err)
	}
}

func TestBuildPublish(t *testing.T) {
	cfg := newProject(t, routesJSON)
	remote := storage.NewMemory()

	result, err := New(cfg, Options{Publish: true, PublishStore: remote}).Build(context.Background())
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if !result.Published {
		t.Error("Published should be true")
	}

	want := []string{
		filepath.Join(config.DefaultOutput, manifest.ClientFile),
		filepath.Join(config.DefaultOutput, manifest.ServerFile),
	}
	got := remote.Files()
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("published files = %v, want %v", got, want)
	}
}

func TestBuildPublishFailure(t *testing.T) {
	cfg := newProject(t, routesJSON)

	_, err := New(cfg, Options{Publish: true, PublishStore: failingStore{}}).Build(context.Background())
	if errorCode(err) != "E350" {
		t.Errorf("Build() error = %v, want E350", err)
	}
}

func TestBuildPublishNotConfigured(t *testing.T) {
	cfg := newProject(t, routesJSON)

	_, err := New(cfg, Options{Publish: true}).Build(context.Background())
	if errorCode(err) != "E351" {
		t.Errorf("Build() error = %v, want E351", err)
	}
}

func TestNewPublishStore(t *testing.T) {
	s, err := NewPublishStore(config.PublishConfig{Backend: config.BackendS3, Bucket: "b", Region: "eu-west-1"})
	if err != nil {
		t.Fatalf("s3: %v", err)
	}
	if _, ok := s.(*storage.S3); !ok {
		t.Errorf("s3 backend = %T", s)
	}

	s, err = NewPublishStore(config.PublishConfig{
		Backend:   config.BackendMinIO,
		Bucket:    "b",
		Endpoint:  "localhost:9000",
		AccessKey: "a",
		SecretKey: "s",
	})
	if err != nil {
		t.Fatalf("minio: %v", err)
	}
	if _, ok := s.(*storage.MinIO); !ok {
		t.Errorf("minio backend = %T", s)
	}

	if _, err := NewPublishStore(config.PublishConfig{Backend: "gcs"}); err == nil {
		t.Error("unknown backend should fail")
	}
}

func TestManifestOptions(t *testing.T) {
	cfg := newProject(t, routesJSON)
	cfg.Dev.Port = 9000

	opts := New(cfg, Options{Dev: true}).ManifestOptions()
	if opts.Src != config.DefaultSrc || opts.Dir != config.DefaultOutput || opts.Root != cfg.Dir() {
		t.Errorf("ManifestOptions() = %+v", opts)
	}
	if !opts.Dev || opts.DevPort != 9000 {
		t.Errorf("dev options not applied: %+v", opts)
	}
}
