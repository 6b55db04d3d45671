package manifest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	dirs     []string
	files    map[string][]byte
	order    []string
	mkdirErr error
	writeErr map[string]error
}

func newFakeStore() *fakeStore {
	return &fakeStore{files: make(map[string][]byte), writeErr: make(map[string]error)}
}

func (s *fakeStore) MkdirAll(_ context.Context, dir string) error {
	if s.mkdirErr != nil {
		return s.mkdirErr
	}
	s.dirs = append(s.dirs, dir)
	return nil
}

func (s *fakeStore) WriteFile(_ context.Context, name string, data []byte) error {
	if err := s.writeErr[name]; err != nil {
		return err
	}
	s.files[name] = append([]byte(nil), data...)
	s.order = append(s.order, name)
	return nil
}

type fakeRecorder struct {
	calls  int
	routes int
	pages  int
	err    error
}

func (r *fakeRecorder) ObserveGeneration(_ time.Duration, routes, pages int, err error) {
	r.calls++
	r.routes = routes
	r.pages = pages
	r.err = err
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGenerateWritesBothManifests(t *testing.T) {
	store := newFakeStore()
	rec := &fakeRecorder{}
	gen := New(store, WithLogger(quietLogger()), WithRecorder(rec))

	opts := Options{Src: "routes", Dev: true, DevPort: 3000}
	require.NoError(t, gen.Generate(context.Background(), mixedRoutes(), opts))

	clientPath := filepath.Join(DefaultDir, ClientFile)
	serverPath := filepath.Join(DefaultDir, ServerFile)

	assert.Equal(t, []string{DefaultDir}, store.dirs)
	assert.Equal(t, []string{clientPath, serverPath}, store.order)
	assert.Equal(t, GenerateClient(mixedRoutes(), opts), store.files[clientPath])
	assert.Equal(t, GenerateServer(mixedRoutes(), opts), store.files[serverPath])

	assert.Equal(t, 1, rec.calls)
	assert.Equal(t, 6, rec.routes)
	assert.Equal(t, 4, rec.pages)
	assert.NoError(t, rec.err)
}

func TestGenerateIsIdempotent(t *testing.T) {
	store := newFakeStore()
	gen := New(store, WithLogger(quietLogger()))
	opts := Options{Src: "routes", Dir: "out/manifest"}

	require.NoError(t, gen.Generate(context.Background(), scenarioRoutes(), opts))
	first := map[string][]byte{}
	for k, v := range store.files {
		first[k] = v
	}

	require.NoError(t, gen.Generate(context.Background(), scenarioRoutes(), opts))
	assert.Equal(t, first, store.files)
	assert.Len(t, store.order, 4)
}

func TestGenerateEmptyRoutes(t *testing.T) {
	store := newFakeStore()
	gen := New(store, WithLogger(quietLogger()))

	require.NoError(t, gen.Generate(context.Background(), nil, Options{Src: "routes"}))
	assert.Equal(t, Header+"\nexport const routes = [];\n", string(store.files[filepath.Join(DefaultDir, ClientFile)]))
	assert.Equal(t, Header+"\nexport const routes = [];\n", string(store.files[filepath.Join(DefaultDir, ServerFile)]))
}

func TestGenerateMkdirFailure(t *testing.T) {
	cause := errors.New("permission denied")
	store := newFakeStore()
	store.mkdirErr = cause
	rec := &fakeRecorder{}
	gen := New(store, WithLogger(quietLogger()), WithRecorder(rec))

	err := gen.Generate(context.Background(), scenarioRoutes(), Options{Src: "routes"})
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), DefaultDir)
	assert.Empty(t, store.files)
	assert.ErrorIs(t, rec.err, cause)
}

func TestGenerateWriteFailure(t *testing.T) {
	cause := errors.New("no space left on device")
	store := newFakeStore()
	serverPath := filepath.Join(DefaultDir, ServerFile)
	store.writeErr[serverPath] = cause
	gen := New(store, WithLogger(quietLogger()))

	err := gen.Generate(context.Background(), scenarioRoutes(), Options{Src: "routes"})
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), serverPath)
}
