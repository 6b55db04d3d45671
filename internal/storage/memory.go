package storage

import (
	"context"
	"path/filepath"
	"sort"
	"sync"
)

// Memory keeps written files in memory. The dev server serves the last
// generated manifests from it.
type Memory struct {
	mu    sync.RWMutex
	dirs  map[string]struct{}
	files map[string][]byte
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		dirs:  make(map[string]struct{}),
		files: make(map[string][]byte),
	}
}

// MkdirAll records dir.
func (m *Memory) MkdirAll(ctx context.Context, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	m.dirs[filepath.Clean(dir)] = struct{}{}
	m.mu.Unlock()
	return nil
}

// WriteFile stores a copy of data under name.
func (m *Memory) WriteFile(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	buf := make([]byte, len(data))
	copy(buf, data)

	m.mu.Lock()
	m.files[filepath.Clean(name)] = buf
	m.mu.Unlock()
	return nil
}

// Get returns the content last written to name.
func (m *Memory) Get(name string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[filepath.Clean(name)]
	return data, ok
}

// Lookup returns the file whose base name is base.
// Manifest file names are unique within a store, so this is unambiguous.
func (m *Memory) Lookup(base string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for name, data := range m.files {
		if filepath.Base(name) == base {
			return data, true
		}
	}
	return nil, false
}

// HasDir reports whether MkdirAll was called for dir.
func (m *Memory) HasDir(dir string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.dirs[filepath.Clean(dir)]
	return ok
}

// Files returns the stored file names in sorted order.
func (m *Memory) Files() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.files))
	for name := range m.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
