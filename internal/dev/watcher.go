package dev

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// ChangeType represents the type of file change.
type ChangeType int

const (
	// ChangeDescriptor is a route descriptor file (.json, .yaml, .yml).
	ChangeDescriptor ChangeType = iota
	// ChangeSource is a route module (.js, .mjs, .ts, .svelte, .html).
	ChangeSource
	// ChangeOther is anything else.
	ChangeOther
)

func (t ChangeType) String() string {
	switch t {
	case ChangeDescriptor:
		return "descriptor"
	case ChangeSource:
		return "source"
	default:
		return "other"
	}
}

// Change represents a detected file change.
type Change struct {
	Path    string
	Type    ChangeType
	Removed bool
}

// WatcherConfig configures the file watcher.
type WatcherConfig struct {
	// Paths are the files or directories to watch.
	Paths []string

	// Ignore patterns to skip (globs).
	Ignore []string

	// Interval is the polling interval.
	Interval time.Duration
}

// DefaultIgnore contains default patterns to ignore.
var DefaultIgnore = []string{
	".git",
	"node_modules",
	"manifest",
	"*.tmp",
	"*.swp",
	"*~",
}

// Watcher polls files for modification, creation and removal.
type Watcher struct {
	config     WatcherConfig
	onChange   func(Change)
	mu         sync.Mutex
	running    bool
	stopCh     chan struct{}
	timestamps map[string]time.Time
}

// NewWatcher creates a new file watcher.
func NewWatcher(config WatcherConfig) *Watcher {
	if config.Interval == 0 {
		config.Interval = 100 * time.Millisecond
	}
	if len(config.Ignore) == 0 {
		config.Ignore = DefaultIgnore
	}

	return &Watcher{
		config:     config,
		timestamps: make(map[string]time.Time),
	}
}

// OnChange sets the callback for file changes.
func (w *Watcher) OnChange(fn func(Change)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// Start polls until ctx is done or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.stopCh = make(chan struct{})
	stopCh := w.stopCh
	w.mu.Unlock()

	w.scanInitial()

	ticker := time.NewTicker(w.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.Stop()
			return ctx.Err()
		case <-stopCh:
			return nil
		case <-ticker.C:
			w.checkForChanges()
		}
	}
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		close(w.stopCh)
		w.running = false
	}
}

// IsRunning returns whether the watcher is running.
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

func (w *Watcher) walk(fn func(p string, modTime time.Time)) {
	for _, root := range w.config.Paths {
		filepath.Walk(root, func(p string, info os.FileInfo, err error) error {
			if err != nil {
				return nil
			}
			if info.IsDir() {
				if p != root && w.shouldIgnore(p) {
					return filepath.SkipDir
				}
				return nil
			}
			if !w.shouldIgnore(p) {
				fn(p, info.ModTime())
			}
			return nil
		})
	}
}

func (w *Watcher) scanInitial() {
	w.walk(func(p string, modTime time.Time) {
		w.mu.Lock()
		w.timestamps[p] = modTime
		w.mu.Unlock()
	})
}

// checkForChanges reports the first change of each type found in one pass.
func (w *Watcher) checkForChanges() {
	w.mu.Lock()
	callback := w.onChange
	w.mu.Unlock()

	if callback == nil {
		return
	}

	var changes []Change
	seen := make(map[string]bool)

	w.walk(func(p string, modTime time.Time) {
		seen[p] = true

		w.mu.Lock()
		lastMod, exists := w.timestamps[p]
		if !exists || !modTime.Equal(lastMod) {
			w.timestamps[p] = modTime
			changes = append(changes, Change{Path: p, Type: classifyChange(p)})
		}
		w.mu.Unlock()
	})

	w.mu.Lock()
	for p := range w.timestamps {
		if !seen[p] {
			delete(w.timestamps, p)
			changes = append(changes, Change{Path: p, Type: classifyChange(p), Removed: true})
		}
	}
	w.mu.Unlock()

	reported := make(map[ChangeType]bool)
	for _, change := range changes {
		if !reported[change.Type] {
			reported[change.Type] = true
			callback(change)
		}
	}
}

// shouldIgnore checks if a path should be ignored.
func (w *Watcher) shouldIgnore(fullPath string) bool {
	name := filepath.Base(fullPath)
	normalized := filepath.ToSlash(fullPath)

	for _, pattern := range w.config.Ignore {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}

		if name == pattern {
			return true
		}

		hasPathSep := strings.ContainsAny(pattern, `/\`)
		if strings.ContainsAny(pattern, "*?[") {
			if hasPathSep {
				if matched, _ := path.Match(filepath.ToSlash(pattern), normalized); matched {
					return true
				}
			} else if matched, _ := filepath.Match(pattern, name); matched {
				return true
			}
			continue
		}

		if hasPathSep {
			if containsSegments(splitPathSegments(normalized), splitPathSegments(filepath.ToSlash(pattern))) {
				return true
			}
			continue
		}

		if containsSegments(splitPathSegments(normalized), []string{pattern}) {
			return true
		}
	}

	return false
}

// containsSegments reports whether want appears as a contiguous run in parts.
func containsSegments(parts, want []string) bool {
	if len(want) == 0 || len(want) > len(parts) {
		return false
	}
	for i := 0; i <= len(parts)-len(want); i++ {
		match := true
		for j := range want {
			if parts[i+j] != want[j] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

func splitPathSegments(p string) []string {
	var result []string
	for _, part := range strings.Split(p, "/") {
		if part != "" && part != "." {
			result = append(result, part)
		}
	}
	return result
}

func classifyChange(p string) ChangeType {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".json", ".yaml", ".yml":
		return ChangeDescriptor
	case ".js", ".mjs", ".cjs", ".ts", ".jsx", ".tsx", ".svelte", ".html":
		return ChangeSource
	default:
		return ChangeOther
	}
}
