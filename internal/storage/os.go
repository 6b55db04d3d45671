package storage

import (
	"context"
	"os"
	"path/filepath"
)

// OS writes to the local filesystem. Relative names are resolved against
// the base directory; absolute names are used as-is.
type OS struct {
	base string
}

// NewOS creates an OS store rooted at base. An empty base means the
// current working directory.
func NewOS(base string) *OS {
	return &OS{base: base}
}

// Base returns the directory relative names are resolved against.
func (s *OS) Base() string {
	return s.base
}

func (s *OS) resolve(name string) string {
	if filepath.IsAbs(name) || s.base == "" {
		return name
	}
	return filepath.Join(s.base, name)
}

// MkdirAll creates dir and any missing parents.
func (s *OS) MkdirAll(ctx context.Context, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.MkdirAll(s.resolve(dir), 0755)
}

// WriteFile replaces the content of name.
func (s *OS) WriteFile(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.WriteFile(s.resolve(name), data, 0644)
}
