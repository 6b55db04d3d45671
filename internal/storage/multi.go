package storage

import (
	"context"
	"fmt"
)

// Multi mirrors every call to each store in order and stops at the first
// failure.
type Multi struct {
	stores []Store
}

// NewMulti creates a fan-out store. Nil stores are skipped.
func NewMulti(stores ...Store) *Multi {
	m := &Multi{}
	for _, s := range stores {
		if s != nil {
			m.stores = append(m.stores, s)
		}
	}
	return m
}

// Len returns the number of backends.
func (m *Multi) Len() int {
	return len(m.stores)
}

func (m *Multi) MkdirAll(ctx context.Context, dir string) error {
	for i, s := range m.stores {
		if err := s.MkdirAll(ctx, dir); err != nil {
			return fmt.Errorf("store %d: %w", i, err)
		}
	}
	return nil
}

func (m *Multi) WriteFile(ctx context.Context, name string, data []byte) error {
	for i, s := range m.stores {
		if err := s.WriteFile(ctx, name, data); err != nil {
			return fmt.Errorf("store %d: %w", i, err)
		}
	}
	return nil
}
