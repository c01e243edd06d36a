// Package storage provides durable key-value persistence for JSON snapshots.
package storage

import (
	"errors"
	"fmt"
	"strings"
)

// Logical keys used by the store. An absent key means "use built-in defaults".
const (
	KeyTasks      = "tasks"
	KeyCategories = "categories"
	KeyTheme      = "theme"
)

var ErrBadKey = errors.New("invalid storage key")

// Adapter persists opaque blobs under logical keys.
type Adapter interface {
	// Load returns the stored value for key. The bool is false when the
	// key has never been saved.
	Load(key string) ([]byte, bool, error)
	Save(key string, value []byte) error
	Delete(key string) error
	Close() error
}

// Open builds an adapter for the named backend. dataDir is ignored by
// the memory backend.
func Open(backend, dataDir string) (Adapter, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", "file":
		return NewFile(dataDir)
	case "sqlite":
		return OpenSQLite(dataDir)
	case "memory":
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

func checkKey(key string) error {
	if key == "" {
		return ErrBadKey
	}
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
		default:
			return fmt.Errorf("%w: %q", ErrBadKey, key)
		}
	}
	return nil
}
