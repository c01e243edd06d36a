package storage

import (
	"os"
	"path/filepath"
	"sync"
)

// File stores each key as <dataDir>/<key>.json.
type File struct {
	mu  sync.RWMutex
	dir string
}

func NewFile(dataDir string) (*File, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	return &File{dir: dataDir}, nil
}

func (a *File) path(key string) string {
	return filepath.Join(a.dir, key+".json")
}

func (a *File) Load(key string) ([]byte, bool, error) {
	if err := checkKey(key); err != nil {
		return nil, false, err
	}
	a.mu.RLock()
	defer a.mu.RUnlock()

	b, err := os.ReadFile(a.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return b, true, nil
}

func (a *File) Save(key string, value []byte) error {
	if err := checkKey(key); err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	return os.WriteFile(a.path(key), value, 0o644)
}

func (a *File) Delete(key string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	err := os.Remove(a.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (a *File) Close() error { return nil }
