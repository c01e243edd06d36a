package storage

import "sync"

// Memory keeps blobs in a map (dev/test use).
type Memory struct {
	mu sync.RWMutex
	m  map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{m: map[string][]byte{}}
}

func (a *Memory) Load(key string) ([]byte, bool, error) {
	if err := checkKey(key); err != nil {
		return nil, false, err
	}
	a.mu.RLock()
	defer a.mu.RUnlock()

	v, ok := a.m[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (a *Memory) Save(key string, value []byte) error {
	if err := checkKey(key); err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	v := make([]byte, len(value))
	copy(v, value)
	a.m[key] = v
	return nil
}

func (a *Memory) Delete(key string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	delete(a.m, key)
	return nil
}

func (a *Memory) Close() error { return nil }
