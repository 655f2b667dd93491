package db

import "sync"

// MemoryLocalStore is the in-process LocalStore used by tests and by mock
// mode, where nothing needs to outlive the session.
type MemoryLocalStore struct {
	data map[string]string
	mu   sync.RWMutex
}

// NewMemoryLocalStore initializes an empty MemoryLocalStore.
func NewMemoryLocalStore() *MemoryLocalStore {
	return &MemoryLocalStore{
		data: make(map[string]string),
	}
}

func (m *MemoryLocalStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MemoryLocalStore) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, exists := m.data[key]
	if !exists {
		return "", ErrKeyNotFound
	}
	return value, nil
}

func (m *MemoryLocalStore) Take(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, exists := m.data[key]
	if !exists {
		return "", ErrKeyNotFound
	}
	delete(m.data, key)
	return value, nil
}

func (m *MemoryLocalStore) Del(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *MemoryLocalStore) Ping() error {
	return nil
}
