package storage

import "sync"

// MemStore is the degraded fallback when no durable backend can be opened:
// fingerprints live only for the process lifetime, so a restart may re-alert.
type MemStore struct {
	mu           sync.Mutex
	fingerprints []string
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{}
}

func (m *MemStore) Load() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.fingerprints))
	copy(out, m.fingerprints)
	return out
}

func (m *MemStore) Save(fingerprints []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fingerprints = make([]string, len(fingerprints))
	copy(m.fingerprints, fingerprints)
	return nil
}

func (m *MemStore) Close() error { return nil }
