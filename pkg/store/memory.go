package store

import "sync"

// NewMemory returns an in-process Gateway. Nothing survives the process.
func NewMemory() *Memory {
	return &Memory{blobs: make(map[string][]byte)}
}

// Memory is a Gateway kept in a map. Store calls are counted per key.
type Memory struct {
	mu     sync.Mutex
	blobs  map[string][]byte
	writes map[string]int
}

func (m *Memory) Load(key string) ([]byte, bool, error) {
	if err := validKey(key); err != nil {
		return nil, false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.blobs[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), b...), true, nil
}

func (m *Memory) Store(key string, blob []byte) error {
	if err := validKey(key); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[key] = append([]byte(nil), blob...)
	if m.writes == nil {
		m.writes = make(map[string]int)
	}
	m.writes[key]++
	return nil
}

// Writes reports how many times key was stored.
func (m *Memory) Writes(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes[key]
}
