package persist

import (
	"context"
	"sync"
)

// Memory keeps the snapshot in process memory only. Used for tests and for
// running without any storage configured.
type Memory struct {
	mu   sync.Mutex
	blob []byte
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Load(ctx context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.blob == nil {
		return nil, ErrNotFound
	}
	out := make([]byte, len(m.blob))
	copy(out, m.blob)
	return out, nil
}

func (m *Memory) Save(ctx context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blob = make([]byte, len(data))
	copy(m.blob, data)
	return nil
}

func (m *Memory) Close(ctx context.Context) error {
	return nil
}
