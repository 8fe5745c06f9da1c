package storage

import "sync"

type memoryStorage struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemoryStorage creates a Storage that keeps documents in memory. It is
// used by tests and as a fallback when no state directory is available.
func NewMemoryStorage() Storage {
	return &memoryStorage{data: make(map[string][]byte)}
}

func (s *memoryStorage) Read(namespace string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.data[namespace]
	if !ok {
		return nil, ErrNotFound
	}

	out := make([]byte, len(data))
	copy(out, data)

	return out, nil
}

func (s *memoryStorage) Write(namespace string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	s.data[namespace] = stored

	return nil
}

func (s *memoryStorage) Delete(namespace string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, namespace)

	return nil
}
