package storageRepo

import (
	"context"
	"sync"
)

// MemoryStore keeps client data in process memory.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string]map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]map[string][]byte)}
}

func (s *MemoryStore) Get(ctx context.Context, clientID, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyBytes(s.data[clientID][key]), nil
}

func (s *MemoryStore) Set(ctx context.Context, clientID, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setLocked(clientID, key, value)
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, clientID, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteLocked(clientID, key)
	return nil
}

func (s *MemoryStore) Update(ctx context.Context, clientID, key string, fn UpdateFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, changed, err := fn(copyBytes(s.data[clientID][key]))
	if err != nil || !changed {
		return err
	}
	if next == nil {
		s.deleteLocked(clientID, key)
	} else {
		s.setLocked(clientID, key, next)
	}
	return nil
}

func (s *MemoryStore) setLocked(clientID, key string, value []byte) {
	bucket, ok := s.data[clientID]
	if !ok {
		bucket = make(map[string][]byte)
		s.data[clientID] = bucket
	}
	bucket[key] = copyBytes(value)
}

func (s *MemoryStore) deleteLocked(clientID, key string) {
	if bucket, ok := s.data[clientID]; ok {
		delete(bucket, key)
		if len(bucket) == 0 {
			delete(s.data, clientID)
		}
	}
}

func copyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
