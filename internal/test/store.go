package test

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/polkiloo/suitopia/internal/storage"
)

// MemoryStore is an in-memory storage.DocumentStore. Documents are kept
// encoded so callers never share slices with the store.
type MemoryStore struct {
	mu     sync.Mutex
	docs   map[string][]byte
	writes map[string]int

	ReadErr  error
	WriteErr error
	Closed   bool
}

// NewMemoryStore constructs an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string][]byte), writes: make(map[string]int)}
}

// Seed stores value under name without counting a write.
func (s *MemoryStore) Seed(name string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		panic(err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[name] = data
}

// Read decodes the document or reports it missing.
func (s *MemoryStore) Read(_ context.Context, name string, dst any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ReadErr != nil {
		return s.ReadErr
	}
	data, ok := s.docs[name]
	if !ok {
		return storage.ErrDocumentMissing
	}
	return json.Unmarshal(data, dst)
}

// Write encodes and stores the document.
func (s *MemoryStore) Write(_ context.Context, name string, src any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.WriteErr != nil {
		return s.WriteErr
	}
	data, err := json.Marshal(src)
	if err != nil {
		return err
	}
	s.docs[name] = data
	s.writes[name]++
	return nil
}

// Close marks the store closed.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Closed = true
	return nil
}

// Writes returns how many times the document was written.
func (s *MemoryStore) Writes(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes[name]
}

var _ storage.DocumentStore = (*MemoryStore)(nil)
