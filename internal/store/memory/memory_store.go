// Package memory is the in-memory store backend used by tests.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

type Store struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

func NewStore() *Store {
	return &Store{docs: make(map[string][]byte)}
}

func (s *Store) Load(_ context.Context, key string, doc any) error {
	s.mu.RLock()
	raw, ok := s.docs[key]
	s.mu.RUnlock()

	if !ok {
		data, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("serialize collection %s: %w", key, err)
		}
		s.mu.Lock()
		s.docs[key] = data
		s.mu.Unlock()
		return nil
	}

	if err := json.Unmarshal(raw, doc); err != nil {
		return fmt.Errorf("parse collection %s: %w", key, err)
	}
	return nil
}

func (s *Store) Save(_ context.Context, key string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("serialize collection %s: %w", key, err)
	}
	s.mu.Lock()
	s.docs[key] = data
	s.mu.Unlock()
	return nil
}
