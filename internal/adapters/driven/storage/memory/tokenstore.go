package memory

import (
	"context"
	"sync"

	"github.com/tailorkit/tailor-cli/internal/core/ports/driven"
)

// Ensure TokenStore implements the interface.
var _ driven.TokenStore = (*TokenStore)(nil)

// TokenStore is an in-memory implementation of driven.TokenStore for testing.
type TokenStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewTokenStore creates a new in-memory token store.
func NewTokenStore() *TokenStore {
	return &TokenStore{
		values: make(map[string]string),
	}
}

// Get returns the stored value for key, or "" if absent.
func (s *TokenStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key], nil
}

// Set overwrites the value for key.
func (s *TokenStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Clear removes the value for key. Clearing an absent key is not an error.
func (s *TokenStore) Clear(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

// ClearAll removes every listed key.
func (s *TokenStore) ClearAll(_ context.Context, keys []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		delete(s.values, key)
	}
	return nil
}
