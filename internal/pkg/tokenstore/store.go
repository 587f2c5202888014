// Package tokenstore persists the authentication token pair of the
// current session.
package tokenstore

import (
	"context"
	"sync"

	"github.com/jackmarvels/platform/internal/pkg/models"
	"github.com/jackmarvels/platform/internal/pkg/storage"
)

// Key is the storage key holding the serialized token pair
const Key = "auth_tokens"

// Store reads and writes the token pair through a storage adapter.
// The last loaded value is cached so the HTTP client can read the access
// token without a round trip on every request.
type Store struct {
	adapter storage.Adapter

	mu     sync.RWMutex
	cached *models.AuthTokens
	loaded bool
}

// New creates a token store on top of adapter
func New(adapter storage.Adapter) *Store {
	return &Store{adapter: adapter}
}

// Tokens returns the stored token pair, or nil when nothing is stored
func (s *Store) Tokens(ctx context.Context) (*models.AuthTokens, error) {
	s.mu.RLock()
	if s.loaded {
		defer s.mu.RUnlock()
		return copyTokens(s.cached), nil
	}
	s.mu.RUnlock()

	var tokens models.AuthTokens
	found, err := storage.GetJSON(ctx, s.adapter, Key, &tokens)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = true
	s.cached = nil
	if found {
		s.cached = &tokens
	}
	return copyTokens(s.cached), nil
}

// AccessToken returns the current access token or "" when logged out
func (s *Store) AccessToken(ctx context.Context) (string, error) {
	tokens, err := s.Tokens(ctx)
	if err != nil || tokens == nil {
		return "", err
	}
	return tokens.AccessToken, nil
}

// Save replaces the stored token pair
func (s *Store) Save(ctx context.Context, tokens models.AuthTokens) error {
	if err := storage.SetJSON(ctx, s.adapter, Key, tokens); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cached = &tokens
	s.loaded = true
	return nil
}

// Clear removes the token pair
func (s *Store) Clear(ctx context.Context) error {
	if err := s.adapter.Delete(ctx, Key); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cached = nil
	s.loaded = true
	return nil
}

func copyTokens(t *models.AuthTokens) *models.AuthTokens {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
