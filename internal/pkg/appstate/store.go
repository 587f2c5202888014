// Package appstate holds the client session state. Authentication, the
// signed in user and display preferences survive restarts; loading,
// network status and location are in-memory only.
package appstate

import (
	"context"
	"sync"

	"github.com/jackmarvels/platform/internal/pkg/logger"
	"github.com/jackmarvels/platform/internal/pkg/models"
	"github.com/jackmarvels/platform/internal/pkg/storage"
)

// Key is the storage key holding the persisted subset of the state
const Key = "app_state"

const (
	DefaultTheme    = "light"
	DefaultLanguage = "en"
)

// NetworkStatus describes the last known backend reachability
type NetworkStatus string

const (
	NetworkUnknown NetworkStatus = "unknown"
	NetworkOnline  NetworkStatus = "online"
	NetworkOffline NetworkStatus = "offline"
)

// Location is the last reported device location
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// State is a point-in-time copy of the application state
type State struct {
	IsAuthenticated bool         `json:"isAuthenticated"`
	User            *models.User `json:"user"`
	Theme           string       `json:"theme"`
	Language        string       `json:"language"`

	IsLoading     bool          `json:"-"`
	NetworkStatus NetworkStatus `json:"-"`
	Location      *Location     `json:"-"`
}

func defaultState() State {
	return State{
		Theme:         DefaultTheme,
		Language:      DefaultLanguage,
		NetworkStatus: NetworkUnknown,
	}
}

// Store guards the state and writes the persisted subset through on change
type Store struct {
	adapter storage.Adapter

	mu    sync.RWMutex
	state State
}

// New creates a store with default state. Call Load to restore a previous session.
func New(adapter storage.Adapter) *Store {
	return &Store{adapter: adapter, state: defaultState()}
}

// Load restores the persisted subset and resets the transient fields
func (s *Store) Load(ctx context.Context) error {
	restored := defaultState()
	if _, err := storage.GetJSON(ctx, s.adapter, Key, &restored); err != nil {
		return err
	}
	if restored.Theme == "" {
		restored.Theme = DefaultTheme
	}
	if restored.Language == "" {
		restored.Language = DefaultLanguage
	}
	restored.IsLoading = false
	restored.NetworkStatus = NetworkUnknown
	restored.Location = nil

	s.mu.Lock()
	s.state = restored
	s.mu.Unlock()
	return nil
}

// Snapshot returns a copy of the current state
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyState(s.state)
}

// UserID returns the signed in user's id or ""
func (s *Store) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.User == nil {
		return ""
	}
	return s.state.User.ID
}

// SetAuthenticated records a successful login
func (s *Store) SetAuthenticated(ctx context.Context, user models.User) error {
	return s.update(ctx, func(st *State) {
		st.IsAuthenticated = true
		st.User = &user
	})
}

// UpdateUser replaces the stored user profile without touching the auth flag
func (s *Store) UpdateUser(ctx context.Context, user models.User) error {
	return s.update(ctx, func(st *State) {
		st.User = &user
	})
}

// ClearSession signs the user out and keeps the display preferences
func (s *Store) ClearSession(ctx context.Context) error {
	return s.update(ctx, func(st *State) {
		st.IsAuthenticated = false
		st.User = nil
	})
}

func (s *Store) SetTheme(ctx context.Context, theme string) error {
	return s.update(ctx, func(st *State) { st.Theme = theme })
}

func (s *Store) SetLanguage(ctx context.Context, language string) error {
	return s.update(ctx, func(st *State) { st.Language = language })
}

func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	s.state.IsLoading = loading
	s.mu.Unlock()
}

func (s *Store) SetNetworkStatus(status NetworkStatus) {
	s.mu.Lock()
	prev := s.state.NetworkStatus
	s.state.NetworkStatus = status
	s.mu.Unlock()

	if prev != status {
		logger.Debug("Network status changed",
			logger.String("from", string(prev)),
			logger.String("to", string(status)))
	}
}

func (s *Store) SetLocation(loc *Location) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if loc == nil {
		s.state.Location = nil
		return
	}
	l := *loc
	s.state.Location = &l
}

// update applies fn and persists the result. The in-memory state only
// changes when the write succeeds.
func (s *Store) update(ctx context.Context, fn func(*State)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := copyState(s.state)
	fn(&next)
	if err := storage.SetJSON(ctx, s.adapter, Key, next); err != nil {
		return err
	}
	s.state = next
	return nil
}

func copyState(st State) State {
	c := st
	if st.User != nil {
		u := *st.User
		c.User = &u
	}
	if st.Location != nil {
		l := *st.Location
		c.Location = &l
	}
	return c
}
