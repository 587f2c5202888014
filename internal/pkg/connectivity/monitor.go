package connectivity

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/jackmarvels/platform/internal/pkg/logger"
)

// State is the last known reachability of the backend
type State int

const (
	StateUnknown State = iota
	StateOnline
	StateOffline
)

func (s State) String() string {
	switch s {
	case StateOnline:
		return "online"
	case StateOffline:
		return "offline"
	default:
		return "unknown"
	}
}

// Checker probes the backend. A nil error means reachable.
type Checker interface {
	Check(ctx context.Context) error
}

// CheckerFunc adapts a function to Checker
type CheckerFunc func(ctx context.Context) error

func (f CheckerFunc) Check(ctx context.Context) error {
	return f(ctx)
}

// HTTPChecker issues a GET against a health endpoint
type HTTPChecker struct {
	client *http.Client
	url    string
}

// NewHTTPChecker creates a checker for baseURL+path
func NewHTTPChecker(baseURL, path string, timeout time.Duration) *HTTPChecker {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &HTTPChecker{
		client: &http.Client{Timeout: timeout},
		url:    baseURL + path,
	}
}

func (c *HTTPChecker) Check(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("health check returned %d", resp.StatusCode)
	}
	return nil
}

// Config holds monitor configuration
type Config struct {
	Name string
	// ProbeInterval is how long a probe result is trusted before IsOnline probes again
	ProbeInterval time.Duration
}

// DefaultConfig returns a default monitor configuration
func DefaultConfig(name string) Config {
	return Config{Name: name, ProbeInterval: 10 * time.Second}
}

// Monitor tracks backend reachability and notifies listeners on change
type Monitor struct {
	checker Checker
	config  Config
	logger  *logger.ZapLogger
	now     func() time.Time

	mu        sync.RWMutex
	state     State
	checkedAt time.Time
	listeners []func(from, to State)
}

// New creates a monitor. A nil checker reports the backend as always online.
func New(checker Checker, config Config, l *logger.ZapLogger) *Monitor {
	if l == nil {
		l = logger.GetGlobalLogger()
	}
	return &Monitor{
		checker: checker,
		config:  config,
		logger:  l,
		now:     time.Now,
		state:   StateUnknown,
	}
}

// OnChange registers fn to be called after every state transition
func (m *Monitor) OnChange(fn func(from, to State)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
}

// State returns the last known state without probing
func (m *Monitor) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// IsOnline reports reachability, probing when the cached result is stale
func (m *Monitor) IsOnline(ctx context.Context) bool {
	if m.checker == nil {
		return true
	}

	m.mu.RLock()
	state, checkedAt := m.state, m.checkedAt
	m.mu.RUnlock()

	if state != StateUnknown && m.now().Sub(checkedAt) < m.config.ProbeInterval {
		return state == StateOnline
	}
	return m.Probe(ctx) == StateOnline
}

// Probe runs the checker once and records the outcome
func (m *Monitor) Probe(ctx context.Context) State {
	if m.checker == nil {
		m.setState(StateOnline)
		return StateOnline
	}

	if err := m.checker.Check(ctx); err != nil {
		m.logger.Debug("Connectivity probe failed",
			logger.String("name", m.config.Name),
			logger.Err(err))
		m.setState(StateOffline)
		return StateOffline
	}
	m.setState(StateOnline)
	return StateOnline
}

// Observe records the outcome of a real request so the next precheck is
// not served from a stale probe.
func (m *Monitor) Observe(reachable bool) {
	if reachable {
		m.setState(StateOnline)
		return
	}
	m.setState(StateOffline)
}

// Run probes on every interval until ctx is done
func (m *Monitor) Run(ctx context.Context) {
	interval := m.config.ProbeInterval
	if interval <= 0 {
		interval = DefaultConfig(m.config.Name).ProbeInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	m.Probe(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Probe(ctx)
		}
	}
}

func (m *Monitor) setState(state State) {
	m.mu.Lock()
	prev := m.state
	m.state = state
	m.checkedAt = m.now()
	var listeners []func(from, to State)
	if prev != state {
		listeners = append(listeners, m.listeners...)
	}
	m.mu.Unlock()

	if prev == state {
		return
	}

	m.logger.Info("Connectivity state changed",
		logger.String("name", m.config.Name),
		logger.String("from", prev.String()),
		logger.String("to", state.String()))

	for _, fn := range listeners {
		fn(prev, state)
	}
}
