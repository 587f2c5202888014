package health

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jackmarvels/platform/internal/pkg/database"
	"github.com/jackmarvels/platform/internal/pkg/logger"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// Checker reports whether a dependency is healthy
type Checker interface {
	CheckHealth(ctx context.Context) error
}

// CheckerFunc adapts a function to Checker
type CheckerFunc func(ctx context.Context) error

func (f CheckerFunc) CheckHealth(ctx context.Context) error {
	return f(ctx)
}

// RedisChecker pings Redis
type RedisChecker struct {
	client *database.RedisClient
}

func NewRedisChecker(client *database.RedisClient) *RedisChecker {
	return &RedisChecker{client: client}
}

func (r *RedisChecker) CheckHealth(ctx context.Context) error {
	return r.client.Ping(ctx)
}

// PostgresChecker pings PostgreSQL
type PostgresChecker struct {
	client *database.PostgresClient
}

func NewPostgresChecker(client *database.PostgresClient) *PostgresChecker {
	return &PostgresChecker{client: client}
}

func (p *PostgresChecker) CheckHealth(ctx context.Context) error {
	return p.client.GetDB().PingContext(ctx)
}

// Report is the readiness response body
type Report struct {
	Status       string                `json:"status"`
	Service      string                `json:"service,omitempty"`
	Timestamp    time.Time             `json:"timestamp"`
	Dependencies map[string]Dependency `json:"dependencies"`
}

// Dependency is the health of one registered checker
type Dependency struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Service runs the registered checkers
type Service struct {
	mu       sync.RWMutex
	checkers map[string]Checker
	logger   *logger.ZapLogger
}

// NewService creates an empty health service
func NewService(l *logger.ZapLogger) *Service {
	if l == nil {
		l = logger.GetGlobalLogger()
	}
	return &Service{checkers: make(map[string]Checker), logger: l}
}

// Add registers a checker under name
func (s *Service) Add(name string, checker Checker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkers[name] = checker
}

// Names returns the registered dependency names in order
func (s *Service) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.checkers))
	for name := range s.checkers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Check runs every checker and aggregates the result
func (s *Service) Check(ctx context.Context) Report {
	s.mu.RLock()
	defer s.mu.RUnlock()

	report := Report{
		Status:       StatusHealthy,
		Timestamp:    time.Now(),
		Dependencies: make(map[string]Dependency, len(s.checkers)),
	}

	for name, checker := range s.checkers {
		if err := checker.CheckHealth(ctx); err != nil {
			s.logger.Error("Health check failed",
				logger.String("dependency", name),
				logger.Err(err))
			report.Dependencies[name] = Dependency{Status: StatusUnhealthy, Error: err.Error()}
			report.Status = StatusUnhealthy
			continue
		}
		report.Dependencies[name] = Dependency{Status: StatusHealthy}
	}
	return report
}
