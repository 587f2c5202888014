package storage

import (
	"fmt"

	"github.com/jackmarvels/platform/internal/pkg/database"
	"github.com/jackmarvels/platform/internal/pkg/models"
)

// Backends holds the optional database clients an adapter can be built on
type Backends struct {
	Redis    *database.RedisClient
	Postgres *database.PostgresClient
}

// New builds the adapter selected by cfg.Type
func New(cfg models.StorageConfig, b Backends) (Adapter, error) {
	switch cfg.Type {
	case "", models.StorageMemory:
		return NewMemory(), nil
	case models.StorageRedis:
		if b.Redis == nil {
			return nil, fmt.Errorf("storage type %q requires a redis client", cfg.Type)
		}
		return NewRedis(b.Redis, cfg.KeyPrefix), nil
	case models.StoragePostgres:
		if b.Postgres == nil {
			return nil, fmt.Errorf("storage type %q requires a postgres client", cfg.Type)
		}
		return NewSQL(b.Postgres, cfg.Table), nil
	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.Type)
	}
}
