package storage

import (
	"testing"

	"github.com/jackmarvels/platform/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     models.StorageConfig
		wantErr bool
	}{
		{name: "default is memory", cfg: models.StorageConfig{}},
		{name: "memory", cfg: models.StorageConfig{Type: models.StorageMemory}},
		{name: "redis without client", cfg: models.StorageConfig{Type: models.StorageRedis}, wantErr: true},
		{name: "postgres without client", cfg: models.StorageConfig{Type: models.StoragePostgres}, wantErr: true},
		{name: "unknown", cfg: models.StorageConfig{Type: "etcd"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter, err := New(tt.cfg, Backends{})
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, adapter)
				return
			}
			assert.NoError(t, err)
			assert.IsType(t, &Memory{}, adapter)
		})
	}
}
