package gateway

import (
	"strings"

	"github.com/jackmarvels/platform/internal/pkg/models"
)

// IsMockMode reports whether the client should use the in-process mock backend.
// Anything other than an explicit "http" selects the mock.
func IsMockMode(cfg models.BackendConfig) bool {
	return !strings.EqualFold(strings.TrimSpace(cfg.Mode), models.BackendModeHTTP)
}

// ConvertMockResponse maps the mock envelope onto the shared response
// contract. The mock-only timestamp and message are dropped.
func ConvertMockResponse[T any](env models.MockEnvelope[T]) models.APIResponse[T] {
	if !env.Success {
		return models.APIResponse[T]{
			Success:    false,
			Error:      env.Error,
			Code:       env.Code,
			StatusCode: env.StatusCode,
		}
	}
	return models.APIResponse[T]{
		Success:    true,
		Data:       env.Data,
		StatusCode: env.StatusCode,
	}
}
