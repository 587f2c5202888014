package mockapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/jackmarvels/platform/internal/pkg/apperrors"
	"github.com/jackmarvels/platform/internal/pkg/models"
)

// Respond wraps the result of a mock operation in the mock envelope.
// Failures are carried inside the envelope, never returned.
func Respond[T any](data T, err error) models.MockEnvelope[T] {
	now := models.Now()
	if err == nil {
		return models.MockEnvelope[T]{
			Success:    true,
			Data:       data,
			StatusCode: http.StatusOK,
			Timestamp:  now,
		}
	}

	appErr := envelopeError(err)
	return models.MockEnvelope[T]{
		Success:    false,
		Error:      appErr.Message,
		Code:       string(appErr.Kind),
		StatusCode: appErr.StatusCode,
		Timestamp:  now,
	}
}

func envelopeError(err error) *apperrors.Error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return apperrors.Wrap(err, apperrors.KindTimeout, "Request timed out")
	case errors.Is(err, context.Canceled):
		return apperrors.Wrap(err, apperrors.KindNetwork, "Request cancelled")
	}
	return apperrors.From(err)
}
