package client

import (
	"net/http"

	"github.com/jackmarvels/platform/internal/pkg/apperrors"
	"github.com/jackmarvels/platform/internal/pkg/models"
)

// Result folds a value and an error into the response contract
func Result[T any](data T, err error) models.APIResponse[T] {
	if err != nil {
		return Failure[T](err)
	}
	return models.APIResponse[T]{
		Success:    true,
		Data:       data,
		StatusCode: http.StatusOK,
	}
}

// Failure builds a failed response from err
func Failure[T any](err error) models.APIResponse[T] {
	appErr := apperrors.From(err)
	return models.APIResponse[T]{
		Success:    false,
		Error:      appErr.Message,
		Code:       string(appErr.Kind),
		StatusCode: appErr.StatusCode,
	}
}

// Err rebuilds the error carried by a failed response, or nil on success
func Err[T any](resp models.APIResponse[T]) *apperrors.Error {
	if resp.Success {
		return nil
	}
	return apperrors.FromResponse(resp.Code, resp.Error, resp.StatusCode)
}
