package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/jackmarvels/platform/internal/pkg/apperrors"
)

// envelope mirrors the JSON body every backend endpoint responds with
type envelope[T any] struct {
	Success    bool   `json:"success"`
	Data       T      `json:"data"`
	Error      string `json:"error"`
	Message    string `json:"message"`
	Code       string `json:"code"`
	StatusCode int    `json:"statusCode"`
}

// DecodeResponse reads and closes resp. It returns the envelope data on
// success and an *apperrors.Error rebuilt from the envelope otherwise.
func DecodeResponse[T any](resp *http.Response) (T, error) {
	var zero T
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, apperrors.Wrap(err, apperrors.KindNetwork, "Network error")
	}

	var body envelope[T]
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &body); err != nil {
			if resp.StatusCode >= http.StatusBadRequest {
				return zero, apperrors.FromResponse("", http.StatusText(resp.StatusCode), resp.StatusCode)
			}
			return zero, apperrors.Wrap(fmt.Errorf("decode response: %w", err), apperrors.KindInternal, "Invalid response from server")
		}
	}

	if resp.StatusCode >= http.StatusBadRequest || (len(raw) > 0 && !body.Success) {
		message := body.Error
		if message == "" {
			message = body.Message
		}
		return zero, apperrors.FromResponse(body.Code, message, resp.StatusCode)
	}
	return body.Data, nil
}
