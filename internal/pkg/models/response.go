package models

import "time"

// MockEnvelope is the response shape produced by the in-memory backend
type MockEnvelope[T any] struct {
	Success    bool      `json:"success"`
	Data       T         `json:"data,omitempty"`
	Error      string    `json:"error,omitempty"`
	Code       string    `json:"code,omitempty"`
	StatusCode int       `json:"statusCode"`
	Timestamp  time.Time `json:"timestamp"`
	Message    string    `json:"message,omitempty"`
}

// APIResponse is the response contract shared by the mock and HTTP backends
type APIResponse[T any] struct {
	Success    bool   `json:"success"`
	Data       T      `json:"data,omitempty"`
	Error      string `json:"error,omitempty"`
	Code       string `json:"code,omitempty"`
	StatusCode int    `json:"statusCode"`
}
