package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackmarvels/platform/internal/pkg/apperrors"
	"github.com/jackmarvels/platform/internal/pkg/logger"
	"github.com/jackmarvels/platform/internal/pkg/models"
	"github.com/jackmarvels/platform/internal/pkg/requestcontext"
	"github.com/jackmarvels/platform/internal/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Verbs(t *testing.T) {
	tests := []struct {
		name     string
		call     func(c *Client, ctx context.Context) (*http.Response, error)
		method   string
		path     string
		wantBody string
	}{
		{
			name:   "get events",
			call:   func(c *Client, ctx context.Context) (*http.Response, error) { return c.Get(ctx, "/events?category=dance") },
			method: http.MethodGet,
			path:   "/events",
		},
		{
			name: "post send otp",
			call: func(c *Client, ctx context.Context) (*http.Response, error) {
				return c.Post(ctx, "/students/send-otp", models.SendOTPRequest{Mobile: "9876543210", Type: models.OTPTypeLogin})
			},
			method:   http.MethodPost,
			path:     "/students/send-otp",
			wantBody: `{"mobileNo":"9876543210","type":"login"}`,
		},
		{
			name: "put profile",
			call: func(c *Client, ctx context.Context) (*http.Response, error) {
				return c.Put(ctx, "/students/profile", map[string]string{"city": "Mumbai"})
			},
			method:   http.MethodPut,
			path:     "/students/profile",
			wantBody: `{"city":"Mumbai"}`,
		},
		{
			name:   "delete notification",
			call:   func(c *Client, ctx context.Context) (*http.Response, error) { return c.Delete(ctx, "/notifications/notif_001") },
			method: http.MethodDelete,
			path:   "/notifications/notif_001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.method, r.Method)
				assert.Equal(t, tt.path, r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				assert.Equal(t, "application/json", r.Header.Get("Accept"))

				body, err := io.ReadAll(r.Body)
				assert.NoError(t, err)
				if tt.wantBody == "" {
					assert.Empty(t, body)
				} else {
					assert.JSONEq(t, tt.wantBody, string(body))
				}
				w.Write([]byte(`{"success":true}`))
			}))
			defer server.Close()
			client := NewClient(Config{BaseURL: server.URL + "/", Timeout: time.Second})

			// Act
			resp, err := tt.call(client, context.Background())

			// Assert
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			resp.Body.Close()
		})
	}
}

func TestClient_Do_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
	}))
	defer server.Close()
	client := NewClient(Config{BaseURL: server.URL, Timeout: 30 * time.Second})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	resp, err := client.Do(ctx, http.MethodGet, "/dashboard", nil)

	assert.Nil(t, resp)
	assert.Equal(t, apperrors.KindTimeout, apperrors.KindOf(err))
}

func TestClient_Do_UnmarshalableBody(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://localhost:8080"})

	resp, err := client.Do(context.Background(), http.MethodPost, "/students/register", make(chan int))

	assert.Nil(t, resp)
	assert.ErrorContains(t, err, "marshal body")
}

func TestClient_Do_ErrorStatusIsAResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success":false,"error":"Internal server error"}`))
	}))
	defer server.Close()
	client := NewClient(Config{BaseURL: server.URL})

	resp, err := client.Do(context.Background(), http.MethodGet, "/dashboard", nil)

	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	resp.Body.Close()
}

type memoryTokens struct {
	mu     sync.Mutex
	tokens *models.AuthTokens
	saves  int
	clears int
}

func (m *memoryTokens) Tokens(context.Context) (*models.AuthTokens, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.tokens == nil {
		return nil, nil
	}
	t := *m.tokens
	return &t, nil
}

func (m *memoryTokens) Save(_ context.Context, t models.AuthTokens) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens = &t
	m.saves++
	return nil
}

func (m *memoryTokens) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens = nil
	m.clears++
	return nil
}

type staticConnectivity bool

func (s staticConnectivity) IsOnline(context.Context) bool { return bool(s) }

func TestNewClient_DefaultTimeout(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://localhost:8080"})

	assert.Equal(t, DefaultTimeout, client.httpClient.Timeout)
	assert.Equal(t, "/auth/refresh-token", client.refreshPath)
}

func TestClient_Timeout_IsTimeoutKind(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, Timeout: 50 * time.Millisecond})

	_, err := client.Get(context.Background(), "/delayed")

	assert.Equal(t, apperrors.KindTimeout, apperrors.KindOf(err))
}

func TestClient_InjectsBearerAndRequestID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer access-1", r.Header.Get("Authorization"))
		assert.Equal(t, "req-123", r.Header.Get("X-Request-ID"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	tokens := &memoryTokens{tokens: &models.AuthTokens{AccessToken: "access-1", RefreshToken: "refresh-1"}}
	client := NewClient(Config{BaseURL: server.URL, Tokens: tokens})

	ctx := requestcontext.WithRequestID(context.Background(), "req-123")
	resp, err := client.Get(ctx, "/dashboard/user_001")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestClient_NoTokenNoAuthorizationHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, Tokens: &memoryTokens{}})

	resp, err := client.Post(context.Background(), "/auth/send-otp", map[string]string{"mobileNo": "9876543210"})

	require.NoError(t, err)
	resp.Body.Close()
}

func TestClient_OfflineShortCircuits(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, Connectivity: staticConnectivity(false)})

	resp, err := client.Get(context.Background(), "/events")

	assert.Nil(t, resp)
	assert.Equal(t, apperrors.KindNetwork, apperrors.KindOf(err))
	assert.Equal(t, int32(0), atomic.LoadInt32(&hits))
}

// refreshServer rejects any token other than "access-2" and hands out
// "access-2" from the refresh endpoint.
func refreshServer(t *testing.T, refreshes *int32, refreshStatus int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/refresh-token" {
			atomic.AddInt32(refreshes, 1)
			time.Sleep(20 * time.Millisecond)

			var req models.RefreshTokenRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			assert.Equal(t, "refresh-1", req.RefreshToken)

			w.WriteHeader(refreshStatus)
			if refreshStatus == http.StatusOK {
				w.Write([]byte(`{"success":true,"data":{"accessToken":"access-2","refreshToken":"refresh-2","expiresIn":3600}}`))
				return
			}
			w.Write([]byte(`{"success":false,"error":"Invalid refresh token","code":"UNAUTHORIZED"}`))
			return
		}

		if r.Header.Get("Authorization") != "Bearer access-2" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"success":false,"error":"Token expired"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"success":true,"data":"ok"}`))
	}))
}

func TestClient_RefreshesOn401AndReplays(t *testing.T) {
	var refreshes int32
	server := refreshServer(t, &refreshes, http.StatusOK)
	defer server.Close()

	tokens := &memoryTokens{tokens: &models.AuthTokens{AccessToken: "access-1", RefreshToken: "refresh-1"}}
	client := NewClient(Config{BaseURL: server.URL, Tokens: tokens})

	resp, err := client.Get(context.Background(), "/profile")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	assert.Equal(t, int32(1), atomic.LoadInt32(&refreshes))
	stored, _ := tokens.Tokens(context.Background())
	assert.Equal(t, "access-2", stored.AccessToken)
	assert.Equal(t, "refresh-2", stored.RefreshToken)
}

func TestClient_ConcurrentRefreshIsSingleFlight(t *testing.T) {
	var refreshes int32
	server := refreshServer(t, &refreshes, http.StatusOK)
	defer server.Close()

	tokens := &memoryTokens{tokens: &models.AuthTokens{AccessToken: "access-1", RefreshToken: "refresh-1"}}
	client := NewClient(Config{BaseURL: server.URL, Tokens: tokens})

	const callers = 8
	var wg sync.WaitGroup
	statuses := make(chan int, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := client.Get(context.Background(), "/events")
			if assert.NoError(t, err) {
				statuses <- resp.StatusCode
				resp.Body.Close()
			}
		}()
	}
	wg.Wait()
	close(statuses)

	for status := range statuses {
		assert.Equal(t, http.StatusOK, status)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&refreshes))
	assert.Equal(t, 1, tokens.saves)
}

func TestClient_RefreshFailureClearsTokens(t *testing.T) {
	var refreshes int32
	server := refreshServer(t, &refreshes, http.StatusUnauthorized)
	defer server.Close()

	tokens := &memoryTokens{tokens: &models.AuthTokens{AccessToken: "access-1", RefreshToken: "refresh-1"}}
	client := NewClient(Config{BaseURL: server.URL, Tokens: tokens})

	resp, err := client.Get(context.Background(), "/profile")

	assert.Nil(t, resp)
	assert.Equal(t, apperrors.KindUnauthorized, apperrors.KindOf(err))
	assert.Equal(t, 1, tokens.clears)
	stored, _ := tokens.Tokens(context.Background())
	assert.Nil(t, stored)
}

func TestClient_SupersededTokenRetriesWithoutRefresh(t *testing.T) {
	var refreshes int32
	server := refreshServer(t, &refreshes, http.StatusOK)
	defer server.Close()

	tokens := &memoryTokens{tokens: &models.AuthTokens{AccessToken: "access-2", RefreshToken: "refresh-2"}}
	client := NewClient(Config{BaseURL: server.URL, Tokens: tokens})

	// the request went out with a token that has since been replaced
	err := client.refresh(context.Background(), "access-1")

	require.NoError(t, err)
	assert.Equal(t, int32(0), atomic.LoadInt32(&refreshes))
}

func TestClient_RefreshEndpoint401IsNotRefreshed(t *testing.T) {
	var refreshes int32
	server := refreshServer(t, &refreshes, http.StatusUnauthorized)
	defer server.Close()

	tokens := &memoryTokens{tokens: &models.AuthTokens{AccessToken: "access-1", RefreshToken: "refresh-1"}}
	client := NewClient(Config{BaseURL: server.URL, Tokens: tokens})

	resp, err := client.Post(context.Background(), "/auth/refresh-token", models.RefreshTokenRequest{RefreshToken: "refresh-1"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
	assert.Equal(t, int32(1), atomic.LoadInt32(&refreshes))
	assert.Equal(t, 0, tokens.clears)
}

func TestClient_RetriesTransientGet(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&attempts, 1) == 1 {
			// drop the connection to force a transport error
			if hj, ok := w.(http.Hijacker); ok {
				if conn, _, err := hj.Hijack(); err == nil {
					conn.Close()
				}
			}
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	retrier := retry.New(retry.Config{MaxRetries: 2, BaseDelay: time.Millisecond, Multiplier: 1, IsRetryable: retry.TransientOnly}, logger.NewNop())
	client := NewClient(Config{BaseURL: server.URL, Retry: retrier, Logger: logger.NewNop()})

	resp, err := client.Get(context.Background(), "/events")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
	assert.Equal(t, int32(2), atomic.LoadInt32(&attempts))
}

func TestClient_DeadlineDuringBackoffIsTimeoutKind(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		if hj, ok := w.(http.Hijacker); ok {
			if conn, _, err := hj.Hijack(); err == nil {
				conn.Close()
			}
		}
	}))
	defer server.Close()

	retrier := retry.New(retry.Config{MaxRetries: 3, BaseDelay: time.Second, Multiplier: 1, IsRetryable: retry.TransientOnly}, logger.NewNop())
	client := NewClient(Config{BaseURL: server.URL, Retry: retrier, Logger: logger.NewNop()})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := client.Get(ctx, "/events")

	require.Error(t, err)
	assert.Equal(t, apperrors.KindTimeout, apperrors.KindOf(err))
	assert.Equal(t, http.StatusRequestTimeout, apperrors.StatusOf(err))
	assert.Equal(t, int32(1), atomic.LoadInt32(&attempts))
}
