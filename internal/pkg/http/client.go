package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/jackmarvels/platform/internal/pkg/apperrors"
	"github.com/jackmarvels/platform/internal/pkg/logger"
	"github.com/jackmarvels/platform/internal/pkg/models"
	"github.com/jackmarvels/platform/internal/pkg/requestcontext"
	"github.com/jackmarvels/platform/internal/pkg/retry"
	"golang.org/x/sync/singleflight"
)

// DefaultTimeout applies when Config.Timeout is zero
const DefaultTimeout = 30 * time.Second

// TokenStore is the persisted session the client authenticates with
type TokenStore interface {
	Tokens(ctx context.Context) (*models.AuthTokens, error)
	Save(ctx context.Context, tokens models.AuthTokens) error
	Clear(ctx context.Context) error
}

// Connectivity reports whether the backend is believed reachable
type Connectivity interface {
	IsOnline(ctx context.Context) bool
}

// reachabilityObserver is implemented by connectivity monitors that learn
// from real traffic
type reachabilityObserver interface {
	Observe(reachable bool)
}

// Config holds client configuration. Only BaseURL is required.
type Config struct {
	BaseURL      string
	Timeout      time.Duration
	Tokens       TokenStore
	Connectivity Connectivity
	RefreshPath  string
	Retry        *retry.Retrier
	Logger       *logger.ZapLogger
}

// Client is a JSON HTTP client for the platform backend. It injects the
// bearer token, refuses to send while offline and transparently refreshes
// the session once when a request is rejected with 401.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	tokens       TokenStore
	connectivity Connectivity
	refreshPath  string
	retrier      *retry.Retrier
	logger       *logger.ZapLogger

	refreshGroup singleflight.Group
}

// NewClient creates a new HTTP client
func NewClient(config Config) *Client {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	refreshPath := config.RefreshPath
	if refreshPath == "" {
		refreshPath = "/auth/refresh-token"
	}
	l := config.Logger
	if l == nil {
		l = logger.GetGlobalLogger()
	}

	return &Client{
		baseURL:      config.BaseURL,
		httpClient:   &http.Client{Timeout: timeout},
		tokens:       config.Tokens,
		connectivity: config.Connectivity,
		refreshPath:  refreshPath,
		retrier:      config.Retry,
		logger:       l,
	}
}

// Get performs a GET request
func (c *Client) Get(ctx context.Context, endpoint string) (*http.Response, error) {
	return c.Do(ctx, http.MethodGet, endpoint, nil)
}

// Post performs a POST request with a JSON body
func (c *Client) Post(ctx context.Context, endpoint string, body interface{}) (*http.Response, error) {
	return c.Do(ctx, http.MethodPost, endpoint, body)
}

// Put performs a PUT request with a JSON body
func (c *Client) Put(ctx context.Context, endpoint string, body interface{}) (*http.Response, error) {
	return c.Do(ctx, http.MethodPut, endpoint, body)
}

// Delete performs a DELETE request
func (c *Client) Delete(ctx context.Context, endpoint string) (*http.Response, error) {
	return c.Do(ctx, http.MethodDelete, endpoint, nil)
}

// Do sends a request. HTTP error statuses are returned as responses; only
// transport failures, offline prechecks and failed session refreshes are
// returned as errors.
func (c *Client) Do(ctx context.Context, method, endpoint string, body interface{}) (*http.Response, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	if c.connectivity != nil && !c.connectivity.IsOnline(ctx) {
		c.logger.Warn("Backend unreachable, request not sent",
			logger.String("method", method),
			logger.String("endpoint", endpoint))
		return nil, apperrors.New(apperrors.KindNetwork, "Network error: backend is unreachable")
	}

	token := c.accessToken(ctx)
	resp, err := c.sendWithRetry(ctx, method, endpoint, payload, token)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusUnauthorized || c.tokens == nil || endpoint == c.refreshPath {
		return resp, nil
	}
	drain(resp)

	if err := c.refresh(ctx, token); err != nil {
		return nil, err
	}
	return c.send(ctx, method, endpoint, payload, c.accessToken(ctx))
}

func (c *Client) accessToken(ctx context.Context) string {
	if c.tokens == nil {
		return ""
	}
	tokens, err := c.tokens.Tokens(ctx)
	if err != nil {
		c.logger.Warn("Failed to read stored tokens", logger.Err(err))
		return ""
	}
	if tokens == nil {
		return ""
	}
	return tokens.AccessToken
}

// sendWithRetry retries transient transport failures of GET requests
func (c *Client) sendWithRetry(ctx context.Context, method, endpoint string, payload []byte, token string) (*http.Response, error) {
	if c.retrier == nil || method != http.MethodGet {
		return c.send(ctx, method, endpoint, payload, token)
	}

	var resp *http.Response
	err := c.retrier.Execute(ctx, func(ctx context.Context) error {
		var err error
		resp, err = c.send(ctx, method, endpoint, payload, token)
		return err
	})
	if err != nil {
		if appErr, ok := apperrors.As(err); ok {
			return nil, appErr
		}
		// ctx expired between attempts
		return nil, transportError(err)
	}
	return resp, nil
}

func (c *Client) send(ctx context.Context, method, endpoint string, payload []byte, token string) (*http.Response, error) {
	url := strings.TrimRight(c.baseURL, "/") + endpoint

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if requestID := requestcontext.RequestID(ctx); requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(false)
		c.logger.Error("HTTP request failed",
			logger.String("method", method),
			logger.String("url", url),
			logger.Duration("latency", time.Since(start)),
			logger.Err(err))
		return nil, transportError(err)
	}
	c.observe(true)

	c.logger.Debug("HTTP request completed",
		logger.String("method", method),
		logger.String("url", url),
		logger.Int("status_code", resp.StatusCode),
		logger.Duration("latency", time.Since(start)))

	return resp, nil
}

func (c *Client) observe(reachable bool) {
	if o, ok := c.connectivity.(reachabilityObserver); ok {
		o.Observe(reachable)
	}
}

// refresh exchanges the refresh token for a new pair. Concurrent callers
// share one in-flight exchange and all see its outcome.
func (c *Client) refresh(ctx context.Context, staleToken string) error {
	ctx = context.WithoutCancel(ctx)

	_, err, shared := c.refreshGroup.Do("refresh", func() (interface{}, error) {
		current, err := c.tokens.Tokens(ctx)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.KindInternal, "Failed to read session")
		}
		if current != nil && current.AccessToken != "" && current.AccessToken != staleToken {
			// another request already refreshed the session
			return nil, nil
		}
		if current == nil || current.RefreshToken == "" {
			return nil, c.expireSession(ctx, "no refresh token")
		}

		payload, err := json.Marshal(models.RefreshTokenRequest{RefreshToken: current.RefreshToken})
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
		resp, err := c.send(ctx, http.MethodPost, c.refreshPath, payload, "")
		if err != nil {
			return nil, c.expireSession(ctx, err.Error())
		}

		tokens, err := DecodeResponse[models.AuthTokens](resp)
		if err != nil {
			return nil, c.expireSession(ctx, err.Error())
		}
		if tokens.AccessToken == "" {
			return nil, c.expireSession(ctx, "refresh returned no access token")
		}
		if err := c.tokens.Save(ctx, tokens); err != nil {
			return nil, apperrors.Wrap(err, apperrors.KindInternal, "Failed to store session")
		}

		c.logger.Info("Session refreshed")
		return nil, nil
	})

	if shared {
		c.logger.Debug("Joined in-flight session refresh")
	}
	return err
}

func (c *Client) expireSession(ctx context.Context, reason string) error {
	c.logger.Warn("Session refresh failed, clearing tokens", logger.String("reason", reason))
	if err := c.tokens.Clear(ctx); err != nil {
		c.logger.Error("Failed to clear tokens", logger.Err(err))
	}
	return apperrors.Unauthorized("Session expired. Please login again.")
}

// transportError maps a net/http failure onto the network and timeout kinds
func transportError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return apperrors.Wrap(err, apperrors.KindTimeout, "Request timed out")
	}
	return apperrors.Wrap(err, apperrors.KindNetwork, "Network error")
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}
