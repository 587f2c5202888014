package app

import (
	"context"
	"fmt"

	"github.com/jackmarvels/platform/internal/pkg/appstate"
	"github.com/jackmarvels/platform/internal/pkg/connectivity"
	"github.com/jackmarvels/platform/internal/pkg/database"
	httpclient "github.com/jackmarvels/platform/internal/pkg/http"
	"github.com/jackmarvels/platform/internal/pkg/logger"
	"github.com/jackmarvels/platform/internal/pkg/models"
	"github.com/jackmarvels/platform/internal/pkg/retry"
	"github.com/jackmarvels/platform/internal/pkg/storage"
	"github.com/jackmarvels/platform/internal/pkg/tokenstore"
	"github.com/jackmarvels/platform/services/client"
	"github.com/jackmarvels/platform/services/client/gateway"
	clientusecase "github.com/jackmarvels/platform/services/client/usecase"
	"github.com/jackmarvels/platform/services/mockapi/repository"
	mockusecase "github.com/jackmarvels/platform/services/mockapi/usecase"
)

// Client is the composed client: local session stores, the backend gateway
// selected by configuration and the services on top of it.
type Client struct {
	Tokens  *tokenstore.Store
	State   *appstate.Store
	Monitor *connectivity.Monitor
	Gateway client.BackendGateway
	Auth    *clientusecase.AuthUC
	Content *clientusecase.ContentUC

	closers []func() error
}

// NewClient builds the client for cfg and restores the persisted session
func NewClient(ctx context.Context, cfg *models.Config, zapLogger *logger.ZapLogger) (*Client, error) {
	if zapLogger == nil {
		zapLogger = logger.GetGlobalLogger()
	}
	c := &Client{}

	adapter, err := c.openStorage(ctx, cfg)
	if err != nil {
		c.Close()
		return nil, err
	}

	c.Tokens = tokenstore.New(adapter)
	c.State = appstate.New(adapter)
	if err := c.State.Load(ctx); err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to restore app state: %w", err)
	}

	if gateway.IsMockMode(cfg.Backend) {
		store := repository.NewStore(repository.DefaultSeed())
		mockUC := mockusecase.NewMockAPIUC(store, nil, nil, cfg.Backend.MockLatency)
		c.Gateway = gateway.NewMockGateway(mockUC, c.State)
		c.State.SetNetworkStatus(appstate.NetworkOnline)
		zapLogger.Info("Using mock backend")
	} else {
		c.Monitor = connectivity.New(
			connectivity.NewHTTPChecker(cfg.Backend.BaseURL, cfg.Backend.HealthPath, 0),
			connectivity.Config{Name: "backend", ProbeInterval: cfg.Backend.ProbeInterval},
			zapLogger,
		)
		c.Monitor.OnChange(func(_, to connectivity.State) {
			c.State.SetNetworkStatus(NetworkStatus(to))
		})

		httpClient := httpclient.NewClient(httpclient.Config{
			BaseURL:      cfg.Backend.BaseURL,
			Timeout:      cfg.Backend.Timeout,
			Tokens:       c.Tokens,
			Connectivity: c.Monitor,
			RefreshPath:  cfg.Backend.RefreshPath,
			Retry:        retry.NewWithDefaults(zapLogger),
			Logger:       zapLogger,
		})
		c.Gateway = gateway.NewHTTPGateway(httpClient)
		zapLogger.Info("Using HTTP backend", logger.String("base_url", cfg.Backend.BaseURL))
	}

	c.Auth = clientusecase.NewAuthUC(c.Gateway, c.Tokens, c.State)
	c.Content = clientusecase.NewContentUC(c.Gateway)
	return c, nil
}

func (c *Client) openStorage(ctx context.Context, cfg *models.Config) (storage.Adapter, error) {
	var backends storage.Backends

	switch cfg.Storage.Type {
	case models.StorageRedis:
		redisClient, err := database.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, redisClient.Close)
		backends.Redis = redisClient
	case models.StoragePostgres:
		postgresClient, err := database.NewPostgresClient(cfg.Database)
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, postgresClient.Close)
		backends.Postgres = postgresClient
	}

	adapter, err := storage.New(cfg.Storage, backends)
	if err != nil {
		return nil, err
	}
	if sqlAdapter, ok := adapter.(*storage.SQL); ok {
		if err := sqlAdapter.Migrate(ctx); err != nil {
			return nil, fmt.Errorf("failed to migrate storage: %w", err)
		}
	}
	return adapter, nil
}

// Close releases the storage connections
func (c *Client) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			logger.Warn("Failed to close client resource", logger.Err(err))
		}
	}
	c.closers = nil
}

// NetworkStatus maps a connectivity state onto the app state's network status
func NetworkStatus(s connectivity.State) appstate.NetworkStatus {
	switch s {
	case connectivity.StateOnline:
		return appstate.NetworkOnline
	case connectivity.StateOffline:
		return appstate.NetworkOffline
	default:
		return appstate.NetworkUnknown
	}
}
