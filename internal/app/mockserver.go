// Package app wires the platform's components together. It is the only
// place that decides which storage adapter, gateway and event transport
// are used.
package app

import (
	"context"
	"errors"

	"github.com/jackmarvels/platform/internal/pkg/health"
	"github.com/jackmarvels/platform/internal/pkg/logger"
	"github.com/jackmarvels/platform/internal/pkg/middleware"
	"github.com/jackmarvels/platform/internal/pkg/models"
	nsqpkg "github.com/jackmarvels/platform/internal/pkg/nsq"
	"github.com/jackmarvels/platform/internal/pkg/retry"
	"github.com/jackmarvels/platform/internal/utils"
	"github.com/jackmarvels/platform/services/mockapi"
	"github.com/jackmarvels/platform/services/mockapi/gateway"
	"github.com/jackmarvels/platform/services/mockapi/handler"
	httphandler "github.com/jackmarvels/platform/services/mockapi/handler/http"
	"github.com/jackmarvels/platform/services/mockapi/repository"
	"github.com/jackmarvels/platform/services/mockapi/usecase"
	"github.com/labstack/echo/v4"
)

// MockServiceName identifies the served mock backend in logs and health reports
const MockServiceName = "mockapi"

// MockServer is the mock backend served over HTTP
type MockServer struct {
	Echo  *echo.Echo
	Store *repository.Store

	producer *nsqpkg.Producer
}

// NewMockServer builds the served mock backend. Domain events go to NSQ
// when cfg.NSQ.Enabled and are dropped otherwise.
func NewMockServer(cfg *models.Config, zapLogger *logger.ZapLogger) (*MockServer, error) {
	if zapLogger == nil {
		zapLogger = logger.GetGlobalLogger()
	}

	store := repository.NewStore(repository.DefaultSeed())

	var (
		eventGW  mockapi.EventGW = gateway.NoopGateway{}
		producer *nsqpkg.Producer
	)
	if cfg.NSQ.Enabled {
		p, err := nsqpkg.NewProducer(cfg.NSQ.Address, zapLogger)
		if err != nil {
			return nil, err
		}
		producer = p
		eventGW = gateway.NewNSQGateway(producer, retry.NewWithDefaults(zapLogger))
	}

	mockUC := usecase.NewMockAPIUC(store, usecase.NewJWTIssuer(cfg.JWT), eventGW, cfg.Backend.MockLatency)

	e := echo.New()
	e.HideBanner = true
	e.Validator = utils.NewRequestValidator()

	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	healthService := health.NewService(zapLogger)
	healthService.Add("store", health.CheckerFunc(func(context.Context) error {
		if len(store.Users()) == 0 {
			return errors.New("store has no users")
		}
		return nil
	}))
	if producer != nil {
		healthService.Add("nsq", health.CheckerFunc(func(context.Context) error {
			return producer.Ping()
		}))
	}
	health.RegisterHealthEndpoints(e, health.Info{
		Service:     MockServiceName,
		Version:     cfg.App.Version,
		BackendMode: models.BackendModeMock,
	}, healthService)

	handler.NewHandler(
		httphandler.NewAuthHandler(mockUC),
		httphandler.NewContentHandler(mockUC),
		cfg,
	).RegisterRoutes(e)

	return &MockServer{Echo: e, Store: store, producer: producer}, nil
}

// Close releases the event producer
func (s *MockServer) Close(context.Context) error {
	if s.producer != nil {
		s.producer.Stop()
	}
	return nil
}
