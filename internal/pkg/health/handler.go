package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
)

// readyTimeout bounds a full readiness check
const readyTimeout = 3 * time.Second

// Info identifies the running service on /ping
type Info struct {
	Service     string `json:"service_name"`
	Version     string `json:"version"`
	BackendMode string `json:"backend_mode,omitempty"`
}

type pingResponse struct {
	Info
	GoVersion  string    `json:"go_version"`
	Hostname   string    `json:"hostname"`
	ServerTime time.Time `json:"server_time"`
}

// NewPingHandler answers with info plus the host and the server clock.
// Connectivity monitors probe it, so it never touches dependencies.
func NewPingHandler(info Info) echo.HandlerFunc {
	if info.Version == "" {
		info.Version = "development"
	}
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, pingResponse{
			Info:       info,
			GoVersion:  runtime.Version(),
			Hostname:   hostname,
			ServerTime: time.Now().UTC(),
		})
	}
}

// RegisterHealthEndpoints registers /ping, liveness and readiness endpoints.
// Readiness is answered by service, which may be nil when there are no
// dependencies to check.
func RegisterHealthEndpoints(e *echo.Echo, info Info, service *Service) {
	e.GET("/ping", NewPingHandler(info))

	alive := func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	}
	e.GET("/health", alive)
	e.GET("/healthz", alive)

	e.GET("/ready", func(c echo.Context) error {
		if service == nil {
			return alive(c)
		}

		ctx, cancel := context.WithTimeout(c.Request().Context(), readyTimeout)
		defer cancel()

		report := service.Check(ctx)
		report.Service = info.Service
		status := http.StatusOK
		if report.Status != StatusHealthy {
			status = http.StatusServiceUnavailable
		}
		return c.JSON(status, report)
	})
}
