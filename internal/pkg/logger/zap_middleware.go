package logger

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
)

// ZapEchoMiddleware writes one access log line per request
func ZapEchoMiddleware(zl *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// let echo write the error so the logged status is the real one
				c.Error(err)
			}

			req := c.Request()
			entry := HTTPRequest{
				Method:    req.Method,
				Path:      req.URL.RequestURI(),
				ClientIP:  c.RealIP(),
				RequestID: c.Response().Header().Get(echo.HeaderXRequestID),
				Status:    c.Response().Status,
				Latency:   time.Since(start),
				Err:       err,
			}
			if userID := c.Get("user_id"); userID != nil {
				entry.UserID = fmt.Sprintf("%v", userID)
			}
			zl.LogHTTPRequest(entry)
			return nil
		}
	}
}
