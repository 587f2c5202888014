package middleware

import (
	"github.com/google/uuid"
	"github.com/jackmarvels/platform/internal/pkg/requestcontext"
	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware keeps an incoming X-Request-ID or generates one, and
// exposes it on the response, the echo context and the request context
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}

			c.Response().Header().Set(echo.HeaderXRequestID, requestID)
			c.Set("request_id", requestID)

			ctx := requestcontext.WithRequestID(c.Request().Context(), requestID)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
