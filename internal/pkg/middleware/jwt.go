package middleware

import (
	"strings"

	jwtpkg "github.com/jackmarvels/platform/internal/pkg/jwt"
	"github.com/jackmarvels/platform/internal/pkg/models"
	"github.com/jackmarvels/platform/internal/pkg/requestcontext"
	"github.com/jackmarvels/platform/internal/utils"
	"github.com/labstack/echo/v4"
)

// JWTAuthMiddleware accepts only access tokens signed with config.Secret.
// The user ID and role are stored on the echo context as "user_id" and
// "user_role" and on the request context.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateTyped(parts[1], config.Secret, jwtpkg.TypeAccess)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}
			if claims.UserID == "" {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_id claim")
			}

			c.Set("user_id", claims.UserID)
			c.Set("user_role", claims.RoleID)

			ctx := requestcontext.WithUserID(c.Request().Context(), claims.UserID)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// CurrentUserID returns the user ID set by JWTAuthMiddleware or ""
func CurrentUserID(c echo.Context) string {
	if id, ok := c.Get("user_id").(string); ok {
		return id
	}
	return ""
}
