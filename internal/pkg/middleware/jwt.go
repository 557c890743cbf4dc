package middleware

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/averros/digiwallet/internal/pkg/httputil"
	jwtpkg "github.com/averros/digiwallet/internal/pkg/jwt"
	"github.com/averros/digiwallet/internal/pkg/models"
)

// JWTAuthMiddleware creates a middleware for JWT authentication.
// The identity provider issues tokens carrying the authenticated account id;
// this middleware validates them and places the account id in the context.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return httputil.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return httputil.UnauthorizedResponse(c, "Invalid authorization format")
			}

			tokenString := parts[1]

			claims, err := jwtpkg.ValidateToken(tokenString, config.Secret)
			if err != nil {
				return httputil.UnauthorizedResponse(c, "Invalid token")
			}

			accountIDStr, ok := (*claims)["account_id"]
			if !ok {
				return httputil.UnauthorizedResponse(c, "Invalid token: missing account_id claim")
			}

			accountID, err := uuid.Parse(fmt.Sprintf("%v", accountIDStr))
			if err != nil {
				return httputil.UnauthorizedResponse(c, "Invalid token: account_id is not a valid UUID")
			}

			c.Set("account_id", accountID)

			return next(c)
		}
	}
}
