package middleware

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"

	"github.com/averros/digiwallet/internal/pkg/httputil"
)

const (
	// APIKeyHeader is the header carrying the admin API key
	APIKeyHeader = "X-API-Key"
)

// ValidateAPIKey middleware guards administrative routes (wallet
// provisioning, fraud rescan) with a shared API key.
func ValidateAPIKey(expectedKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return httputil.UnauthorizedResponse(c, "API key is required")
			}

			if expectedKey == "" ||
				subtle.ConstantTimeCompare([]byte(apiKey), []byte(expectedKey)) != 1 {
				return httputil.UnauthorizedResponse(c, "Invalid API key")
			}

			return next(c)
		}
	}
}
