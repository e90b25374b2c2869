package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
)

// APIKeyHeader is the header clients must send on every data route.
const APIKeyHeader = "X-API-KEY"

// APIKey rejects requests whose X-API-KEY header does not match the
// configured key. The comparison is constant-time; the rejection body is a
// fixed message so callers cannot probe which part failed.
func APIKey(key string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			got := c.Request().Header.Get(APIKeyHeader)
			if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
				return c.JSON(http.StatusForbidden, map[string]string{
					"detail": "Invalid or missing API Key",
				})
			}
			return next(c)
		}
	}
}
