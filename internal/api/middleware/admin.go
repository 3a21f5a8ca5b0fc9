package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ozstore/storefront-api/internal/core/domain"
)

// AdminOnly rejects requests whose verified identity does not carry the
// administrator flag. It must run after Auth.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ident, ok := c.Get(IdentityKey).(domain.Identity)
			if !ok || !ident.IsAdmin {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
