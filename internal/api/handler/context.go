package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ozstore/storefront-api/internal/api/middleware"
	"github.com/ozstore/storefront-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware. Its
// presence proves the gate ran; a handler reached without it is a routing
// mistake, rejected with 401 before any service call.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	ident, ok := c.Get(middleware.IdentityKey).(domain.Identity)
	if !ok || ident.ID == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return ident, nil
}
