package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ozstore/storefront-api/internal/api/metrics"
	"github.com/ozstore/storefront-api/internal/core/domain"
)

// IdentityKey is the context key under which the verified identity is stored.
const IdentityKey = "identity"

// TokenVerifier validates a raw bearer token and returns the embedded
// identity.
type TokenVerifier interface {
	Verify(token string) (*domain.Identity, error)
}

// Auth guards protected routes: it requires a valid bearer token and injects
// the verified identity into the request context. Malformed and expired
// tokens are rejected with the same generic message so verification detail
// never leaks to clients.
func Auth(tokens TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "token is not supplied")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthRejectionsTotal.WithLabelValues("bad_scheme").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "token is not valid")
			}

			ident, err := tokens.Verify(parts[1])
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "token is not valid")
			}

			c.Set(IdentityKey, *ident)
			return next(c)
		}
	}
}
