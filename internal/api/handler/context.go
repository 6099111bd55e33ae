package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kn1ghtm0nster/blog/internal/core/domain"
)

// ctxPrincipal extracts the principal injected by the Auth middleware and
// performs a fast-fail check before any service call: a non-empty user id
// proves the middleware ran.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	id, _ := c.Get("user_id").(string)
	if id == "" {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	username, _ := c.Get("username").(string)
	admin, _ := c.Get("admin").(bool)

	return domain.Principal{
		ID:            id,
		Username:      username,
		Admin:         admin,
		Authenticated: true,
	}, nil
}
