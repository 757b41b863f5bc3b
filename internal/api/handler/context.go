package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/funews/news-management-system/internal/api/middleware"
	"github.com/funews/news-management-system/internal/core/domain"
)

// actor extracts the identity injected by the Auth middleware. Its presence
// proves the middleware ran; a route wired without it is a configuration bug
// surfaced as 401, never a panic.
func actor(c echo.Context) (domain.Identity, error) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return identity, nil
}

// pathID parses the :id route parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
