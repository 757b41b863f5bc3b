package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/funews/news-management-system/internal/api/handler"
	"github.com/funews/news-management-system/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status and envelope message.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders the canonical envelope: {"message", "statusCode", "data"?}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, handler.Response{Message: msg, StatusCode: strconv.Itoa(code)})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, middleware rejections).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors map to deterministic codes; the messages below are
	// the ones clients key off, so they stay word-for-word stable.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid email or password."
	case errors.Is(err, domain.ErrAccessDenied):
		return http.StatusForbidden, "Access denied. Only Admin and Staff can login."
	case errors.Is(err, domain.ErrInvalidRefreshToken):
		return http.StatusUnauthorized, "Invalid refresh token."
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "Access forbidden."
	case errors.Is(err, domain.ErrIDMismatch):
		return http.StatusBadRequest, "ID mismatch."
	case errors.Is(err, domain.ErrCategoryNotFound):
		return http.StatusNotFound, "Category not found."
	case errors.Is(err, domain.ErrCategoryInUse):
		return http.StatusBadRequest, "Cannot delete category that is being used by news articles."
	case errors.Is(err, domain.ErrTagNotFound):
		return http.StatusNotFound, "Tag not found."
	case errors.Is(err, domain.ErrArticleNotFound):
		return http.StatusNotFound, "News article not found."
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound, "System account not found."
	case errors.Is(err, domain.ErrAccountInUse):
		return http.StatusBadRequest, "Cannot delete system account that has created or updated news articles."
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Internal server error."
}
