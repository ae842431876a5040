package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/relutech/asset-management/internal/core/domain"
)

// errorResponse is the canonical error envelope for errors that escape
// the handlers (handlers render their own domain errors; this catches
// router-level failures and anything unexpected).
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to deterministic status codes.
//   - Logs unexpected errors without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusBadRequest, "Invalid username or password"
	case errors.Is(err, domain.ErrUnauthenticated), errors.Is(err, domain.ErrForbidden):
		return http.StatusUnauthorized, "Not authorized"
	case errors.Is(err, domain.ErrDeveloperNotFound):
		return http.StatusNotFound, "Developer not found"
	case errors.Is(err, domain.ErrAssetNotFound):
		return http.StatusNotFound, "Asset not found"
	case errors.Is(err, domain.ErrLicenseNotFound):
		return http.StatusNotFound, "License not found"
	case errors.Is(err, domain.ErrAccountExists):
		return http.StatusBadRequest, "account already exists"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
