package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/relutech/asset-management/internal/core/domain"
)

// Context keys set by the auth middleware.
const (
	CtxIdentity  = "identity"
	CtxSessionID = "session_id"
)

// ctxIdentity extracts the caller identity injected by the auth
// middleware. Returns nil for anonymous requests; the services treat
// nil as unauthenticated, so no fast-fail happens here.
func ctxIdentity(c echo.Context) *domain.Identity {
	identity, _ := c.Get(CtxIdentity).(*domain.Identity)
	return identity
}

// ctxSessionID extracts the session id (JWT jti) of the caller, empty
// for anonymous requests.
func ctxSessionID(c echo.Context) string {
	jti, _ := c.Get(CtxSessionID).(string)
	return jti
}
