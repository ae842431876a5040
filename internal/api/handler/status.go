package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/relutech/asset-management/internal/core/domain"
)

// authzStatus is the HTTP status pair for a denied operation.
type authzStatus struct {
	unauthenticated int
	forbidden       int
}

// authzStatuses is the per-operation status table for denied requests.
// The 401/403 split is deliberately uneven: the developers overview is
// the one endpoint answering 403 (for both anonymous and non-admin
// callers), every other guarded endpoint answers 401. This reproduces
// the observed contract of the system being replaced; do not unify it
// without changing the published API.
var authzStatuses = map[domain.Operation]authzStatus{
	domain.OpListDevelopers:  {http.StatusForbidden, http.StatusForbidden},
	domain.OpCreateDeveloper: {http.StatusUnauthorized, http.StatusUnauthorized},
	domain.OpUpdateDeveloper: {http.StatusUnauthorized, http.StatusUnauthorized},
	domain.OpDeleteDeveloper: {http.StatusUnauthorized, http.StatusUnauthorized},
	domain.OpListAssets:      {http.StatusUnauthorized, http.StatusUnauthorized},
	domain.OpAssignAsset:     {http.StatusUnauthorized, http.StatusUnauthorized},
	domain.OpRemoveAsset:     {http.StatusUnauthorized, http.StatusUnauthorized},
	domain.OpListLicenses:    {http.StatusUnauthorized, http.StatusUnauthorized},
	domain.OpAssignLicense:   {http.StatusUnauthorized, http.StatusUnauthorized},
	domain.OpRemoveLicense:   {http.StatusUnauthorized, http.StatusUnauthorized},
	domain.OpViewDashboard:   {http.StatusUnauthorized, http.StatusUnauthorized},
}

// writeServiceError renders a service error for the given operation.
// Returns false when err was not a recognized domain error, so the
// caller can fall through to a 500.
func writeServiceError(c echo.Context, op domain.Operation, err error) (bool, error) {
	st, ok := authzStatuses[op]
	if !ok {
		st = authzStatus{http.StatusUnauthorized, http.StatusUnauthorized}
	}

	switch err {
	case domain.ErrUnauthenticated:
		return true, c.JSON(st.unauthenticated, errorResponse{Error: "Not authorized"})
	case domain.ErrForbidden:
		return true, c.JSON(st.forbidden, errorResponse{Error: "Not authorized"})
	case domain.ErrDeveloperNotFound:
		return true, c.JSON(http.StatusNotFound, errorResponse{Error: "Developer not found"})
	case domain.ErrAssetNotFound:
		return true, c.JSON(http.StatusNotFound, errorResponse{Error: "Asset not found"})
	case domain.ErrLicenseNotFound:
		return true, c.JSON(http.StatusNotFound, errorResponse{Error: "License not found"})
	}

	if ve, ok := domain.AsValidationError(err); ok {
		return true, c.JSON(http.StatusBadRequest, ve)
	}
	return false, nil
}
