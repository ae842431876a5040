package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/relutech/asset-management/internal/core/domain"
	"github.com/relutech/asset-management/internal/core/ports"
)

// LicenseHandler mirrors AssetHandler for software licenses.
type LicenseHandler struct {
	service ports.LicenseService
}

func NewLicenseHandler(service ports.LicenseService) *LicenseHandler {
	return &LicenseHandler{service: service}
}

type assignLicenseRequest struct {
	Software string `json:"software"`
}

// List handles GET /licenses and GET /licenses/:developer_id.
//
// @Summary      List licenses
// @Tags         licenses
// @Produce      json
// @Security     BearerAuth
// @Param        developer_id  path      string  false  "Developer ID to filter by"
// @Success      200           {array}   licenseResponse
// @Failure      401           {object}  errorResponse
// @Router       /licenses [get]
func (h *LicenseHandler) List(c echo.Context) error {
	licenses, err := h.service.List(c.Request().Context(), ctxIdentity(c), c.Param("developer_id"))
	if err != nil {
		if handled, werr := writeServiceError(c, domain.OpListLicenses, err); handled {
			return werr
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
	return c.JSON(http.StatusOK, toLicenseResponses(licenses))
}

// Assign handles POST /licenses/:developer_id.
//
// @Summary      Assign a license to a developer
// @Tags         licenses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        developer_id  path      string                true  "Developer ID"
// @Param        body          body      assignLicenseRequest  true  "License details"
// @Success      201           {array}   licenseResponse
// @Failure      400           {object}  map[string][]string
// @Failure      401           {object}  errorResponse
// @Failure      404           {object}  errorResponse
// @Router       /licenses/{developer_id} [post]
func (h *LicenseHandler) Assign(c echo.Context) error {
	var req assignLicenseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	licenses, err := h.service.Assign(c.Request().Context(), ctxIdentity(c), c.Param("developer_id"), ports.AssignLicenseInput{
		Software: req.Software,
	})
	if err != nil {
		if handled, werr := writeServiceError(c, domain.OpAssignLicense, err); handled {
			return werr
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}

	return c.JSON(http.StatusCreated, toLicenseResponses(licenses))
}

// Remove handles DELETE /licenses/:developer_id/:license_id.
//
// @Summary      Remove a license from a developer
// @Tags         licenses
// @Produce      json
// @Security     BearerAuth
// @Param        developer_id  path      string  true  "Developer ID"
// @Param        license_id    path      string  true  "License ID"
// @Success      200           {array}   licenseResponse
// @Failure      401           {object}  errorResponse
// @Failure      404           {object}  errorResponse
// @Router       /licenses/{developer_id}/{license_id} [delete]
func (h *LicenseHandler) Remove(c echo.Context) error {
	licenses, err := h.service.Remove(c.Request().Context(), ctxIdentity(c), c.Param("developer_id"), c.Param("license_id"))
	if err != nil {
		if handled, werr := writeServiceError(c, domain.OpRemoveLicense, err); handled {
			return werr
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
	return c.JSON(http.StatusOK, toLicenseResponses(licenses))
}
