package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/relutech/asset-management/internal/core/domain"
	"github.com/relutech/asset-management/internal/core/ports"
)

// AssetHandler handles hardware assignment endpoints.
type AssetHandler struct {
	service ports.AssetService
}

func NewAssetHandler(service ports.AssetService) *AssetHandler {
	return &AssetHandler{service: service}
}

type assignAssetRequest struct {
	Brand string `json:"brand"`
	Model string `json:"model"`
	Type  string `json:"type"`
}

// List handles GET /assets and GET /assets/:developer_id.
//
// @Summary      List assets
// @Tags         assets
// @Produce      json
// @Security     BearerAuth
// @Param        developer_id  path      string  false  "Developer ID to filter by"
// @Success      200           {array}   assetResponse
// @Failure      401           {object}  errorResponse
// @Router       /assets [get]
func (h *AssetHandler) List(c echo.Context) error {
	assets, err := h.service.List(c.Request().Context(), ctxIdentity(c), c.Param("developer_id"))
	if err != nil {
		if handled, werr := writeServiceError(c, domain.OpListAssets, err); handled {
			return werr
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
	return c.JSON(http.StatusOK, toAssetResponses(assets))
}

// Assign handles POST /assets/:developer_id.
//
// @Summary      Assign an asset to a developer
// @Tags         assets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        developer_id  path      string              true  "Developer ID"
// @Param        body          body      assignAssetRequest  true  "Asset details"
// @Success      201           {array}   assetResponse
// @Failure      400           {object}  map[string][]string
// @Failure      401           {object}  errorResponse
// @Failure      404           {object}  errorResponse
// @Router       /assets/{developer_id} [post]
func (h *AssetHandler) Assign(c echo.Context) error {
	var req assignAssetRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	assets, err := h.service.Assign(c.Request().Context(), ctxIdentity(c), c.Param("developer_id"), ports.AssignAssetInput{
		Brand: req.Brand,
		Model: req.Model,
		Type:  req.Type,
	})
	if err != nil {
		if handled, werr := writeServiceError(c, domain.OpAssignAsset, err); handled {
			return werr
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}

	return c.JSON(http.StatusCreated, toAssetResponses(assets))
}

// Remove handles DELETE /assets/:developer_id/:asset_id.
//
// @Summary      Remove an asset from a developer
// @Tags         assets
// @Produce      json
// @Security     BearerAuth
// @Param        developer_id  path      string  true  "Developer ID"
// @Param        asset_id      path      string  true  "Asset ID"
// @Success      200           {array}   assetResponse
// @Failure      401           {object}  errorResponse
// @Failure      404           {object}  errorResponse
// @Router       /assets/{developer_id}/{asset_id} [delete]
func (h *AssetHandler) Remove(c echo.Context) error {
	assets, err := h.service.Remove(c.Request().Context(), ctxIdentity(c), c.Param("developer_id"), c.Param("asset_id"))
	if err != nil {
		if handled, werr := writeServiceError(c, domain.OpRemoveAsset, err); handled {
			return werr
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
	return c.JSON(http.StatusOK, toAssetResponses(assets))
}
