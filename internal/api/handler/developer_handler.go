package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/relutech/asset-management/internal/core/domain"
	"github.com/relutech/asset-management/internal/core/ports"
)

// DeveloperHandler handles the admin-facing developer roster.
type DeveloperHandler struct {
	service ports.DeveloperService
}

func NewDeveloperHandler(service ports.DeveloperService) *DeveloperHandler {
	return &DeveloperHandler{service: service}
}

type createDeveloperRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password1 string `json:"password1"`
	Password2 string `json:"password2"`
}

type updateDeveloperRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	IsActive *bool   `json:"is_active"`
	IsAdmin  *bool   `json:"is_admin"`
}

// Overview handles GET /developers.
//
// @Summary      Get developers, their assets and licenses
// @Tags         developers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  overviewResponse
// @Failure      403  {object}  errorResponse
// @Router       /developers [get]
func (h *DeveloperHandler) Overview(c echo.Context) error {
	overview, err := h.service.Overview(c.Request().Context(), ctxIdentity(c))
	if err != nil {
		if handled, werr := writeServiceError(c, domain.OpListDevelopers, err); handled {
			return werr
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
	return c.JSON(http.StatusOK, toOverviewResponse(overview))
}

// Create handles POST /developers.
//
// @Summary      Create a developer account
// @Tags         developers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createDeveloperRequest  true  "Developer details"
// @Success      201   {array}   developerResponse
// @Failure      400   {object}  map[string][]string
// @Failure      401   {object}  errorResponse
// @Router       /developers [post]
func (h *DeveloperHandler) Create(c echo.Context) error {
	var req createDeveloperRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	roster, err := h.service.Create(c.Request().Context(), ctxIdentity(c), ports.CreateDeveloperInput{
		Username:  req.Username,
		Email:     req.Email,
		Password1: req.Password1,
		Password2: req.Password2,
	})
	if err != nil {
		if handled, werr := writeServiceError(c, domain.OpCreateDeveloper, err); handled {
			return werr
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}

	return c.JSON(http.StatusCreated, toDeveloperResponses(roster))
}

// Update handles PUT /developers/:id.
//
// @Summary      Update a developer
// @Tags         developers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                  true  "Developer ID"
// @Param        body  body      updateDeveloperRequest  true  "Fields to update"
// @Success      200   {array}   developerResponse
// @Failure      400   {object}  map[string][]string
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /developers/{id} [put]
func (h *DeveloperHandler) Update(c echo.Context) error {
	var req updateDeveloperRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	roster, err := h.service.Update(c.Request().Context(), ctxIdentity(c), c.Param("id"), ports.UpdateDeveloperInput{
		Username: req.Username,
		Email:    req.Email,
		IsActive: req.IsActive,
		IsAdmin:  req.IsAdmin,
	})
	if err != nil {
		if handled, werr := writeServiceError(c, domain.OpUpdateDeveloper, err); handled {
			return werr
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}

	return c.JSON(http.StatusOK, toDeveloperResponses(roster))
}

// Dashboard handles GET /dashboard — the caller's own view.
//
// @Summary      View own dashboard
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  errorResponse
// @Router       /dashboard [get]
func (h *DeveloperHandler) Dashboard(c echo.Context) error {
	view, err := h.service.Dashboard(c.Request().Context(), ctxIdentity(c))
	if err != nil {
		if handled, werr := writeServiceError(c, domain.OpViewDashboard, err); handled {
			return werr
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}

	resp := map[string]any{
		"user":     toDeveloperResponse(view.Account),
		"assets":   toAssetResponses(view.Assets),
		"licenses": toLicenseResponses(view.Licenses),
	}
	if view.Developers != nil {
		resp["developers"] = toDeveloperResponses(view.Developers)
	}
	return c.JSON(http.StatusOK, resp)
}
