package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/relutech/asset-management/internal/core/domain"
	"github.com/relutech/asset-management/internal/core/ports"
)

// AuthHandler handles login, logout and self-registration.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

type registerRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password1 string `json:"password1"`
	Password2 string `json:"password2"`
}

// Login authenticates a credential pair and returns a session token.
//
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	token, _, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid username or password"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}

	return c.JSON(http.StatusOK, loginResponse{Success: true, Token: token})
}

// Logout revokes the caller's session token.
//
// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]bool
// @Failure      401  {object}  errorResponse
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	jti := ctxSessionID(c)
	if jti == "" {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "Not authorized"})
	}

	if err := h.authService.Logout(c.Request().Context(), jti); err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// Register creates a new non-admin account from the public
// registration form.
//
// @Summary      Register an account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration form"
// @Success      201   {object}  developerResponse
// @Failure      400   {object}  map[string][]string
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	account, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		Password1: req.Password1,
		Password2: req.Password2,
	})
	if err != nil {
		if ve, ok := domain.AsValidationError(err); ok {
			return c.JSON(http.StatusBadRequest, ve)
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}

	return c.JSON(http.StatusCreated, toDeveloperResponse(*account))
}
