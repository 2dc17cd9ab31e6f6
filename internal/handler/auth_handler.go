package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"trainingdiary/internal/authn"
	"trainingdiary/internal/logging"
	"trainingdiary/internal/model"
	"trainingdiary/internal/service"
)

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	authService service.AuthService
	log         logging.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, log logging.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, log: log}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// ValidationEntity names the document in validation messages.
func (RegisterRequest) ValidationEntity() string { return "User" }

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register godoc
// @Summary Register a new user
// @Description The auth token is returned in the x-auth response header.
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 200 {object} model.User
// @Header 200 {string} x-auth "auth token"
// @Failure 400 {object} errors.ErrorResponse
// @Router /users [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}

	req.Email = model.NormalizeEmail(req.Email)
	if err := c.Validate(&req); err != nil {
		return respondError(c, h.log, err)
	}

	ctx := c.Request().Context()
	user, err := h.authService.Register(ctx, req.Email, req.Password)
	if err != nil {
		return respondError(c, h.log, err)
	}

	token, err := h.authService.GenerateAuthToken(ctx, user)
	if err != nil {
		return respondError(c, h.log, err)
	}

	c.Response().Header().Set(authn.HeaderAuth, token)
	return c.JSON(http.StatusOK, user)
}

// Login godoc
// @Summary Login user
// @Description Every login issues a new token; earlier tokens stay valid.
// @Tags users
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} model.User
// @Header 200 {string} x-auth "auth token"
// @Failure 400 "invalid credentials"
// @Router /users/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	ctx := c.Request().Context()
	user, err := h.authService.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return respondError(c, h.log, err)
	}

	token, err := h.authService.GenerateAuthToken(ctx, user)
	if err != nil {
		return respondError(c, h.log, err)
	}

	c.Response().Header().Set(authn.HeaderAuth, token)
	return c.JSON(http.StatusOK, user)
}

// Logout godoc
// @Summary Revoke the current token
// @Tags users
// @Security AuthToken
// @Success 200
// @Failure 400
// @Failure 401
// @Router /users/me/token [delete]
func (h *AuthHandler) Logout(c echo.Context) error {
	user := authn.CurrentUser(c)
	if err := h.authService.Logout(c.Request().Context(), user.ID, authn.CurrentToken(c)); err != nil {
		h.log.Warn(c.Request().Context(), "logout failed", "user_id", user.ID, "error", err)
		return c.NoContent(http.StatusBadRequest)
	}
	return c.NoContent(http.StatusOK)
}
