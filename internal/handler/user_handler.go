package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"trainingdiary/internal/authn"
)

// UserHandler serves the authenticated user's profile.
type UserHandler struct{}

// NewUserHandler creates a user handler.
func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// Me godoc
// @Summary Current user
// @Tags users
// @Produce json
// @Security AuthToken
// @Success 200 {object} model.User
// @Failure 401
// @Router /users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, authn.CurrentUser(c))
}
