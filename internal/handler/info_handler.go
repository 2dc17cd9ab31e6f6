package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// InfoResponse identifies the API.
type InfoResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// InfoHandler serves the API root.
type InfoHandler struct {
	info InfoResponse
}

// NewInfoHandler creates a new info handler.
func NewInfoHandler(name, version string) *InfoHandler {
	return &InfoHandler{info: InfoResponse{Name: name, Version: version}}
}

// Info godoc
// @Summary API name and version
// @Tags info
// @Produce json
// @Success 200 {object} InfoResponse
// @Router / [get]
func (h *InfoHandler) Info(c echo.Context) error {
	return c.JSON(http.StatusOK, h.info)
}
