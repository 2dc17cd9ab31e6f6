package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "trainingdiary/internal/errors"
	"trainingdiary/internal/logging"
)

// respondError writes err as mapped by MapErrorToHTTP: 404 and 401 carry no body,
// 400 carries {error: message}.
func respondError(c echo.Context, log logging.Logger, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	if httpErr.StatusCode >= 500 {
		log.Error(c.Request().Context(), "request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
	}
	if !httpErr.HasBody() {
		return c.NoContent(httpErr.StatusCode)
	}
	return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// badRequest answers a body that could not be decoded.
func badRequest(c echo.Context, err error) error {
	msg := "invalid request body"
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if s, ok := he.Message.(string); ok {
			msg = s
		}
	}
	return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: msg})
}
