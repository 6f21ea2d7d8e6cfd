package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"coderev/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeError sends a JSON error body with the given status.
func writeError(c echo.Context, status int, message string) error {
	return c.JSON(status, errorResponse{Error: message})
}

// writeServiceError maps service sentinels to HTTP responses.
func writeServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalid):
		return writeError(c, http.StatusBadRequest, "invalid request")
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, http.StatusNotFound, "repository not found")
	case errors.Is(err, service.ErrFetchFailed):
		return writeError(c, http.StatusBadGateway, "repository fetch failed")
	case errors.Is(err, service.ErrAnalyzeFailed):
		return writeError(c, http.StatusBadGateway, "code analysis failed")
	}
	return writeError(c, http.StatusInternalServerError, "internal error")
}
