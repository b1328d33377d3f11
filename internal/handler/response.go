package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"chatscan/backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeServiceError maps service sentinel errors to HTTP responses.
// Provider error details never reach the client.
func writeServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalid):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	case errors.Is(err, service.ErrUnauthorized):
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid API key"})
	case errors.Is(err, service.ErrExtraction):
		return c.JSON(http.StatusBadGateway, errorResponse{Error: "extraction failed"})
	default:
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func writeError(c echo.Context, status int, message string) error {
	return c.JSON(status, errorResponse{Error: message})
}
