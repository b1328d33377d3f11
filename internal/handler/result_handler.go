package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"chatscan/backend/internal/service"
)

type ResultHandler struct {
	service service.ResultService
}

type resultListResponse struct {
	Results []extractionResponse `json:"results"`
}

func NewResultHandler(service service.ResultService) *ResultHandler {
	return &ResultHandler{service: service}
}

func (h *ResultHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/results", h.List)
	g.GET("/results/export", h.Export)
}

func (h *ResultHandler) List(c echo.Context) error {
	limit, err := parseQueryInt(c, "limit", 0)
	if err != nil {
		return writeError(c, http.StatusBadRequest, "invalid request")
	}
	offset, err := parseQueryInt(c, "offset", 0)
	if err != nil {
		return writeError(c, http.StatusBadRequest, "invalid request")
	}

	extractions, err := h.service.List(c.Request().Context(), limit, offset)
	if err != nil {
		return writeServiceError(c, err)
	}

	results := make([]extractionResponse, 0, len(extractions))
	for _, extraction := range extractions {
		results = append(results, toExtractionResponse(extraction))
	}
	return c.JSON(http.StatusOK, resultListResponse{Results: results})
}

func (h *ResultHandler) Export(c echo.Context) error {
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	res.Header().Set(echo.HeaderContentDisposition, `attachment; filename="extractions.csv"`)
	res.WriteHeader(http.StatusOK)
	return h.service.WriteCSV(c.Request().Context(), res)
}

func parseQueryInt(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
