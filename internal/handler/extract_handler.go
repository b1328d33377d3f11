package handler

import (
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"chatscan/backend/internal/model"
	"chatscan/backend/internal/ratelimit"
	"chatscan/backend/internal/service"
)

const apiKeyHeader = "X-API-Key"

type ExtractHandler struct {
	service service.ExtractionService
}

type validateKeyRequest struct {
	APIKey string `json:"apiKey"`
}

type validateKeyResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

type extractionResponse struct {
	ID          int64               `json:"id,string"`
	BatchID     string              `json:"batchId,omitempty"`
	Filename    string              `json:"filename"`
	ChatText    string              `json:"chatText"`
	PhoneNumber *string             `json:"phoneNumber,omitempty"`
	ChatDate    *string             `json:"chatDate,omitempty"`
	Messages    []model.ChatMessage `json:"messages"`
	Provider    string              `json:"provider"`
	Model       string              `json:"model"`
	CreatedAt   string              `json:"createdAt"`
}

type rateLimitInfo struct {
	Limit     int `json:"limit"`
	Remaining int `json:"remaining"`
}

type ocrResponse struct {
	Success   bool               `json:"success"`
	Data      extractionResponse `json:"data"`
	RateLimit *rateLimitInfo     `json:"rateLimit,omitempty"`
}

type batchItemResponse struct {
	Filename   string              `json:"filename"`
	Extraction *extractionResponse `json:"extraction,omitempty"`
	Error      string              `json:"error,omitempty"`
}

type batchResponse struct {
	Success bool                `json:"success"`
	BatchID string              `json:"batchId"`
	Results []batchItemResponse `json:"results"`
}

func NewExtractHandler(service service.ExtractionService) *ExtractHandler {
	return &ExtractHandler{service: service}
}

// RegisterRoutes wires the extraction endpoints. The variadic
// middleware applies to the quota-consuming routes only.
func (h *ExtractHandler) RegisterRoutes(g *echo.Group, limited ...echo.MiddlewareFunc) {
	g.POST("/ocr", h.OCR, limited...)
	g.POST("/process", h.Process, limited...)
	g.POST("/validate-key", h.ValidateKey)
}

func (h *ExtractHandler) OCR(c echo.Context) error {
	apiKey := c.Request().Header.Get(apiKeyHeader)
	if apiKey == "" {
		return writeError(c, http.StatusUnauthorized, "missing API key")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return writeError(c, http.StatusBadRequest, "missing image field")
	}
	upload, err := readUpload(fileHeader)
	if err != nil {
		return writeError(c, http.StatusBadRequest, "unreadable upload")
	}

	var dateOverride *string
	if raw := c.FormValue("date"); raw != "" {
		dateOverride = &raw
	}

	extraction, err := h.service.ProcessImage(c.Request().Context(), apiKey, upload, dateOverride)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, ocrResponse{
		Success:   true,
		Data:      toExtractionResponse(extraction),
		RateLimit: quotaInfo(c),
	})
}

func (h *ExtractHandler) Process(c echo.Context) error {
	apiKey := c.Request().Header.Get(apiKeyHeader)
	if apiKey == "" {
		return writeError(c, http.StatusUnauthorized, "missing API key")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return writeError(c, http.StatusBadRequest, "invalid multipart form")
	}
	files := form.File["images"]
	if len(files) == 0 {
		return writeError(c, http.StatusBadRequest, "missing images field")
	}

	uploads := make([]service.Upload, 0, len(files))
	for _, fileHeader := range files {
		upload, err := readUpload(fileHeader)
		if err != nil {
			return writeError(c, http.StatusBadRequest, "unreadable upload")
		}
		uploads = append(uploads, upload)
	}

	result, err := h.service.ProcessBatch(c.Request().Context(), apiKey, uploads)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toBatchResponse(result))
}

func (h *ExtractHandler) ValidateKey(c echo.Context) error {
	var req validateKeyRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid request")
	}
	if req.APIKey == "" {
		req.APIKey = c.Request().Header.Get(apiKeyHeader)
	}

	if err := h.service.ValidateKey(c.Request().Context(), req.APIKey); err != nil {
		return c.JSON(http.StatusOK, validateKeyResponse{Valid: false, Message: "invalid API key"})
	}
	return c.JSON(http.StatusOK, validateKeyResponse{Valid: true, Message: "API key is valid"})
}

func readUpload(fileHeader *multipart.FileHeader) (service.Upload, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return service.Upload{}, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return service.Upload{}, err
	}
	return service.Upload{Filename: fileHeader.Filename, Data: data}, nil
}

func toExtractionResponse(extraction model.Extraction) extractionResponse {
	messages := extraction.Messages
	if messages == nil {
		messages = []model.ChatMessage{}
	}
	return extractionResponse{
		ID:          extraction.ID,
		BatchID:     extraction.BatchID,
		Filename:    extraction.Filename,
		ChatText:    extraction.ChatText,
		PhoneNumber: extraction.PhoneNumber,
		ChatDate:    extraction.ChatDate,
		Messages:    messages,
		Provider:    extraction.Provider,
		Model:       extraction.Model,
		CreatedAt:   extraction.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toBatchResponse(result *service.BatchResult) batchResponse {
	results := make([]batchItemResponse, 0, len(result.Items))
	for _, item := range result.Items {
		out := batchItemResponse{Filename: item.Filename, Error: item.Error}
		if item.Extraction != nil {
			converted := toExtractionResponse(*item.Extraction)
			out.Extraction = &converted
		}
		results = append(results, out)
	}
	return batchResponse{Success: true, BatchID: result.BatchID, Results: results}
}

// quotaInfo reads the admission snapshot the rate limit middleware left
// in the request context. Nil when the route is unmetered.
func quotaInfo(c echo.Context) *rateLimitInfo {
	quota, ok := c.Get(ratelimit.ContextKeyQuota).(ratelimit.Quota)
	if !ok {
		return nil
	}
	return &rateLimitInfo{Limit: quota.Limit, Remaining: quota.Remaining}
}
