package handler_test

import (
	"net/http"
	"testing"
	"time"

	"chatscan/backend/internal/handler"
	"chatscan/backend/internal/model"
	"chatscan/backend/internal/ratelimit"
	"chatscan/backend/internal/service"
	"chatscan/backend/internal/service/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var pngBytes = []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}

func newExtractHandler(t *testing.T) (*handler.ExtractHandler, *mock.MockExtractionService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mock.NewMockExtractionService(ctrl)
	return handler.NewExtractHandler(svc), svc
}

func TestOCR_Success(t *testing.T) {
	h, svc := newExtractHandler(t)
	e := newTestEcho()

	phone := "+62812345678"
	svc.EXPECT().ProcessImage(gomock.Any(), "sk-test", gomock.Any(), gomock.Nil()).
		DoAndReturn(func(_ any, _ string, upload service.Upload, _ *string) (model.Extraction, error) {
			require.Equal(t, "chat.png", upload.Filename)
			require.Equal(t, pngBytes, upload.Data)
			return model.Extraction{
				ID:          7,
				Filename:    upload.Filename,
				ChatText:    "A: hi",
				PhoneNumber: &phone,
				Provider:    "gemini",
				Model:       "gemini-2.0-flash",
				CreatedAt:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			}, nil
		})

	req := newMultipartRequest(t, "/api/ocr", []multipartFile{{field: "image", filename: "chat.png", data: pngBytes}}, nil)
	req.Header.Set("X-API-Key", "sk-test")
	c, rec := newTestContext(e, req)

	require.NoError(t, h.OCR(c))

	var resp handler.OCRResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.True(t, resp.Success)
	require.Equal(t, int64(7), resp.Data.ID)
	require.Equal(t, "chat.png", resp.Data.Filename)
	require.Equal(t, "A: hi", resp.Data.ChatText)
	require.NotNil(t, resp.Data.PhoneNumber)
	require.Equal(t, "2025-03-01T00:00:00Z", resp.Data.CreatedAt)
	require.NotNil(t, resp.Data.Messages)
	require.Nil(t, resp.RateLimit)
}

func TestOCR_EchoesQuotaFromContext(t *testing.T) {
	h, svc := newExtractHandler(t)
	e := newTestEcho()

	svc.EXPECT().ProcessImage(gomock.Any(), "sk-test", gomock.Any(), gomock.Any()).
		Return(model.Extraction{Filename: "chat.png"}, nil)

	req := newMultipartRequest(t, "/api/ocr", []multipartFile{{field: "image", filename: "chat.png", data: pngBytes}}, nil)
	req.Header.Set("X-API-Key", "sk-test")
	c, rec := newTestContext(e, req)
	c.Set(ratelimit.ContextKeyQuota, ratelimit.Quota{Limit: 10, Remaining: 7})

	require.NoError(t, h.OCR(c))

	var resp handler.OCRResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.True(t, resp.Success)
	require.NotNil(t, resp.RateLimit)
	require.Equal(t, 10, resp.RateLimit.Limit)
	require.Equal(t, 7, resp.RateLimit.Remaining)
}

func TestOCR_DateOverride(t *testing.T) {
	h, svc := newExtractHandler(t)
	e := newTestEcho()

	svc.EXPECT().ProcessImage(gomock.Any(), "sk-test", gomock.Any(), gomock.Not(gomock.Nil())).
		DoAndReturn(func(_ any, _ string, upload service.Upload, dateOverride *string) (model.Extraction, error) {
			require.Equal(t, "2024-12-31", *dateOverride)
			return model.Extraction{Filename: upload.Filename, ChatDate: dateOverride}, nil
		})

	req := newMultipartRequest(t, "/api/ocr",
		[]multipartFile{{field: "image", filename: "chat.png", data: pngBytes}},
		map[string]string{"date": "2024-12-31"})
	req.Header.Set("X-API-Key", "sk-test")
	c, rec := newTestContext(e, req)

	require.NoError(t, h.OCR(c))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestOCR_MissingAPIKey(t *testing.T) {
	h, _ := newExtractHandler(t)
	e := newTestEcho()

	req := newMultipartRequest(t, "/api/ocr", []multipartFile{{field: "image", filename: "chat.png", data: pngBytes}}, nil)
	c, rec := newTestContext(e, req)

	require.NoError(t, h.OCR(c))

	var resp handler.ErrorResponse
	assertJSONResponse(t, rec, http.StatusUnauthorized, &resp)
	require.Equal(t, "missing API key", resp.Error)
}

func TestOCR_MissingImageField(t *testing.T) {
	h, _ := newExtractHandler(t)
	e := newTestEcho()

	req := newMultipartRequest(t, "/api/ocr", nil, map[string]string{"date": "2024-12-31"})
	req.Header.Set("X-API-Key", "sk-test")
	c, rec := newTestContext(e, req)

	require.NoError(t, h.OCR(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOCR_ServiceErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "unauthorized", err: service.ErrUnauthorized, status: http.StatusUnauthorized},
		{name: "invalid", err: service.ErrInvalid, status: http.StatusBadRequest},
		{name: "extraction", err: service.ErrExtraction, status: http.StatusBadGateway},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h, svc := newExtractHandler(t)
			e := newTestEcho()

			svc.EXPECT().ProcessImage(gomock.Any(), "sk-test", gomock.Any(), gomock.Any()).
				Return(model.Extraction{}, tc.err)

			req := newMultipartRequest(t, "/api/ocr", []multipartFile{{field: "image", filename: "chat.png", data: pngBytes}}, nil)
			req.Header.Set("X-API-Key", "sk-test")
			c, rec := newTestContext(e, req)

			require.NoError(t, h.OCR(c))
			require.Equal(t, tc.status, rec.Code)
		})
	}
}

func TestProcess_MultipleFiles(t *testing.T) {
	h, svc := newExtractHandler(t)
	e := newTestEcho()

	svc.EXPECT().ProcessBatch(gomock.Any(), "sk-test", gomock.Any()).
		DoAndReturn(func(_ any, _ string, uploads []service.Upload) (*service.BatchResult, error) {
			require.Len(t, uploads, 2)
			require.Equal(t, "a.png", uploads[0].Filename)
			require.Equal(t, "b.jpg", uploads[1].Filename)
			extraction := model.Extraction{Filename: "a.png", BatchID: "batch-1"}
			return &service.BatchResult{
				BatchID: "batch-1",
				Items: []service.BatchItem{
					{Filename: "a.png", Extraction: &extraction},
					{Filename: "b.jpg", Error: "extraction failed"},
				},
			}, nil
		})

	req := newMultipartRequest(t, "/api/process", []multipartFile{
		{field: "images", filename: "a.png", data: pngBytes},
		{field: "images", filename: "b.jpg", data: pngBytes},
	}, nil)
	req.Header.Set("X-API-Key", "sk-test")
	c, rec := newTestContext(e, req)

	require.NoError(t, h.Process(c))

	var resp handler.BatchResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.True(t, resp.Success)
	require.Equal(t, "batch-1", resp.BatchID)
	require.Len(t, resp.Results, 2)
	require.NotNil(t, resp.Results[0].Extraction)
	require.Equal(t, "batch-1", resp.Results[0].Extraction.BatchID)
	require.Nil(t, resp.Results[1].Extraction)
	require.Equal(t, "extraction failed", resp.Results[1].Error)
}

func TestProcess_NoFiles(t *testing.T) {
	h, _ := newExtractHandler(t)
	e := newTestEcho()

	req := newMultipartRequest(t, "/api/process", nil, map[string]string{"note": "empty"})
	req.Header.Set("X-API-Key", "sk-test")
	c, rec := newTestContext(e, req)

	require.NoError(t, h.Process(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProcess_MissingAPIKey(t *testing.T) {
	h, _ := newExtractHandler(t)
	e := newTestEcho()

	req := newMultipartRequest(t, "/api/process", []multipartFile{{field: "images", filename: "a.png", data: pngBytes}}, nil)
	c, rec := newTestContext(e, req)

	require.NoError(t, h.Process(c))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestValidateKey_Valid(t *testing.T) {
	h, svc := newExtractHandler(t)
	e := newTestEcho()

	svc.EXPECT().ValidateKey(gomock.Any(), "sk-test").Return(nil)

	req := newJSONRequest(http.MethodPost, "/api/validate-key", map[string]string{"apiKey": "sk-test"})
	c, rec := newTestContext(e, req)

	require.NoError(t, h.ValidateKey(c))

	var resp handler.ValidateKeyResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.True(t, resp.Valid)
}

func TestValidateKey_Invalid(t *testing.T) {
	h, svc := newExtractHandler(t)
	e := newTestEcho()

	svc.EXPECT().ValidateKey(gomock.Any(), "sk-bad").Return(service.ErrUnauthorized)

	req := newJSONRequest(http.MethodPost, "/api/validate-key", map[string]string{"apiKey": "sk-bad"})
	c, rec := newTestContext(e, req)

	require.NoError(t, h.ValidateKey(c))

	var resp handler.ValidateKeyResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.False(t, resp.Valid)
	require.Equal(t, "invalid API key", resp.Message)
}

func TestValidateKey_HeaderFallback(t *testing.T) {
	h, svc := newExtractHandler(t)
	e := newTestEcho()

	svc.EXPECT().ValidateKey(gomock.Any(), "sk-header").Return(nil)

	req := newJSONRequest(http.MethodPost, "/api/validate-key", map[string]string{})
	req.Header.Set("X-API-Key", "sk-header")
	c, rec := newTestContext(e, req)

	require.NoError(t, h.ValidateKey(c))
	require.Equal(t, http.StatusOK, rec.Code)
}
