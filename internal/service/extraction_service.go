package service

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"chatscan/backend/internal/logger"
	"chatscan/backend/internal/metrics"
	"chatscan/backend/internal/model"
	"chatscan/backend/internal/repository"
	"chatscan/backend/internal/service/ai"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// batchConcurrency caps how many images of a batch are extracted at once.
const batchConcurrency = 4

var allowedImageTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".bmp":  "image/bmp",
	".webp": "image/webp",
}

// Upload is a single image file received from a client.
type Upload struct {
	Filename string
	Data     []byte
}

// BatchItem is the outcome of one file within a batch.
type BatchItem struct {
	Filename   string            `json:"filename"`
	Extraction *model.Extraction `json:"extraction,omitempty"`
	Error      string            `json:"error,omitempty"`
}

// BatchResult groups the outcomes of a multi-file request under one batch ID.
type BatchResult struct {
	BatchID string      `json:"batch_id"`
	Items   []BatchItem `json:"items"`
}

type ExtractionService interface {
	ProcessImage(ctx context.Context, apiKey string, upload Upload, dateOverride *string) (model.Extraction, error)
	ProcessBatch(ctx context.Context, apiKey string, uploads []Upload) (*BatchResult, error)
	ValidateKey(ctx context.Context, apiKey string) error
}

type extractionService struct {
	factory ai.Factory
	pace    *ai.RateLimiter
	repo    repository.ExtractionRepository
}

func NewExtractionService(factory ai.Factory, pace *ai.RateLimiter, repo repository.ExtractionRepository) ExtractionService {
	return &extractionService{factory: factory, pace: pace, repo: repo}
}

func (s *extractionService) ProcessImage(ctx context.Context, apiKey string, upload Upload, dateOverride *string) (model.Extraction, error) {
	img, err := validateUpload(upload)
	if err != nil {
		return model.Extraction{}, err
	}
	if apiKey == "" {
		return model.Extraction{}, fmt.Errorf("%w: missing API key", ErrUnauthorized)
	}

	provider, err := s.factory(apiKey)
	if err != nil {
		return model.Extraction{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	if err := s.pace.Wait(ctx); err != nil {
		return model.Extraction{}, err
	}

	metrics.ExtractionsTotal.Inc()
	raw, err := provider.ExtractChat(ctx, ai.ExtractionPrompt(), img)
	if err != nil {
		metrics.ExtractionErrors.Inc()
		if ai.IsAuthError(err) {
			return model.Extraction{}, fmt.Errorf("%w: API key rejected", ErrUnauthorized)
		}
		logger.Error("chat extraction failed", "filename", upload.Filename, "error", err)
		return model.Extraction{}, fmt.Errorf("%w: %s", ErrExtraction, upload.Filename)
	}

	result, structured := ai.ParseResult(raw)
	if !structured {
		logger.Warn("extraction returned unstructured text", "filename", upload.Filename)
	}

	extraction := model.Extraction{
		Filename:    upload.Filename,
		ChatText:    result.ChatText,
		PhoneNumber: result.PhoneNumber,
		ChatDate:    result.Date,
		Messages:    result.Messages,
		Provider:    provider.Name(),
		Model:       provider.Model(),
	}
	if dateOverride != nil && *dateOverride != "" {
		extraction.ChatDate = dateOverride
	}

	return s.repo.Create(ctx, extraction)
}

func (s *extractionService) ProcessBatch(ctx context.Context, apiKey string, uploads []Upload) (*BatchResult, error) {
	if len(uploads) == 0 {
		return nil, fmt.Errorf("%w: no files supplied", ErrInvalid)
	}

	batchID := uuid.NewString()
	items := make([]BatchItem, len(uploads))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)

	var mu sync.Mutex
	for i, upload := range uploads {
		g.Go(func() error {
			extraction, err := s.processBatchItem(gctx, apiKey, batchID, upload)

			mu.Lock()
			defer mu.Unlock()
			items[i] = BatchItem{Filename: upload.Filename}
			if err != nil {
				items[i].Error = publicError(err)
				return nil
			}
			items[i].Extraction = &extraction
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &BatchResult{BatchID: batchID, Items: items}, nil
}

func (s *extractionService) processBatchItem(ctx context.Context, apiKey, batchID string, upload Upload) (model.Extraction, error) {
	img, err := validateUpload(upload)
	if err != nil {
		return model.Extraction{}, err
	}

	provider, err := s.factory(apiKey)
	if err != nil {
		return model.Extraction{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	if err := s.pace.Wait(ctx); err != nil {
		return model.Extraction{}, err
	}

	metrics.ExtractionsTotal.Inc()
	raw, err := provider.ExtractChat(ctx, ai.ExtractionPrompt(), img)
	if err != nil {
		metrics.ExtractionErrors.Inc()
		if ai.IsAuthError(err) {
			return model.Extraction{}, fmt.Errorf("%w: API key rejected", ErrUnauthorized)
		}
		logger.Error("chat extraction failed", "batch_id", batchID, "filename", upload.Filename, "error", err)
		return model.Extraction{}, fmt.Errorf("%w: %s", ErrExtraction, upload.Filename)
	}

	result, _ := ai.ParseResult(raw)
	extraction := model.Extraction{
		BatchID:     batchID,
		Filename:    upload.Filename,
		ChatText:    result.ChatText,
		PhoneNumber: result.PhoneNumber,
		ChatDate:    result.Date,
		Messages:    result.Messages,
		Provider:    provider.Name(),
		Model:       provider.Model(),
	}
	return s.repo.Create(ctx, extraction)
}

func (s *extractionService) ValidateKey(ctx context.Context, apiKey string) error {
	if apiKey == "" {
		return fmt.Errorf("%w: missing API key", ErrUnauthorized)
	}
	provider, err := s.factory(apiKey)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := provider.Test(ctx); err != nil {
		if ai.IsAuthError(err) {
			return fmt.Errorf("%w: API key rejected", ErrUnauthorized)
		}
		return fmt.Errorf("%w: %v", ErrExtraction, err)
	}
	return nil
}

func validateUpload(upload Upload) (ai.Image, error) {
	if upload.Filename == "" {
		return ai.Image{}, fmt.Errorf("%w: missing filename", ErrInvalid)
	}
	if len(upload.Data) == 0 {
		return ai.Image{}, fmt.Errorf("%w: empty file %s", ErrInvalid, upload.Filename)
	}
	ext := strings.ToLower(filepath.Ext(upload.Filename))
	mimeType, ok := allowedImageTypes[ext]
	if !ok {
		return ai.Image{}, fmt.Errorf("%w: unsupported file type %s", ErrInvalid, upload.Filename)
	}
	return ai.Image{Filename: upload.Filename, MimeType: mimeType, Data: upload.Data}, nil
}

// publicError keeps provider internals out of per-file batch errors.
func publicError(err error) string {
	switch {
	case errors.Is(err, ErrUnauthorized):
		return "API key rejected"
	case errors.Is(err, ErrInvalid):
		return strings.TrimPrefix(err.Error(), ErrInvalid.Error()+": ")
	case errors.Is(err, ErrExtraction):
		return "extraction failed"
	default:
		return "internal error"
	}
}
