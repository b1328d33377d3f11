package service

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"chatscan/backend/internal/model"
	"chatscan/backend/internal/repository"
)

const (
	defaultResultLimit = 50
	maxResultLimit     = 500
	exportLimit        = 5000
)

var csvHeader = []string{"id", "batch_id", "filename", "phone_number", "chat_date", "chat_text", "provider", "model", "created_at"}

type ResultService interface {
	List(ctx context.Context, limit, offset int) ([]model.Extraction, error)
	WriteCSV(ctx context.Context, w io.Writer) error
}

type resultService struct {
	repo repository.ExtractionRepository
}

func NewResultService(repo repository.ExtractionRepository) ResultService {
	return &resultService{repo: repo}
}

func (s *resultService) List(ctx context.Context, limit, offset int) ([]model.Extraction, error) {
	if limit <= 0 {
		limit = defaultResultLimit
	}
	if limit > maxResultLimit {
		limit = maxResultLimit
	}
	if offset < 0 {
		return nil, fmt.Errorf("%w: negative offset", ErrInvalid)
	}
	return s.repo.List(ctx, limit, offset)
}

func (s *resultService) WriteCSV(ctx context.Context, w io.Writer) error {
	extractions, err := s.repo.List(ctx, exportLimit, 0)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, e := range extractions {
		record := []string{
			strconv.FormatInt(e.ID, 10),
			e.BatchID,
			e.Filename,
			strOrEmpty(e.PhoneNumber),
			strOrEmpty(e.ChatDate),
			e.ChatText,
			e.Provider,
			e.Model,
			e.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
