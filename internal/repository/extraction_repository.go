//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"chatscan/backend/internal/model"
	"chatscan/backend/pkg/snowflake"
)

// ExtractionRepository defines the interface for extraction result
// storage. The table is append-only; rows are never updated or removed.
type ExtractionRepository interface {
	Create(ctx context.Context, extraction model.Extraction) (model.Extraction, error)
	List(ctx context.Context, limit, offset int) ([]model.Extraction, error)
	CountSince(ctx context.Context, since time.Time) (int, error)
}

type extractionRepository struct {
	db *sql.DB
}

// NewExtractionRepository creates a sqlite-backed extraction repository.
func NewExtractionRepository(db *sql.DB) ExtractionRepository {
	return &extractionRepository{db: db}
}

func (r *extractionRepository) Create(ctx context.Context, extraction model.Extraction) (model.Extraction, error) {
	if extraction.ID == 0 {
		extraction.ID = snowflake.NextID()
	}
	if extraction.CreatedAt.IsZero() {
		extraction.CreatedAt = time.Now().UTC()
	}

	messages, err := encodeMessages(extraction.Messages)
	if err != nil {
		return model.Extraction{}, fmt.Errorf("encode messages: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO extractions (id, batch_id, filename, chat_text, phone_number, chat_date, messages, provider, model, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, extraction.ID, extraction.BatchID, extraction.Filename, extraction.ChatText,
		nullableString(extraction.PhoneNumber), nullableString(extraction.ChatDate),
		messages, extraction.Provider, extraction.Model, formatTime(extraction.CreatedAt))
	if err != nil {
		return model.Extraction{}, fmt.Errorf("insert extraction: %w", err)
	}

	return extraction, nil
}

func (r *extractionRepository) List(ctx context.Context, limit, offset int) ([]model.Extraction, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, batch_id, filename, chat_text, phone_number, chat_date, messages, provider, model, created_at
		FROM extractions ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var extractions []model.Extraction
	for rows.Next() {
		extraction, err := scanExtraction(rows)
		if err != nil {
			return nil, err
		}
		extractions = append(extractions, extraction)
	}
	return extractions, rows.Err()
}

func (r *extractionRepository) CountSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM extractions WHERE created_at >= ?
	`, formatTime(since)).Scan(&count)
	return count, err
}

func scanExtraction(rows *sql.Rows) (model.Extraction, error) {
	var (
		extraction  model.Extraction
		phoneNumber sql.NullString
		chatDate    sql.NullString
		messages    string
		createdAt   string
	)
	if err := rows.Scan(&extraction.ID, &extraction.BatchID, &extraction.Filename,
		&extraction.ChatText, &phoneNumber, &chatDate, &messages,
		&extraction.Provider, &extraction.Model, &createdAt); err != nil {
		return model.Extraction{}, err
	}

	if phoneNumber.Valid {
		extraction.PhoneNumber = &phoneNumber.String
	}
	if chatDate.Valid {
		extraction.ChatDate = &chatDate.String
	}
	if err := json.Unmarshal([]byte(messages), &extraction.Messages); err != nil {
		return model.Extraction{}, fmt.Errorf("decode messages: %w", err)
	}

	parsed, err := parseTime(createdAt)
	if err != nil {
		return model.Extraction{}, fmt.Errorf("parse created_at: %w", err)
	}
	extraction.CreatedAt = parsed
	return extraction, nil
}

func encodeMessages(messages []model.ChatMessage) (string, error) {
	if len(messages) == 0 {
		return "[]", nil
	}
	raw, err := json.Marshal(messages)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
