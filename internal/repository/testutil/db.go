package testutil

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"chatscan/backend/internal/db"
	"chatscan/backend/internal/model"
	"chatscan/backend/pkg/snowflake"

	_ "modernc.org/sqlite"
)

// snowflakeOnce keeps the ID node initialization to a single call
// across parallel tests.
var snowflakeOnce sync.Once

// NewTestDB creates an in-memory sqlite database with all migrations
// applied.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	snowflakeOnce.Do(func() {
		if err := snowflake.Init(0); err != nil {
			panic("failed to initialize snowflake: " + err.Error())
		}
	})

	// Shared cache keeps the in-memory database alive across
	// connections; the name is unique per test to avoid collisions.
	dbName := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name(), time.Now().UnixNano())
	database, err := sql.Open("sqlite", dbName)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Migrate(database); err != nil {
		database.Close()
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		database.Close()
	})

	return database
}

// SeedExtraction inserts one extraction row and returns its ID.
func SeedExtraction(t *testing.T, database *sql.DB, extraction model.Extraction) int64 {
	t.Helper()

	if extraction.ID == 0 {
		extraction.ID = snowflake.NextID()
	}
	if extraction.BatchID == "" {
		extraction.BatchID = "test-batch"
	}
	if extraction.Provider == "" {
		extraction.Provider = "gemini"
	}
	createdAt := extraction.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	messages := "[]"
	if len(extraction.Messages) > 0 {
		raw, err := json.Marshal(extraction.Messages)
		if err != nil {
			t.Fatalf("failed to encode messages: %v", err)
		}
		messages = string(raw)
	}

	_, err := database.ExecContext(
		context.Background(),
		`INSERT INTO extractions (id, batch_id, filename, chat_text, phone_number, chat_date, messages, provider, model, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		extraction.ID, extraction.BatchID, extraction.Filename, extraction.ChatText,
		ptrVal(extraction.PhoneNumber), ptrVal(extraction.ChatDate), messages,
		extraction.Provider, extraction.Model, createdAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		t.Fatalf("failed to seed extraction: %v", err)
	}

	return extraction.ID
}

func ptrVal[T any](p *T) interface{} {
	if p == nil {
		return nil
	}
	return *p
}
