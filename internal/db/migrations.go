package db

import (
	"database/sql"
	"fmt"
)

const baseSchema = `
CREATE TABLE IF NOT EXISTS extractions (
  id INTEGER PRIMARY KEY,
  batch_id TEXT NOT NULL,
  filename TEXT NOT NULL,
  chat_text TEXT NOT NULL,
  phone_number TEXT,
  chat_date TEXT,
  messages TEXT NOT NULL DEFAULT '[]',
  provider TEXT NOT NULL,
  created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_extractions_batch_id ON extractions(batch_id);
CREATE INDEX IF NOT EXISTS idx_extractions_created_at ON extractions(created_at);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(baseSchema); err != nil {
		return fmt.Errorf("migrate base schema: %w", err)
	}
	if err := runMigrations(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

func runMigrations(db *sql.DB) error {
	// Migration 1: add the model column for rows written before the
	// provider/model split.
	var count int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM pragma_table_info('extractions') WHERE name = 'model'
	`).Scan(&count)
	if err != nil {
		return fmt.Errorf("check model column: %w", err)
	}
	if count == 0 {
		if _, err := db.Exec(`ALTER TABLE extractions ADD COLUMN model TEXT NOT NULL DEFAULT ''`); err != nil {
			return fmt.Errorf("add model column: %w", err)
		}
	}
	return nil
}
