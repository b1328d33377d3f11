package db_test

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"chatscan/backend/internal/db"

	"github.com/stretchr/testify/require"
)

func newMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	database, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func TestMigrate_Idempotent(t *testing.T) {
	database := newMemoryDB(t)

	require.NoError(t, db.Migrate(database))
	require.NoError(t, db.Migrate(database))
}

func TestMigrate_AddsModelColumn(t *testing.T) {
	database := newMemoryDB(t)
	require.NoError(t, db.Migrate(database))

	var count int
	err := database.QueryRow(`
		SELECT COUNT(*) FROM pragma_table_info('extractions') WHERE name = 'model'
	`).Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestMigrate_Indexes(t *testing.T) {
	database := newMemoryDB(t)
	require.NoError(t, db.Migrate(database))

	rows, err := database.Query(`SELECT name FROM sqlite_master WHERE type='index' AND tbl_name='extractions'`)
	require.NoError(t, err)
	defer rows.Close()

	names := map[string]bool{}
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		names[name] = true
	}
	require.NoError(t, rows.Err())
	require.True(t, names["idx_extractions_batch_id"])
	require.True(t, names["idx_extractions_created_at"])
}
