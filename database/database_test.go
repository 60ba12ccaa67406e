package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/Avicus/quest/query"
)

func openTestDB(t *testing.T) *Database {
	t.Helper()

	cfg := &Config{Driver: DriverSQLite, Database: ":memory:"}

	db, err := Open(cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func TestDatabase_CreateTableAndRoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	err := db.CreateTable(ctx, "notes", []Column{
		{Name: "id", Type: "INT"},
		{Name: "body", Type: "TEXT"},
		{Name: "score", Type: "DOUBLE"},
	})
	require.NoError(t, err)

	// IF NOT EXISTS makes a second create a no-op
	err = db.CreateTable(ctx, "notes", []Column{{Name: "id", Type: "INT"}})
	require.NoError(t, err)

	_, err = db.Exec(ctx, "INSERT INTO `notes` (`id`, `body`, `score`) VALUES (?, ?, ?)", 1, "hello", 0.5)
	require.NoError(t, err)

	rows, err := db.Query(ctx, "SELECT `id`, `body`, `score` FROM `notes`")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, []string{"id", "body", "score"}, rows[0].Names())

	v, ok := rows[0].Get("id")
	require.True(t, ok)
	assert.Equal(t, query.Int64(1), v)

	v, ok = rows[0].Get("body")
	require.True(t, ok)
	assert.Equal(t, query.String("hello"), v)

	v, ok = rows[0].Get("score")
	require.True(t, ok)
	assert.Equal(t, query.Float64(0.5), v)
}

func TestDatabase_QueryNull(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.CreateTable(ctx, "maybe", []Column{
		{Name: "id", Type: "INT"},
		{Name: "note", Type: "VARCHAR(255)"},
	}))

	_, err := db.Exec(ctx, "INSERT INTO `maybe` (`id`, `note`) VALUES (?, ?)", 1, nil)
	require.NoError(t, err)

	rows, err := db.Query(ctx, "SELECT `note` FROM `maybe`")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	v, ok := rows[0].Get("note")
	require.True(t, ok)
	assert.True(t, v.IsNull())
}

func TestDatabase_QueryNoRows(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.CreateTable(ctx, "empty", []Column{{Name: "id", Type: "INT"}}))

	rows, err := db.Query(ctx, "SELECT * FROM `empty`")

	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestDatabase_DropTable(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.CreateTable(ctx, "tmp", []Column{{Name: "id", Type: "INT"}}))
	require.NoError(t, db.DropTable(ctx, "tmp"))

	_, err := db.Query(ctx, "SELECT * FROM `tmp`")
	assert.Error(t, err)

	// Dropping an absent table is a no-op
	require.NoError(t, db.DropTable(ctx, "tmp"))
}

func TestDatabase_ExecError(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(context.Background(), "NOT SQL AT ALL")

	assert.Error(t, err)
}

func TestOpen_InvalidConfig(t *testing.T) {
	_, err := Open(&Config{Driver: "oracle", Database: "x"}, nil)

	assert.Error(t, err)
}
