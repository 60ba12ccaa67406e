package database

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Avicus/quest/internal/sqlbuild"
	"github.com/Avicus/quest/query"
)

// Column is one name/type pair of a CREATE TABLE statement. DDL renders
// columns in slice order.
type Column struct {
	Name string
	Type string
}

// Database wraps a sql.DB pool with statement logging and row
// materialization.
type Database struct {
	db  *sql.DB
	log *slog.Logger
}

// Open connects using cfg and verifies the connection with a ping. The
// driver named by cfg must already be registered with database/sql.
func Open(cfg *Config, logger *slog.Logger) (*Database, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	db, err := sql.Open(cfg.Driver, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.Driver, err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return New(db, logger), nil
}

// New adopts an existing pool. A nil logger discards statement logs.
func New(db *sql.DB, logger *slog.Logger) *Database {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Database{db: db, log: logger}
}

// DB exposes the underlying pool.
func (d *Database) DB() *sql.DB { return d.db }

// Close releases the pool.
func (d *Database) Close() error { return d.db.Close() }

// Ping verifies the connection.
func (d *Database) Ping(ctx context.Context) error { return d.db.PingContext(ctx) }

// Exec runs a statement that returns no rows.
func (d *Database) Exec(ctx context.Context, stmt string, args ...any) (sql.Result, error) {
	d.log.DebugContext(ctx, "exec", "sql", stmt, "args", len(args))

	res, err := d.db.ExecContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to exec statement: %w", err)
	}

	return res, nil
}

// Query runs a statement and materializes every result row, preserving
// column order.
func (d *Database) Query(ctx context.Context, stmt string, args ...any) ([]query.Row, error) {
	d.log.DebugContext(ctx, "query", "sql", stmt, "args", len(args))

	rows, err := d.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read result columns: %w", err)
	}

	var out []query.Row
	for rows.Next() {
		slots := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range slots {
			ptrs[i] = &slots[i]
		}

		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make(query.Row, 0, len(cols))
		for i, col := range cols {
			v, err := query.FromAny(slots[i])
			if err != nil {
				return nil, fmt.Errorf("column %s: %w", col, err)
			}

			row = append(row, query.Field{Name: col, Value: v})
		}

		out = append(out, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return out, nil
}

// CreateTable issues CREATE TABLE IF NOT EXISTS with cols rendered in
// order.
func (d *Database) CreateTable(ctx context.Context, name string, cols []Column) error {
	defs := make([]string, len(cols))
	for i, c := range cols {
		defs[i] = sqlbuild.QuoteIdent(c.Name) + " " + c.Type
	}

	stmt := "CREATE TABLE IF NOT EXISTS " + sqlbuild.QuoteIdent(name) +
		" (" + strings.Join(defs, ", ") + ")"

	_, err := d.Exec(ctx, stmt)

	return err
}

// DropTable issues DROP TABLE IF EXISTS.
func (d *Database) DropTable(ctx context.Context, name string) error {
	_, err := d.Exec(ctx, "DROP TABLE IF EXISTS "+sqlbuild.QuoteIdent(name))

	return err
}
