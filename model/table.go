package model

import (
	"context"
	"reflect"

	"github.com/Avicus/quest/database"
)

// Table binds a model type to a table name and a database handle. It is
// immutable once constructed; column metadata and field accessors are
// resolved once and reused by every operation.
type Table[M any] struct {
	db    *database.Database
	name  string
	model reflect.Type

	columns     []Column
	access      []accessor
	identity    Column
	identityAt  int
	hasIdentity bool
}

// NewTable resolves M's columns, binds their field accessors, and ties
// them to the named table on db. It fails fast with ErrModel when M is
// not a valid model type.
func NewTable[M any](db *database.Database, name string) (*Table[M], error) {
	model := reflect.TypeOf((*M)(nil)).Elem()

	cols, err := ResolveColumns(model)
	if err != nil {
		return nil, err
	}

	t := &Table[M]{
		db:         db,
		name:       name,
		model:      model,
		columns:    cols,
		access:     make([]accessor, len(cols)),
		identityAt: -1,
	}
	t.identity, t.hasIdentity = IdentityColumn(cols)

	for i, col := range cols {
		t.access[i] = bindAccessor(col.GoType)
		if col.Identity {
			t.identityAt = i
		}
	}

	return t, nil
}

// Name returns the bound table name.
func (t *Table[M]) Name() string { return t.name }

// Columns returns the resolved columns in declaration order.
func (t *Table[M]) Columns() []Column { return t.columns }

// Identity returns the identity column and whether M declares one.
func (t *Table[M]) Identity() (Column, bool) { return t.identity, t.hasIdentity }

// ColumnNames returns the column names in declaration order.
func (t *Table[M]) ColumnNames() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.Name
	}

	return names
}

// CreateSpec synthesizes the ordered column definitions for CREATE
// TABLE. It returns nothing when any column fails, never a partial spec.
func (t *Table[M]) CreateSpec() ([]database.Column, error) {
	spec := make([]database.Column, 0, len(t.columns))

	for _, col := range t.columns {
		typ, err := ColumnType(col)
		if err != nil {
			return nil, err
		}

		spec = append(spec, database.Column{Name: col.Name, Type: typ})
	}

	return spec, nil
}

// Create issues CREATE TABLE IF NOT EXISTS for the synthesized spec.
func (t *Table[M]) Create(ctx context.Context) error {
	spec, err := t.CreateSpec()
	if err != nil {
		return err
	}

	return t.db.CreateTable(ctx, t.name, spec)
}

// Drop removes the bound table if it exists.
func (t *Table[M]) Drop(ctx context.Context) error {
	return t.db.DropTable(ctx, t.name)
}
