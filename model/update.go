package model

import (
	"context"
	"fmt"
	"reflect"

	"github.com/Avicus/quest/query"
)

// Update is a typed UPDATE writing one model's non-identity columns.
type Update[M any] struct {
	table    *Table[M]
	model    M
	where    query.Filter
	hasWhere bool
}

// Update starts an UPDATE writing m's non-identity columns. Without an
// explicit Where, a model with an identity column updates the row that
// key identifies; a model without one updates every row.
func (t *Table[M]) Update(m M) *Update[M] {
	return &Update[M]{table: t, model: m}
}

// Where replaces the implicit identity condition.
func (u *Update[M]) Where(f query.Filter) *Update[M] {
	u.where = f
	u.hasWhere = true

	return u
}

// Exec writes the columns and returns the affected row count.
func (u *Update[M]) Exec(ctx context.Context) (int64, error) {
	row, err := u.table.ToRow(u.model)
	if err != nil {
		return 0, err
	}

	q := query.NewUpdate(u.table.name, row)

	switch {
	case u.hasWhere:
		q.Where(u.where)
	case u.table.hasIdentity:
		key, err := u.table.identityValue(u.model)
		if err != nil {
			return 0, err
		}

		q.Where(query.Eq(u.table.identity.Name, key.Any()))
	}

	stmt, args := q.SQL()

	res, err := u.table.db.Exec(ctx, stmt, args...)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

// identityValue reads the identity field of m as a row value.
func (t *Table[M]) identityValue(m M) (query.Value, error) {
	fv := reflect.ValueOf(m).Field(t.identity.FieldIndex)

	v, err := t.access[t.identityAt].get(fv)
	if err != nil {
		return query.Value{}, fmt.Errorf("%w: %s.%s: %w", ErrMapping, t.model.Name(), t.identity.FieldName, err)
	}

	return v, nil
}
