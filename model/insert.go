package model

import (
	"context"

	"github.com/Avicus/quest/query"
)

// Insert is a typed INSERT of one model instance.
type Insert[M any] struct {
	table *Table[M]
	model M
}

// Insert starts an INSERT of m. The identity column is never part of
// the written row; the store generates it.
func (t *Table[M]) Insert(m M) *Insert[M] {
	return &Insert[M]{table: t, model: m}
}

// Exec writes the row and returns m with the generated key applied when
// the store reports one.
func (i *Insert[M]) Exec(ctx context.Context) (M, error) {
	row, err := i.table.ToRow(i.model)
	if err != nil {
		return i.model, err
	}

	stmt, args := query.NewInsert(i.table.name, row).SQL()

	res, err := i.table.db.Exec(ctx, stmt, args...)
	if err != nil {
		return i.model, err
	}

	if !i.table.hasIdentity {
		return i.model, nil
	}

	key, err := res.LastInsertId()
	if err != nil {
		// The driver cannot report generated keys; the model keeps the
		// value it was written with.
		return i.model, nil
	}

	return i.table.ApplyGenerated(i.model, key)
}
