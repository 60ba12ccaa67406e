package model

import (
	"context"

	"github.com/Avicus/quest/query"
)

// Delete is a typed DELETE against a table.
type Delete[M any] struct {
	table *Table[M]
	where query.Filter
}

// Delete starts a DELETE. Without Where it removes every row.
func (t *Table[M]) Delete() *Delete[M] {
	return &Delete[M]{table: t}
}

// Where sets the row condition.
func (d *Delete[M]) Where(f query.Filter) *Delete[M] {
	d.where = f

	return d
}

// Exec removes the matching rows and returns the affected row count.
func (d *Delete[M]) Exec(ctx context.Context) (int64, error) {
	stmt, args := query.NewDelete(d.table.name).Where(d.where).SQL()

	res, err := d.table.db.Exec(ctx, stmt, args...)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}
