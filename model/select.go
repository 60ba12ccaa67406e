package model

import (
	"context"

	"github.com/Avicus/quest/query"
)

// Select is a typed SELECT over a table's resolved columns.
type Select[M any] struct {
	table *Table[M]
	query *query.SelectQuery
}

// Select starts a SELECT of every resolved column.
func (t *Table[M]) Select() *Select[M] {
	return &Select[M]{
		table: t,
		query: query.NewSelect(t.name).Columns(t.ColumnNames()...),
	}
}

// Where sets the row condition.
func (s *Select[M]) Where(f query.Filter) *Select[M] {
	s.query.Where(f)

	return s
}

// OrderBy sorts by col, descending when desc is true.
func (s *Select[M]) OrderBy(col string, desc bool) *Select[M] {
	s.query.OrderBy(col, desc)

	return s
}

// Limit caps the number of returned rows.
func (s *Select[M]) Limit(n int) *Select[M] {
	s.query.Limit(n)

	return s
}

// Offset skips the first n rows.
func (s *Select[M]) Offset(n int) *Select[M] {
	s.query.Offset(n)

	return s
}

// All executes the query and materializes every matching row.
func (s *Select[M]) All(ctx context.Context) ([]M, error) {
	stmt, args := s.query.SQL()

	rows, err := s.table.db.Query(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}

	out := make([]M, 0, len(rows))
	for _, row := range rows {
		m, err := s.table.FromRow(row)
		if err != nil {
			return nil, err
		}

		out = append(out, m)
	}

	return out, nil
}

// First executes the query capped at one row and reports whether a row
// matched.
func (s *Select[M]) First(ctx context.Context) (M, bool, error) {
	s.query.Limit(1)

	ms, err := s.All(ctx)
	if err != nil || len(ms) == 0 {
		var zero M
		return zero, false, err
	}

	return ms[0], true, nil
}
