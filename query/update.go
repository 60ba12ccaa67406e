package query

import (
	"strings"

	"github.com/Avicus/quest/internal/sqlbuild"
)

// UpdateQuery assembles an UPDATE statement from a row.
type UpdateQuery struct {
	table string
	row   Row
	where Filter
}

// NewUpdate starts an UPDATE of table setting the columns of row, in row
// order.
func NewUpdate(table string, row Row) *UpdateQuery {
	return &UpdateQuery{table: table, row: row}
}

// Where sets the row condition.
func (q *UpdateQuery) Where(f Filter) *UpdateQuery {
	q.where = f

	return q
}

// SQL renders the statement and its placeholder arguments.
func (q *UpdateQuery) SQL() (string, []any) {
	sets := make([]string, len(q.row))
	for i, f := range q.row {
		sets[i] = sqlbuild.QuoteIdent(f.Name) + " = ?"
	}

	var b strings.Builder
	b.WriteString("UPDATE ")
	b.WriteString(sqlbuild.QuoteIdent(q.table))
	b.WriteString(" SET ")
	b.WriteString(strings.Join(sets, ", "))

	args := q.where.whereClause(&b, q.row.Args())

	return b.String(), args
}
