package query

import (
	"strings"

	"github.com/Avicus/quest/internal/sqlbuild"
)

// DeleteQuery assembles a DELETE statement.
type DeleteQuery struct {
	table string
	where Filter
}

// NewDelete starts a DELETE against table. Without Where it deletes every
// row.
func NewDelete(table string) *DeleteQuery {
	return &DeleteQuery{table: table}
}

// Where sets the row condition.
func (q *DeleteQuery) Where(f Filter) *DeleteQuery {
	q.where = f

	return q
}

// SQL renders the statement and its placeholder arguments.
func (q *DeleteQuery) SQL() (string, []any) {
	var b strings.Builder
	b.WriteString("DELETE FROM ")
	b.WriteString(sqlbuild.QuoteIdent(q.table))

	args := q.where.whereClause(&b, nil)

	return b.String(), args
}
