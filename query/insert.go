package query

import (
	"strings"

	"github.com/Avicus/quest/internal/sqlbuild"
)

// InsertQuery assembles an INSERT statement from a row.
type InsertQuery struct {
	table string
	row   Row
}

// NewInsert starts an INSERT of row into table. Columns and placeholders
// follow row order.
func NewInsert(table string, row Row) *InsertQuery {
	return &InsertQuery{table: table, row: row}
}

// SQL renders the statement and its placeholder arguments.
func (q *InsertQuery) SQL() (string, []any) {
	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(sqlbuild.QuoteIdent(q.table))
	b.WriteString(" (")
	b.WriteString(strings.Join(sqlbuild.QuoteAll(q.row.Names()), ", "))
	b.WriteString(") VALUES (")
	b.WriteString(sqlbuild.Placeholders(len(q.row)))
	b.WriteString(")")

	return b.String(), q.row.Args()
}
