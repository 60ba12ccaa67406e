package query

import (
	"strconv"
	"strings"

	"github.com/Avicus/quest/internal/sqlbuild"
)

// SelectQuery assembles a SELECT statement.
type SelectQuery struct {
	table   string
	columns []string
	where   Filter
	orderBy string
	desc    bool
	limit   int
	offset  int
}

// NewSelect starts a SELECT against table. Without Columns it selects *.
func NewSelect(table string) *SelectQuery {
	return &SelectQuery{table: table, limit: -1}
}

// Columns restricts the selected columns.
func (q *SelectQuery) Columns(cols ...string) *SelectQuery {
	q.columns = cols

	return q
}

// Where sets the row condition.
func (q *SelectQuery) Where(f Filter) *SelectQuery {
	q.where = f

	return q
}

// OrderBy sorts by col, descending when desc is true.
func (q *SelectQuery) OrderBy(col string, desc bool) *SelectQuery {
	q.orderBy = col
	q.desc = desc

	return q
}

// Limit caps the number of returned rows. Negative means no limit.
func (q *SelectQuery) Limit(n int) *SelectQuery {
	q.limit = n

	return q
}

// Offset skips the first n rows.
func (q *SelectQuery) Offset(n int) *SelectQuery {
	q.offset = n

	return q
}

// SQL renders the statement and its placeholder arguments.
func (q *SelectQuery) SQL() (string, []any) {
	cols := "*"
	if len(q.columns) > 0 {
		cols = strings.Join(sqlbuild.QuoteAll(q.columns), ", ")
	}

	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(cols)
	b.WriteString(" FROM ")
	b.WriteString(sqlbuild.QuoteIdent(q.table))

	args := q.where.whereClause(&b, nil)

	if q.orderBy != "" {
		b.WriteString(" ORDER BY ")
		b.WriteString(sqlbuild.QuoteIdent(q.orderBy))
		if q.desc {
			b.WriteString(" DESC")
		}
	}

	if q.limit >= 0 {
		b.WriteString(" LIMIT ")
		b.WriteString(strconv.Itoa(q.limit))
	}

	if q.offset > 0 {
		b.WriteString(" OFFSET ")
		b.WriteString(strconv.Itoa(q.offset))
	}

	return b.String(), args
}
