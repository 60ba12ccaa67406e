package query

import (
	"strings"

	"github.com/Avicus/quest/internal/sqlbuild"
)

// Filter is a node in a WHERE condition tree. The zero Filter means no
// condition; builders skip the WHERE clause entirely for it.
type Filter struct {
	op    string
	col   string
	args  []any
	left  *Filter
	right *Filter
}

// Eq matches rows where col equals v.
func Eq(col string, v any) Filter { return compare("=", col, v) }

// Ne matches rows where col differs from v.
func Ne(col string, v any) Filter { return compare("<>", col, v) }

// Gt matches rows where col is greater than v.
func Gt(col string, v any) Filter { return compare(">", col, v) }

// Ge matches rows where col is greater than or equal to v.
func Ge(col string, v any) Filter { return compare(">=", col, v) }

// Lt matches rows where col is less than v.
func Lt(col string, v any) Filter { return compare("<", col, v) }

// Le matches rows where col is less than or equal to v.
func Le(col string, v any) Filter { return compare("<=", col, v) }

// Like matches rows where col matches the SQL pattern v.
func Like(col string, pattern string) Filter { return compare("LIKE", col, pattern) }

// In matches rows where col equals any of vs. With no values it matches
// nothing.
func In(col string, vs ...any) Filter {
	return Filter{op: "IN", col: col, args: vs}
}

// And combines two conditions; both must hold.
func And(a, b Filter) Filter {
	return Filter{op: "AND", left: &a, right: &b}
}

// Or combines two conditions; either may hold.
func Or(a, b Filter) Filter {
	return Filter{op: "OR", left: &a, right: &b}
}

func compare(op, col string, v any) Filter {
	return Filter{op: op, col: col, args: []any{v}}
}

func (f Filter) empty() bool { return f.op == "" }

func (f Filter) composite() bool { return f.op == "AND" || f.op == "OR" }

// SQL renders the condition as a placeholder fragment plus its argument
// list. Composite sides are parenthesized only when themselves composite.
func (f Filter) SQL() (string, []any) {
	switch f.op {
	case "":
		return "", nil
	case "AND", "OR":
		leftSQL, leftArgs := f.left.SQL()
		rightSQL, rightArgs := f.right.SQL()

		if f.left.composite() {
			leftSQL = "(" + leftSQL + ")"
		}
		if f.right.composite() {
			rightSQL = "(" + rightSQL + ")"
		}

		return leftSQL + " " + f.op + " " + rightSQL, append(leftArgs, rightArgs...)
	case "IN":
		if len(f.args) == 0 {
			// Nothing can match an empty set.
			return "1 = 0", nil
		}

		return sqlbuild.QuoteIdent(f.col) + " IN (" + sqlbuild.Placeholders(len(f.args)) + ")", f.args
	}

	return sqlbuild.QuoteIdent(f.col) + " " + f.op + " ?", f.args
}

// whereClause appends " WHERE ..." to b for non-empty filters and
// returns args extended with the condition arguments.
func (f Filter) whereClause(b *strings.Builder, args []any) []any {
	if f.empty() {
		return args
	}

	cond, condArgs := f.SQL()
	b.WriteString(" WHERE ")
	b.WriteString(cond)

	return append(args, condArgs...)
}
