// Package sqlbuild assembles SQL text fragments shared by the query
// builders and the schema synthesizer.
package sqlbuild

import (
	"strconv"
	"strings"
)

// QuoteIdent wraps an identifier in backticks, doubling any backtick
// inside the name.
func QuoteIdent(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

// QuoteAll quotes every identifier in names, preserving order.
func QuoteAll(names []string) []string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = QuoteIdent(name)
	}

	return quoted
}

// Placeholders returns n comma-separated "?" markers.
func Placeholders(n int) string {
	if n <= 0 {
		return ""
	}

	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// Literal renders v as a SQL literal. Base-10 integers stay bare;
// everything else is single-quoted with embedded quotes doubled.
func Literal(v string) string {
	if _, err := strconv.Atoi(v); err == nil {
		return v
	}

	return "'" + strings.ReplaceAll(v, "'", "''") + "'"
}
