package sqlbuild

import (
	"testing"
)

func TestQuoteIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"users", "`users`"},
		{"order_items", "`order_items`"},
		{"column with spaces", "`column with spaces`"},
		{"back`tick", "`back``tick`"},
		{"", "``"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := QuoteIdent(tt.input)
			if result != tt.expected {
				t.Errorf("QuoteIdent(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestQuoteAll(t *testing.T) {
	result := QuoteAll([]string{"id", "name"})

	if len(result) != 2 || result[0] != "`id`" || result[1] != "`name`" {
		t.Errorf("QuoteAll = %v, want [`id` `name`]", result)
	}
}

func TestPlaceholders(t *testing.T) {
	tests := []struct {
		n        int
		expected string
	}{
		{0, ""},
		{-1, ""},
		{1, "?"},
		{2, "?, ?"},
		{4, "?, ?, ?, ?"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := Placeholders(tt.n)
			if result != tt.expected {
				t.Errorf("Placeholders(%d) = %q, want %q", tt.n, result, tt.expected)
			}
		})
	}
}

func TestLiteral(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Integers stay bare
		{"0", "0"},
		{"42", "42"},
		{"-7", "-7"},
		{"007", "007"},

		// Everything else is quoted
		{"3.14", "'3.14'"},
		{"true", "'true'"},
		{"hello", "'hello'"},
		{"", "''"},
		{"42 ", "'42 '"},

		// Embedded quotes are doubled
		{"O'Brien", "'O''Brien'"},
		{"''", "''''''"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := Literal(tt.input)
			if result != tt.expected {
				t.Errorf("Literal(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}
