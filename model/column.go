package model

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// TagKey is the struct tag read for column metadata.
const TagKey = "quest"

// Column describes how one struct field persists.
type Column struct {
	// FieldName and FieldIndex locate the field on the model struct.
	FieldName  string
	FieldIndex int
	GoType     reflect.Type

	// Name is the column name, already defaulted to FieldName.
	Name string

	Identity   bool
	PrimaryKey bool
	Unique     bool
	Nullable   bool
	Text       bool
	Length     int // -1 when undeclared
	Default    string
	HasDefault bool
	SQLType    string // explicit override, empty when inferred
}

// parseTag reads a quest tag into column metadata. The returned column
// carries no field information yet; the resolver fills that in.
func parseTag(tag string) (Column, error) {
	col := Column{Nullable: true, Length: -1}

	parts := splitOptions(tag)
	col.Name = strings.TrimSpace(parts[0])

	for _, part := range parts[1:] {
		opt := strings.TrimSpace(part)
		if opt == "" {
			continue
		}

		key, value, hasValue := strings.Cut(opt, "=")

		switch strings.ToLower(key) {
		case "id", "pk", "unique", "notnull", "text":
			if hasValue {
				return Column{}, fmt.Errorf("option %s takes no value", key)
			}
		case "length", "default", "type":
			if !hasValue {
				return Column{}, fmt.Errorf("option %s needs a value", key)
			}
		}

		switch strings.ToLower(key) {
		case "id":
			col.Identity = true
		case "pk":
			col.PrimaryKey = true
		case "unique":
			col.Unique = true
		case "notnull":
			col.Nullable = false
		case "text":
			col.Text = true
		case "length":
			n, err := strconv.Atoi(value)
			if err != nil {
				return Column{}, fmt.Errorf("invalid length %q", value)
			}
			col.Length = n
		case "default":
			col.Default = value
			col.HasDefault = true
		case "type":
			col.SQLType = value
		default:
			return Column{}, fmt.Errorf("unknown option %q", opt)
		}
	}

	return col, nil
}

// splitOptions splits on commas outside parentheses, so type values
// like DECIMAL(10,2) survive. Always returns at least one element.
func splitOptions(s string) []string {
	var parts []string
	depth, start := 0, 0

	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}

	return append(parts, s[start:])
}
