package model

import (
	"fmt"
	"reflect"
)

// ResolveColumns inspects the fields declared on a struct type and
// returns the columns they map to, in declaration order. Untagged fields
// are excluded. The tag name "-" excludes a field explicitly.
//
// Resolution fails with ErrModel when t is not a struct, when a tagged
// field is unexported, when a tag option is malformed, or when more than
// one field carries the id option.
func ResolveColumns(t reflect.Type) ([]Column, error) {
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %v is not a struct", ErrModel, t)
	}

	var cols []Column
	identitySeen := false

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)

		tag, ok := f.Tag.Lookup(TagKey)
		if !ok {
			continue
		}

		if !f.IsExported() {
			return nil, fmt.Errorf("%w: tagged field %s.%s is unexported", ErrModel, t.Name(), f.Name)
		}

		col, err := parseTag(tag)
		if err != nil {
			return nil, fmt.Errorf("%w: field %s.%s: %w", ErrModel, t.Name(), f.Name, err)
		}

		if col.Name == "-" {
			continue
		}

		col.FieldName = f.Name
		col.FieldIndex = i
		col.GoType = f.Type
		if col.Name == "" {
			col.Name = f.Name
		}

		if col.Identity {
			if identitySeen {
				return nil, fmt.Errorf("%w: %s declares more than one identity column", ErrModel, t.Name())
			}
			identitySeen = true
		}

		cols = append(cols, col)
	}

	return cols, nil
}

// IdentityColumn returns the column carrying the id option and whether
// one is declared.
func IdentityColumn(cols []Column) (Column, bool) {
	for _, c := range cols {
		if c.Identity {
			return c, true
		}
	}

	return Column{}, false
}
