package model

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/Avicus/quest/internal/sqlbuild"
)

var timeType = reflect.TypeOf(time.Time{})

// ColumnType synthesizes the SQL type string for col: the base type
// followed by its constraint tokens, space-joined in fixed order. An
// explicit type override is returned verbatim, skipping both inference
// and constraints.
func ColumnType(col Column) (string, error) {
	if col.SQLType != "" {
		return col.SQLType, nil
	}

	base, err := baseType(col)
	if err != nil {
		return "", err
	}

	tokens := []string{base}

	if col.Identity {
		tokens = append(tokens, "AUTO_INCREMENT")
	}
	if !col.Nullable || col.Identity {
		tokens = append(tokens, "NOT NULL")
	}
	if col.PrimaryKey || col.Identity {
		tokens = append(tokens, "PRIMARY KEY")
	}
	if col.Unique {
		tokens = append(tokens, "UNIQUE")
	}
	if col.HasDefault {
		tokens = append(tokens, "DEFAULT "+sqlbuild.Literal(col.Default))
	}

	return strings.Join(tokens, " "), nil
}

func baseType(col Column) (string, error) {
	if col.GoType == timeType {
		return "DATETIME", nil
	}

	switch col.GoType.Kind() {
	case reflect.String:
		if col.Text {
			return "TEXT", nil
		}

		length := col.Length
		if length < 0 {
			length = 255
		}

		return fmt.Sprintf("VARCHAR(%d)", length), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "INT", nil

	case reflect.Float64:
		return "DOUBLE", nil

	case reflect.Float32:
		return "FLOAT", nil

	case reflect.Bool:
		return "TINYINT", nil
	}

	return "", fmt.Errorf("%w: %s (field %s)", ErrUnsupportedType, col.GoType, col.FieldName)
}
