package model

import (
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/Avicus/quest/query"
)

// accessor is the typed getter/setter pair bound to one column's field
// when the table is constructed. Binding specializes the reflect work to
// the field type once; the marshalling calls only invoke the closures.
type accessor struct {
	get func(fv reflect.Value) (query.Value, error)
	set func(fv reflect.Value, v query.Value) error
}

// ToRow converts m into a row keyed by column name, in declaration
// order. The identity column is always excluded: the store generates
// key values, clients never submit them.
func (t *Table[M]) ToRow(m M) (query.Row, error) {
	rv := reflect.ValueOf(m)

	row := make(query.Row, 0, len(t.columns))
	for i, col := range t.columns {
		if col.Identity {
			continue
		}

		v, err := t.access[i].get(rv.Field(col.FieldIndex))
		if err != nil {
			return nil, fmt.Errorf("%w: %s.%s: %w", ErrMapping, t.model.Name(), col.FieldName, err)
		}

		row = append(row, query.Field{Name: col.Name, Value: v})
	}

	return row, nil
}

// FromRow materializes a new M from row. Columns absent from the row
// leave their fields at the zero value, as do present-but-null values.
// Boolean fields coerce: integer 1 and string "true" read as true, a
// native boolean passes through, everything else (null included) reads
// as false.
func (t *Table[M]) FromRow(row query.Row) (M, error) {
	var m M
	rv := reflect.ValueOf(&m).Elem()

	for i, col := range t.columns {
		v, ok := row.Get(col.Name)
		if !ok {
			continue
		}

		fv := rv.Field(col.FieldIndex)

		if fv.Kind() == reflect.Bool {
			fv.SetBool(coerceBool(v))
			continue
		}

		if v.IsNull() {
			continue
		}

		if err := t.access[i].set(fv, v); err != nil {
			return m, fmt.Errorf("%w: %s.%s: %w", ErrMapping, t.model.Name(), col.FieldName, err)
		}
	}

	return m, nil
}

// ApplyGenerated assigns a store-generated key to the identity field and
// returns the updated model. Models without an identity column pass
// through untouched.
func (t *Table[M]) ApplyGenerated(m M, key int64) (M, error) {
	if !t.hasIdentity {
		return m, nil
	}

	rv := reflect.ValueOf(&m).Elem()
	fv := rv.Field(t.identity.FieldIndex)

	if err := t.access[t.identityAt].set(fv, query.Int64(key)); err != nil {
		return m, fmt.Errorf("%w: %s.%s: %w", ErrMapping, t.model.Name(), t.identity.FieldName, err)
	}

	return m, nil
}

// bindAccessor specializes the getter/setter pair to a field type, by
// kind so named scalar types bind like their underlying type.
// Unrepresentable types bind closures that fail on first use.
func bindAccessor(ft reflect.Type) accessor {
	if ft == timeType {
		return accessor{
			get: func(fv reflect.Value) (query.Value, error) {
				return query.Time(fv.Interface().(time.Time)), nil
			},
			set: setTime,
		}
	}

	switch ft.Kind() {
	case reflect.String:
		return accessor{
			get: func(fv reflect.Value) (query.Value, error) {
				return query.String(fv.String()), nil
			},
			set: func(fv reflect.Value, v query.Value) error {
				if v.Kind != query.KindString {
					return assignError(v, fv)
				}
				fv.SetString(v.S)

				return nil
			},
		}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return accessor{
			get: func(fv reflect.Value) (query.Value, error) {
				return query.Int64(fv.Int()), nil
			},
			set: func(fv reflect.Value, v query.Value) error {
				if v.Kind != query.KindInt {
					return assignError(v, fv)
				}
				if fv.OverflowInt(v.I64) {
					return fmt.Errorf("%d overflows %s", v.I64, fv.Type())
				}
				fv.SetInt(v.I64)

				return nil
			},
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return accessor{
			get: func(fv reflect.Value) (query.Value, error) {
				u := fv.Uint()
				if u > math.MaxInt64 {
					return query.Value{}, fmt.Errorf("%d overflows the integer column range", u)
				}

				return query.Int64(int64(u)), nil
			},
			set: func(fv reflect.Value, v query.Value) error {
				if v.Kind != query.KindInt {
					return assignError(v, fv)
				}
				if v.I64 < 0 || fv.OverflowUint(uint64(v.I64)) {
					return fmt.Errorf("%d overflows %s", v.I64, fv.Type())
				}
				fv.SetUint(uint64(v.I64))

				return nil
			},
		}

	case reflect.Float32, reflect.Float64:
		return accessor{
			get: func(fv reflect.Value) (query.Value, error) {
				return query.Float64(fv.Float()), nil
			},
			set: func(fv reflect.Value, v query.Value) error {
				var f float64
				switch v.Kind {
				case query.KindFloat:
					f = v.F64
				case query.KindInt:
					// Integers widen into float fields
					f = float64(v.I64)
				default:
					return assignError(v, fv)
				}
				if fv.OverflowFloat(f) {
					return fmt.Errorf("%g overflows %s", f, fv.Type())
				}
				fv.SetFloat(f)

				return nil
			},
		}

	case reflect.Bool:
		return accessor{
			get: func(fv reflect.Value) (query.Value, error) {
				return query.Bool(fv.Bool()), nil
			},
			// FromRow coerces booleans before set is reached
			set: func(fv reflect.Value, v query.Value) error {
				return assignError(v, fv)
			},
		}
	}

	err := fmt.Errorf("field type %s has no row representation", ft)

	return accessor{
		get: func(reflect.Value) (query.Value, error) { return query.Value{}, err },
		set: func(reflect.Value, query.Value) error { return err },
	}
}

func coerceBool(v query.Value) bool {
	switch v.Kind {
	case query.KindBool:
		return v.B
	case query.KindInt:
		return v.I64 == 1
	case query.KindString:
		return v.S == "true"
	}

	return false
}

func setTime(fv reflect.Value, v query.Value) error {
	switch v.Kind {
	case query.KindTime:
		fv.Set(reflect.ValueOf(v.T))

		return nil
	case query.KindString:
		ts, err := parseTime(v.S)
		if err != nil {
			return err
		}

		fv.Set(reflect.ValueOf(ts))

		return nil
	}

	return fmt.Errorf("cannot assign %v to %s", v.Kind, fv.Type())
}

func assignError(v query.Value, fv reflect.Value) error {
	return fmt.Errorf("cannot assign %v (%#v) to %s", v.Kind, v, fv.Type())
}

// timeLayouts are tried in order when a timestamp column is scanned as
// text. They cover RFC 3339 plus the space-separated renderings MySQL
// and the SQLite drivers produce.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999 -0700 MST",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

func parseTime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
