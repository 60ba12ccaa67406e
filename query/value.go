package query

import (
	"errors"
	"fmt"
	"math"
	"time"
)

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind discriminates the representations a Value can hold.
type Kind int

const (
	KindNull Kind = iota // zero value, reads back as SQL NULL

	KindInt
	KindFloat
	KindString
	KindBool
	KindTime
)

// ErrValueType reports a Go value with no row representation.
var ErrValueType = errors.New("value type has no row representation")

// Value is a scalar as it travels between models and rows. Exactly one
// slot is meaningful, selected by Kind. The zero Value is NULL.
type Value struct {
	Kind Kind

	I64 int64
	F64 float64
	S   string
	B   bool
	T   time.Time
}

// Null returns the NULL value.
func Null() Value { return Value{} }

// Int64 wraps v as an integer value.
func Int64(v int64) Value { return Value{Kind: KindInt, I64: v} }

// Float64 wraps v as a floating-point value.
func Float64(v float64) Value { return Value{Kind: KindFloat, F64: v} }

// String wraps v as a string value.
func String(v string) Value { return Value{Kind: KindString, S: v} }

// Bool wraps v as a boolean value.
func Bool(v bool) Value { return Value{Kind: KindBool, B: v} }

// Time wraps v as a timestamp value.
func Time(v time.Time) Value { return Value{Kind: KindTime, T: v} }

// IsNull reports whether v is NULL.
func (v Value) IsNull() bool { return v.Kind == KindNull }

// FromAny normalizes a Go scalar into a Value. It accepts every integer
// and float width plus the types database/sql drivers scan into: nil,
// bool, string, []byte, and time.Time. A Value passes through unchanged.
func FromAny(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case int:
		return Int64(int64(x)), nil
	case int8:
		return Int64(int64(x)), nil
	case int16:
		return Int64(int64(x)), nil
	case int32:
		return Int64(int64(x)), nil
	case int64:
		return Int64(x), nil
	case uint:
		return fromUint64(uint64(x))
	case uint8:
		return Int64(int64(x)), nil
	case uint16:
		return Int64(int64(x)), nil
	case uint32:
		return Int64(int64(x)), nil
	case uint64:
		return fromUint64(x)
	case float32:
		return Float64(float64(x)), nil
	case float64:
		return Float64(x), nil
	case string:
		return String(x), nil
	case []byte:
		return String(string(x)), nil
	case time.Time:
		return Time(x), nil
	}

	return Value{}, fmt.Errorf("%w: %T", ErrValueType, v)
}

func fromUint64(x uint64) (Value, error) {
	if x > math.MaxInt64 {
		return Value{}, fmt.Errorf("%w: uint64 %d overflows int64", ErrValueType, x)
	}

	return Int64(int64(x)), nil
}

// Any returns the driver-facing Go scalar for v, nil for NULL.
func (v Value) Any() any {
	switch v.Kind {
	case KindInt:
		return v.I64
	case KindFloat:
		return v.F64
	case KindString:
		return v.S
	case KindBool:
		return v.B
	case KindTime:
		return v.T
	}

	return nil
}

// GoString renders v for debug output, e.g. Int64(42) or String("a").
func (v Value) GoString() string {
	switch v.Kind {
	case KindInt:
		return fmt.Sprintf("Int64(%d)", v.I64)
	case KindFloat:
		return fmt.Sprintf("Float64(%g)", v.F64)
	case KindString:
		return fmt.Sprintf("String(%q)", v.S)
	case KindBool:
		return fmt.Sprintf("Bool(%t)", v.B)
	case KindTime:
		return fmt.Sprintf("Time(%s)", v.T.Format(time.RFC3339Nano))
	}

	return "Null()"
}
