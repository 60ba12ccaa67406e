package model

import "errors"

// Sentinel errors surfaced by resolution and marshalling. Wrapped forms
// carry the model type, field name, and offending value; match with
// errors.Is.
var (
	ErrUnsupportedType = errors.New("field type has no column mapping")
	ErrModel           = errors.New("invalid model declaration")
	ErrMapping         = errors.New("cannot map value")
)
