package query

// Field is a single named value inside a Row.
type Field struct {
	Name  string
	Value Value
}

// Row is an ordered list of named values. Order follows first insertion;
// setting an existing name replaces its value in place.
type Row []Field

// Set stores v under name, keeping the position of an existing name.
func (r *Row) Set(name string, v Value) {
	for i := range *r {
		if (*r)[i].Name == name {
			(*r)[i].Value = v

			return
		}
	}

	*r = append(*r, Field{Name: name, Value: v})
}

// Get returns the value stored under name and whether it is present.
func (r Row) Get(name string) (Value, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}

	return Value{}, false
}

// Names returns the column names in row order.
func (r Row) Names() []string {
	names := make([]string, len(r))
	for i, f := range r {
		names[i] = f.Name
	}

	return names
}

// Args returns the driver-facing scalars in row order.
func (r Row) Args() []any {
	args := make([]any, len(r))
	for i, f := range r {
		args[i] = f.Value.Any()
	}

	return args
}
