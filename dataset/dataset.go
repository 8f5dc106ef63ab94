// Package dataset provides an in-memory table of named columns holding
// scalar values (text, numbers or missing markers).
//
// A Dataset is mutable and not safe for concurrent use. Encoders read columns
// with Column, and write results back with SetColumn, DropColumn and AddColumn.
package dataset

import (
	"fmt"

	"github.com/YuminosukeSato/catenc/pkg/errors"
)

// Column is a named sequence of values.
type Column struct {
	Name   string
	Values []Value
}

// Dataset is a table of equally long, uniquely named columns.
type Dataset struct {
	names  []string
	values map[string][]Value
	rows   int
}

// New returns an empty dataset.
func New() *Dataset {
	return &Dataset{values: make(map[string][]Value)}
}

// FromColumns builds a dataset from the given columns in order.
func FromColumns(cols ...Column) (*Dataset, error) {
	d := New()
	for _, c := range cols {
		if err := d.AddColumn(c.Name, c.Values); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// TextColumn is a convenience constructor for a column of text values.
// Empty strings become missing values.
func TextColumn(name string, values ...string) Column {
	out := make([]Value, len(values))
	for i, s := range values {
		if s == "" {
			out[i] = Missing()
			continue
		}
		out[i] = Text(s)
	}
	return Column{Name: name, Values: out}
}

// NumberColumn is a convenience constructor for a column of numbers.
func NumberColumn(name string, values ...float64) Column {
	out := make([]Value, len(values))
	for i, f := range values {
		out[i] = Number(f)
	}
	return Column{Name: name, Values: out}
}

// NumRows returns the number of rows.
func (d *Dataset) NumRows() int { return d.rows }

// NumColumns returns the number of columns.
func (d *Dataset) NumColumns() int { return len(d.names) }

// ColumnNames returns the column names in order.
func (d *Dataset) ColumnNames() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)
	return out
}

// HasColumn reports whether a column with the given name exists.
func (d *Dataset) HasColumn(name string) bool {
	_, ok := d.values[name]
	return ok
}

// Column returns a copy of the named column's values.
func (d *Dataset) Column(name string) ([]Value, error) {
	vals, ok := d.values[name]
	if !ok {
		return nil, errors.NewColumnNotFoundError("Dataset.Column", name)
	}
	out := make([]Value, len(vals))
	copy(out, vals)
	return out, nil
}

// AddColumn appends a new column. The first column fixes the row count.
func (d *Dataset) AddColumn(name string, values []Value) error {
	if name == "" {
		return errors.NewValidationError("name", "column name must not be empty", name)
	}
	if d.HasColumn(name) {
		return errors.NewValidationError("name", "duplicate column name", name)
	}
	if len(d.names) > 0 && len(values) != d.rows {
		return errors.NewDimensionError(fmt.Sprintf("Dataset.AddColumn(%s)", name), d.rows, len(values), 0)
	}
	stored := make([]Value, len(values))
	copy(stored, values)
	d.names = append(d.names, name)
	d.values[name] = stored
	d.rows = len(values)
	return nil
}

// SetColumn replaces the values of an existing column in place.
func (d *Dataset) SetColumn(name string, values []Value) error {
	if !d.HasColumn(name) {
		return errors.NewColumnNotFoundError("Dataset.SetColumn", name)
	}
	if len(values) != d.rows {
		return errors.NewDimensionError(fmt.Sprintf("Dataset.SetColumn(%s)", name), d.rows, len(values), 0)
	}
	stored := make([]Value, len(values))
	copy(stored, values)
	d.values[name] = stored
	return nil
}

// DropColumn removes a column. Dropping the last column keeps the row count
// so that columns of the same length can be appended again.
func (d *Dataset) DropColumn(name string) error {
	if !d.HasColumn(name) {
		return errors.NewColumnNotFoundError("Dataset.DropColumn", name)
	}
	delete(d.values, name)
	for i, n := range d.names {
		if n == name {
			d.names = append(d.names[:i], d.names[i+1:]...)
			break
		}
	}
	return nil
}

// Row returns the values of row i in column order.
func (d *Dataset) Row(i int) ([]Value, error) {
	if i < 0 || i >= d.rows {
		return nil, errors.NewValueError("Dataset.Row", fmt.Sprintf("row %d out of range [0, %d)", i, d.rows))
	}
	out := make([]Value, len(d.names))
	for j, n := range d.names {
		out[j] = d.values[n][i]
	}
	return out, nil
}

// Clone returns a deep copy of the dataset.
func (d *Dataset) Clone() *Dataset {
	c := &Dataset{
		names:  make([]string, len(d.names)),
		values: make(map[string][]Value, len(d.values)),
		rows:   d.rows,
	}
	copy(c.names, d.names)
	for n, vals := range d.values {
		cp := make([]Value, len(vals))
		copy(cp, vals)
		c.values[n] = cp
	}
	return c
}

// HasText reports whether the named column contains at least one text value.
func (d *Dataset) HasText(name string) bool {
	for _, v := range d.values[name] {
		if v.Kind() == KindText {
			return true
		}
	}
	return false
}

// CountMissing returns the number of missing values in the named column.
func (d *Dataset) CountMissing(name string) int {
	n := 0
	for _, v := range d.values[name] {
		if v.IsMissing() {
			n++
		}
	}
	return n
}
