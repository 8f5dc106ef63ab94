package dataset

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/catenc/pkg/errors"
)

// Matrix exports the given columns (all columns when none are named) as a
// rows × columns gonum matrix for downstream estimators. Every exported cell
// must be a number.
func (d *Dataset) Matrix(columns ...string) (*mat.Dense, error) {
	if len(columns) == 0 {
		columns = d.names
	}
	if d.rows == 0 || len(columns) == 0 {
		return nil, errors.NewModelError("Dataset.Matrix", "empty data", errors.ErrEmptyData)
	}

	data := make([]float64, d.rows*len(columns))
	for j, name := range columns {
		vals, ok := d.values[name]
		if !ok {
			return nil, errors.NewColumnNotFoundError("Dataset.Matrix", name)
		}
		for i, v := range vals {
			f, ok := v.Float()
			if !ok {
				return nil, errors.NewValueError("Dataset.Matrix",
					fmt.Sprintf("column '%s' row %d holds %s value %q, want number", name, i, v.Kind(), v.String()))
			}
			data[i*len(columns)+j] = f
		}
	}
	return mat.NewDense(d.rows, len(columns), data), nil
}

// FromMatrix builds a dataset from a matrix, naming columns in order.
func FromMatrix(X mat.Matrix, names []string) (*Dataset, error) {
	r, c := X.Dims()
	if len(names) != c {
		return nil, errors.NewDimensionError("dataset.FromMatrix", c, len(names), 1)
	}
	d := New()
	for j, name := range names {
		vals := make([]Value, r)
		for i := 0; i < r; i++ {
			vals[i] = Number(X.At(i, j))
		}
		if err := d.AddColumn(name, vals); err != nil {
			return nil, err
		}
	}
	return d, nil
}
