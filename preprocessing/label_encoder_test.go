package preprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/catenc/dataset"
	"github.com/YuminosukeSato/catenc/pkg/errors"
)

func texts(values ...string) []dataset.Value {
	out := make([]dataset.Value, len(values))
	for i, v := range values {
		out[i] = dataset.Text(v)
	}
	return out
}

func TestLabelEncoder_AlphabeticCodes(t *testing.T) {
	enc := NewLabelEncoder()
	values := texts("red", "blue", "red", "green")

	require.NoError(t, enc.Fit(values))
	codes, err := enc.TransformCodes(values)
	require.NoError(t, err)

	assert.Equal(t, []int{2, 0, 2, 1}, codes)
	assert.Equal(t, texts("blue", "green", "red"), enc.Classes())
	assert.Equal(t, 1, enc.NOutputs())
	assert.Equal(t, "LabelEncoder(classes=[blue green red])", enc.String())
}

func TestLabelEncoder_TransformMatrix(t *testing.T) {
	enc := NewLabelEncoder()
	X, err := enc.FitTransform(texts("b", "a", "c"))
	require.NoError(t, err)

	r, c := X.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 1, c)
	assert.Equal(t, []float64{1, 0, 2}, mat.Col(nil, 0, X))
}

func TestLabelEncoder_RoundTrip(t *testing.T) {
	values := []dataset.Value{
		dataset.Text("x"), dataset.Number(3), dataset.Text("y"),
		dataset.Number(1), dataset.Text("x"), dataset.Number(3),
	}
	enc := NewLabelEncoder()

	X, err := enc.FitTransform(values)
	require.NoError(t, err)
	assert.Len(t, enc.Classes(), 4)

	decoded, err := enc.InverseTransform(X)
	require.NoError(t, err)
	assert.Equal(t, values, decoded)
}

func TestLabelEncoder_NumbersSortNumerically(t *testing.T) {
	enc := NewLabelEncoder()
	values := []dataset.Value{dataset.Number(10), dataset.Number(2), dataset.Number(-1)}

	codes, err := func() ([]int, error) {
		if err := enc.Fit(values); err != nil {
			return nil, err
		}
		return enc.TransformCodes(values)
	}()
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 0}, codes)
}

func TestLabelEncoder_UnknownCategory(t *testing.T) {
	enc := NewLabelEncoder()
	require.NoError(t, enc.Fit(texts("a", "b")))

	_, err := enc.Transform(texts("a", "c"))
	var catErr *errors.UnknownCategoryError
	require.True(t, errors.As(err, &catErr))
	assert.Equal(t, "c", catErr.Value)
	assert.Equal(t, 1, catErr.Row)
}

func TestLabelEncoder_Errors(t *testing.T) {
	t.Run("not fitted", func(t *testing.T) {
		enc := NewLabelEncoder()
		_, err := enc.Transform(texts("a"))
		var nf *errors.NotFittedError
		assert.True(t, errors.As(err, &nf))

		_, err = enc.InverseCodes([]int{0})
		assert.True(t, errors.As(err, &nf))
	})

	t.Run("empty data", func(t *testing.T) {
		err := NewLabelEncoder().Fit(nil)
		assert.True(t, errors.Is(err, errors.ErrEmptyData))
	})

	t.Run("missing value", func(t *testing.T) {
		err := NewLabelEncoder().Fit([]dataset.Value{dataset.Text("a"), dataset.Missing()})
		var valErr *errors.ValueError
		assert.True(t, errors.As(err, &valErr))
		assert.True(t, errors.Is(err, errors.ErrMissingValue))

		enc := NewLabelEncoder()
		require.NoError(t, enc.Fit(texts("a")))
		_, err = enc.TransformCodes([]dataset.Value{dataset.Missing()})
		assert.True(t, errors.Is(err, errors.ErrMissingValue))
	})

	t.Run("inverse out of range", func(t *testing.T) {
		enc := NewLabelEncoder()
		require.NoError(t, enc.Fit(texts("a", "b")))

		_, err := enc.InverseCodes([]int{0, 2})
		var valErr *errors.ValueError
		assert.True(t, errors.As(err, &valErr))

		_, err = enc.InverseTransform(mat.NewDense(1, 1, []float64{0.5}))
		assert.True(t, errors.As(err, &valErr))

		_, err = enc.InverseTransform(mat.NewDense(1, 2, []float64{0, 1}))
		var dimErr *errors.DimensionError
		assert.True(t, errors.As(err, &dimErr))
	})
}

func TestLabelEncoder_RefitReplacesClasses(t *testing.T) {
	enc := NewLabelEncoder()
	require.NoError(t, enc.Fit(texts("a", "b")))
	require.NoError(t, enc.Fit(texts("z")))

	assert.Equal(t, texts("z"), enc.Classes())
	_, err := enc.Transform(texts("a"))
	assert.Error(t, err)
}
