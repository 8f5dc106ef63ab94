package errors

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// readColumn mirrors how encoders read matrices: gonum panics on bad indices.
func readColumn(X mat.Matrix, j int) (col []float64, err error) {
	defer Recover(&err, "readColumn")
	return mat.Col(nil, j, X), nil
}

func TestRecover_GonumPanic(t *testing.T) {
	X := mat.NewDense(2, 1, []float64{0, 1})

	col, err := readColumn(X, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1}, col)

	_, err = readColumn(X, 3)
	var panicErr *PanicError
	require.True(t, As(err, &panicErr), "got %v", err)
	assert.Equal(t, "readColumn", panicErr.Operation)
	assert.Equal(t, mat.ErrColAccess, panicErr.PanicValue)
	assert.NotEmpty(t, panicErr.StackTrace)
	assert.True(t, strings.HasPrefix(panicErr.Error(), "panic in readColumn: "))
}

func TestRecover_KeepsReturnedError(t *testing.T) {
	fn := func() (err error) {
		defer Recover(&err, "LabelEncoder.Fit")
		return NewModelError("LabelEncoder.Fit", "empty data", ErrEmptyData)
	}

	err := fn()
	assert.True(t, Is(err, ErrEmptyData))
	var panicErr *PanicError
	assert.False(t, As(err, &panicErr))
}

func TestRecover_WrapsEarlierError(t *testing.T) {
	fn := func() (err error) {
		defer Recover(&err, "LabelBinarizer.InverseTransform")
		err = NewValueError("LabelBinarizer.InverseTransform", "bad row")
		var X *mat.Dense
		_ = X.At(0, 0)
		return err
	}

	err := fn()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panic in LabelBinarizer.InverseTransform")
	var valErr *ValueError
	assert.True(t, As(err, &valErr), "the earlier error stays reachable")
}

func TestPanicError_Details(t *testing.T) {
	panicErr := NewPanicError("categorical.encodeColumn", "index out of range")

	assert.Equal(t, "panic in categorical.encodeColumn: index out of range", panicErr.Error())
	assert.Contains(t, panicErr.String(), "Stack trace:")

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	logger.Error().Object("detail", panicErr).Send()
	assert.Contains(t, buf.String(), `"operation":"categorical.encodeColumn"`)
	assert.Contains(t, buf.String(), `"type":"PanicError"`)
}
