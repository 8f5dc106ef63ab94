package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/catenc/dataset"
	"github.com/YuminosukeSato/catenc/pkg/errors"
	"github.com/YuminosukeSato/catenc/pkg/log"
)

const trainCSV = `id,color,size,price
1,red,S,10
2,blue,M,
3,red,,12
4,green,L,9
`

const testCSV = `id,color,size,price
5,blue,S,3
6,red,,4
`

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	prev := log.GetProvider()
	t.Cleanup(func() {
		log.SetProvider(prev)
		errors.SetZerologWarnFunc(nil)
	})

	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func numbers(t *testing.T, ds *dataset.Dataset, column string) []float64 {
	t.Helper()
	values, err := ds.Column(column)
	require.NoError(t, err)
	out := make([]float64, len(values))
	for i, v := range values {
		f, ok := v.Float()
		require.True(t, ok, "row %d of %s is %v", i, column, v)
		out[i] = f
	}
	return out
}

func TestEncodeLabelTrainAndTest(t *testing.T) {
	dir := t.TempDir()
	train := writeFile(t, dir, "train.csv", trainCSV)
	test := writeFile(t, dir, "test.csv", testCSV)
	outTrain := filepath.Join(dir, "train_enc.csv")
	outTest := filepath.Join(dir, "test_enc.csv")

	_, stderr, err := runCLI(t, "encode",
		"--train", train, "--test", test,
		"--handle-missing",
		"--out-train", outTrain, "--out-test", outTest,
		"--log-format", "json",
	)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Encoding complete")

	encTrain, err := dataset.ReadCSVFile(outTrain)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "color", "size", "price"}, encTrain.ColumnNames())
	assert.Equal(t, []float64{2, 0, 2, 1}, numbers(t, encTrain, "color"))
	// "-999999" sorts before the letters
	assert.Equal(t, []float64{3, 2, 0, 1}, numbers(t, encTrain, "size"))
	assert.Equal(t, 1, encTrain.CountMissing("price"), "numeric columns are not selected")

	encTest, err := dataset.ReadCSVFile(outTest)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2}, numbers(t, encTest, "color"))
	assert.Equal(t, []float64{3, 0}, numbers(t, encTest, "size"))
}

func TestEncodeBinaryToStdout(t *testing.T) {
	dir := t.TempDir()
	train := writeFile(t, dir, "train.csv", trainCSV)

	stdout, _, err := runCLI(t, "encode", "--train", train, "--mode", "binary", "--columns", "color")
	require.NoError(t, err)

	ds, err := dataset.ReadCSV(strings.NewReader(stdout))
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "size", "price", "color__bin_0", "color__bin_1", "color__bin_2"}, ds.ColumnNames())
	assert.Equal(t, []float64{0, 1, 0, 0}, numbers(t, ds, "color__bin_0"))
	assert.Equal(t, []float64{0, 0, 0, 1}, numbers(t, ds, "color__bin_1"))
	assert.Equal(t, []float64{1, 0, 1, 0}, numbers(t, ds, "color__bin_2"))
}

func TestEncodePreview(t *testing.T) {
	dir := t.TempDir()
	train := writeFile(t, dir, "train.csv", trainCSV)

	stdout, _, err := runCLI(t, "encode", "--train", train, "--handle-missing", "--preview", "2")
	require.NoError(t, err)
	assert.Contains(t, strings.ToUpper(stdout), "COLOR")
	assert.NotContains(t, stdout, "id,color", "preview replaces the CSV on stdout")
}

func TestEncodeFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	train := writeFile(t, dir, "train.csv", trainCSV)
	outTrain := filepath.Join(dir, "out.csv")
	job := writeFile(t, dir, "job.toml", `
[input]
train = "`+filepath.ToSlash(train)+`"

[encoding]
columns = ["color"]
mode = "label"

[output]
train = "`+filepath.ToSlash(outTrain)+`"
`)

	// --mode on the command line wins over the file
	_, _, err := runCLI(t, "encode", "--config", job, "--mode", "binary")
	require.NoError(t, err)

	ds, err := dataset.ReadCSVFile(outTrain)
	require.NoError(t, err)
	assert.True(t, ds.HasColumn("color__bin_0"))
	assert.False(t, ds.HasColumn("color"))
	assert.True(t, ds.HasColumn("size"), "only configured columns are encoded")
}

func TestEncodeErrors(t *testing.T) {
	dir := t.TempDir()
	train := writeFile(t, dir, "train.csv", trainCSV)

	t.Run("unknown category in test", func(t *testing.T) {
		test := writeFile(t, dir, "unknown.csv", "id,color,size,price\n7,purple,S,1\n")
		_, _, err := runCLI(t, "encode", "--train", train, "--test", test, "--columns", "color",
			"--out-test", filepath.Join(dir, "unknown_enc.csv"))
		var catErr *errors.UnknownCategoryError
		require.True(t, errors.As(err, &catErr), "got %v", err)
		assert.Equal(t, "color", catErr.Column)
		assert.Equal(t, "purple", catErr.Value)
	})

	t.Run("unsupported mode", func(t *testing.T) {
		_, _, err := runCLI(t, "encode", "--train", train, "--mode", "ohe")
		var modeErr *errors.UnsupportedModeError
		assert.True(t, errors.As(err, &modeErr), "got %v", err)
	})

	t.Run("missing values without handling", func(t *testing.T) {
		_, _, err := runCLI(t, "encode", "--train", train, "--columns", "size")
		var valErr *errors.ValueError
		assert.True(t, errors.As(err, &valErr), "got %v", err)
	})

	t.Run("absent column", func(t *testing.T) {
		_, _, err := runCLI(t, "encode", "--train", train, "--columns", "shape")
		var colErr *errors.ColumnNotFoundError
		assert.True(t, errors.As(err, &colErr), "got %v", err)
	})

	t.Run("no train", func(t *testing.T) {
		_, _, err := runCLI(t, "encode")
		var valErr *errors.ValidationError
		assert.True(t, errors.As(err, &valErr), "got %v", err)
	})

	t.Run("test without destination", func(t *testing.T) {
		test := writeFile(t, dir, "test.csv", testCSV)
		stdout, _, err := runCLI(t, "encode", "--train", train, "--test", test, "--handle-missing")
		var valErr *errors.ValidationError
		require.True(t, errors.As(err, &valErr), "got %v", err)
		assert.Equal(t, "input.test", valErr.ParamName)
		assert.Empty(t, stdout, "nothing is encoded when the test output has nowhere to go")
	})

	t.Run("bad log format", func(t *testing.T) {
		_, _, err := runCLI(t, "encode", "--train", train, "--log-format", "xml")
		assert.Error(t, err)
	})
}

func TestConfigInit(t *testing.T) {
	stdout, _, err := runCLI(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, stdout, "[encoding]")

	target := filepath.Join(t.TempDir(), "job.toml")
	stdout, _, err = runCLI(t, "config", "init", "--path", target)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Wrote sample configuration")
	_, err = os.Stat(target)
	require.NoError(t, err)

	_, _, err = runCLI(t, "config", "init", "--path", target)
	assert.Error(t, err, "existing files are kept without --overwrite")

	_, _, err = runCLI(t, "config", "init", "--path", target, "--overwrite")
	assert.NoError(t, err)
}

func TestConfigValidate(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.toml", "[input]\ntrain = \"train.csv\"\n")
	bad := writeFile(t, dir, "bad.toml", "[input]\ntrain = \"train.csv\"\n[encoding]\nmode = \"ohe\"\n")

	stdout, _, err := runCLI(t, "--config", good, "config", "validate")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Configuration valid")

	_, _, err = runCLI(t, "--config", bad, "config", "validate")
	assert.Error(t, err)

	_, _, err = runCLI(t, "config", "validate")
	assert.Error(t, err)
}

func TestSelectColumns(t *testing.T) {
	ds, err := dataset.ReadCSV(strings.NewReader(trainCSV))
	require.NoError(t, err)

	assert.Equal(t, []string{"color", "size"}, selectColumns(ds, nil, []string{"id"}))
	assert.Equal(t, []string{"size"}, selectColumns(ds, nil, []string{"color"}))
	assert.Equal(t, []string{"price"}, selectColumns(ds, []string{"price"}, []string{"price"}))
}
