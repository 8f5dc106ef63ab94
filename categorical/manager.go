// Package categorical converts categorical columns of a dataset into numeric
// columns, consistently between a fit pass and any number of apply passes.
//
// An EncoderManager is built once per training dataset. FitTransform fits one
// encoder per target column and returns the encoded copy; Transform applies
// the same encoders to new data.
//
//	mgr := categorical.NewEncoderManager(train, []string{"color"}, categorical.ModeLabel, true)
//	encodedTrain, err := mgr.FitTransform()
//	encodedTest, err := mgr.Transform(test)
package categorical

import (
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/catenc/core/model"
	"github.com/YuminosukeSato/catenc/dataset"
	"github.com/YuminosukeSato/catenc/pkg/errors"
	"github.com/YuminosukeSato/catenc/pkg/log"
	"github.com/YuminosukeSato/catenc/preprocessing"
)

// Option configures an EncoderManager.
type Option func(*EncoderManager)

// WithLogger sets the logger used for encoding events.
func WithLogger(l log.Logger) Option {
	return func(m *EncoderManager) {
		m.logger = l
	}
}

// WithIndicatorLabels sets the values written to indicator columns in binary mode.
func WithIndicatorLabels(neg, pos float64) Option {
	return func(m *EncoderManager) {
		m.negLabel = neg
		m.posLabel = pos
	}
}

// EncoderManager owns the encoding configuration, the source dataset and the
// encoders fitted on it. Encoders are per instance, keyed by column name.
type EncoderManager struct {
	model.BaseEstimator

	id            string
	source        *dataset.Dataset
	output        *dataset.Dataset
	columns       []string
	mode          Mode
	handleMissing bool
	negLabel      float64
	posLabel      float64

	encoders      map[string]model.CategoricalEncoder
	outputColumns map[string][]string

	logger log.Logger
}

// NewEncoderManager stores the configuration and keeps a reference to ds.
// Nothing is validated here; an unknown mode or absent column is reported by
// FitTransform.
//
// When handleMissing is true every target column present in ds is rewritten in
// place: numbers become text and missing values become MissingSentinel.
func NewEncoderManager(ds *dataset.Dataset, columns []string, mode Mode, handleMissing bool, opts ...Option) *EncoderManager {
	if ds == nil {
		ds = dataset.New()
	}
	m := &EncoderManager{
		id:            uuid.NewString(),
		source:        ds,
		columns:       append([]string(nil), columns...),
		mode:          mode,
		handleMissing: handleMissing,
		posLabel:      1,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = log.GetLoggerWithName("categorical")
	}
	m.logger = m.logger.With(
		log.ModelNameKey, "EncoderManager",
		log.EstimatorIDKey, m.id,
		log.EncodingModeKey, string(m.mode),
	)

	if m.handleMissing {
		m.fillMissing(m.source, "NewEncoderManager")
	}
	m.output = m.source.Clone()
	return m
}

// FitTransform fits a fresh encoder for every target column on the source
// dataset and returns the encoded copy. Label mode overwrites each column with
// integer codes; binary mode replaces it with "<col>__bin_<j>" indicator
// columns in ascending category order.
//
// Calling FitTransform again refits every encoder from the source dataset.
func (m *EncoderManager) FitTransform() (*dataset.Dataset, error) {
	start := time.Now()
	const op = "EncoderManager.FitTransform"

	if !m.mode.Valid() {
		return nil, m.fail(op, errors.NewUnsupportedModeError(string(m.mode), SupportedModes()...))
	}
	if err := m.checkColumns(op, m.source); err != nil {
		return nil, m.fail(op, err)
	}

	// The first fit encodes the construct-time working copy in place; a
	// refit starts again from the source.
	output := m.output
	if m.IsFitted() {
		output = m.source.Clone()
	}
	encoders, outputColumns, err := m.fitColumns(output)
	if err != nil {
		if output == m.output {
			m.output = m.source.Clone()
		}
		return nil, m.fail(op, err)
	}

	m.encoders = encoders
	m.outputColumns = outputColumns
	m.output = output
	m.SetFitted()

	m.logger.Info("Encoders fitted",
		log.OperationKey, log.OperationFitTransform,
		log.PhaseKey, log.PhaseTraining,
		log.SamplesKey, output.NumRows(),
		log.ColumnsKey, output.NumColumns(),
		log.FingerprintKey, fmt.Sprintf("%016x", m.Fingerprint()),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return output, nil
}

// fitColumns fits one encoder per target column and writes its output into ds.
func (m *EncoderManager) fitColumns(ds *dataset.Dataset) (map[string]model.CategoricalEncoder, map[string][]string, error) {
	encoders := make(map[string]model.CategoricalEncoder, len(m.columns))
	outputColumns := make(map[string][]string, len(m.columns))

	for _, col := range m.columns {
		values, err := m.source.Column(col)
		if err != nil {
			return nil, nil, err
		}
		enc := m.newEncoder()
		if err := enc.Fit(values); err != nil {
			return nil, nil, errors.Wrapf(err, "column %s", col)
		}
		encoded, err := encodeColumn(enc, values)
		if err != nil {
			return nil, nil, withColumn(col, err)
		}
		names, err := m.apply(ds, col, encoded)
		if err != nil {
			return nil, nil, err
		}
		encoders[col] = enc
		outputColumns[col] = names

		m.logger.Debug("Column encoded",
			log.OperationKey, log.OperationFitTransform,
			log.ColumnKey, col,
			log.CategoriesKey, len(enc.Classes()),
			log.OutputColumnsKey, len(names),
		)
	}
	return encoders, outputColumns, nil
}

// Transform applies the fitted encoders to a copy of ds; ds itself is never
// modified. Missing-value substitution runs first when enabled. A category not
// seen during fit aborts the call with UnknownCategoryError.
func (m *EncoderManager) Transform(ds *dataset.Dataset) (*dataset.Dataset, error) {
	start := time.Now()
	const op = "EncoderManager.Transform"

	if err := m.checkReady("Transform"); err != nil {
		return nil, m.fail(op, err)
	}
	if ds == nil {
		return nil, m.fail(op, errors.NewValueError(op, "dataset is nil"))
	}
	if err := m.checkColumns(op, ds); err != nil {
		return nil, m.fail(op, err)
	}

	output := ds.Clone()
	if m.handleMissing {
		m.fillMissing(output, op)
	}

	for _, col := range m.columns {
		values, err := output.Column(col)
		if err != nil {
			return nil, m.fail(op, err)
		}
		encoded, err := encodeColumn(m.encoders[col], values)
		if err != nil {
			return nil, m.fail(op, withColumn(col, err))
		}
		if _, err := m.apply(output, col, encoded); err != nil {
			return nil, m.fail(op, err)
		}
	}

	m.logger.Info("Dataset transformed",
		log.OperationKey, log.OperationTransform,
		log.PhaseKey, log.PhaseInference,
		log.SamplesKey, output.NumRows(),
		log.ColumnsKey, output.NumColumns(),
		log.FingerprintKey, fmt.Sprintf("%016x", m.Fingerprint()),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return output, nil
}

// InverseTransform decodes the encoded columns of a copy of ds back to the
// original categories. Label columns are decoded in place; each group of
// indicator columns collapses into one column named after its source column,
// appended at the end.
func (m *EncoderManager) InverseTransform(ds *dataset.Dataset) (*dataset.Dataset, error) {
	const op = "EncoderManager.InverseTransform"

	if err := m.checkReady("InverseTransform"); err != nil {
		return nil, m.fail(op, err)
	}
	if ds == nil {
		return nil, m.fail(op, errors.NewValueError(op, "dataset is nil"))
	}

	output := ds.Clone()
	for _, col := range m.columns {
		names := m.outputColumns[col]
		X, err := encodedMatrix(op, output, names)
		if err != nil {
			return nil, m.fail(op, err)
		}
		decoded, err := decodeColumn(m.encoders[col], X)
		if err != nil {
			return nil, m.fail(op, errors.Wrapf(err, "column %s", col))
		}

		if m.mode == ModeLabel {
			if err := output.SetColumn(col, decoded); err != nil {
				return nil, m.fail(op, err)
			}
			continue
		}
		for _, name := range names {
			if err := output.DropColumn(name); err != nil {
				return nil, m.fail(op, err)
			}
		}
		if err := output.AddColumn(col, decoded); err != nil {
			return nil, m.fail(op, err)
		}
	}

	m.logger.Debug("Dataset decoded",
		log.OperationKey, log.OperationInverseTransform,
		log.SamplesKey, output.NumRows(),
	)
	return output, nil
}

// Output returns the current output dataset: the encoded result after
// FitTransform, or the unencoded working copy before it.
func (m *EncoderManager) Output() *dataset.Dataset {
	return m.output
}

// Encoders returns the fitted encoders keyed by column name.
func (m *EncoderManager) Encoders() map[string]model.CategoricalEncoder {
	out := make(map[string]model.CategoricalEncoder, len(m.encoders))
	for k, v := range m.encoders {
		out[k] = v
	}
	return out
}

// Encoder returns the fitted encoder of one column.
func (m *EncoderManager) Encoder(column string) (model.CategoricalEncoder, bool) {
	enc, ok := m.encoders[column]
	return enc, ok
}

// OutputColumns returns the names emitted for a source column at fit time.
func (m *EncoderManager) OutputColumns(column string) []string {
	return append([]string(nil), m.outputColumns[column]...)
}

// Columns returns the target columns in order.
func (m *EncoderManager) Columns() []string {
	return append([]string(nil), m.columns...)
}

// Mode returns the configured encoding mode.
func (m *EncoderManager) Mode() Mode {
	return m.mode
}

// HandleMissing reports whether missing-value substitution is enabled.
func (m *EncoderManager) HandleMissing() bool {
	return m.handleMissing
}

// ID returns the instance identifier attached to log records.
func (m *EncoderManager) ID() string {
	return m.id
}

// Fingerprint hashes the mode, the target columns and every fitted class.
// Two managers with equal fingerprints encode identically. It is 0 before
// FitTransform.
func (m *EncoderManager) Fingerprint() uint64 {
	if !m.IsFitted() {
		return 0
	}
	d := xxhash.New()
	_, _ = d.WriteString(string(m.mode))
	for _, col := range m.columns {
		_, _ = d.WriteString("\x00" + col)
		for _, c := range m.encoders[col].Classes() {
			_, _ = d.WriteString("\x01" + c.Kind().String() + ":" + c.String())
		}
	}
	return d.Sum64()
}

// GetParams returns the configuration.
func (m *EncoderManager) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"columns":        m.Columns(),
		"mode":           string(m.mode),
		"handle_missing": m.handleMissing,
		"neg_label":      m.negLabel,
		"pos_label":      m.posLabel,
	}
}

// String returns a short description of the manager.
func (m *EncoderManager) String() string {
	return fmt.Sprintf("EncoderManager(mode=%s, columns=%v, handle_missing=%t, state=%s)",
		m.mode, m.columns, m.handleMissing, m.State())
}

func (m *EncoderManager) newEncoder() model.CategoricalEncoder {
	if m.mode == ModeBinary {
		return preprocessing.NewLabelBinarizer(m.negLabel, m.posLabel)
	}
	return preprocessing.NewLabelEncoder()
}

// checkReady fails for an unknown mode first, then for a missing fit.
func (m *EncoderManager) checkReady(method string) error {
	if !m.mode.Valid() {
		return errors.NewUnsupportedModeError(string(m.mode), SupportedModes()...)
	}
	if !m.IsFitted() || len(m.encoders) != len(m.columns) {
		return errors.NewNotFittedError("EncoderManager", method)
	}
	return nil
}

func (m *EncoderManager) checkColumns(op string, ds *dataset.Dataset) error {
	seen := make(map[string]struct{}, len(m.columns))
	for _, col := range m.columns {
		if _, dup := seen[col]; dup {
			return errors.NewValidationError("columns", "duplicate target column", col)
		}
		seen[col] = struct{}{}
		if !ds.HasColumn(col) {
			return errors.NewColumnNotFoundError(op, col)
		}
	}
	return nil
}

// apply writes the encoded columns of col into ds and returns their names.
func (m *EncoderManager) apply(ds *dataset.Dataset, col string, encoded [][]dataset.Value) ([]string, error) {
	if m.mode == ModeLabel {
		return []string{col}, ds.SetColumn(col, encoded[0])
	}

	if err := ds.DropColumn(col); err != nil {
		return nil, err
	}
	names := make([]string, len(encoded))
	for j, values := range encoded {
		names[j] = IndicatorName(col, j)
		if err := ds.AddColumn(names[j], values); err != nil {
			return nil, err
		}
	}
	return names, nil
}

// fillMissing rewrites target columns of ds as text with missing values
// replaced by MissingSentinel. Absent columns are skipped.
func (m *EncoderManager) fillMissing(ds *dataset.Dataset, op string) {
	for _, col := range m.columns {
		values, err := ds.Column(col)
		if err != nil {
			continue
		}
		substituted, converted := 0, 0
		for i, v := range values {
			switch v.Kind() {
			case dataset.KindMissing:
				values[i] = dataset.Text(MissingSentinel)
				substituted++
			case dataset.KindNumber:
				values[i] = v.AsText()
				converted++
			}
		}
		if substituted == 0 && converted == 0 {
			continue
		}
		// lengths match, SetColumn cannot fail here
		_ = ds.SetColumn(col, values)

		if converted > 0 {
			errors.Warn(errors.NewDataConversionWarning(col, "number", "text", converted, "missing value handling"))
		}
		m.logger.Debug("Missing values substituted",
			log.OperationKey, op,
			log.ColumnKey, col,
			log.SubstitutedKey, substituted,
		)
	}
}

// fail records err at debug level and returns it; reporting is left to the caller.
func (m *EncoderManager) fail(op string, err error) error {
	m.logger.Debug("Encoding failed", err, log.OperationKey, op)
	return err
}

// IndicatorName returns the name of the j-th indicator column of col.
func IndicatorName(col string, j int) string {
	return fmt.Sprintf("%s__bin_%d", col, j)
}

// encodeColumn runs enc on values and returns one value slice per output
// column. Empty input yields empty output columns. A panic raised while
// reading the encoder's matrix is returned as *errors.PanicError.
func encodeColumn(enc model.CategoricalEncoder, values []dataset.Value) (out [][]dataset.Value, err error) {
	defer errors.Recover(&err, "categorical.encodeColumn")

	k := enc.NOutputs()
	out = make([][]dataset.Value, k)
	if len(values) == 0 {
		for j := range out {
			out[j] = []dataset.Value{}
		}
		return out, nil
	}

	X, err := enc.Transform(values)
	if err != nil {
		return nil, err
	}
	for j := 0; j < k; j++ {
		col := mat.Col(nil, j, X)
		vals := make([]dataset.Value, len(col))
		for i, f := range col {
			vals[i] = dataset.Number(f)
		}
		out[j] = vals
	}
	return out, nil
}

// decodeColumn maps an encoded matrix back to categories. A nil matrix
// decodes to an empty column.
func decodeColumn(enc model.CategoricalEncoder, X *mat.Dense) (values []dataset.Value, err error) {
	defer errors.Recover(&err, "categorical.decodeColumn")

	if X == nil {
		return []dataset.Value{}, nil
	}
	return enc.InverseTransform(X)
}

// encodedMatrix gathers the named numeric columns of ds into a matrix.
// It returns nil for an empty dataset.
func encodedMatrix(op string, ds *dataset.Dataset, names []string) (*mat.Dense, error) {
	for _, name := range names {
		if !ds.HasColumn(name) {
			return nil, errors.NewColumnNotFoundError(op, name)
		}
	}
	if ds.NumRows() == 0 {
		return nil, nil
	}
	return ds.Matrix(names...)
}

// withColumn attaches the column name to an UnknownCategoryError.
func withColumn(col string, err error) error {
	var catErr *errors.UnknownCategoryError
	if errors.As(err, &catErr) {
		return errors.NewUnknownCategoryError(col, catErr.Value, catErr.Row)
	}
	return errors.Wrapf(err, "column %s", col)
}

var (
	_ model.DatasetTransformer = (*EncoderManager)(nil)
	_ model.ParameterGetter    = (*EncoderManager)(nil)
)
