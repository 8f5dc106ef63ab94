// Package log defines standard attribute keys for encoding operations.
//
// Keys follow a hierarchical naming convention (e.g., "model.name",
// "data.samples") so that log records can be filtered consistently.

package log

// Model and Operation Context
const (
	// ModelNameKey identifies the type of encoder.
	// Examples: "EncoderManager", "LabelEncoder", "LabelBinarizer"
	ModelNameKey = "model.name"

	// EstimatorIDKey provides a unique identifier for a specific encoder instance.
	EstimatorIDKey = "estimator.id"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "transform", "fit_transform", "inverse_transform"
	OperationKey = "ml.operation"

	// ComponentKey identifies which component or package is performing the operation.
	ComponentKey = "ml.component"

	// PhaseKey indicates the phase of the pipeline.
	PhaseKey = "ml.phase"
)

// Data Shape and Characteristics
const (
	// SamplesKey indicates the number of rows in the dataset.
	SamplesKey = "data.samples"

	// ColumnsKey indicates the number of columns in the dataset.
	ColumnsKey = "data.columns"

	// ColumnKey names the column being processed.
	ColumnKey = "data.column"

	// DataTypeKey specifies the type of data being processed.
	// Examples: "text", "number", "categorical"
	DataTypeKey = "data.type"

	// PathKey names the file a dataset was read from or written to.
	PathKey = "data.path"
)

// Encoding
const (
	// EncodingModeKey records the encoding mode ("label", "binary").
	EncodingModeKey = "encoding.mode"

	// CategoriesKey records the number of distinct categories learned for a column.
	CategoriesKey = "encoding.categories"

	// OutputColumnsKey records the number of columns emitted for a source column.
	OutputColumnsKey = "encoding.output_columns"

	// HandleMissingKey records whether missing-value substitution is enabled.
	HandleMissingKey = "encoding.handle_missing"

	// FingerprintKey records the hash of the fitted encoders in hex.
	FingerprintKey = "encoding.fingerprint"

	// SubstitutedKey records the number of missing values replaced by the sentinel.
	SubstitutedKey = "encoding.substituted"
)

// Performance
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)

// Error and Warning Context
const (
	// ErrorCodeKey provides a structured error code for programmatic handling.
	ErrorCodeKey = "error.code"

	// ErrorTypeKey categorizes the type of error encountered.
	ErrorTypeKey = "error.type"

	// SuggestionKey provides helpful suggestions for resolving issues.
	SuggestionKey = "error.suggestion"
)

// Standard attribute values.
const (
	OperationFit              = "fit"
	OperationTransform        = "transform"
	OperationFitTransform     = "fit_transform"
	OperationInverseTransform = "inverse_transform"

	PhaseTraining      = "training"
	PhaseInference     = "inference"
	PhasePreprocessing = "preprocessing"

	ErrorNotFitted       = "NOT_FITTED"
	ErrorUnsupportedMode = "UNSUPPORTED_MODE"
	ErrorUnknownCategory = "UNKNOWN_CATEGORY"
	ErrorColumnNotFound  = "COLUMN_NOT_FOUND"
	ErrorEmptyData       = "EMPTY_DATA"
)
