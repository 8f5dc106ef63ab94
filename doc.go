// Package catenc encodes categorical columns of tabular data into numeric
// features for downstream models.
//
// Encoders are fitted on a training dataset and then applied unchanged to any
// number of new datasets, so train and test data always share one encoding.
//
// # Features
//
// - Label encoding: each category becomes an integer code in sorted order
// - Binary encoding: each category becomes its own 0/1 indicator column
// - Missing value handling: missing cells are replaced with "-999999"
// - Structured errors: unknown categories, unfitted encoders and unsupported modes
// - Structured logging backed by zerolog
//
// # Installation
//
//	go get github.com/YuminosukeSato/catenc
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/catenc/categorical"
//	    "github.com/YuminosukeSato/catenc/dataset"
//	)
//
//	func main() {
//	    train, _ := dataset.FromColumns(
//	        dataset.TextColumn("color", "red", "blue", "red", "green"),
//	    )
//
//	    manager := categorical.NewEncoderManager(train, []string{"color"}, categorical.ModeLabel, true)
//	    encoded, err := manager.FitTransform()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    codes, _ := encoded.Column("color")
//	    fmt.Println(codes) // [2 0 2 1]
//
//	    test, _ := dataset.FromColumns(dataset.TextColumn("color", "blue", "red"))
//	    encodedTest, err := manager.Transform(test)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    _ = encodedTest
//	}
//
// # Packages
//
//   - categorical: EncoderManager, the fit-once/apply-many driver
//   - preprocessing: LabelEncoder and LabelBinarizer
//   - dataset: in-memory table of named columns, CSV I/O, gonum export
//   - core/model: fitted state and encoder interfaces
//   - pkg/errors: structured error types and warnings
//   - pkg/log: logger interface and zerolog backend
//
// The catenc command in cmd/catenc runs the same pipeline over CSV files.
//
// # License
//
// catenc is released under the MIT License.
package catenc
