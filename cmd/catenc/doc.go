// Command catenc encodes the categorical columns of CSV files.
//
// The encoders are fitted on the training file only and then applied to the
// test file, so categories seen only in the test file are reported as errors.
//
//	catenc encode --train train.csv --test test.csv --mode binary --handle-missing \
//	    --out-train train_enc.csv --out-test test_enc.csv
//	catenc config init --path job.toml
//	catenc encode --config job.toml --preview 10
package main
