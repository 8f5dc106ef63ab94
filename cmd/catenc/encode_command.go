package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/catenc/categorical"
	"github.com/YuminosukeSato/catenc/dataset"
	"github.com/YuminosukeSato/catenc/internal/config"
	"github.com/YuminosukeSato/catenc/pkg/log"
)

type encodeFlags struct {
	train         string
	test          string
	columns       []string
	exclude       []string
	mode          string
	handleMissing bool
	outTrain      string
	outTest       string
	preview       int
}

func newEncodeCommand(ctx *commandContext) *cobra.Command {
	var flags encodeFlags

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Fit encoders on the training CSV and apply them to the test CSV",
		Long: `Fit one encoder per target column on the training CSV and apply the same
encoders to the optional test CSV.

When no columns are given, every column that contains text and is not
excluded is encoded. Without --out-train and --preview the encoded training
data is written to stdout.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.loadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			applyEncodeFlags(cmd, cfg, flags)
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := setupLogging(cfg.Logging, cmd.ErrOrStderr()); err != nil {
				return err
			}
			return runEncode(cfg, cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.train, "train", "", "Training CSV the encoders are fitted on")
	f.StringVar(&flags.test, "test", "", "Test CSV encoded with the fitted encoders")
	f.StringSliceVar(&flags.columns, "columns", nil, "Columns to encode (default: every text column not excluded)")
	f.StringSliceVar(&flags.exclude, "exclude", nil, "Columns never selected automatically")
	f.StringVar(&flags.mode, "mode", "", "Encoding mode: label or binary")
	f.BoolVar(&flags.handleMissing, "handle-missing", false, "Replace missing values with -999999 before encoding")
	f.StringVar(&flags.outTrain, "out-train", "", "Destination for the encoded training CSV")
	f.StringVar(&flags.outTest, "out-test", "", "Destination for the encoded test CSV (required with --test)")
	f.IntVar(&flags.preview, "preview", 0, "Print the first N encoded training rows as a table")

	return cmd
}

// applyEncodeFlags copies every flag set on the command line over cfg.
func applyEncodeFlags(cmd *cobra.Command, cfg *config.Config, flags encodeFlags) {
	changed := cmd.Flags().Changed
	if changed("train") {
		cfg.Input.Train = flags.train
	}
	if changed("test") {
		cfg.Input.Test = flags.test
	}
	if changed("columns") {
		cfg.Encoding.Columns = flags.columns
	}
	if changed("exclude") {
		cfg.Encoding.Exclude = flags.exclude
	}
	if changed("mode") {
		cfg.Encoding.Mode = flags.mode
	}
	if changed("handle-missing") {
		cfg.Encoding.HandleMissing = flags.handleMissing
	}
	if changed("out-train") {
		cfg.Output.Train = flags.outTrain
	}
	if changed("out-test") {
		cfg.Output.Test = flags.outTest
	}
	if changed("preview") {
		cfg.Output.Preview = flags.preview
	}
}

func runEncode(cfg *config.Config, out io.Writer) error {
	start := time.Now()
	logger := log.GetLoggerWithName("cli")

	train, err := dataset.ReadCSVFile(cfg.Input.Train)
	if err != nil {
		return err
	}
	logger.Info("Loaded training data",
		log.PathKey, cfg.Input.Train,
		log.SamplesKey, train.NumRows(),
		log.ColumnsKey, train.NumColumns(),
	)

	var test *dataset.Dataset
	if cfg.Input.Test != "" {
		if test, err = dataset.ReadCSVFile(cfg.Input.Test); err != nil {
			return err
		}
		logger.Info("Loaded test data",
			log.PathKey, cfg.Input.Test,
			log.SamplesKey, test.NumRows(),
			log.ColumnsKey, test.NumColumns(),
		)
	}

	columns := selectColumns(train, cfg.Encoding.Columns, cfg.Encoding.Exclude)
	if len(columns) == 0 {
		logger.Warn("No categorical columns selected; data is written unchanged")
	}

	mode, err := categorical.ParseMode(cfg.Encoding.Mode)
	if err != nil {
		return err
	}
	manager := categorical.NewEncoderManager(train, columns, mode, cfg.Encoding.HandleMissing)

	encodedTrain, err := manager.FitTransform()
	if err != nil {
		return err
	}

	var encodedTest *dataset.Dataset
	if test != nil {
		if encodedTest, err = manager.Transform(test); err != nil {
			return err
		}
	}

	switch {
	case cfg.Output.Train != "":
		if err := encodedTrain.WriteCSVFile(cfg.Output.Train); err != nil {
			return err
		}
	case cfg.Output.Preview == 0:
		if err := encodedTrain.WriteCSV(out); err != nil {
			return err
		}
	}
	if encodedTest != nil {
		if err := encodedTest.WriteCSVFile(cfg.Output.Test); err != nil {
			return err
		}
	}

	if cfg.Output.Preview > 0 {
		fmt.Fprintln(out, renderPreview(encodedTrain, cfg.Output.Preview))
	}

	logger.Info("Encoding complete",
		log.EncodingModeKey, string(mode),
		"encoding.targets", columns,
		log.ColumnsKey, encodedTrain.NumColumns(),
		log.FingerprintKey, fmt.Sprintf("%016x", manager.Fingerprint()),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return nil
}

// selectColumns returns explicit when it is non-empty. Otherwise it returns
// every column of ds that contains text and is not excluded, in column order.
func selectColumns(ds *dataset.Dataset, explicit, exclude []string) []string {
	if len(explicit) > 0 {
		return explicit
	}
	skip := make(map[string]struct{}, len(exclude))
	for _, e := range exclude {
		skip[e] = struct{}{}
	}
	var columns []string
	for _, name := range ds.ColumnNames() {
		if _, ok := skip[name]; ok {
			continue
		}
		if ds.HasText(name) {
			columns = append(columns, name)
		}
	}
	return columns
}
