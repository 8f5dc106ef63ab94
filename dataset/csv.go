package dataset

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/YuminosukeSato/catenc/pkg/errors"
)

// ReadCSV reads a dataset from CSV. The first record is the header; cells
// are converted with ParseValue.
func ReadCSV(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.NewModelError("dataset.ReadCSV", "missing header", errors.ErrEmptyData)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read header")
	}

	cols := make([][]Value, len(header))
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "error reading record")
		}
		for j, cell := range record {
			cols[j] = append(cols[j], ParseValue(cell))
		}
	}

	d := New()
	for j, name := range header {
		if cols[j] == nil {
			cols[j] = []Value{}
		}
		if err := d.AddColumn(name, cols[j]); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// ReadCSVFile reads a dataset from the CSV file at path.
func ReadCSVFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()

	d, err := ReadCSV(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return d, nil
}

// WriteCSV writes the dataset as CSV with a header record. Missing values
// are written as empty cells.
func (d *Dataset) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(d.names); err != nil {
		return errors.Wrap(err, "failed to write header")
	}
	record := make([]string, len(d.names))
	for i := 0; i < d.rows; i++ {
		for j, n := range d.names {
			record[j] = d.values[n][i].String()
		}
		if err := writer.Write(record); err != nil {
			return errors.Wrapf(err, "failed to write row %d", i)
		}
	}
	writer.Flush()
	return errors.Wrap(writer.Error(), "failed to flush csv")
}

// WriteCSVFile writes the dataset to the CSV file at path.
func (d *Dataset) WriteCSVFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	if err := d.WriteCSV(f); err != nil {
		f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "failed to close %s", path)
}
