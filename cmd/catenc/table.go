package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/YuminosukeSato/catenc/dataset"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

// renderPreview renders the first n rows of ds. Columns without text are
// right aligned.
func renderPreview(ds *dataset.Dataset, n int) string {
	headers := ds.ColumnNames()
	if n > ds.NumRows() {
		n = ds.NumRows()
	}

	aligns := make([]columnAlignment, len(headers))
	for i, name := range headers {
		if !ds.HasText(name) {
			aligns[i] = alignRight
		}
	}

	rows := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		values, err := ds.Row(i)
		if err != nil {
			break
		}
		row := make([]string, len(values))
		for j, v := range values {
			row[j] = v.String()
		}
		rows = append(rows, row)
	}
	return renderTable(headers, rows, aligns)
}
