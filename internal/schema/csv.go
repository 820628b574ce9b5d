package schema

import (
	"encoding/csv"
	"fmt"
	"io"
)

// ReadTableCSV materializes a Table from CSV content. The first row is the
// header; cells stay raw strings so the Normalizer and Cleaner own all
// coercion. Short rows leave trailing cells absent; extra cells are dropped.
func ReadTableCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("reading csv header: empty input")
	}
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}

	t := &Table{Columns: header}
	for {
		cells, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv row: %w", err)
		}
		row := make(Row, len(header))
		for i, col := range header {
			if i < len(cells) {
				row[col] = cells[i]
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}
