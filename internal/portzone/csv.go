package portzone

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// The lookup is exchanged as a flat table: port, mapped_zone, support_count,
// note. The note column holds the literal ambiguity flag when applicable.
var lookupHeader = []string{"port", "mapped_zone", "support_count", "note"}

// WriteLookup encodes the lookup as its flat-table CSV form, one row per
// port, sorted for reproducible diffs.
func WriteLookup(w io.Writer, lookup *Lookup) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(lookupHeader); err != nil {
		return fmt.Errorf("writing lookup header: %w", err)
	}
	for _, e := range lookup.Entries() {
		note := ""
		if e.Ambiguous {
			note = NoteAmbiguous
		}
		row := []string{e.Port, e.MappedZone, strconv.Itoa(e.SupportCount), note}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing lookup row for %q: %w", e.Port, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadLookup decodes a persisted lookup table.
func ReadLookup(r io.Reader) (*Lookup, error) {
	rows, err := readFlatTable(r, lookupHeader)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(rows))
	for _, row := range rows {
		n := 0
		if row[2] != "" {
			n, err = strconv.Atoi(row[2])
			if err != nil {
				return nil, fmt.Errorf("parsing support_count for %q: %w", row[0], err)
			}
		}
		entries = append(entries, Entry{
			Port:         row[0],
			MappedZone:   row[1],
			SupportCount: n,
			Ambiguous:    row[3] == NoteAmbiguous,
		})
	}
	return NewLookup(entries), nil
}

// ReadOverrides decodes a manual correction table with columns
// port, mapped_zone.
func ReadOverrides(r io.Reader) (Overrides, error) {
	rows, err := readFlatTable(r, []string{"port", "mapped_zone"})
	if err != nil {
		return nil, err
	}
	ov := make(Overrides, len(rows))
	for _, row := range rows {
		ov[row[0]] = row[1]
	}
	return ov, nil
}

// readFlatTable reads a headed CSV, verifying the leading columns match want
// and padding short rows so callers can index positionally.
func readFlatTable(r io.Reader, want []string) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("reading header: empty input")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if len(header) < len(want) {
		return nil, fmt.Errorf("expected columns %v, got %v", want, header)
	}
	for i, col := range want {
		if !strings.EqualFold(strings.TrimSpace(header[i]), col) {
			return nil, fmt.Errorf("expected column %q at position %d, got %q", col, i, header[i])
		}
	}

	var rows [][]string
	for {
		cells, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}
		row := make([]string, len(want))
		for i := range want {
			if i < len(cells) {
				row[i] = strings.TrimSpace(cells[i])
			}
		}
		if row[0] == "" {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}
