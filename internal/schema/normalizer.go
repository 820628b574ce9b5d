package schema

import (
	"time"

	"go.uber.org/zap"
)

// DateSource describes how dates were produced for a normalized batch.
type DateSource string

const (
	// DateFromColumn means an explicit date column was resolved.
	DateFromColumn DateSource = "column"
	// DateFromYearMonth means dates were synthesized from year+month parts.
	DateFromYearMonth DateSource = "year_month"
	// DateFromYear means dates were synthesized as year-01-01.
	DateFromYear DateSource = "year"
	// DateNone means no date-bearing signal was found. Records carry no
	// date or year; callers depending on temporal aggregation must handle
	// this explicitly.
	DateNone DateSource = "none"
)

// Resolution reports how a table's columns were bound to canonical fields.
type Resolution struct {
	// Columns maps each resolved field to its source column name.
	Columns map[Field]string
	// Missing lists canonical fields that did not resolve. Absence is a
	// ResolutionGap, not an error.
	Missing []Field
	// DateSource records the date synthesis path taken.
	DateSource DateSource
}

// Normalizer transforms arbitrary input tables into canonical records.
type Normalizer struct {
	resolver *Resolver
	logger   *zap.Logger
}

// NewNormalizer creates a Normalizer. A nil resolver uses the default
// candidate lists; a nil logger disables logging.
func NewNormalizer(resolver *Resolver, logger *zap.Logger) *Normalizer {
	if resolver == nil {
		resolver = NewResolver()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Normalizer{resolver: resolver, logger: logger}
}

// recordFields are the canonical fields Normalize tries to bind, beyond the
// date/year/month trio which has its own synthesis path.
var recordFields = []Field{
	FieldSpecies, FieldGear, FieldZone, FieldPort, FieldCounty,
	FieldQuantity, FieldRevenue, FieldTrips, FieldHarvesters, FieldWeightType,
}

// Normalize produces canonical records from t. Unresolved optional fields are
// left absent on every record rather than placeholder-filled.
//
// It fails with a StructuralError only when no canonical field resolves at
// all; a missing date signal alone is not fatal (the batch is produced
// without date/year).
func (n *Normalizer) Normalize(t *Table) ([]Record, *Resolution, error) {
	res := &Resolution{Columns: make(map[Field]string), DateSource: DateNone}

	dateCol, hasDate := n.resolver.Resolve(t.Columns, FieldDate)
	yearCol, hasYear := n.resolver.Resolve(t.Columns, FieldYear)
	monthCol, hasMonth := n.resolver.Resolve(t.Columns, FieldMonth)

	switch {
	case hasDate:
		res.Columns[FieldDate] = dateCol
		res.DateSource = DateFromColumn
	case hasYear && hasMonth:
		res.DateSource = DateFromYearMonth
	case hasYear:
		res.DateSource = DateFromYear
	}
	if hasYear {
		res.Columns[FieldYear] = yearCol
	}
	if hasMonth {
		res.Columns[FieldMonth] = monthCol
	}

	bound := make(map[Field]string, len(recordFields))
	for _, f := range recordFields {
		var col string
		var ok bool
		if f == FieldZone {
			col, ok = n.resolver.ResolveZoneLike(t.Columns)
		} else {
			col, ok = n.resolver.Resolve(t.Columns, f)
		}
		// The quantity and revenue candidate lists are disjoint by
		// construction, but a caller-supplied list may overlap; never
		// bind one source column to both.
		if ok && f == FieldRevenue && col == bound[FieldQuantity] {
			ok = false
		}
		if !ok {
			res.Missing = append(res.Missing, f)
			continue
		}
		bound[f] = col
		res.Columns[f] = col
	}

	if len(res.Columns) == 0 {
		return nil, res, &StructuralError{Subject: "canonical columns", Values: t.Columns}
	}
	if res.DateSource == DateNone {
		n.logger.Warn("no date-bearing column resolved; records carry no date or year",
			zap.Strings("columns", t.Columns))
	}

	records := make([]Record, 0, len(t.Rows))
	for _, row := range t.Rows {
		var rec Record
		n.fillTemporal(&rec, row, res, dateCol, yearCol, monthCol)

		if col, ok := bound[FieldSpecies]; ok {
			rec.Species, _ = cellString(row[col])
		}
		if col, ok := bound[FieldGear]; ok {
			rec.Gear, _ = cellString(row[col])
		}
		if col, ok := bound[FieldZone]; ok {
			rec.Zone, _ = cellString(row[col])
		}
		if col, ok := bound[FieldPort]; ok {
			rec.Port, _ = cellString(row[col])
		}
		if col, ok := bound[FieldCounty]; ok {
			rec.County, _ = cellString(row[col])
		}
		if col, ok := bound[FieldWeightType]; ok {
			rec.WeightType, _ = cellString(row[col])
		}
		if col, ok := bound[FieldQuantity]; ok {
			rec.Quantity = floatPtr(row[col])
		}
		if col, ok := bound[FieldRevenue]; ok {
			rec.Revenue = floatPtr(row[col])
		}
		if col, ok := bound[FieldTrips]; ok {
			rec.Trips = floatPtr(row[col])
		}
		if col, ok := bound[FieldHarvesters]; ok {
			rec.Harvesters = floatPtr(row[col])
		}
		records = append(records, rec)
	}

	n.logger.Debug("normalized table",
		zap.Int("rows", len(records)),
		zap.String("date_source", string(res.DateSource)),
		zap.Int("resolved_fields", len(res.Columns)),
		zap.Int("missing_fields", len(res.Missing)))

	return records, res, nil
}

// fillTemporal sets Date and Year on rec following the synthesis order:
// explicit date column, year+month pair, bare year.
func (n *Normalizer) fillTemporal(rec *Record, row Row, res *Resolution, dateCol, yearCol, monthCol string) {
	switch res.DateSource {
	case DateFromColumn:
		if d, ok := parseDateCell(row[dateCol]); ok {
			rec.Date = &d
		}
	case DateFromYearMonth:
		if y, ok := cellInt(row[yearCol]); ok {
			month := 1
			if m, ok := cellInt(row[monthCol]); ok && m >= 1 && m <= 12 {
				month = m
			}
			d := time.Date(y, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
			rec.Date = &d
		}
	case DateFromYear:
		if y, ok := cellInt(row[yearCol]); ok {
			d := time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
			rec.Date = &d
		}
	case DateNone:
		return
	}

	if yearCol != "" {
		if y, ok := cellInt(row[yearCol]); ok {
			rec.Year = &y
		}
	}
	// Derive year from the synthesized date when no explicit year column
	// produced one.
	if rec.Year == nil && rec.Date != nil {
		y := rec.Date.Year()
		rec.Year = &y
	}
}

func floatPtr(v any) *float64 {
	f, ok := cellFloat(v)
	if !ok {
		return nil
	}
	return &f
}
