package cleaning

import (
	"sort"
	"strconv"

	"github.com/fyrsmithlabs/landings/internal/schema"
)

// Bounds holds the batch validation thresholds.
type Bounds struct {
	// MinYear and MaxYear bound acceptable landing years, inclusive.
	MinYear int `koanf:"min_year"`
	MaxYear int `koanf:"max_year"`
}

// DefaultBounds returns the documented defaults: years 1900-2100.
func DefaultBounds() Bounds {
	return Bounds{MinYear: 1900, MaxYear: 2100}
}

// Validate runs the batch-level range and sign checks. Any out-of-range year
// or negative quantity, revenue, trip, or harvester count rejects the whole
// batch with a StructuralError naming the offending values; per-row nuances
// were already coerced to missing upstream and are not errors here.
func Validate(records []schema.Record, bounds Bounds) error {
	if bounds.MinYear == 0 && bounds.MaxYear == 0 {
		bounds = DefaultBounds()
	}

	badYears := map[int]struct{}{}
	for _, rec := range records {
		if rec.Year != nil && (*rec.Year < bounds.MinYear || *rec.Year > bounds.MaxYear) {
			badYears[*rec.Year] = struct{}{}
		}
	}
	if len(badYears) > 0 {
		years := make([]int, 0, len(badYears))
		for y := range badYears {
			years = append(years, y)
		}
		sort.Ints(years)
		vals := make([]string, len(years))
		for i, y := range years {
			vals[i] = strconv.Itoa(y)
		}
		return &schema.StructuralError{Subject: "year", Values: vals}
	}

	checks := []struct {
		name string
		get  func(schema.Record) *float64
	}{
		{"landed_quantity", func(r schema.Record) *float64 { return r.Quantity }},
		{"revenue", func(r schema.Record) *float64 { return r.Revenue }},
		{"trips_n", func(r schema.Record) *float64 { return r.Trips }},
		{"harvesters_n", func(r schema.Record) *float64 { return r.Harvesters }},
	}
	for _, check := range checks {
		var negatives []string
		for _, rec := range records {
			if v := check.get(rec); v != nil && *v < 0 {
				negatives = append(negatives, formatFloat(*v))
			}
		}
		if len(negatives) > 0 {
			return &schema.StructuralError{Subject: check.name, Values: negatives}
		}
	}
	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
