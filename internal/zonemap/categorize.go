// Package zonemap joins zone-year aggregates onto normalized boundary
// regions and classifies each region's year-over-year change for the map
// layer. Annotations are recomputed on every aggregate refresh; nothing is
// cached between renders.
package zonemap

import (
	"math"
)

// Category classifies a region's year-over-year change.
type Category string

const (
	// CategoryIncrease marks growth beyond the no-change band.
	CategoryIncrease Category = "increase"
	// CategoryDecrease marks decline beyond the no-change band.
	CategoryDecrease Category = "decrease"
	// CategoryNoChange marks fluctuation inside the band; the banding
	// keeps noise-level movement from reading as a trend signal.
	CategoryNoChange Category = "no_change"
	// CategoryNoBaseline marks zones with a zero or absent prior-year
	// total: the percentage change is undefined, not a divide-by-zero.
	CategoryNoBaseline Category = "no_baseline"
	// CategoryNoData marks boundary regions with no matching aggregate
	// row at all, distinct from a zone that was present with no baseline.
	CategoryNoData Category = "no_data"
)

// DefaultBandPct is the default no-change band in percent.
const DefaultBandPct = 0.5

// Categorize classifies the change from prior to current. A nil or zero
// prior yields no_baseline. bandPct <= 0 uses DefaultBandPct.
func Categorize(current float64, prior *float64, bandPct float64) Category {
	if bandPct <= 0 {
		bandPct = DefaultBandPct
	}
	if prior == nil || *prior == 0 {
		return CategoryNoBaseline
	}
	pct := (current - *prior) / *prior * 100
	if math.Abs(pct) < bandPct {
		return CategoryNoChange
	}
	if pct > 0 {
		return CategoryIncrease
	}
	return CategoryDecrease
}
