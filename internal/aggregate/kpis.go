package aggregate

import (
	"github.com/fyrsmithlabs/landings/internal/schema"
)

// KPI helpers for the dashboard header block. Each returns a pointer result
// so "not computable" stays distinct from zero.

// LatestTotal sums metric for the latest year present. Nil when no record
// carries both a year and the metric.
func LatestTotal(records []schema.Record, metric Metric) *float64 {
	years := AvailableYears(records)
	if len(years) == 0 {
		return nil
	}
	latest := years[len(years)-1]
	total := 0.0
	seen := false
	for _, rec := range records {
		if rec.Year == nil || *rec.Year != latest {
			continue
		}
		if v, ok := metricValue(rec, metric); ok {
			total += v
			seen = true
		}
	}
	if !seen {
		return nil
	}
	return &total
}

// YoYChangePct computes the percent change of metric between the two latest
// years. Nil when fewer than two years exist or the prior total is zero
// (percentage change undefined, not divide-by-zero).
func YoYChangePct(records []schema.Record, metric Metric) *float64 {
	years := AvailableYears(records)
	if len(years) < 2 {
		return nil
	}
	latest, prior := years[len(years)-1], years[len(years)-2]
	var curr, prev float64
	for _, rec := range records {
		if rec.Year == nil {
			continue
		}
		v, ok := metricValue(rec, metric)
		if !ok {
			continue
		}
		switch *rec.Year {
		case latest:
			curr += v
		case prior:
			prev += v
		}
	}
	if prev == 0 {
		return nil
	}
	pct := (curr - prev) / prev * 100
	return &pct
}

// Dimension selects a categorical record field for grouping.
type Dimension string

const (
	// DimensionSpecies groups by species label.
	DimensionSpecies Dimension = "species"
	// DimensionPort groups by landing port.
	DimensionPort Dimension = "port"
	// DimensionCounty groups by landing county.
	DimensionCounty Dimension = "county"
	// DimensionZone groups by management zone.
	DimensionZone Dimension = "zone"
)

// dimensionValue extracts the dimension label from a record; "" means missing.
func dimensionValue(rec schema.Record, d Dimension) string {
	switch d {
	case DimensionSpecies:
		return rec.Species
	case DimensionPort:
		return rec.Port
	case DimensionCounty:
		return rec.County
	case DimensionZone:
		return rec.Zone
	}
	return ""
}

// TopBy returns the dimension label with the highest metric total. Records
// missing the dimension are excluded; ties pick the lexically earliest label.
// False when nothing is rankable.
func TopBy(records []schema.Record, dim Dimension, metric Metric) (string, float64, bool) {
	totals := make(map[string]float64)
	for _, rec := range records {
		label := dimensionValue(rec, dim)
		if label == "" {
			continue
		}
		if v, ok := metricValue(rec, metric); ok {
			totals[label] += v
		}
	}
	best := ""
	bestTotal := 0.0
	for label, total := range totals {
		if best == "" || total > bestTotal || (total == bestTotal && label < best) {
			best, bestTotal = label, total
		}
	}
	if best == "" {
		return "", 0, false
	}
	return best, bestTotal, true
}

// TopSpecies returns the species with the highest metric total. False when
// nothing is rankable.
func TopSpecies(records []schema.Record, metric Metric) (string, float64, bool) {
	return TopBy(records, DimensionSpecies, metric)
}
