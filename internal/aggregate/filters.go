package aggregate

import (
	"sort"
	"strings"

	"github.com/fyrsmithlabs/landings/internal/schema"
)

// FilterOptions is a composable record slicer. Empty slices mean "no
// constraint"; text matching is case-insensitive exact, never substring.
type FilterOptions struct {
	Species  []string
	Ports    []string
	Counties []string
	Zones    []string
	// YearRange bounds years inclusively as [from, to].
	YearRange *[2]int
}

// Filter returns the records matching every supplied constraint. Records
// missing a constrained field are excluded by that constraint.
func Filter(records []schema.Record, opts FilterOptions) []schema.Record {
	species := lowerSet(opts.Species)
	ports := lowerSet(opts.Ports)
	counties := lowerSet(opts.Counties)
	zones := lowerSet(opts.Zones)

	var out []schema.Record
	for _, rec := range records {
		if len(species) > 0 && !inSet(species, rec.Species) {
			continue
		}
		if len(ports) > 0 && !inSet(ports, rec.Port) {
			continue
		}
		if len(counties) > 0 && !inSet(counties, rec.County) {
			continue
		}
		if len(zones) > 0 && !inSet(zones, rec.Zone) {
			continue
		}
		if opts.YearRange != nil {
			if rec.Year == nil || *rec.Year < opts.YearRange[0] || *rec.Year > opts.YearRange[1] {
				continue
			}
		}
		out = append(out, rec)
	}
	return out
}

func lowerSet(vals []string) map[string]struct{} {
	if len(vals) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(vals))
	for _, v := range vals {
		set[strings.ToLower(strings.TrimSpace(v))] = struct{}{}
	}
	return set
}

func inSet(set map[string]struct{}, v string) bool {
	if v == "" {
		return false
	}
	_, ok := set[strings.ToLower(v)]
	return ok
}

// ActivePorts returns the ports with any non-zero metric total, sorted.
// Missing metric values count as zero here; this is a display filter, not an
// aggregation.
func ActivePorts(records []schema.Record, metric Metric) []string {
	totals := make(map[string]float64)
	for _, rec := range records {
		if !rec.HasPort() {
			continue
		}
		v, ok := metricValue(rec, metric)
		if !ok {
			v = 0
		}
		totals[rec.Port] += v
	}
	var out []string
	for port, total := range totals {
		if total != 0 {
			out = append(out, port)
		}
	}
	sort.Strings(out)
	return out
}

// DropZeroPorts keeps only records whose port has a non-zero metric total
// across the (already filtered) input.
func DropZeroPorts(records []schema.Record, metric Metric) []schema.Record {
	keep := make(map[string]struct{})
	for _, port := range ActivePorts(records, metric) {
		keep[port] = struct{}{}
	}
	var out []schema.Record
	for _, rec := range records {
		if _, ok := keep[rec.Port]; ok {
			out = append(out, rec)
		}
	}
	return out
}
