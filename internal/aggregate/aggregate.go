// Package aggregate computes the per-zone, per-year and per-species
// reductions consumed by charts and the zone map. Every function is a pure,
// synchronous fold over already-clean records; missing fields are skipped,
// never treated as zero.
package aggregate

import (
	"sort"

	"github.com/fyrsmithlabs/landings/internal/schema"
)

// Metric selects which measure a reduction sums.
type Metric string

const (
	// MetricQuantity sums landed quantity (pounds).
	MetricQuantity Metric = "quantity"
	// MetricRevenue sums ex-vessel revenue (USD).
	MetricRevenue Metric = "revenue"
	// MetricTrips sums trip counts.
	MetricTrips Metric = "trips"
	// MetricHarvesters sums harvester counts.
	MetricHarvesters Metric = "harvesters"
)

// metricValue extracts the metric from a record; false when absent.
func metricValue(rec schema.Record, m Metric) (float64, bool) {
	var v *float64
	switch m {
	case MetricQuantity:
		v = rec.Quantity
	case MetricRevenue:
		v = rec.Revenue
	case MetricTrips:
		v = rec.Trips
	case MetricHarvesters:
		v = rec.Harvesters
	}
	if v == nil {
		return 0, false
	}
	return *v, true
}

// ZoneYear is one cell of the zone/year aggregate table.
type ZoneYear struct {
	Zone  string  `json:"zone"`
	Year  int     `json:"year"`
	Total float64 `json:"metric_total"`
}

// ZoneYearTotals sums metric per zone and year over records carrying both a
// zone and a year. Output is sorted by zone then year.
func ZoneYearTotals(records []schema.Record, metric Metric) []ZoneYear {
	type key struct {
		zone string
		year int
	}
	totals := make(map[key]float64)
	for _, rec := range records {
		if !rec.HasZone() || rec.Year == nil {
			continue
		}
		v, ok := metricValue(rec, metric)
		if !ok {
			continue
		}
		totals[key{rec.Zone, *rec.Year}] += v
	}
	out := make([]ZoneYear, 0, len(totals))
	for k, t := range totals {
		out = append(out, ZoneYear{Zone: k.zone, Year: k.year, Total: t})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Zone != out[j].Zone {
			return out[i].Zone < out[j].Zone
		}
		return out[i].Year < out[j].Year
	})
	return out
}

// ZoneYoY pairs a zone's total for a year with its prior-year total. Prior is
// nil when the zone has no baseline year.
type ZoneYoY struct {
	Zone    string   `json:"zone"`
	Year    int      `json:"year"`
	Current float64  `json:"current"`
	Prior   *float64 `json:"prior,omitempty"`
}

// YoYByZone computes current and prior-year totals per zone for the given
// year. Zones present only in the prior year are omitted; the map join marks
// their regions no_data.
func YoYByZone(records []schema.Record, year int, metric Metric) []ZoneYoY {
	current := make(map[string]float64)
	prior := make(map[string]float64)
	priorSeen := make(map[string]bool)
	for _, rec := range records {
		if !rec.HasZone() || rec.Year == nil {
			continue
		}
		v, ok := metricValue(rec, metric)
		if !ok {
			continue
		}
		switch *rec.Year {
		case year:
			current[rec.Zone] += v
		case year - 1:
			prior[rec.Zone] += v
			priorSeen[rec.Zone] = true
		}
	}
	zones := make([]string, 0, len(current))
	for z := range current {
		zones = append(zones, z)
	}
	sort.Strings(zones)
	out := make([]ZoneYoY, 0, len(zones))
	for _, z := range zones {
		yoy := ZoneYoY{Zone: z, Year: year, Current: current[z]}
		if priorSeen[z] {
			p := prior[z]
			yoy.Prior = &p
		}
		out = append(out, yoy)
	}
	return out
}

// YearTotal aggregates all four measures for one year.
type YearTotal struct {
	Year       int     `json:"year"`
	Quantity   float64 `json:"landed_quantity"`
	Revenue    float64 `json:"revenue"`
	Trips      float64 `json:"trips_n"`
	Harvesters float64 `json:"harvesters_n"`
}

// YearlyTotals sums every measure by year, sorted ascending. Records without
// a year are excluded.
func YearlyTotals(records []schema.Record) []YearTotal {
	totals := make(map[int]*YearTotal)
	for _, rec := range records {
		if rec.Year == nil {
			continue
		}
		t := totals[*rec.Year]
		if t == nil {
			t = &YearTotal{Year: *rec.Year}
			totals[*rec.Year] = t
		}
		if rec.Quantity != nil {
			t.Quantity += *rec.Quantity
		}
		if rec.Revenue != nil {
			t.Revenue += *rec.Revenue
		}
		if rec.Trips != nil {
			t.Trips += *rec.Trips
		}
		if rec.Harvesters != nil {
			t.Harvesters += *rec.Harvesters
		}
	}
	out := make([]YearTotal, 0, len(totals))
	for _, t := range totals {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// SpeciesTotal is one slice of the species composition for a year.
type SpeciesTotal struct {
	Species  string  `json:"species"`
	Quantity float64 `json:"landed_quantity"`
	Revenue  float64 `json:"revenue"`
}

// SpeciesMix sums quantity and revenue per species for one year, sorted by
// quantity descending.
func SpeciesMix(records []schema.Record, year int) []SpeciesTotal {
	totals := make(map[string]*SpeciesTotal)
	for _, rec := range records {
		if rec.Species == "" || rec.Year == nil || *rec.Year != year {
			continue
		}
		t := totals[rec.Species]
		if t == nil {
			t = &SpeciesTotal{Species: rec.Species}
			totals[rec.Species] = t
		}
		if rec.Quantity != nil {
			t.Quantity += *rec.Quantity
		}
		if rec.Revenue != nil {
			t.Revenue += *rec.Revenue
		}
	}
	out := make([]SpeciesTotal, 0, len(totals))
	for _, t := range totals {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Quantity != out[j].Quantity {
			return out[i].Quantity > out[j].Quantity
		}
		return out[i].Species < out[j].Species
	})
	return out
}

// RegionRow is one row of the per-region species table: a year's totals for
// one species within the selected region slice.
type RegionRow struct {
	Year     int     `json:"year"`
	Species  string  `json:"species"`
	Region   string  `json:"region"`
	Quantity float64 `json:"landed_quantity"`
	Revenue  float64 `json:"revenue"`
}

// RegionTable sums quantity and revenue per species for one year, restricted
// to records whose dimension value matches one of values (case-insensitive).
// An empty dimension or value list means statewide; the Region label carries
// the dimension name, or "Statewide" when unrestricted. Sorted by species.
func RegionTable(records []schema.Record, year int, dim Dimension, values []string) []RegionRow {
	region := "Statewide"
	set := lowerSet(values)
	if dim != "" && set != nil {
		region = string(dim)
	}

	totals := make(map[string]*RegionRow)
	for _, rec := range records {
		if rec.Species == "" || rec.Year == nil || *rec.Year != year {
			continue
		}
		if region != "Statewide" && !inSet(set, dimensionValue(rec, dim)) {
			continue
		}
		t := totals[rec.Species]
		if t == nil {
			t = &RegionRow{Year: year, Species: rec.Species, Region: region}
			totals[rec.Species] = t
		}
		if rec.Quantity != nil {
			t.Quantity += *rec.Quantity
		}
		if rec.Revenue != nil {
			t.Revenue += *rec.Revenue
		}
	}
	out := make([]RegionRow, 0, len(totals))
	for _, t := range totals {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Species < out[j].Species })
	return out
}

// ZoneTotal is one zone's totals for a year.
type ZoneTotal struct {
	Zone     string  `json:"zone"`
	Quantity float64 `json:"landed_quantity"`
	Revenue  float64 `json:"revenue"`
}

// ZoneKPIs sums quantity and revenue per zone for one year, sorted by
// quantity descending.
func ZoneKPIs(records []schema.Record, year int) []ZoneTotal {
	totals := make(map[string]*ZoneTotal)
	for _, rec := range records {
		if !rec.HasZone() || rec.Year == nil || *rec.Year != year {
			continue
		}
		t := totals[rec.Zone]
		if t == nil {
			t = &ZoneTotal{Zone: rec.Zone}
			totals[rec.Zone] = t
		}
		if rec.Quantity != nil {
			t.Quantity += *rec.Quantity
		}
		if rec.Revenue != nil {
			t.Revenue += *rec.Revenue
		}
	}
	out := make([]ZoneTotal, 0, len(totals))
	for _, t := range totals {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Quantity != out[j].Quantity {
			return out[i].Quantity > out[j].Quantity
		}
		return out[i].Zone < out[j].Zone
	})
	return out
}

// AvailableYears lists the distinct years present, ascending.
func AvailableYears(records []schema.Record) []int {
	seen := make(map[int]struct{})
	for _, rec := range records {
		if rec.Year != nil {
			seen[*rec.Year] = struct{}{}
		}
	}
	out := make([]int, 0, len(seen))
	for y := range seen {
		out = append(out, y)
	}
	sort.Ints(out)
	return out
}

// AvailableSpecies lists the distinct species labels present, sorted.
func AvailableSpecies(records []schema.Record) []string {
	seen := make(map[string]struct{})
	for _, rec := range records {
		if rec.Species != "" {
			seen[rec.Species] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// ZonePorts lists the ports observed in one zone, for the map legend.
type ZonePorts struct {
	Zone  string   `json:"zone"`
	Ports []string `json:"ports"`
}

// PortsByZone groups distinct ports under their zone, both sorted.
func PortsByZone(records []schema.Record) []ZonePorts {
	byZone := make(map[string]map[string]struct{})
	for _, rec := range records {
		if !rec.HasZone() || !rec.HasPort() {
			continue
		}
		if byZone[rec.Zone] == nil {
			byZone[rec.Zone] = make(map[string]struct{})
		}
		byZone[rec.Zone][rec.Port] = struct{}{}
	}
	zones := make([]string, 0, len(byZone))
	for z := range byZone {
		zones = append(zones, z)
	}
	sort.Strings(zones)
	out := make([]ZonePorts, 0, len(zones))
	for _, z := range zones {
		ports := make([]string, 0, len(byZone[z]))
		for p := range byZone[z] {
			ports = append(ports, p)
		}
		sort.Strings(ports)
		out = append(out, ZonePorts{Zone: z, Ports: ports})
	}
	return out
}

// Summary is the at-a-glance stats block for a record set.
type Summary struct {
	Rows          int      `json:"rows"`
	YearMin       *int     `json:"year_min,omitempty"`
	YearMax       *int     `json:"year_max,omitempty"`
	TotalQuantity float64  `json:"total_quantity"`
	TotalRevenue  float64  `json:"total_revenue"`
	Ports         int      `json:"ports"`
	Counties      int      `json:"counties"`
	SpeciesCount  int      `json:"species_count"`
}

// Summarize computes the stats block over records.
func Summarize(records []schema.Record) Summary {
	s := Summary{Rows: len(records)}
	ports := make(map[string]struct{})
	counties := make(map[string]struct{})
	species := make(map[string]struct{})
	for _, rec := range records {
		if rec.Year != nil {
			if s.YearMin == nil || *rec.Year < *s.YearMin {
				y := *rec.Year
				s.YearMin = &y
			}
			if s.YearMax == nil || *rec.Year > *s.YearMax {
				y := *rec.Year
				s.YearMax = &y
			}
		}
		if rec.Quantity != nil {
			s.TotalQuantity += *rec.Quantity
		}
		if rec.Revenue != nil {
			s.TotalRevenue += *rec.Revenue
		}
		if rec.Port != "" {
			ports[rec.Port] = struct{}{}
		}
		if rec.County != "" {
			counties[rec.County] = struct{}{}
		}
		if rec.Species != "" {
			species[rec.Species] = struct{}{}
		}
	}
	s.Ports = len(ports)
	s.Counties = len(counties)
	s.SpeciesCount = len(species)
	return s
}
