package schema

import (
	"strings"
)

// DefaultCandidates returns the per-field candidate column names in priority
// order. The lists cover the spellings observed across state landings exports
// and partner feeds.
func DefaultCandidates() map[Field][]string {
	return map[Field][]string{
		FieldDate:       {"date", "landing_date", "trip_date", "yearmonth", "year_month", "period"},
		FieldYear:       {"year", "landing_year", "yr"},
		FieldMonth:      {"month", "landing_month", "mo"},
		FieldSpecies:    {"species", "species_name", "common_name"},
		FieldGear:       {"gear", "gear_type", "gear_name"},
		FieldZone:       {"zone", "lob_zone", "lobster_zone", "mgmt_zone", "zone_id"},
		FieldPort:       {"port", "port_name", "landing_port"},
		FieldCounty:     {"county", "county_name"},
		FieldQuantity:   {"value", "landings", "pounds", "landed_weight_lbs", "weight", "landings_lbs", "lbs"},
		FieldRevenue:    {"revenue", "revenue_usd", "ex_vessel_value", "dollars"},
		FieldTrips:      {"trip_n", "trips", "trips_n", "trip_count"},
		FieldHarvesters: {"harv_n", "harvesters", "harvesters_n", "harvester_count"},
		FieldWeightType: {"weight_type", "unit", "units"},
	}
}

// Resolver locates the best-matching source column for a canonical field.
//
// Matching runs an ordered list of strategies and returns the first hit:
//  1. exact name match, in candidate priority order
//  2. case-insensitive name match, in candidate priority order
//
// Partial or substring matching is deliberately excluded; the only keyword
// fallback is ResolveZoneLike, documented separately.
type Resolver struct {
	candidates map[Field][]string
}

// NewResolver creates a Resolver with the default candidate lists.
func NewResolver() *Resolver {
	return NewResolverWithCandidates(DefaultCandidates())
}

// NewResolverWithCandidates creates a Resolver with caller-supplied candidate
// lists. Fields absent from the map never resolve.
func NewResolverWithCandidates(candidates map[Field][]string) *Resolver {
	return &Resolver{candidates: candidates}
}

// matchStrategy is one named way of matching a candidate against the
// available columns. Strategies are evaluated in declaration order.
type matchStrategy struct {
	name  string
	match func(candidate string, columns []string) (string, bool)
}

var strategies = []matchStrategy{
	{
		name: "exact",
		match: func(candidate string, columns []string) (string, bool) {
			for _, col := range columns {
				if col == candidate {
					return col, true
				}
			}
			return "", false
		},
	},
	{
		name: "case-insensitive",
		match: func(candidate string, columns []string) (string, bool) {
			for _, col := range columns {
				if strings.EqualFold(col, candidate) {
					return col, true
				}
			}
			return "", false
		},
	},
}

// Resolve returns the source column for field, or false when no candidate
// matches. Pure lookup, no side effects.
func (r *Resolver) Resolve(columns []string, field Field) (string, bool) {
	cands, ok := r.candidates[field]
	if !ok {
		return "", false
	}
	for _, strat := range strategies {
		for _, cand := range cands {
			if col, ok := strat.match(cand, columns); ok {
				return col, true
			}
		}
	}
	return "", false
}

// ResolveZoneLike speculatively locates a zone-bearing column: first the
// regular candidate lists, then any column whose name contains "zone". This
// generic fallback exists only for zone; value validation downstream keeps a
// false positive harmless (non A-G values become missing).
func (r *Resolver) ResolveZoneLike(columns []string) (string, bool) {
	if col, ok := r.Resolve(columns, FieldZone); ok {
		return col, true
	}
	for _, col := range columns {
		if strings.Contains(strings.ToLower(col), "zone") {
			return col, true
		}
	}
	return "", false
}
