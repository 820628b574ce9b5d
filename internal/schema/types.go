package schema

import (
	"time"
)

// Field identifies a canonical record field.
type Field string

const (
	// FieldDate is the observation date.
	FieldDate Field = "date"
	// FieldYear is the landing year.
	FieldYear Field = "year"
	// FieldMonth is the landing month, used only for date synthesis.
	FieldMonth Field = "month"
	// FieldSpecies is the species label.
	FieldSpecies Field = "species"
	// FieldGear is the gear type label.
	FieldGear Field = "gear"
	// FieldZone is the management zone letter.
	FieldZone Field = "zone"
	// FieldPort is the landing port.
	FieldPort Field = "port"
	// FieldCounty is the landing county.
	FieldCounty Field = "county"
	// FieldQuantity is the landed quantity (pounds).
	FieldQuantity Field = "landed_quantity"
	// FieldRevenue is the ex-vessel revenue (USD).
	FieldRevenue Field = "revenue"
	// FieldTrips is the trip count.
	FieldTrips Field = "trips_n"
	// FieldHarvesters is the harvester count.
	FieldHarvesters Field = "harvesters_n"
	// FieldWeightType is the unit annotation on the quantity column.
	FieldWeightType Field = "weight_type"
)

// Table is an in-memory tabular source: ordered column names plus rows of
// raw cell values (string, number, or nil). Callers materialize tables from
// CSV or Parquet-like files; the engine never reads files itself.
type Table struct {
	Columns []string
	Rows    []Row
}

// Row maps a source column name to its raw cell value.
type Row map[string]any

// Record is one landings observation in the canonical schema.
//
// Text fields use "" for missing; numeric fields use nil. Downstream stages
// treat absence as "feature unavailable", never as zero.
type Record struct {
	// Date may be synthesized (first of month, or Jan 1 for annual data).
	// Nil when no date-bearing signal was recoverable.
	Date *time.Time `json:"date,omitempty"`

	// Year is derived from Date when not directly present.
	Year *int `json:"year,omitempty"`

	Species    string `json:"species,omitempty"`
	Gear       string `json:"gear,omitempty"`
	Zone       string `json:"zone,omitempty"`
	Port       string `json:"port,omitempty"`
	County     string `json:"county,omitempty"`
	WeightType string `json:"weight_type,omitempty"`

	// Quantity is the landed quantity in pounds.
	Quantity *float64 `json:"landed_quantity,omitempty"`
	// Revenue is ex-vessel value in USD.
	Revenue *float64 `json:"revenue,omitempty"`

	Trips      *float64 `json:"trips_n,omitempty"`
	Harvesters *float64 `json:"harvesters_n,omitempty"`
}

// HasZone reports whether the record carries a zone value.
func (r Record) HasZone() bool { return r.Zone != "" }

// HasPort reports whether the record carries a port value.
func (r Record) HasPort() bool { return r.Port != "" }
