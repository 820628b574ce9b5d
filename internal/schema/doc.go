// Package schema resolves heterogeneous tabular sources into the canonical
// landings record schema.
//
// Sources arrive with inconsistent column names and types (state exports,
// legacy spreadsheets, partner feeds). The Resolver locates the best source
// column for each canonical field using an ordered strategy list; the
// Normalizer renames and derives columns into Records, synthesizing a date
// from year/month parts when no explicit date column exists.
package schema
