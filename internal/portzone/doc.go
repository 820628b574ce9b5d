// Package portzone infers the many-to-one port to management-zone mapping
// from historical co-occurrence.
//
// The lookup is rebuilt in batch from records that already carry an explicit
// zone: the mapped zone for a port is its most frequent co-occurring zone.
// Frequency ties are resolved deterministically (alphabetically earliest
// letter) and flagged ambiguous so downstream consumers can warn rather than
// silently trust the mapping. A manual override table, keyed by port, is
// applied after the automatic backfill and always wins.
package portzone
