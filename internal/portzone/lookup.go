package portzone

import (
	"sort"
	"strings"

	"github.com/fyrsmithlabs/landings/internal/schema"
)

// NoteAmbiguous is the literal flag stored in the persisted note column for
// tie-broken mappings.
const NoteAmbiguous = "AMBIGUOUS"

// Entry maps one port to its dominant zone.
type Entry struct {
	Port string `json:"port"`
	// MappedZone is the single-letter zone code. When SupportCount ties
	// between zones, the alphabetically earliest letter is retained and
	// Ambiguous is set.
	MappedZone string `json:"mapped_zone"`
	// SupportCount is the occurrence count backing the mapping.
	SupportCount int `json:"support_count"`
	// Ambiguous marks mappings whose top frequency tied between two or
	// more zones. Surfaced for human review, never auto-resolved beyond
	// the deterministic tie-break.
	Ambiguous bool `json:"ambiguous"`
}

// Lookup holds exactly one entry per port. Immutable once built; concurrent
// consumers each operate on their own loaded copy.
type Lookup struct {
	entries map[string]Entry
}

// Build computes the dominant port-to-zone mapping from records carrying both
// a non-missing port and zone. An empty or all-missing corpus yields an empty
// lookup, not an error.
func Build(records []schema.Record) *Lookup {
	counts := make(map[string]map[string]int)
	for _, rec := range records {
		port := strings.TrimSpace(rec.Port)
		zone := strings.ToUpper(strings.TrimSpace(rec.Zone))
		if port == "" || zone == "" {
			continue
		}
		if counts[port] == nil {
			counts[port] = make(map[string]int)
		}
		counts[port][zone]++
	}

	entries := make(map[string]Entry, len(counts))
	for port, zones := range counts {
		best := ""
		max := 0
		tied := false
		for zone, n := range zones {
			switch {
			case n > max:
				best, max, tied = zone, n, false
			case n == max:
				tied = true
				if zone < best {
					best = zone
				}
			}
		}
		entries[port] = Entry{
			Port:         port,
			MappedZone:   best,
			SupportCount: max,
			Ambiguous:    tied,
		}
	}
	return &Lookup{entries: entries}
}

// NewLookup builds a Lookup directly from entries, keyed by port. Later
// duplicates replace earlier ones.
func NewLookup(entries []Entry) *Lookup {
	m := make(map[string]Entry, len(entries))
	for _, e := range entries {
		m[e.Port] = e
	}
	return &Lookup{entries: m}
}

// Get returns the entry for port.
func (l *Lookup) Get(port string) (Entry, bool) {
	e, ok := l.entries[strings.TrimSpace(port)]
	return e, ok
}

// Len returns the number of mapped ports.
func (l *Lookup) Len() int { return len(l.entries) }

// Entries returns all entries sorted by port for reproducible output.
func (l *Lookup) Entries() []Entry {
	out := make([]Entry, 0, len(l.entries))
	for _, e := range l.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Port < out[j].Port })
	return out
}

// AmbiguousPorts returns the entries flagged by the tie-break, sorted by port.
func (l *Lookup) AmbiguousPorts() []Entry {
	var out []Entry
	for _, e := range l.Entries() {
		if e.Ambiguous {
			out = append(out, e)
		}
	}
	return out
}

// Overrides is a manual correction table keyed by port. Its mapping always
// wins over the automatic lookup.
type Overrides map[string]string

// Apply backfills the zone on records that have a port but no zone. Override
// mappings are applied as a final pass and take precedence over the automatic
// lookup, including replacing a zone the lookup just filled. Ports with no
// entry anywhere remain zone-missing; the count of such gaps is returned so
// callers can report backfill quality.
func Apply(records []schema.Record, lookup *Lookup, overrides Overrides) ([]schema.Record, int) {
	out := make([]schema.Record, len(records))
	copy(out, records)
	gaps := 0
	for i := range out {
		if out[i].HasZone() || !out[i].HasPort() {
			continue
		}
		filled := false
		if lookup != nil {
			if e, ok := lookup.Get(out[i].Port); ok {
				out[i].Zone = e.MappedZone
				filled = true
			}
		}
		if zone, ok := overrides[out[i].Port]; ok {
			out[i].Zone = strings.ToUpper(strings.TrimSpace(zone))
			filled = true
		}
		if !filled {
			gaps++
		}
	}
	return out, gaps
}
