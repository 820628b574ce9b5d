package geo

import (
	"github.com/paulmach/orb/geojson"
)

// Region is one boundary feature with its derived canonical zone code.
// Derived per map render from the supplied collection; never persisted.
type Region struct {
	// Feature is the underlying boundary feature. Only metadata is ever
	// rewritten; the geometry payload is not interpreted or altered.
	Feature *geojson.Feature
	// ZoneLetter is the canonical code, or "" when undetectable.
	ZoneLetter string
	// ZoneLabel is the display string, set whether or not the letter
	// resolved.
	ZoneLabel string
}

// Regions derives canonical regions from fc using the detected zone property.
// Each feature's metadata gains harmonized zone_letter and zone_label fields
// so downstream joins and renderers read one uniform shape.
func Regions(fc *geojson.FeatureCollection, property string, cfg DetectorConfig) []Region {
	if fc == nil {
		return nil
	}
	out := make([]Region, 0, len(fc.Features))
	for _, f := range fc.Features {
		if f == nil {
			continue
		}
		letter, label := NormalizeZoneValue(f.Properties[property], cfg.Alphabet)
		if f.Properties == nil {
			f.Properties = geojson.Properties{}
		}
		f.Properties["zone_letter"] = letter
		f.Properties["zone_label"] = label
		out = append(out, Region{Feature: f, ZoneLetter: letter, ZoneLabel: label})
	}
	return out
}
