// Package geo normalizes externally supplied boundary collections.
//
// Boundary datasets in the wild name their zone property inconsistently and
// mix value encodings (letter codes, numeric indices, mixed strings). The
// detector samples feature metadata to find the zone-bearing property and
// normalizes every region's value to the canonical letter alphabet. Geometry
// payloads pass through untouched.
package geo

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/paulmach/orb/geojson"
)

// ErrZonePropertyNotFound reports that no zone-bearing property could be
// detected. The detector signals this rather than guessing.
var ErrZonePropertyNotFound = errors.New("no zone property detected in boundary collection")

// DetectorConfig holds detection parameters.
type DetectorConfig struct {
	// SampleSize bounds how many features are scanned for value-validated
	// detection.
	SampleSize int `koanf:"sample_size"`
	// Alphabet is the canonical zone letter set.
	Alphabet string `koanf:"alphabet"`
	// FallbackKeys are property names tried literally when no key passes
	// value validation.
	FallbackKeys []string `koanf:"fallback_keys"`
}

// DefaultDetectorConfig returns the documented defaults.
func DefaultDetectorConfig() DetectorConfig {
	return DetectorConfig{
		SampleSize:   10,
		Alphabet:     "ABCDEFG",
		FallbackKeys: []string{"ZONE", "Zone", "ZONE_ID", "LOB_ZONE", "lob_zone"},
	}
}

// DetectZoneProperty finds the property holding zone identity. Preference
// order: a key containing "zone" (case-insensitive) whose sampled values
// normalize into the alphabet, then the first literally named fallback key
// present on the first feature.
func DetectZoneProperty(fc *geojson.FeatureCollection, cfg DetectorConfig) (string, error) {
	if cfg.SampleSize <= 0 {
		cfg.SampleSize = DefaultDetectorConfig().SampleSize
	}
	if cfg.Alphabet == "" {
		cfg.Alphabet = DefaultDetectorConfig().Alphabet
	}
	if cfg.FallbackKeys == nil {
		cfg.FallbackKeys = DefaultDetectorConfig().FallbackKeys
	}
	if fc == nil || len(fc.Features) == 0 {
		return "", fmt.Errorf("detecting zone property: %w", ErrZonePropertyNotFound)
	}

	sample := fc.Features
	if len(sample) > cfg.SampleSize {
		sample = sample[:cfg.SampleSize]
	}
	for _, f := range sample {
		if f == nil {
			continue
		}
		// Scan keys in sorted order so two qualifying properties resolve
		// the same way on every run.
		keys := make([]string, 0, len(f.Properties))
		for key := range f.Properties {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if !strings.Contains(strings.ToLower(key), "zone") {
				continue
			}
			letter, _ := NormalizeZoneValue(f.Properties[key], cfg.Alphabet)
			if letter != "" {
				return key, nil
			}
		}
	}

	first := fc.Features[0]
	if first != nil {
		for _, key := range cfg.FallbackKeys {
			if _, ok := first.Properties[key]; ok {
				return key, nil
			}
		}
	}
	return "", fmt.Errorf("detecting zone property: %w", ErrZonePropertyNotFound)
}

// NormalizeZoneValue maps a raw property value to a canonical zone letter and
// a display label. Two-tier fallback: a value containing an alphabetic
// character yields its first letter upper-cased; otherwise an integer in
// [1, len(alphabet)] maps positionally (1 -> A). Unmatched values return an
// empty letter but keep the raw string as the label so the region stays
// displayable.
func NormalizeZoneValue(raw any, alphabet string) (letter, label string) {
	if alphabet == "" {
		alphabet = DefaultDetectorConfig().Alphabet
	}
	s := strings.TrimSpace(fmt.Sprint(raw))
	if raw == nil {
		s = ""
	}

	for _, r := range s {
		if unicode.IsLetter(r) {
			l := strings.ToUpper(string(r))
			if strings.Contains(alphabet, l) {
				return l, "Zone " + l
			}
			return "", s
		}
	}

	if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= len(alphabet) {
		l := string(alphabet[n-1])
		return l, "Zone " + l
	}
	return "", s
}
