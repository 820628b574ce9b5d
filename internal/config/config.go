// Package config provides configuration loading for the landings engine.
//
// Precedence, highest to lowest: environment variables (LANDINGS_ prefix),
// YAML config file, hardcoded defaults. Components receive their section at
// construction; there are no module-level mutable defaults shared across
// calls.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/fyrsmithlabs/landings/internal/cleaning"
	"github.com/fyrsmithlabs/landings/internal/geo"
	"github.com/fyrsmithlabs/landings/internal/logging"
)

const envPrefix = "LANDINGS_"

// Config is the full engine configuration.
type Config struct {
	Logging  logging.Config     `koanf:"logging"`
	Cleaning cleaning.Config    `koanf:"cleaning"`
	Bounds   cleaning.Bounds    `koanf:"validation"`
	Detector geo.DetectorConfig `koanf:"detector"`
	Map      MapConfig          `koanf:"map"`
	Lookup   LookupConfig       `koanf:"lookup"`
	// Species is the canonical species label list offered by the UI.
	Species []string `koanf:"species"`
}

// MapConfig holds zone-map parameters.
type MapConfig struct {
	// BandPct is the no-change band in percent. Configurable per
	// deployment; 0.5 by default.
	BandPct float64 `koanf:"band_pct"`
}

// LookupConfig holds the port-zone lookup exchange paths.
type LookupConfig struct {
	// Path is where the lookup flat table is read and written.
	Path string `koanf:"path"`
	// OverridesPath is the optional manual correction table.
	OverridesPath string `koanf:"overrides_path"`
}

// Default returns the documented defaults.
func Default() *Config {
	return &Config{
		Logging:  logging.NewDefaultConfig(),
		Cleaning: cleaning.DefaultConfig(),
		Bounds:   cleaning.DefaultBounds(),
		Detector: geo.DefaultDetectorConfig(),
		Map:      MapConfig{BandPct: 0.5},
		Lookup: LookupConfig{
			Path:          "data/derived/port_zone_lookup.csv",
			OverridesPath: "data/derived/port_zone_overrides.csv",
		},
		Species: []string{"Lobster American", "Clam Soft", "Haddock"},
	}
}

// Load reads configuration from the YAML file at path (skipped when the file
// does not exist), then overrides with LANDINGS_-prefixed environment
// variables: LANDINGS_MAP_BAND_PCT -> map.band_pct.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err == nil {
			if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("parsing config file %s: %w", path, err)
			}
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, envPrefix)
		s = strings.ToLower(s)
		// Section and field are split on the first underscore; field
		// names keep their remaining underscores (MAP_BAND_PCT ->
		// map.band_pct).
		parts := strings.SplitN(s, "_", 2)
		return strings.Join(parts, ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment overrides: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return cfg, nil
}
