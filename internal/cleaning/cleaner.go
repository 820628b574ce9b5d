// Package cleaning enforces types and invariants on canonical-shaped records.
//
// Per-row coercion is permissive (non-parseable values become missing, never
// errors); batch-level range and sign validation is a separate, explicitly
// callable step so exploratory loads can skip it and production ingestion can
// enable it.
package cleaning

import (
	"regexp"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/fyrsmithlabs/landings/internal/schema"
)

// Config holds cleaning parameters.
type Config struct {
	// ZoneAlphabet is the set of valid zone letters. Normalized zone
	// values outside this set become missing, not errors.
	ZoneAlphabet string `koanf:"zone_alphabet"`
}

// DefaultConfig returns the production defaults: the seven-letter A-G zone
// alphabet.
func DefaultConfig() Config {
	return Config{ZoneAlphabet: "ABCDEFG"}
}

// Cleaner normalizes categorical text and filters zone values. Cleaning is
// idempotent: running it twice on already-clean records is a no-op.
type Cleaner struct {
	cfg    Config
	logger *zap.Logger
	titler cases.Caser
}

// NewCleaner creates a Cleaner. A zero-value config gets the defaults; a nil
// logger disables logging.
func NewCleaner(cfg Config, logger *zap.Logger) *Cleaner {
	if cfg.ZoneAlphabet == "" {
		cfg.ZoneAlphabet = DefaultConfig().ZoneAlphabet
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cleaner{
		cfg:    cfg,
		logger: logger,
		titler: cases.Title(language.English),
	}
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Clean returns cleaned copies of records; the input is never mutated.
func (c *Cleaner) Clean(records []schema.Record) []schema.Record {
	out := make([]schema.Record, len(records))
	dropped := 0
	for i, rec := range records {
		rec.Species = c.titler.String(normalizeText(rec.Species))
		rec.Gear = normalizeText(rec.Gear)
		rec.Port = normalizeText(rec.Port)
		rec.County = normalizeText(rec.County)
		rec.WeightType = normalizeText(rec.WeightType)

		zone := strings.ToUpper(normalizeText(rec.Zone))
		if !c.validZone(zone) {
			if zone != "" {
				dropped++
			}
			zone = ""
		}
		rec.Zone = zone
		out[i] = rec
	}
	if dropped > 0 {
		c.logger.Debug("zones outside alphabet became missing",
			zap.Int("count", dropped),
			zap.String("alphabet", c.cfg.ZoneAlphabet))
	}
	return out
}

func (c *Cleaner) validZone(zone string) bool {
	return len(zone) == 1 && strings.ContainsAny(zone, c.cfg.ZoneAlphabet)
}

// normalizeText trims and collapses internal whitespace runs to one space.
func normalizeText(s string) string {
	return whitespaceRun.ReplaceAllString(strings.TrimSpace(s), " ")
}
