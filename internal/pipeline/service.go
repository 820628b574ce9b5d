// Package pipeline orchestrates the preparation path: schema normalization,
// cleaning, optional batch validation, and port-zone backfill.
package pipeline

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/landings/internal/cleaning"
	"github.com/fyrsmithlabs/landings/internal/portzone"
	"github.com/fyrsmithlabs/landings/internal/schema"
)

// Service prepares raw tables into clean, joinable canonical records.
type Service interface {
	// Prepare runs the full preparation path over one table.
	Prepare(ctx context.Context, table *schema.Table) (*Result, error)
}

// Config configures the preparation service.
type Config struct {
	// Validate enables the batch-level range/sign validation pass.
	// Exploratory loads can disable it; production ingestion should not.
	Validate bool
	// Bounds are the validation thresholds (defaults when zero).
	Bounds cleaning.Bounds
	// Cleaning configures text and zone normalization.
	Cleaning cleaning.Config
	// Lookup backfills missing zones from ports when supplied.
	Lookup *portzone.Lookup
	// Overrides win over the automatic lookup.
	Overrides portzone.Overrides
}

// DefaultConfig returns production defaults: validation on, no lookup.
func DefaultConfig() Config {
	return Config{
		Validate: true,
		Bounds:   cleaning.DefaultBounds(),
		Cleaning: cleaning.DefaultConfig(),
	}
}

// Result is the outcome of one preparation run.
type Result struct {
	Records []schema.Record
	Report  Report
}

// Report makes the resolution quality of a run countable and reportable:
// every non-fatal gap is a number a human can audit after a data refresh.
type Report struct {
	// RunID identifies this preparation run in logs and exports.
	RunID string `json:"run_id"`
	// Rows is the number of records produced.
	Rows int `json:"rows"`
	// DateSource records how dates were synthesized.
	DateSource schema.DateSource `json:"date_source"`
	// ResolvedColumns maps canonical fields to the source columns used.
	ResolvedColumns map[schema.Field]string `json:"resolved_columns"`
	// MissingFields lists canonical fields that never resolved.
	MissingFields []schema.Field `json:"missing_fields,omitempty"`
	// ZoneGaps counts records that could not be zone-backfilled.
	ZoneGaps int `json:"zone_gaps"`
	// AmbiguousPorts counts lookup entries whose mapping was tie-broken.
	AmbiguousPorts int `json:"ambiguous_ports"`
}

type service struct {
	cfg        Config
	normalizer *schema.Normalizer
	cleaner    *cleaning.Cleaner
	logger     *zap.Logger
	metrics    *Metrics
}

// NewService creates a preparation service. A nil logger disables logging.
func NewService(cfg Config, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{
		cfg:        cfg,
		normalizer: schema.NewNormalizer(nil, logger),
		cleaner:    cleaning.NewCleaner(cfg.Cleaning, logger),
		logger:     logger,
		metrics:    NewMetrics(logger),
	}
}

func (s *service) Prepare(ctx context.Context, table *schema.Table) (*Result, error) {
	runID := uuid.NewString()
	logger := s.logger.With(zap.String("run_id", runID))

	records, resolution, err := s.normalizer.Normalize(table)
	if err != nil {
		logger.Error("schema normalization failed", zap.Error(err))
		return nil, err
	}

	records = s.cleaner.Clean(records)

	if s.cfg.Validate {
		if err := cleaning.Validate(records, s.cfg.Bounds); err != nil {
			logger.Error("batch validation failed", zap.Error(err))
			return nil, err
		}
	}

	gaps := 0
	ambiguous := 0
	if s.cfg.Lookup != nil || len(s.cfg.Overrides) > 0 {
		records, gaps = portzone.Apply(records, s.cfg.Lookup, s.cfg.Overrides)
		if s.cfg.Lookup != nil {
			ambiguous = len(s.cfg.Lookup.AmbiguousPorts())
		}
	} else {
		for _, rec := range records {
			if !rec.HasZone() && rec.HasPort() {
				gaps++
			}
		}
	}

	s.metrics.records.Add(ctx, int64(len(records)))
	s.metrics.zoneGaps.Add(ctx, int64(gaps))
	s.metrics.ambiguous.Add(ctx, int64(ambiguous))

	logger.Info("prepared batch",
		zap.Int("rows", len(records)),
		zap.String("date_source", string(resolution.DateSource)),
		zap.Int("zone_gaps", gaps),
		zap.Int("ambiguous_ports", ambiguous))

	return &Result{
		Records: records,
		Report: Report{
			RunID:           runID,
			Rows:            len(records),
			DateSource:      resolution.DateSource,
			ResolvedColumns: resolution.Columns,
			MissingFields:   resolution.Missing,
			ZoneGaps:        gaps,
			AmbiguousPorts:  ambiguous,
		},
	}, nil
}
