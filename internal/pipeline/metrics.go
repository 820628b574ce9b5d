package pipeline

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

const instrumentationName = "github.com/fyrsmithlabs/landings/internal/pipeline"

// Metrics holds preparation-run metrics.
type Metrics struct {
	meter     metric.Meter
	logger    *zap.Logger
	records   metric.Int64Counter
	zoneGaps  metric.Int64Counter
	ambiguous metric.Int64Counter
}

// NewMetrics creates a Metrics instance.
func NewMetrics(logger *zap.Logger) *Metrics {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Metrics{
		meter:  otel.Meter(instrumentationName),
		logger: logger,
	}
	m.init()
	return m
}

func (m *Metrics) init() {
	var err error

	m.records, err = m.meter.Int64Counter(
		"landings.pipeline.records_total",
		metric.WithDescription("Total records produced by preparation runs"),
		metric.WithUnit("{record}"),
	)
	if err != nil {
		m.logger.Warn("failed to create records counter", zap.Error(err))
	}

	m.zoneGaps, err = m.meter.Int64Counter(
		"landings.pipeline.zone_gaps_total",
		metric.WithDescription("Records that could not be zone-backfilled, for auditing lookup coverage"),
		metric.WithUnit("{record}"),
	)
	if err != nil {
		m.logger.Warn("failed to create zone gaps counter", zap.Error(err))
	}

	m.ambiguous, err = m.meter.Int64Counter(
		"landings.pipeline.ambiguous_ports_total",
		metric.WithDescription("Ports whose zone mapping was tie-broken, flagged for human review"),
		metric.WithUnit("{port}"),
	)
	if err != nil {
		m.logger.Warn("failed to create ambiguous ports counter", zap.Error(err))
	}
}
