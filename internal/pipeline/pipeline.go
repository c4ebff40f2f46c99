package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/coastalwx/marine-forecast-etl/internal/domain"
	"github.com/coastalwx/marine-forecast-etl/internal/observability"
)

// BulletinFetcher retrieves the raw bulletin text for a zone's source page.
type BulletinFetcher interface {
	FetchBulletin(ctx context.Context, zone domain.Zone) (string, error)
}

// RecordSink persists a run's forecast records.
type RecordSink interface {
	WriteRecords(records []domain.ForecastRecord) error
}

// Publisher emits a run's forecast records to a broker.
type Publisher interface {
	PublishRecords(ctx context.Context, records []domain.ForecastRecord) error
}

// Pipeline runs the fetch-extract-write cycle over the zone table.
type Pipeline struct {
	zones     []domain.Zone
	fetcher   BulletinFetcher
	sink      RecordSink
	publisher Publisher
	logger    *slog.Logger
	metrics   *observability.Metrics
	ready     atomic.Bool
}

// New creates a Pipeline over the given zone table. publisher may be nil
// when broker publishing is disabled.
func New(zones []domain.Zone, f BulletinFetcher, s RecordSink, pub Publisher, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		zones:     zones,
		fetcher:   f,
		sink:      s,
		publisher: pub,
		logger:    logger,
		metrics:   metrics,
	}
}

// CheckReadiness returns nil once the pipeline has completed at least one
// cycle, or an error describing why the service is not yet ready.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("no completed extraction cycle yet")
	}
	return nil
}

// MarkStopped flips readiness off during shutdown so probes fail fast.
func (p *Pipeline) MarkStopped() {
	p.ready.Store(false)
	p.metrics.PipelineReady.Set(0)
}

// RunCycle fetches every configured zone's bulletin, extracts one record per
// zone, and hands the run to the sink and publisher. Per-zone failures are
// logged and skipped; a run with zero records is still a valid run. Only a
// sink failure fails the cycle.
func (p *Pipeline) RunCycle(ctx context.Context) error {
	start := time.Now()
	records := make([]domain.ForecastRecord, 0, len(p.zones))

	for _, zone := range p.zones {
		rec, ok := p.processZone(ctx, zone)
		if !ok {
			continue
		}
		records = append(records, rec)
	}

	if err := p.sink.WriteRecords(records); err != nil {
		return fmt.Errorf("sink: %w", err)
	}
	p.metrics.RecordsWritten.Add(float64(len(records)))

	p.publish(ctx, records)

	p.metrics.CyclesTotal.Inc()
	p.metrics.CycleDuration.Observe(time.Since(start).Seconds())
	p.ready.Store(true)
	p.metrics.PipelineReady.Set(1)

	p.logger.Info("cycle complete",
		"records", len(records),
		"zones", len(p.zones),
		"duration", time.Since(start),
	)
	return nil
}

func (p *Pipeline) processZone(ctx context.Context, zone domain.Zone) (domain.ForecastRecord, bool) {
	fetchStart := time.Now()
	bulletin, err := p.fetcher.FetchBulletin(ctx, zone)
	p.metrics.FetchDuration.WithLabelValues(zone.ID).Observe(time.Since(fetchStart).Seconds())
	if err != nil {
		p.logger.Error("bulletin fetch failed, skipping zone", "zone", zone.ID, "error", err)
		p.metrics.ZonesProcessed.WithLabelValues(zone.ID, "fetch_error").Inc()
		return domain.ForecastRecord{}, false
	}

	rec, err := domain.BuildZoneRecord(bulletin, zone)
	if err != nil {
		p.logger.Warn("zone skipped", "zone", zone.ID, "error", err)
		p.metrics.ZonesProcessed.WithLabelValues(zone.ID, skipStatus(err)).Inc()
		return domain.ForecastRecord{}, false
	}

	p.metrics.ZonesProcessed.WithLabelValues(zone.ID, "ok").Inc()
	p.logger.Info("zone extracted",
		"zone", zone.ID,
		"city", rec.City,
		"day", rec.Day,
		"advisory", rec.SmallCraftAdvisory,
		"caution", rec.SmallCraftCaution,
	)
	return rec, true
}

// publish sends the run to the broker when one is configured. Publish
// failures are logged and counted but do not fail the cycle.
func (p *Pipeline) publish(ctx context.Context, records []domain.ForecastRecord) {
	if p.publisher == nil || len(records) == 0 {
		return
	}
	if err := p.publisher.PublishRecords(ctx, records); err != nil {
		p.logger.Error("publish failed", "error", err, "records", len(records))
		p.metrics.RecordsPublished.WithLabelValues("error").Add(float64(len(records)))
		return
	}
	p.metrics.RecordsPublished.WithLabelValues("ok").Add(float64(len(records)))
}

func skipStatus(err error) string {
	switch {
	case errors.Is(err, domain.ErrZoneNotFound):
		return "zone_not_found"
	case errors.Is(err, domain.ErrPeriodNotFound):
		return "period_not_found"
	default:
		return "extract_error"
	}
}
