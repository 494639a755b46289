// Package pipeline orchestrates the fetch-assemble-write flow for a run.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/disaster-news-etl/internal/domain"
	"github.com/couchcryptid/disaster-news-etl/internal/observability"
)

// EntrySource fetches entries from one feed.
type EntrySource interface {
	URL() string
	Fetch(ctx context.Context) ([]domain.FeedEntry, error)
}

// Assembler converts a feed entry into an output record, or returns a typed
// error explaining why the entry was dropped.
type Assembler interface {
	Assemble(ctx context.Context, entry domain.FeedEntry) (domain.Record, error)
}

// Sink writes a completed run somewhere.
type Sink interface {
	Name() string
	Write(ctx context.Context, env domain.Envelope) error
}

// Pipeline orchestrates the fetch-assemble-write cycle across all feeds.
type Pipeline struct {
	sources       []EntrySource
	assembler     Assembler
	sinks         []Sink
	logger        *slog.Logger
	metrics       *observability.Metrics
	gazetteerSize int
	ready         atomic.Bool
	last          atomic.Pointer[domain.Envelope]
}

// New creates a Pipeline with the given stages and observability.
func New(sources []EntrySource, a Assembler, sinks []Sink, logger *slog.Logger, metrics *observability.Metrics, gazetteerSize int) *Pipeline {
	return &Pipeline{
		sources:       sources,
		assembler:     a,
		sinks:         sinks,
		logger:        logger,
		metrics:       metrics,
		gazetteerSize: gazetteerSize,
	}
}

// CheckReadiness returns nil once the pipeline has completed at least one run,
// or an error describing why the service is not yet ready.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("pipeline has not completed a run yet")
	}
	return nil
}

// LatestRun returns the envelope from the most recent completed run.
func (p *Pipeline) LatestRun() (domain.Envelope, bool) {
	env := p.last.Load()
	if env == nil {
		return domain.Envelope{}, false
	}
	return *env, true
}

// Run executes one full cycle: fetch every feed, assemble records in feed
// order, and write the envelope to every sink. A failing feed or sink is
// logged and skipped so one broken dependency cannot void the whole run.
func (p *Pipeline) Run(ctx context.Context) (domain.Envelope, error) {
	start := time.Now()
	p.metrics.PipelineRunning.Set(1)
	defer p.metrics.PipelineRunning.Set(0)

	feeds := make([]string, 0, len(p.sources))
	records := make([]domain.Record, 0)

	for _, src := range p.sources {
		feeds = append(feeds, src.URL())

		entries, err := src.Fetch(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return domain.Envelope{}, ctx.Err()
			}
			p.logger.Error("feed fetch failed", "feed", src.URL(), "error", err)
			p.metrics.FeedErrors.Inc()
			continue
		}

		records = append(records, p.assembleEntries(ctx, entries)...)
	}

	if ctx.Err() != nil {
		return domain.Envelope{}, ctx.Err()
	}

	env := domain.NewEnvelope(records, feeds, p.gazetteerSize)
	p.last.Store(&env)

	for _, sink := range p.sinks {
		if err := sink.Write(ctx, env); err != nil {
			p.logger.Error("sink write failed", "sink", sink.Name(), "error", err)
			p.metrics.SinkErrors.WithLabelValues(sink.Name()).Inc()
		}
	}

	p.metrics.RunDuration.Observe(time.Since(start).Seconds())
	p.ready.Store(true)
	p.logger.Info("run complete",
		"feeds", len(feeds),
		"records", len(env.Articles),
		"duration", time.Since(start),
	)
	return env, nil
}

// assembleEntries converts one feed's entries into records, counting and
// logging the drops without failing the batch.
func (p *Pipeline) assembleEntries(ctx context.Context, entries []domain.FeedEntry) []domain.Record {
	records := make([]domain.Record, 0, len(entries))
	for _, entry := range entries {
		if ctx.Err() != nil {
			return records
		}
		p.metrics.EntriesConsumed.Inc()

		rec, err := p.assembler.Assemble(ctx, entry)
		switch {
		case errors.Is(err, domain.ErrNotRelevant):
			p.metrics.EntriesSkipped.WithLabelValues("not_relevant").Inc()
			continue
		case errors.Is(err, domain.ErrMissingTitle):
			p.logger.Warn("skipping entry without title", "link", entry.Link, "feed", entry.SourceURL)
			p.metrics.EntriesSkipped.WithLabelValues("missing_title").Inc()
			continue
		case err != nil:
			p.logger.Warn("assemble failed, skipping entry", "link", entry.Link, "error", err)
			p.metrics.EntriesSkipped.WithLabelValues("error").Inc()
			continue
		}

		if len(rec.Locations) == 1 && rec.Locations[0] == domain.UnknownLocation {
			p.metrics.UnknownLocations.Inc()
		}
		p.metrics.RecordsProduced.Inc()
		records = append(records, rec)
	}
	return records
}

// Start runs the pipeline immediately and then on every interval tick until
// the context is cancelled.
func (p *Pipeline) Start(ctx context.Context, interval time.Duration) error {
	if _, err := p.Run(ctx); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("pipeline stopping", "reason", ctx.Err())
			return nil
		case <-ticker.C:
			if _, err := p.Run(ctx); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
		}
	}
}
