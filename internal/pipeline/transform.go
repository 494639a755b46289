package pipeline

import (
	"context"
	"log/slog"
	"strings"

	"github.com/couchcryptid/disaster-news-etl/internal/domain"
	"github.com/couchcryptid/disaster-news-etl/internal/observability"
)

// RecordAssembler implements Assembler using the domain classification,
// date normalization, and location resolution functions.
type RecordAssembler struct {
	classifier   *domain.Classifier
	extractor    domain.EntityExtractor
	matcher      domain.LocationMatcher
	relevantOnly bool
	logger       *slog.Logger
	metrics      *observability.Metrics
}

// NewAssembler creates a RecordAssembler. With relevantOnly set, entries that
// match no disaster keyword are dropped instead of emitted.
func NewAssembler(classifier *domain.Classifier, extractor domain.EntityExtractor, matcher domain.LocationMatcher, relevantOnly bool, logger *slog.Logger, metrics *observability.Metrics) *RecordAssembler {
	return &RecordAssembler{
		classifier:   classifier,
		extractor:    extractor,
		matcher:      matcher,
		relevantOnly: relevantOnly,
		logger:       logger,
		metrics:      metrics,
	}
}

// Assemble builds an output record from one feed entry. Entity extraction is
// best effort: a failing model degrades the record to the Unknown location
// sentinel rather than dropping the article.
func (a *RecordAssembler) Assemble(ctx context.Context, entry domain.FeedEntry) (domain.Record, error) {
	title := strings.TrimSpace(entry.Title)
	description := strings.TrimSpace(entry.Description)
	link := strings.TrimSpace(entry.Link)

	if title == "" {
		return domain.Record{}, domain.ErrMissingTitle
	}

	combined := title + " " + description
	classification := a.classifier.Classify(combined)
	if a.relevantOnly && !classification.Relevant {
		return domain.Record{}, domain.ErrNotRelevant
	}

	date, parsed := domain.NormalizeDate(entry.Published)
	if !parsed && strings.TrimSpace(entry.Published) != "" {
		a.metrics.DateFallbacks.Inc()
	}

	candidates, err := a.extractor.ExtractEntities(ctx, combined)
	if err != nil {
		a.logger.Warn("entity extraction failed", "link", link, "error", err)
		a.metrics.ExtractErrors.Inc()
		candidates = nil
	}

	return domain.Record{
		Title:            title,
		Date:             date,
		Description:      description,
		Link:             link,
		Locations:        domain.ResolveLocations(candidates, a.matcher),
		Source:           entry.SourceURL,
		DisasterKeywords: classification.Keywords,
	}, nil
}
