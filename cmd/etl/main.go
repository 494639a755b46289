package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/lo"

	httpadapter "github.com/couchcryptid/disaster-news-etl/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/disaster-news-etl/internal/adapter/kafka"
	"github.com/couchcryptid/disaster-news-etl/internal/adapter/rss"
	"github.com/couchcryptid/disaster-news-etl/internal/config"
	"github.com/couchcryptid/disaster-news-etl/internal/domain"
	"github.com/couchcryptid/disaster-news-etl/internal/gazetteer"
	"github.com/couchcryptid/disaster-news-etl/internal/ner"
	"github.com/couchcryptid/disaster-news-etl/internal/observability"
	"github.com/couchcryptid/disaster-news-etl/internal/pipeline"
	"github.com/couchcryptid/disaster-news-etl/internal/sink"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	// A missing gazetteer file degrades every article to the Unknown
	// location sentinel instead of aborting the run.
	gaz, err := gazetteer.LoadCSV(cfg.GazetteerFile, cfg.GazetteerColumns)
	if err != nil {
		logger.Warn("gazetteer load failed, locations will resolve to Unknown",
			"file", cfg.GazetteerFile, "error", err)
	}
	metrics.GazetteerEntries.Set(float64(gaz.Len()))

	var matcher domain.LocationMatcher = gaz
	if cfg.FuzzyMaxDistance > 0 {
		matcher = gazetteer.NewFuzzyMatcher(gaz, cfg.FuzzyMaxDistance)
		logger.Info("fuzzy place matching enabled", "max_distance", cfg.FuzzyMaxDistance)
	}

	extractor := newExtractor(cfg, metrics, logger)

	vocabulary := cfg.Keywords
	if len(vocabulary) == 0 {
		vocabulary = domain.DefaultVocabulary
	}
	assembler := pipeline.NewAssembler(
		domain.NewClassifier(vocabulary),
		extractor,
		matcher,
		cfg.RelevantOnly,
		logger,
		metrics,
	)

	sources := lo.Map(cfg.Feeds, func(url string, _ int) pipeline.EntrySource {
		return rss.NewSource(url, cfg.FetchTimeout)
	})

	sinks, closeSinks := newSinks(cfg, logger)
	defer closeSinks()

	p := pipeline.New(sources, assembler, sinks, logger, metrics, gaz.Len())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.FetchInterval <= 0 {
		// One-shot mode: run the pipeline once and exit.
		if _, err := p.Run(ctx); err != nil {
			logger.Error("pipeline error", "error", err)
			os.Exit(1)
		}
		return
	}

	srv := httpadapter.NewServer(cfg.HTTPAddr, p, logger)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	go func() {
		if err := p.Start(ctx, cfg.FetchInterval); err != nil {
			logger.Error("pipeline error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}

// newExtractor builds the entity extractor for the configured backend and
// wraps it in the in-process cache.
func newExtractor(cfg *config.Config, metrics *observability.Metrics, logger *slog.Logger) domain.EntityExtractor {
	var inner domain.EntityExtractor
	switch cfg.AIType {
	case config.AITypeOpenAI:
		inner = ner.NewOpenAIExtractor(cfg.AIBaseURL, cfg.AIKey, cfg.AIModel, cfg.AITimeout)
	default:
		inner = ner.NewOllamaExtractor(cfg.AIBaseURL, cfg.AIModel, cfg.AITimeout)
	}
	logger.Info("entity extractor configured", "backend", cfg.AIType, "model", cfg.AIModel)
	return ner.NewCachedExtractor(inner, cfg.NERCacheSize, metrics.EntityCache)
}

// newSinks assembles the configured output sinks and returns a close function
// for the ones holding connections.
func newSinks(cfg *config.Config, logger *slog.Logger) ([]pipeline.Sink, func()) {
	var sinks []pipeline.Sink
	closeFn := func() {}

	if cfg.CSVOutput != "" {
		sinks = append(sinks, sink.NewCSVSink(cfg.CSVOutput))
	}
	if cfg.JSONOutput != "" {
		sinks = append(sinks, sink.NewJSONSink(cfg.JSONOutput))
	}
	if cfg.KafkaEnabled() {
		writer := kafkaadapter.NewWriter(cfg.KafkaBrokers, cfg.KafkaTopic, logger)
		sinks = append(sinks, writer)
		closeFn = func() {
			if err := writer.Close(); err != nil {
				logger.Error("kafka writer close error", "error", err)
			}
		}
	}
	return sinks, closeFn
}
