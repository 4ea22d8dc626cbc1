// ABOUTME: Main entry point for one translation pipeline run
// ABOUTME: Wires together all components, runs the pipeline once and exits

package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"

	"hn-rss-translator/core/feed"
	"hn-rss-translator/core/interfaces"
	"hn-rss-translator/core/pipeline"
	"hn-rss-translator/core/rss"
	"hn-rss-translator/core/scrape"
	"hn-rss-translator/core/summary"
	"hn-rss-translator/core/translate"
	filestore "hn-rss-translator/infrastructure/cache/file"
	"hn-rss-translator/infrastructure/cache/memory"
	sqlitestore "hn-rss-translator/infrastructure/cache/sqlite"
	stdhttp "hn-rss-translator/infrastructure/http/standard"
	logruslogger "hn-rss-translator/infrastructure/logger/logrus"
	infrasummary "hn-rss-translator/infrastructure/summary"
	infratranslate "hn-rss-translator/infrastructure/translate"
	"hn-rss-translator/pkg/config"
)

func main() {
	configPath := flag.String("config", "", "path to the YAML configuration file")
	flag.Parse()

	// Local development secrets; absent in production.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logruslogger.New(logruslogger.Options{
		Level:      cfg.Log.Level,
		FilePath:   cfg.Log.FilePath,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})
	logger.Info("Starting HN RSS Translator", map[string]interface{}{
		"source":    cfg.Feed.SourceURL,
		"languages": len(cfg.Translation.Languages),
		"cache":     cfg.Cache.Backend,
	})

	httpClient := stdhttp.NewClient(time.Duration(cfg.Scraping.TimeoutSeconds) * time.Second)

	deps := interfaces.Dependencies{
		Cache:      memory.NewMemo(24*time.Hour, time.Hour),
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Create the processed-item store
	var store interfaces.CacheStore
	switch cfg.Cache.Backend {
	case "sqlite":
		sqlStore, err := sqlitestore.NewStore(cfg.Cache.Path, logger)
		if err != nil {
			logger.Error("Failed to open sqlite cache, falling back to JSON file", map[string]interface{}{
				"error": err.Error(),
			})
			store = filestore.NewStore(cfg.Cache.Path+".json", logger)
		} else {
			defer sqlStore.Close()
			store = sqlStore
		}
	default:
		store = filestore.NewStore(cfg.Cache.Path, logger)
	}

	// Create the summary provider
	var summaryProvider interfaces.SummaryProvider
	switch cfg.Summarization.Provider {
	case "openai":
		summaryProvider = infrasummary.NewOpenAI(cfg.Summarization.APIKey, cfg.Summarization.Model)
	default:
		summaryProvider = summary.NewLightweight(0)
	}

	// Create one translation provider per language that wants translation
	var providers []interfaces.TranslationProvider
	for _, lang := range cfg.Translation.Languages {
		if lang.SkipTranslation {
			continue
		}
		switch cfg.Translation.Provider {
		case "openai":
			providers = append(providers, infratranslate.NewOpenAI(
				cfg.Translation.APIKey, cfg.Translation.Model, lang.Code, lang.Name))
		case "libretranslate":
			providers = append(providers, infratranslate.NewLibre(
				httpClient, cfg.Translation.Endpoint, cfg.Translation.APIKey, "en", lang.Code))
		default:
			providers = append(providers, infratranslate.NewMyMemory(
				httpClient, cfg.Translation.Endpoint, "en", lang.Code))
		}
	}

	run := pipeline.New(
		deps,
		feed.NewService(deps),
		scrape.NewService(deps, time.Duration(cfg.Scraping.TimeoutSeconds)*time.Second, cfg.Scraping.MaxChars),
		summary.NewService(deps, summaryProvider, cfg.Summarization.MaxLength, cfg.Summarization.MinLength),
		translate.NewService(deps, providers, cfg.Translation.CallsPerSecond),
		rss.NewService(deps, cfg.Output.BaseURL),
		store,
	)

	languages := make([]pipeline.Language, len(cfg.Translation.Languages))
	for i, lang := range cfg.Translation.Languages {
		languages[i] = pipeline.Language{
			Language: rss.Language{
				Code:     lang.Code,
				Name:     lang.Name,
				FeedName: lang.FeedName,
			},
			SkipTranslation: lang.SkipTranslation,
		}
	}

	stats, err := run.Run(context.Background(), pipeline.Options{
		FeedURL:       cfg.Feed.SourceURL,
		MaxItems:      cfg.Filtering.MaxItems,
		MaxAge:        time.Duration(cfg.Filtering.MaxAgeHours) * time.Hour,
		SkipJobs:      cfg.Filtering.SkipJobs,
		MaxWorkers:    cfg.Scraping.MaxWorkers,
		CacheTTL:      time.Duration(cfg.Cache.RetentionDays) * 24 * time.Hour,
		OutputDir:     cfg.Output.Directory,
		Languages:     languages,
		GenerateIndex: cfg.Output.GenerateIndex,
	})
	if err != nil {
		logger.Error("Pipeline run failed", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Pipeline run failed: %v", err)
	}

	logger.Info("Pipeline run completed", map[string]interface{}{
		"fetched":    stats.ItemsFetched,
		"new":        stats.ItemsNew,
		"scraped":    stats.ItemsScraped,
		"feeds":      stats.FeedsWritten,
		"from_cache": stats.FromCache,
	})
}
