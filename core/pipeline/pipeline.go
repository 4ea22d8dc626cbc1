// ABOUTME: Pipeline orchestrates one full run from source feed to written output feeds
// ABOUTME: Linear stages; per-item failures degrade, only source fetch and output write are fatal

package pipeline

import (
	"context"
	"fmt"
	"sort"
	"time"

	"hn-rss-translator/core/domain"
	"hn-rss-translator/core/feed"
	"hn-rss-translator/core/interfaces"
	"hn-rss-translator/core/rss"
	"hn-rss-translator/core/scrape"
	"hn-rss-translator/core/summary"
	"hn-rss-translator/core/translate"
)

// Language pairs a feed output target with its translation policy.
type Language struct {
	rss.Language

	// SkipTranslation emits source-language text without contacting a provider.
	SkipTranslation bool
}

// Options configures one pipeline run.
type Options struct {
	FeedURL       string
	MaxItems      int
	MaxAge        time.Duration
	SkipJobs      bool
	MaxWorkers    int
	CacheTTL      time.Duration
	OutputDir     string
	Languages     []Language
	GenerateIndex bool
}

// Stats summarizes what one run did.
type Stats struct {
	ItemsFetched int
	ItemsNew     int
	ItemsScraped int
	FeedsWritten int
	FromCache    bool
}

// Pipeline wires the stage services into one run sequence. The cache store
// is read once at the start and written once at the end; no mid-run writes.
type Pipeline struct {
	deps       interfaces.Dependencies
	feeds      *feed.Service
	scraper    *scrape.Service
	summarizer *summary.Service
	translator *translate.Service
	writer     *rss.Service
	store      interfaces.CacheStore
	now        func() time.Time
}

// New creates a pipeline over the given stage services.
func New(deps interfaces.Dependencies, feeds *feed.Service, scraper *scrape.Service,
	summarizer *summary.Service, translator *translate.Service,
	writer *rss.Service, store interfaces.CacheStore) *Pipeline {
	return &Pipeline{
		deps:       deps,
		feeds:      feeds,
		scraper:    scraper,
		summarizer: summarizer,
		translator: translator,
		writer:     writer,
		store:      store,
		now:        time.Now,
	}
}

// Run executes one full pipeline pass. Individual item failures degrade and
// continue; an unreachable source feed or a fully unwritable output
// directory abort the run, and no cache save happens after an abort.
func (p *Pipeline) Run(ctx context.Context, opts Options) (Stats, error) {
	var stats Stats

	items, err := p.feeds.Fetch(ctx, opts.FeedURL, feed.Options{
		MaxAge:   opts.MaxAge,
		MaxItems: opts.MaxItems,
		SkipJobs: opts.SkipJobs,
	})
	if err != nil {
		return stats, fmt.Errorf("fetch source feed: %w", err)
	}
	stats.ItemsFetched = len(items)

	records := p.store.Load(ctx)
	records = interfaces.Prune(records, opts.CacheTTL, p.now())

	newItems := feed.FilterNew(items, records)
	stats.ItemsNew = len(newItems)
	p.logInfo("Deduplicated against cache", map[string]interface{}{
		"fetched": len(items),
		"new":     len(newItems),
		"cached":  len(records),
	})

	var processed []domain.ProcessedItem
	if len(newItems) > 0 {
		processed = p.processItems(ctx, newItems, opts, &stats)
		for i := range processed {
			records[processed[i].ID] = domain.CacheRecord{
				ProcessedAt: p.now(),
				Item:        processed[i],
			}
		}
	} else {
		// Nothing new this run. Regenerate feeds from the cache so the
		// output stays fresh (lastBuildDate moves, expired items drop out).
		processed = cachedItems(records, opts.MaxItems)
		stats.FromCache = true
		p.logInfo("No new items, regenerating feeds from cache", map[string]interface{}{
			"items": len(processed),
		})
	}

	if len(processed) == 0 {
		p.logInfo("No items to publish, skipping feed generation", nil)
		return stats, p.saveCache(ctx, records)
	}

	langs := make([]rss.Language, len(opts.Languages))
	for i, l := range opts.Languages {
		langs[i] = l.Language
	}

	written, err := p.writer.WriteFeeds(processed, langs, opts.OutputDir)
	if err != nil {
		return stats, fmt.Errorf("write feeds: %w", err)
	}
	stats.FeedsWritten = written

	if opts.GenerateIndex {
		// Site artifacts are best effort; the feeds are already on disk.
		if err := p.writer.WriteIndex(langs, opts.OutputDir); err != nil {
			p.logWarn("Failed to write index page", err)
		}
		if err := p.writer.WriteSitemap(langs, opts.OutputDir); err != nil {
			p.logWarn("Failed to write sitemap", err)
		}
		if err := p.writer.WriteRobots(opts.OutputDir); err != nil {
			p.logWarn("Failed to write robots.txt", err)
		}
	}

	return stats, p.saveCache(ctx, records)
}

// processItems runs scrape, summarize and translate for each new item.
// Order is preserved end to end; a failing stage degrades the item in place.
func (p *Pipeline) processItems(ctx context.Context, items []domain.FeedItem, opts Options, stats *Stats) []domain.ProcessedItem {
	urls := make([]string, 0, len(items))
	for i := range items {
		if items[i].Link != "" {
			urls = append(urls, items[i].Link)
		}
	}
	extracted := p.scraper.BatchExtract(ctx, urls, opts.MaxWorkers)

	translated := make([]string, 0, len(opts.Languages))
	for _, lang := range opts.Languages {
		if !lang.SkipTranslation {
			translated = append(translated, lang.Code)
		}
	}

	processed := make([]domain.ProcessedItem, 0, len(items))
	for i := range items {
		item := items[i]

		pi := domain.ProcessedItem{FeedItem: item}

		input := item.Description
		if outcome, ok := extracted[item.Link]; ok && outcome.Usable() {
			pi.ExtractedText = outcome.Text
			input = outcome.Text
			stats.ItemsScraped++
		}

		summarized := p.summarizer.Summarize(ctx, input)
		pi.Summary = summarized.Text
		if pi.Summary == "" {
			pi.Summary = item.Description
		}

		pi.Translations = p.translator.TranslateItem(ctx, item.Title, pi.Summary, translated)
		for _, lang := range opts.Languages {
			if lang.SkipTranslation {
				pi.Translations[lang.Code] = domain.Translation{
					Title:   item.Title,
					Summary: pi.Summary,
				}
			}
		}

		processed = append(processed, pi)
	}

	return processed
}

func (p *Pipeline) saveCache(ctx context.Context, records map[string]domain.CacheRecord) error {
	if err := p.store.Save(ctx, records); err != nil {
		if p.deps.Logger != nil {
			p.deps.Logger.Error("Failed to save cache", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return fmt.Errorf("save cache: %w", err)
	}
	return nil
}

// cachedItems returns the newest records up to max, for feed regeneration
// on runs that found nothing new.
func cachedItems(records map[string]domain.CacheRecord, max int) []domain.ProcessedItem {
	recs := make([]domain.CacheRecord, 0, len(records))
	for _, rec := range records {
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool {
		return recs[i].ProcessedAt.After(recs[j].ProcessedAt)
	})

	if max > 0 && len(recs) > max {
		recs = recs[:max]
	}

	items := make([]domain.ProcessedItem, len(recs))
	for i, rec := range recs {
		items[i] = rec.Item
	}
	return items
}

func (p *Pipeline) logInfo(msg string, fields map[string]interface{}) {
	if p.deps.Logger != nil {
		p.deps.Logger.Info(msg, fields)
	}
}

func (p *Pipeline) logWarn(msg string, err error) {
	if p.deps.Logger != nil {
		p.deps.Logger.Warn(msg, map[string]interface{}{"error": err.Error()})
	}
}
