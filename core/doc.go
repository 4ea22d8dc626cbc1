// Package core contains the business logic for the HN RSS translation
// pipeline. It is designed to be framework-agnostic and can be used
// independently of any delivery mechanism or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (FeedItem, ProcessedItem, CacheRecord, TextOutcome)
// - feed: Source feed fetching, parsing and filtering
// - scrape: Article content extraction with strategy fallbacks
// - summary: Summarization with a pluggable provider
// - translate: Per-language translation with passthrough degradation
// - rss: RSS 2.0 generation and output-directory writing
// - pipeline: The one-run orchestrator tying the stages together
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger, providers)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "hn-rss-translator/core/feed"
//	    "hn-rss-translator/core/interfaces"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create service
//	feedService := feed.NewService(deps)
//
//	// Fetch and filter the source feed
//	items, err := feedService.Fetch(ctx, "https://news.ycombinator.com/rss", feed.Options{
//	    MaxAge:   24 * time.Hour,
//	    MaxItems: 20,
//	})
package core
