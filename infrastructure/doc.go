// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as persistence, HTTP communication, model backends and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/file: JSON-file cache store with atomic save
// - cache/sqlite: SQLite-backed cache store
// - cache/memory: In-process memo cache for model outputs
// - http/standard: Standard library HTTP client with retry logic
// - logger/logrus: Structured logger with optional file rotation
// - summary: Summarization provider backends
// - translate: Translation provider backends
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
// - Production-ready: Include retries, timeouts, and error handling
//
// # Cache Store Implementations
//
// File store example:
//
//	store := file.NewStore("data/processed_items.json", logger)
//	records := store.Load(ctx)
//	err := store.Save(ctx, records)
//
// SQLite store example:
//
//	store, err := sqlite.NewStore("data/cache.db", logger)
//	if err != nil {
//	    // Handle error
//	}
//	defer store.Close()
//
// # HTTP Client
//
// The HTTP client includes automatic retry logic for transient failures:
//
//	client := standard.NewClient(10 * time.Second)
//	resp, err := client.Get(ctx, "https://example.com")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := logrus.New(logrus.Options{Level: "info"})
//	logger.Info("Processing item", map[string]interface{}{
//	    "url":      "https://example.com/story",
//	    "language": "ko",
//	})
package infrastructure
