// ABOUTME: JSON-file implementation of the durable processing cache
// ABOUTME: Atomic save via temp file rename; load never fails the run

package file

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"hn-rss-translator/core/domain"
	"hn-rss-translator/core/interfaces"
)

// Store persists processed-item records as a single JSON document
// mapping item id to record. Deleting the file forces reprocessing.
type Store struct {
	path   string
	logger interfaces.Logger

	// now is swapped in tests to control stamping
	now func() time.Time
}

// NewStore creates a file-backed cache store at the given path.
func NewStore(path string, logger interfaces.Logger) *Store {
	return &Store{path: path, logger: logger, now: time.Now}
}

// Load reads the persisted records. A missing or corrupt file yields an
// empty map; the cache is advisory and must never fail a run.
func (s *Store) Load(ctx context.Context) map[string]domain.CacheRecord {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) && s.logger != nil {
			s.logger.Warn("Failed to read cache file, starting empty", map[string]interface{}{
				"path":  s.path,
				"error": err.Error(),
			})
		}
		return map[string]domain.CacheRecord{}
	}

	var records map[string]domain.CacheRecord
	if err := json.Unmarshal(data, &records); err != nil {
		if s.logger != nil {
			s.logger.Warn("Corrupt cache file, starting empty", map[string]interface{}{
				"path":  s.path,
				"error": err.Error(),
			})
		}
		return map[string]domain.CacheRecord{}
	}

	if records == nil {
		records = map[string]domain.CacheRecord{}
	}
	return records
}

// Save atomically overwrites the cache file with the given records.
// Records lacking a ProcessedAt timestamp are stamped with the current
// time before writing.
func (s *Store) Save(ctx context.Context, records map[string]domain.CacheRecord) error {
	stamped := make(map[string]domain.CacheRecord, len(records))
	now := s.now()
	for id, rec := range records {
		if rec.ProcessedAt.IsZero() {
			rec.ProcessedAt = now
		}
		stamped[id] = rec
	}

	data, err := json.MarshalIndent(stamped, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	// Write-then-rename keeps a crashed run from truncating the cache.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
