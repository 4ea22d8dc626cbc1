// ABOUTME: SQLite implementation of the durable processing cache
// ABOUTME: Alternative to the JSON file store for larger retention windows

package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"hn-rss-translator/core/domain"
	"hn-rss-translator/core/interfaces"
)

// Store persists processed-item records in a single SQLite table.
type Store struct {
	db     *sql.DB
	logger interfaces.Logger
	now    func() time.Time
}

// NewStore opens (or creates) the cache database at the given path.
func NewStore(path string, logger interfaces.Logger) (*Store, error) {
	if path == "" {
		path = "cache.db"
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	s := &Store{db: db, logger: logger, now: time.Now}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

func (s *Store) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS processed_items (
			id TEXT PRIMARY KEY,
			processed_at INTEGER NOT NULL,
			item BLOB NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_processed_at ON processed_items(processed_at);
	`
	_, err := s.db.Exec(query)
	return err
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads all persisted records. Unreadable rows are skipped; any
// database failure yields an empty map rather than failing the run.
func (s *Store) Load(ctx context.Context) map[string]domain.CacheRecord {
	records := map[string]domain.CacheRecord{}

	rows, err := s.db.QueryContext(ctx, "SELECT id, processed_at, item FROM processed_items")
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("Failed to query cache database, starting empty", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return records
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		var processedAt int64
		var blob []byte
		if err := rows.Scan(&id, &processedAt, &blob); err != nil {
			continue
		}

		var item domain.ProcessedItem
		if err := json.Unmarshal(blob, &item); err != nil {
			if s.logger != nil {
				s.logger.Warn("Skipping corrupt cache row", map[string]interface{}{
					"id":    id,
					"error": err.Error(),
				})
			}
			continue
		}

		records[id] = domain.CacheRecord{
			ProcessedAt: time.Unix(processedAt, 0).UTC(),
			Item:        item,
		}
	}

	return records
}

// Save replaces the persisted records with the given mapping inside one
// transaction, stamping missing ProcessedAt timestamps.
func (s *Store) Save(ctx context.Context, records map[string]domain.CacheRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM processed_items"); err != nil {
		return fmt.Errorf("failed to clear cache table: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO processed_items (id, processed_at, item) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	now := s.now()
	for id, rec := range records {
		if rec.ProcessedAt.IsZero() {
			rec.ProcessedAt = now
		}
		blob, err := json.Marshal(rec.Item)
		if err != nil {
			return fmt.Errorf("failed to marshal item %s: %w", id, err)
		}
		if _, err := stmt.ExecContext(ctx, id, rec.ProcessedAt.Unix(), blob); err != nil {
			return fmt.Errorf("failed to insert item %s: %w", id, err)
		}
	}

	return tx.Commit()
}
