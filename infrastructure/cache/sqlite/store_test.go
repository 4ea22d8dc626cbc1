package sqlite

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"hn-rss-translator/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "cache.db"), nil)
	if err != nil {
		t.Fatalf("NewStore returned error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	records := map[string]domain.CacheRecord{
		"item-1": {
			ProcessedAt: time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC),
			Item: domain.ProcessedItem{
				FeedItem: domain.FeedItem{ID: "item-1", Title: "First", Link: "https://example.com/1"},
				Summary:  "summary one",
				Translations: map[string]domain.Translation{
					"ko": {Title: "제목", Summary: "요약"},
				},
			},
		},
	}

	if err := store.Save(ctx, records); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded := store.Load(ctx)

	if len(loaded) != 1 {
		t.Fatalf("Load returned %d records, want 1", len(loaded))
	}
	got := loaded["item-1"]
	want := records["item-1"]
	if !got.ProcessedAt.Equal(want.ProcessedAt) {
		t.Errorf("ProcessedAt = %v, want %v", got.ProcessedAt, want.ProcessedAt)
	}
	if !reflect.DeepEqual(got.Item, want.Item) {
		t.Errorf("Item round trip mismatch:\nsaved:  %+v\nloaded: %+v", want.Item, got.Item)
	}
}

func TestSave_ReplacesPreviousContent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := map[string]domain.CacheRecord{
		"old": {ProcessedAt: time.Now(), Item: domain.ProcessedItem{FeedItem: domain.FeedItem{ID: "old", Link: "https://example.com/old"}}},
	}
	if err := store.Save(ctx, first); err != nil {
		t.Fatal(err)
	}

	second := map[string]domain.CacheRecord{
		"new": {ProcessedAt: time.Now(), Item: domain.ProcessedItem{FeedItem: domain.FeedItem{ID: "new", Link: "https://example.com/new"}}},
	}
	if err := store.Save(ctx, second); err != nil {
		t.Fatal(err)
	}

	loaded := store.Load(ctx)
	if _, ok := loaded["old"]; ok {
		t.Error("record absent from the saved map should be gone")
	}
	if _, ok := loaded["new"]; !ok {
		t.Error("new record missing")
	}
}

func TestSave_StampsMissingProcessedAt(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	records := map[string]domain.CacheRecord{
		"item-1": {Item: domain.ProcessedItem{FeedItem: domain.FeedItem{ID: "item-1", Link: "https://example.com/1"}}},
	}
	if err := store.Save(ctx, records); err != nil {
		t.Fatal(err)
	}

	loaded := store.Load(ctx)
	if loaded["item-1"].ProcessedAt.IsZero() {
		t.Error("missing ProcessedAt should be stamped on save")
	}
}

func TestLoad_EmptyDatabase(t *testing.T) {
	store := newTestStore(t)

	records := store.Load(context.Background())

	if records == nil || len(records) != 0 {
		t.Errorf("Load of empty database = %v, want empty map", records)
	}
}
