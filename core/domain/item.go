// ABOUTME: FeedItem domain model represents one entry pulled from the source feed
// ABOUTME: ProcessedItem and CacheRecord carry the derived pipeline state

package domain

import "time"

// FeedItem represents an individual item/entry from the source feed.
type FeedItem struct {
	// ID is the stable identifier: the feed-provided guid, or the link
	// when the feed omits one.
	ID string `json:"id"`

	// Title is the item's headline
	Title string `json:"title"`

	// Link is the URL to the linked article
	Link string `json:"link"`

	// Description contains the feed-provided summary text
	Description string `json:"description"`

	// Published is when the item was published
	Published time.Time `json:"published"`

	// CommentsLink points at the discussion page (HN item page)
	CommentsLink string `json:"comments_link,omitempty"`

	// Author is the submitter of the item
	Author string `json:"author,omitempty"`

	// Score is the point count parsed from the description, 0 when absent
	Score int `json:"score,omitempty"`
}

// IsValid checks if the feed item has all required fields.
func (fi *FeedItem) IsValid() bool {
	if fi.ID == "" {
		return false
	}
	if fi.Link == "" {
		return false
	}
	return true
}

// OlderThan reports whether the item was published before the cutoff.
func (fi *FeedItem) OlderThan(cutoff time.Time) bool {
	return fi.Published.Before(cutoff)
}

// Translation holds the per-language rendition of an item.
type Translation struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

// ProcessedItem is a FeedItem enriched with derived content.
type ProcessedItem struct {
	FeedItem

	// ExtractedText is the best-effort scraped article body, empty when
	// the fetch failed and the description fallback was used.
	ExtractedText string `json:"extracted_text,omitempty"`

	// Summary is the short synopsis fed to the translator and the feed
	// writer. It equals the description or truncated extracted text when
	// summarization was skipped or failed.
	Summary string `json:"summary"`

	// Translations maps language codes to translated title/summary pairs.
	// A language absent from the map means translation failed; the feed
	// writer falls back to the source-language text.
	Translations map[string]Translation `json:"translations"`
}

// TextFor returns the title/summary pair for a language, degrading to the
// source-language text when the translation is missing.
func (pi *ProcessedItem) TextFor(lang string) Translation {
	if tr, ok := pi.Translations[lang]; ok && tr.Title != "" {
		return tr
	}
	return Translation{Title: pi.Title, Summary: pi.Summary}
}

// CacheRecord is the persisted per-item processing snapshot.
type CacheRecord struct {
	// ProcessedAt is the timestamp of first successful processing
	ProcessedAt time.Time `json:"processed_at"`

	// Item is the full processed snapshot, sufficient to regenerate
	// feeds without reprocessing
	Item ProcessedItem `json:"item"`
}

// Expired reports whether the record fell out of the retention window.
func (r CacheRecord) Expired(now time.Time, ttl time.Duration) bool {
	return r.ProcessedAt.Before(now.Add(-ttl))
}
