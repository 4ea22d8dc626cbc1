// ABOUTME: Feed service fetches and parses the upstream RSS feed into domain items
// ABOUTME: Applies age, job-posting and item-count filtering before the pipeline

package feed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"hn-rss-translator/core/domain"
	coreerrors "hn-rss-translator/core/errors"
	"hn-rss-translator/core/interfaces"
	"hn-rss-translator/pkg/utils/text"
)

// Options controls which feed entries enter the pipeline.
type Options struct {
	// MaxAge discards items published before now-MaxAge
	MaxAge time.Duration

	// MaxItems caps the number of items returned, 0 means unlimited
	MaxItems int

	// SkipJobs drops Ask HN / Show HN hiring posts
	SkipJobs bool
}

// Service fetches and filters the source feed.
type Service struct {
	deps interfaces.Dependencies
}

// NewService creates a new feed service instance.
func NewService(deps interfaces.Dependencies) *Service {
	return &Service{deps: deps}
}

var scorePattern = regexp.MustCompile(`(\d+)\s+points?`)

// Fetch retrieves the feed and returns filtered items in feed order.
// Failure here is run-fatal: the pipeline has nothing to work with.
func (s *Service) Fetch(ctx context.Context, feedURL string, opts Options) ([]domain.FeedItem, error) {
	if feedURL == "" {
		return nil, &coreerrors.ValidationError{Field: "feedURL", Message: "cannot be empty"}
	}

	parsedURL, err := url.Parse(feedURL)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, &coreerrors.ValidationError{Field: "feedURL", Message: "not an absolute URL"}
	}

	if s.deps.HTTPClient == nil {
		return nil, errors.New("HTTP client not configured")
	}

	resp, err := s.deps.HTTPClient.Get(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("fetch source feed: %w", err)
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, &coreerrors.ExternalAPIError{
			API:        "source feed",
			StatusCode: resp.StatusCode(),
			Message:    "non-success response",
		}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("read source feed: %w", err)
	}

	return s.parseItems(body, opts)
}

// parseItems converts the raw feed document into filtered domain items.
func (s *Service) parseItems(content []byte, opts Options) ([]domain.FeedItem, error) {
	if len(content) == 0 {
		return nil, errors.New("empty feed content")
	}

	parsed, err := gofeed.NewParser().Parse(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("parse source feed: %w", err)
	}

	cutoff := time.Time{}
	if opts.MaxAge > 0 {
		cutoff = time.Now().Add(-opts.MaxAge)
	}

	items := make([]domain.FeedItem, 0, len(parsed.Items))
	for _, entry := range parsed.Items {
		item := convertItem(entry)
		if !item.IsValid() {
			s.logDropped(item, "missing id or link")
			continue
		}
		if item.Published.IsZero() || item.OlderThan(cutoff) {
			continue
		}
		if opts.SkipJobs && isJobPosting(item.Title) {
			s.logDropped(item, "job posting")
			continue
		}

		items = append(items, item)
		if opts.MaxItems > 0 && len(items) >= opts.MaxItems {
			break
		}
	}

	return items, nil
}

func (s *Service) logDropped(item domain.FeedItem, reason string) {
	if s.deps.Logger == nil {
		return
	}
	s.deps.Logger.Debug("Dropped feed entry", map[string]interface{}{
		"title":  item.Title,
		"reason": reason,
	})
}

// convertItem maps a gofeed entry onto the domain model. The guid is
// the identity; entries without one fall back to the link.
func convertItem(entry *gofeed.Item) domain.FeedItem {
	item := domain.FeedItem{
		ID:          entry.GUID,
		Title:       entry.Title,
		Link:        entry.Link,
		Description: text.CollapseWhitespace(entry.Description),
	}

	if item.ID == "" {
		item.ID = entry.Link
	}

	if entry.PublishedParsed != nil {
		item.Published = *entry.PublishedParsed
	} else if entry.UpdatedParsed != nil {
		item.Published = *entry.UpdatedParsed
	}

	if entry.Author != nil {
		item.Author = entry.Author.Name
	}

	// HN carries the discussion link in the comments element; gofeed
	// surfaces unmapped RSS elements through Custom. The guid doubles as
	// the discussion URL on HN, so it serves as a fallback.
	if ext, ok := entry.Custom["comments"]; ok && ext != "" {
		item.CommentsLink = ext
	} else if strings.HasPrefix(item.ID, "http") && item.ID != item.Link {
		item.CommentsLink = item.ID
	}

	item.Score = extractScore(entry.Description)

	return item
}

// extractScore pulls the "N points" count HN embeds in descriptions.
func extractScore(description string) int {
	match := scorePattern.FindStringSubmatch(description)
	if match == nil {
		return 0
	}
	var score int
	fmt.Sscanf(match[1], "%d", &score)
	return score
}

// isJobPosting reports whether a title looks like an Ask/Show HN hiring
// post. Mirrors the upstream feed's conventions, not a general classifier.
func isJobPosting(title string) bool {
	lower := strings.ToLower(title)
	if !strings.Contains(lower, "ask hn:") && !strings.Contains(lower, "show hn:") {
		return false
	}
	for _, indicator := range []string{"hiring", "seeking", "looking for", "job", "career"} {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}

// FilterNew returns the items whose id is absent from the cache,
// preserving input order. Cached items are skipped entirely, even if
// upstream content changed; identity is guid/link based, not content
// based.
func FilterNew(items []domain.FeedItem, cache map[string]domain.CacheRecord) []domain.FeedItem {
	fresh := make([]domain.FeedItem, 0, len(items))
	for _, item := range items {
		if _, seen := cache[item.ID]; seen {
			continue
		}
		fresh = append(fresh, item)
	}
	return fresh
}
