// ABOUTME: RSS writer serializes processed items into per-language RSS 2.0 documents
// ABOUTME: Also emits the index page, sitemap and robots.txt for the output directory

package rss

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"hn-rss-translator/core/domain"
	"hn-rss-translator/core/interfaces"
)

// rfc822 is the date layout RSS 2.0 requires for pubDate and lastBuildDate.
const rfc822 = "Mon, 02 Jan 2006 15:04:05 +0000"

const generatorName = "HN RSS Translator"

// Language describes one output feed target.
type Language struct {
	// Code is the BCP-47-ish language code ("ko", "ja", "es").
	Code string

	// Name is the human-readable language name used in feed metadata.
	Name string

	// FeedName is the output file name; defaults to rss-<code>.xml.
	FeedName string
}

// File returns the output file name for the language.
func (l Language) File() string {
	if l.FeedName != "" {
		return l.FeedName
	}
	return "rss-" + l.Code + ".xml"
}

// Service generates and writes the per-language RSS documents.
type Service struct {
	deps    interfaces.Dependencies
	baseURL string
	now     func() time.Time
}

// NewService creates an RSS writer service. baseURL is the public URL the
// feeds are served from, used for channel links and self references.
func NewService(deps interfaces.Dependencies, baseURL string) *Service {
	return &Service{
		deps:    deps,
		baseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
	}
}

type rssDocument struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	AtomNS  string     `xml:"xmlns:atom,attr"`
	DCNS    string     `xml:"xmlns:dc,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	Language      string    `xml:"language"`
	LastBuildDate string    `xml:"lastBuildDate"`
	Generator     string    `xml:"generator"`
	AtomLink      *atomLink `xml:"atom:link,omitempty"`
	Items         []rssItem `xml:"item"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

type rssItem struct {
	Title       string  `xml:"title"`
	Link        string  `xml:"link"`
	Description string  `xml:"description"`
	GUID        rssGUID `xml:"guid"`
	PubDate     string  `xml:"pubDate,omitempty"`
	Comments    string  `xml:"comments,omitempty"`
	Creator     string  `xml:"dc:creator,omitempty"`
}

type rssGUID struct {
	IsPermaLink string `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

// Generate produces a well-formed RSS 2.0 document for one language. All
// text fields pass through the XML encoder, which guarantees escaping.
func (s *Service) Generate(items []domain.ProcessedItem, lang Language) ([]byte, error) {
	langName := lang.Name
	if langName == "" {
		langName = strings.ToUpper(lang.Code)
	}

	doc := rssDocument{
		Version: "2.0",
		AtomNS:  "http://www.w3.org/2005/Atom",
		DCNS:    "http://purl.org/dc/elements/1.1/",
		Channel: rssChannel{
			Title:         "Hacker News - " + langName,
			Link:          s.baseURL,
			Description:   "Hacker News articles summarized and translated to " + langName,
			Language:      lang.Code,
			LastBuildDate: s.now().UTC().Format(rfc822),
			Generator:     generatorName,
			AtomLink: &atomLink{
				Href: s.baseURL + "/" + lang.File(),
				Rel:  "self",
				Type: "application/rss+xml",
			},
			Items: make([]rssItem, 0, len(items)),
		},
	}

	for i := range items {
		doc.Channel.Items = append(doc.Channel.Items, s.convertItem(&items[i], lang.Code))
	}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal feed for %s: %w", lang.Code, err)
	}

	return append([]byte(xml.Header), append(body, '\n')...), nil
}

func (s *Service) convertItem(item *domain.ProcessedItem, langCode string) rssItem {
	text := item.TextFor(langCode)

	// The guid carries the source item id unchanged so readers deduplicate
	// across runs; isPermaLink reflects whether the id is a fetchable URL.
	guid := rssGUID{Value: item.ID, IsPermaLink: "false"}
	if strings.HasPrefix(item.ID, "http") {
		guid.IsPermaLink = "true"
	}

	out := rssItem{
		Title:       text.Title,
		Link:        item.Link,
		Description: s.formatDescription(item, text),
		GUID:        guid,
		Comments:    item.CommentsLink,
		Creator:     item.Author,
	}
	if !item.Published.IsZero() {
		out.PubDate = item.Published.UTC().Format(rfc822)
	}
	return out
}

// formatDescription assembles the item body: translated summary first, then
// the original headline when it differs, the score, and a read-more link.
func (s *Service) formatDescription(item *domain.ProcessedItem, text domain.Translation) string {
	var parts []string

	if text.Summary != "" {
		parts = append(parts, "📝 "+text.Summary)
	}
	if text.Title != item.Title {
		parts = append(parts, "🔤 Original: "+item.Title)
	}
	if item.Score > 0 {
		parts = append(parts, fmt.Sprintf("📊 Score: %d points", item.Score))
	}
	if item.Link != "" {
		parts = append(parts, "🔗 Read more: "+item.Link)
	}

	return strings.Join(parts, "\n\n")
}

// WriteFeeds generates and saves one feed per language. A single language's
// write failure is logged and skipped; the returned error is non-nil only
// when not a single feed could be written.
func (s *Service) WriteFeeds(items []domain.ProcessedItem, languages []Language, outputDir string) (int, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return 0, fmt.Errorf("create output directory: %w", err)
	}

	written := 0
	for _, lang := range languages {
		body, err := s.Generate(items, lang)
		if err != nil {
			s.logError("Failed to generate feed", lang, err)
			continue
		}

		path := filepath.Join(outputDir, lang.File())
		if err := os.WriteFile(path, body, 0o644); err != nil {
			s.logError("Failed to write feed", lang, err)
			continue
		}

		written++
		if s.deps.Logger != nil {
			s.deps.Logger.Info("Wrote feed", map[string]interface{}{
				"language": lang.Code,
				"path":     path,
				"items":    len(items),
			})
		}
	}

	if written == 0 && len(languages) > 0 {
		return 0, fmt.Errorf("no output feed could be written to %s", outputDir)
	}
	return written, nil
}

func (s *Service) logError(msg string, lang Language, err error) {
	if s.deps.Logger == nil {
		return
	}
	s.deps.Logger.Error(msg, map[string]interface{}{
		"language": lang.Code,
		"error":    err.Error(),
	})
}
