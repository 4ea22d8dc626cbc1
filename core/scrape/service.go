// ABOUTME: Scrape service extracts readable article text from linked pages
// ABOUTME: Readability-first with goquery strategy fallbacks and bounded fan-out

package scrape

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"hn-rss-translator/core/domain"
	"hn-rss-translator/core/interfaces"
	"hn-rss-translator/pkg/utils/text"
)

const (
	// DefaultTimeout bounds a single page fetch
	DefaultTimeout = 10 * time.Second

	// DefaultMaxChars truncates extracted text to bound summarization cost
	DefaultMaxChars = 5000

	// DefaultWorkers bounds the concurrent fetch fan-out
	DefaultWorkers = 5

	// minContentLength is the threshold below which an extraction
	// strategy is considered to have found nothing useful
	minContentLength = 200

	// maxBodyBytes caps how much of a page is read into memory
	maxBodyBytes = 2 << 20
)

// Service extracts article text from web pages.
type Service struct {
	deps     interfaces.Dependencies
	timeout  time.Duration
	maxChars int
}

// NewService creates a scrape service. Zero timeout or maxChars select
// the defaults.
func NewService(deps interfaces.Dependencies, timeout time.Duration, maxChars int) *Service {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}
	return &Service{deps: deps, timeout: timeout, maxChars: maxChars}
}

// Extract fetches one page and returns its readable text as a tagged
// outcome. It never returns an error: network failures, non-success
// statuses and unparseable pages all yield a Failed outcome the caller
// treats as "use fallback text".
func (s *Service) Extract(ctx context.Context, pageURL string) domain.TextOutcome {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.deps.HTTPClient.Get(ctx, pageURL)
	if err != nil {
		return domain.Failed(fmt.Sprintf("fetch: %v", err))
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return domain.Failed(fmt.Sprintf("status %d", resp.StatusCode()))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body(), maxBodyBytes))
	if err != nil {
		return domain.Failed(fmt.Sprintf("read body: %v", err))
	}

	content := s.extractContent(body, pageURL)
	if content == "" {
		return domain.Failed("no usable content")
	}

	return domain.OK(text.Truncate(content, s.maxChars))
}

// extractContent runs the extraction strategies in order of fidelity.
func (s *Service) extractContent(body []byte, pageURL string) string {
	parsedURL, _ := url.Parse(pageURL)

	// Strategy 1: readability
	if article, err := readability.FromReader(bytes.NewReader(body), parsedURL); err == nil {
		content := text.CollapseWhitespace(article.TextContent)
		if len(content) >= minContentLength {
			return content
		}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		// Strategy 4 still works on broken markup
		return flattened(body)
	}
	doc.Find("script, style, nav, header, footer, aside").Remove()

	// Strategy 2: semantic containers and common content wrappers
	selectors := []string{
		"article", "main",
		`div[class*="content"]`, `div[class*="article"]`,
		`div[class*="post"]`, `div[class*="entry"]`,
		`div[role="main"]`, `section[class*="content"]`,
	}
	if parsedURL != nil {
		selectors = append(siteSelectors(parsedURL.Host), selectors...)
	}
	for _, selector := range selectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		content := text.CollapseWhitespace(sel.Text())
		if len(content) >= minContentLength {
			return content
		}
	}

	// Strategy 3: harvest substantial paragraphs
	var blocks []string
	doc.Find("p").Each(func(_ int, p *goquery.Selection) {
		block := text.CollapseWhitespace(p.Text())
		if len(block) > 50 {
			blocks = append(blocks, block)
		}
	})
	if len(blocks) >= 3 {
		content := strings.Join(blocks, " ")
		if len(content) >= minContentLength {
			return content
		}
	}

	// Strategy 4: whole-document text
	return flattened(body)
}

func flattened(body []byte) string {
	content := text.FlattenHTML(bytes.NewReader(body))
	if len(content) < minContentLength {
		return ""
	}
	return content
}

// siteSelectors returns extraction selectors for hosts with known
// structure, tried before the generic ones.
func siteSelectors(host string) []string {
	switch {
	case strings.Contains(host, "github.com"):
		return []string{`article[class*="markdown-body"]`, `div[class*="blob-wrapper"]`}
	case strings.Contains(host, "medium.com"), strings.Contains(host, "towardsdatascience.com"):
		return []string{"article section"}
	case strings.Contains(host, "arxiv.org"):
		return []string{`blockquote[class*="abstract"]`}
	}
	return nil
}

// BatchExtract fetches all URLs concurrently with at most maxWorkers in
// flight. The result map always contains every input URL as a key; one
// URL's failure never blocks or fails the others.
func (s *Service) BatchExtract(ctx context.Context, urls []string, maxWorkers int) map[string]domain.TextOutcome {
	if maxWorkers <= 0 {
		maxWorkers = DefaultWorkers
	}

	type scrapeResult struct {
		url     string
		outcome domain.TextOutcome
	}

	resultsChan := make(chan scrapeResult, len(urls))
	semaphore := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for _, pageURL := range urls {
		wg.Add(1)
		go func(pageURL string) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				resultsChan <- scrapeResult{url: pageURL, outcome: domain.Failed(ctx.Err().Error())}
				return
			default:
			}

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			resultsChan <- scrapeResult{url: pageURL, outcome: s.Extract(ctx, pageURL)}
		}(pageURL)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	results := make(map[string]domain.TextOutcome, len(urls))
	for result := range resultsChan {
		results[result.url] = result.outcome

		if s.deps.Logger == nil {
			continue
		}
		if result.outcome.Status == domain.OutcomeOK {
			s.deps.Logger.Debug("Scraped page", map[string]interface{}{
				"url":   result.url,
				"chars": len(result.outcome.Text),
			})
		} else {
			s.deps.Logger.Warn("Failed to scrape page", map[string]interface{}{
				"url":    result.url,
				"reason": result.outcome.Reason,
			})
		}
	}

	return results
}
