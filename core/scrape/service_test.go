package scrape

import (
	"context"
	"errors"
	"strings"
	"testing"

	"hn-rss-translator/core/domain"
	"hn-rss-translator/core/interfaces"
)

const articlePara = "The collector walks the heap twice per cycle, once to mark reachable objects and once to sweep the rest back onto the free lists kept per size class. "

func articleHTML() string {
	body := strings.Repeat(articlePara, 5)
	return `<!DOCTYPE html>
<html>
<head>
<title>Test Article</title>
<style>body { color: red; }</style>
<script>console.log("tracking");</script>
</head>
<body>
<nav>Home | About | Contact</nav>
<article>
<h1>Test Article</h1>
<p>` + body + `</p>
<p>` + body + `</p>
</article>
<footer>Copyright 2026</footer>
</body>
</html>`
}

func serviceWithPage(statusCode int, body string) *Service {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: statusCode, body: body}, nil
		},
	}
	return NewService(interfaces.Dependencies{HTTPClient: client}, 0, 0)
}

func TestExtract_NetworkErrorReturnsFailed(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return nil, errors.New("connection timed out")
		},
	}
	service := NewService(interfaces.Dependencies{HTTPClient: client}, 0, 0)

	outcome := service.Extract(context.Background(), "https://example.com/article")

	if outcome.Status != domain.OutcomeFailed {
		t.Errorf("Extract status = %v, want Failed", outcome.Status)
	}
	if outcome.Text != "" {
		t.Errorf("Extract text = %q, want empty", outcome.Text)
	}
}

func TestExtract_NonSuccessStatusReturnsFailed(t *testing.T) {
	for _, status := range []int{301, 404, 500} {
		service := serviceWithPage(status, "gone")

		outcome := service.Extract(context.Background(), "https://example.com/article")

		if outcome.Status != domain.OutcomeFailed {
			t.Errorf("Extract status for %d = %v, want Failed", status, outcome.Status)
		}
	}
}

func TestExtract_NoUsableContentReturnsFailed(t *testing.T) {
	service := serviceWithPage(200, "<html><body><p>hi</p></body></html>")

	outcome := service.Extract(context.Background(), "https://example.com/article")

	if outcome.Status != domain.OutcomeFailed {
		t.Errorf("Extract status = %v, want Failed for near-empty page", outcome.Status)
	}
}

func TestExtract_ReturnsArticleText(t *testing.T) {
	service := serviceWithPage(200, articleHTML())

	outcome := service.Extract(context.Background(), "https://example.com/article")

	if outcome.Status != domain.OutcomeOK {
		t.Fatalf("Extract status = %v (%s), want OK", outcome.Status, outcome.Reason)
	}
	if !strings.Contains(outcome.Text, "collector walks the heap") {
		t.Error("Extract text does not contain article content")
	}
	if strings.Contains(outcome.Text, "tracking") {
		t.Error("Extract text contains script content")
	}
	if strings.Contains(outcome.Text, "color: red") {
		t.Error("Extract text contains style content")
	}
}

func TestExtract_TruncatesToMaxChars(t *testing.T) {
	service := NewService(interfaces.Dependencies{HTTPClient: &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: articleHTML()}, nil
		},
	}}, 0, 300)

	outcome := service.Extract(context.Background(), "https://example.com/article")

	if outcome.Status != domain.OutcomeOK {
		t.Fatalf("Extract status = %v, want OK", outcome.Status)
	}
	if len(outcome.Text) > 300 {
		t.Errorf("Extract text length = %d, want <= 300", len(outcome.Text))
	}
}

func TestBatchExtract_ResultKeysMatchInputURLs(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			if strings.Contains(url, "broken") {
				return nil, errors.New("no route to host")
			}
			return &mockResponse{statusCode: 200, body: articleHTML()}, nil
		},
	}
	service := NewService(interfaces.Dependencies{HTTPClient: client}, 0, 0)

	urls := []string{
		"https://example.com/a",
		"https://broken.example.com/b",
		"https://example.com/c",
	}
	results := service.BatchExtract(context.Background(), urls, 2)

	if len(results) != len(urls) {
		t.Fatalf("BatchExtract returned %d results, want %d", len(results), len(urls))
	}
	for _, u := range urls {
		if _, ok := results[u]; !ok {
			t.Errorf("BatchExtract result missing key %q", u)
		}
	}
	if results["https://broken.example.com/b"].Status != domain.OutcomeFailed {
		t.Error("failing URL should yield a Failed outcome")
	}
	if results["https://example.com/a"].Status != domain.OutcomeOK {
		t.Error("working URL should yield an OK outcome")
	}
}

func TestBatchExtract_EmptyInput(t *testing.T) {
	service := NewService(interfaces.Dependencies{}, 0, 0)

	results := service.BatchExtract(context.Background(), nil, 2)

	if len(results) != 0 {
		t.Errorf("BatchExtract returned %d results for empty input", len(results))
	}
}

func TestSiteSelectors(t *testing.T) {
	if sel := siteSelectors("github.com"); len(sel) == 0 {
		t.Error("expected selectors for github.com")
	}
	if sel := siteSelectors("medium.com"); len(sel) == 0 {
		t.Error("expected selectors for medium.com")
	}
	if sel := siteSelectors("unknown.example.com"); sel != nil {
		t.Errorf("expected no selectors for unknown host, got %v", sel)
	}
}
