package pipeline

import (
	"context"
	"io"
	"strings"

	"hn-rss-translator/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, nil
}

func (m *mockHTTPClient) Post(ctx context.Context, url string, body io.Reader) (interfaces.Response, error) {
	return nil, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	return ""
}

// mockSummaryProvider is a mock implementation of the SummaryProvider interface
type mockSummaryProvider struct {
	summarizeFunc func(ctx context.Context, text string, maxLength, minLength int) (string, error)
}

func (m *mockSummaryProvider) Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error) {
	if m.summarizeFunc != nil {
		return m.summarizeFunc(ctx, text, maxLength, minLength)
	}
	return "", nil
}

// mockTranslationProvider is a mock implementation of the TranslationProvider interface
type mockTranslationProvider struct {
	target        string
	translateFunc func(ctx context.Context, text string) (string, error)
}

func (m *mockTranslationProvider) Translate(ctx context.Context, text string) (string, error) {
	if m.translateFunc != nil {
		return m.translateFunc(ctx, text)
	}
	return "", nil
}

func (m *mockTranslationProvider) Target() string {
	return m.target
}

// mockLogger discards all log calls
type mockLogger struct{}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}
