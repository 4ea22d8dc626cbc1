package translate

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"hn-rss-translator/core/interfaces"
)

func TestMyMemory_Translate(t *testing.T) {
	var requestedURL string
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, u string) (interfaces.Response, error) {
			requestedURL = u
			return &mockResponse{
				statusCode: 200,
				body:       `{"responseData":{"translatedText":"こんにちは"},"responseStatus":200}`,
			}, nil
		},
	}
	provider := NewMyMemory(client, "", "en", "ja")

	result, err := provider.Translate(context.Background(), "Hello")

	if err != nil {
		t.Fatalf("Translate returned error: %v", err)
	}
	if result != "こんにちは" {
		t.Errorf("Translate = %q", result)
	}

	parsed, err := url.Parse(requestedURL)
	if err != nil {
		t.Fatalf("requested URL does not parse: %v", err)
	}
	if got := parsed.Query().Get("langpair"); got != "en|ja" {
		t.Errorf("langpair = %q, want en|ja", got)
	}
	if got := parsed.Query().Get("q"); got != "Hello" {
		t.Errorf("q = %q", got)
	}
	if !strings.HasPrefix(requestedURL, DefaultMyMemoryEndpoint) {
		t.Errorf("requested URL = %q, want default endpoint", requestedURL)
	}
}

func TestMyMemory_QuotaExceeded(t *testing.T) {
	// MyMemory reports quota errors with HTTP 200 and a string status field.
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, u string) (interfaces.Response, error) {
			return &mockResponse{
				statusCode: 200,
				body:       `{"responseData":{"translatedText":""},"responseStatus":"403","responseDetails":"DAILY LIMIT REACHED"}`,
			}, nil
		},
	}
	provider := NewMyMemory(client, "", "en", "ja")

	_, err := provider.Translate(context.Background(), "Hello")

	if err == nil {
		t.Error("Translate should return error when responseStatus is not 200")
	}
	if err != nil && !strings.Contains(err.Error(), "DAILY LIMIT REACHED") {
		t.Errorf("error %q should carry responseDetails", err)
	}
}

func TestMyMemory_NonOKHTTPStatus(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, u string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 500, body: "oops"}, nil
		},
	}
	provider := NewMyMemory(client, "", "en", "ja")

	_, err := provider.Translate(context.Background(), "Hello")

	if err == nil {
		t.Error("Translate should return error for non-200 HTTP status")
	}
}
