// ABOUTME: MyMemory translation provider speaking the translated.net GET API
// ABOUTME: Free-tier fallback provider, no API key required

package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"

	coreerrors "hn-rss-translator/core/errors"
	"hn-rss-translator/core/interfaces"
)

// DefaultMyMemoryEndpoint is the public MyMemory API endpoint.
const DefaultMyMemoryEndpoint = "https://api.mymemory.translated.net/get"

// MyMemory implements interfaces.TranslationProvider against the
// MyMemory translation API.
type MyMemory struct {
	httpClient interfaces.HTTPClient
	endpoint   string
	source     string
	target     string
}

// NewMyMemory creates a MyMemory provider for one target language.
func NewMyMemory(httpClient interfaces.HTTPClient, endpoint, source, target string) *MyMemory {
	if endpoint == "" {
		endpoint = DefaultMyMemoryEndpoint
	}
	if source == "" {
		source = "en"
	}
	return &MyMemory{
		httpClient: httpClient,
		endpoint:   endpoint,
		source:     source,
		target:     target,
	}
}

// Target returns the language code this provider translates into.
func (m *MyMemory) Target() string {
	return m.target
}

type myMemoryResponse struct {
	ResponseData struct {
		TranslatedText string `json:"translatedText"`
	} `json:"responseData"`
	ResponseStatus  json.Number `json:"responseStatus"`
	ResponseDetails string      `json:"responseDetails"`
}

// Translate queries the GET API with a langpair parameter.
func (m *MyMemory) Translate(ctx context.Context, text string) (string, error) {
	params := url.Values{}
	params.Set("q", text)
	params.Set("langpair", m.source+"|"+m.target)

	resp, err := m.httpClient.Get(ctx, m.endpoint+"?"+params.Encode())
	if err != nil {
		return "", err
	}
	defer resp.Body().Close()

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return "", err
	}

	if resp.StatusCode() != 200 {
		return "", &coreerrors.ExternalAPIError{
			API:        "mymemory",
			StatusCode: resp.StatusCode(),
			Message:    "non-success response",
		}
	}

	var result myMemoryResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("decode mymemory response: %w", err)
	}
	if result.ResponseStatus.String() != "200" {
		return "", fmt.Errorf("mymemory error: %s", result.ResponseDetails)
	}

	return result.ResponseData.TranslatedText, nil
}
