// ABOUTME: LibreTranslate translation provider speaking the /translate JSON API
// ABOUTME: Works against any self-hosted or public LibreTranslate instance

package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	coreerrors "hn-rss-translator/core/errors"
	"hn-rss-translator/core/interfaces"
)

// DefaultLibreEndpoint is a public LibreTranslate instance; self-hosted
// deployments override it in configuration.
const DefaultLibreEndpoint = "https://translate.terraprint.co/translate"

// Libre implements interfaces.TranslationProvider against the
// LibreTranslate HTTP API.
type Libre struct {
	httpClient interfaces.HTTPClient
	endpoint   string
	apiKey     string
	source     string
	target     string
}

// NewLibre creates a LibreTranslate provider for one target language.
func NewLibre(httpClient interfaces.HTTPClient, endpoint, apiKey, source, target string) *Libre {
	if endpoint == "" {
		endpoint = DefaultLibreEndpoint
	}
	if source == "" {
		source = "en"
	}
	return &Libre{
		httpClient: httpClient,
		endpoint:   endpoint,
		apiKey:     apiKey,
		source:     source,
		target:     target,
	}
}

// Target returns the language code this provider translates into.
func (l *Libre) Target() string {
	return l.target
}

type libreRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type libreResponse struct {
	TranslatedText string `json:"translatedText"`
	Error          string `json:"error,omitempty"`
}

// Translate posts the text to the /translate endpoint.
func (l *Libre) Translate(ctx context.Context, text string) (string, error) {
	payload, err := json.Marshal(libreRequest{
		Q:      text,
		Source: l.source,
		Target: l.target,
		Format: "text",
		APIKey: l.apiKey,
	})
	if err != nil {
		return "", err
	}

	resp, err := l.httpClient.Post(ctx, l.endpoint, bytes.NewReader(payload))
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
			API:        "libretranslate",
			StatusCode: resp.StatusCode(),
			Message:    "non-success response",
		}
	}

	var result libreResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("decode libretranslate response: %w", err)
	}
	if result.Error != "" {
		return "", fmt.Errorf("libretranslate error: %s", result.Error)
	}

	return result.TranslatedText, nil
}
