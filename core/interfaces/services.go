// ABOUTME: Service provider interfaces for the model-backed pipeline stages
// ABOUTME: Summaries and translations are produced by pluggable remote backends

package interfaces

import "context"

// SummaryProvider reduces text to a short synopsis. Length bounds are
// hints passed through to the underlying model, not hard guarantees.
type SummaryProvider interface {
	Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error)
}

// TranslationProvider maps source-language text into one target language.
// One provider instance serves exactly one language pair; the translator
// service holds one per configured target code.
type TranslationProvider interface {
	// Translate returns the translated text or an error. Degradation to
	// source-text passthrough is the caller's job, not the provider's.
	Translate(ctx context.Context, text string) (string, error)

	// Target returns the language code this provider translates into.
	Target() string
}
