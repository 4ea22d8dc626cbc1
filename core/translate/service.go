// ABOUTME: Translate service maps source-language text into target languages
// ABOUTME: Per-language providers fixed at startup; failure degrades to passthrough

package translate

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"time"

	"golang.org/x/time/rate"

	"hn-rss-translator/core/domain"
	"hn-rss-translator/core/interfaces"
)

const memoTTL = 24 * time.Hour

// Service translates item text through a fixed per-language provider map
// resolved once at startup from the configured language list.
type Service struct {
	deps      interfaces.Dependencies
	providers map[string]interfaces.TranslationProvider
	limiter   *rate.Limiter
}

// NewService creates a translate service over the given providers.
// callsPerSecond paces outbound provider calls; zero disables pacing.
func NewService(deps interfaces.Dependencies, providers []interfaces.TranslationProvider, callsPerSecond float64) *Service {
	byLang := make(map[string]interfaces.TranslationProvider, len(providers))
	for _, p := range providers {
		byLang[p.Target()] = p
	}

	var limiter *rate.Limiter
	if callsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(callsPerSecond), 1)
	}

	return &Service{deps: deps, providers: byLang, limiter: limiter}
}

// Languages returns the target codes the service can translate into.
func (s *Service) Languages() []string {
	langs := make([]string, 0, len(s.providers))
	for lang := range s.providers {
		langs = append(langs, lang)
	}
	return langs
}

// TranslateText translates input into the target language. On any
// failure (unknown language, provider error, empty result) the outcome
// degrades to the original text; translation never raises to the caller.
func (s *Service) TranslateText(ctx context.Context, input, targetLang string) domain.TextOutcome {
	if input == "" {
		return domain.OK(input)
	}

	provider, ok := s.providers[targetLang]
	if !ok {
		if s.deps.Logger != nil {
			s.deps.Logger.Warn("No translator for language", map[string]interface{}{
				"language": targetLang,
			})
		}
		return domain.Degraded(input, "no provider for language")
	}

	if cached, ok := s.memoGet(ctx, input, targetLang); ok {
		return domain.OK(cached)
	}

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return domain.Degraded(input, err.Error())
		}
	}

	translated, err := provider.Translate(ctx, input)
	if err != nil || translated == "" {
		reason := "empty translation"
		if err != nil {
			reason = err.Error()
		}
		if s.deps.Logger != nil {
			s.deps.Logger.Warn("Translation failed, using source text", map[string]interface{}{
				"language": targetLang,
				"reason":   reason,
			})
		}
		return domain.Degraded(input, reason)
	}

	s.memoSet(ctx, input, targetLang, translated)
	return domain.OK(translated)
}

// TranslateItem translates title and summary independently into each of
// the given languages. A language where both fields degraded is omitted
// from the result, signalling the feed writer to use source text; one
// language's failure never affects another.
func (s *Service) TranslateItem(ctx context.Context, title, summary string, languages []string) map[string]domain.Translation {
	translations := make(map[string]domain.Translation, len(languages))

	for _, lang := range languages {
		titleOut := s.TranslateText(ctx, title, lang)
		summaryOut := s.TranslateText(ctx, summary, lang)

		if titleOut.Status != domain.OutcomeOK && summaryOut.Status != domain.OutcomeOK {
			continue
		}

		translations[lang] = domain.Translation{
			Title:   titleOut.Text,
			Summary: summaryOut.Text,
		}
	}

	return translations
}

func (s *Service) memoGet(ctx context.Context, input, lang string) (string, bool) {
	if s.deps.Cache == nil {
		return "", false
	}
	data, err := s.deps.Cache.Get(ctx, memoKey(input, lang))
	if err != nil || len(data) == 0 {
		return "", false
	}
	return string(data), true
}

func (s *Service) memoSet(ctx context.Context, input, lang, translated string) {
	if s.deps.Cache == nil {
		return
	}
	_ = s.deps.Cache.Set(ctx, memoKey(input, lang), []byte(translated), memoTTL)
}

func memoKey(input, lang string) string {
	sum := md5.Sum([]byte(input))
	return "translation:" + lang + ":" + hex.EncodeToString(sum[:])
}
