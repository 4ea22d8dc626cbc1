// ABOUTME: Summary service reduces extracted article text to a short synopsis
// ABOUTME: Memoizes by content hash and degrades to truncation on model failure

package summary

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"time"

	"hn-rss-translator/core/domain"
	"hn-rss-translator/core/interfaces"
	"hn-rss-translator/pkg/utils/text"
)

const (
	// DefaultMaxLength and DefaultMinLength are hints passed to the
	// model, not hard bounds on the output.
	DefaultMaxLength = 150
	DefaultMinLength = 50

	// minViableInput is the length below which summarization is skipped
	// entirely and the input returned unchanged.
	minViableInput = 50

	memoTTL = 24 * time.Hour
)

// Service produces item summaries through a pluggable provider.
type Service struct {
	deps      interfaces.Dependencies
	provider  interfaces.SummaryProvider
	maxLength int
	minLength int
}

// NewService creates a summary service. A nil provider is allowed; the
// caller should pass the extractive fallback in that case.
func NewService(deps interfaces.Dependencies, provider interfaces.SummaryProvider, maxLength, minLength int) *Service {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	if minLength <= 0 {
		minLength = DefaultMinLength
	}
	if minLength > maxLength-10 {
		minLength = maxLength - 10
	}
	return &Service{deps: deps, provider: provider, maxLength: maxLength, minLength: minLength}
}

// Summarize reduces input to a short synopsis. Inputs below the minimum
// viable length pass through unchanged. Model failure is never fatal to
// the item: the outcome degrades to the input truncated to maxLength.
func (s *Service) Summarize(ctx context.Context, input string) domain.TextOutcome {
	if len(input) < minViableInput {
		return domain.OK(input)
	}

	if cached, ok := s.memoGet(ctx, input); ok {
		return domain.OK(cached)
	}

	if s.provider == nil {
		return domain.Degraded(text.Truncate(input, s.maxLength), "no summary provider configured")
	}

	result, err := s.provider.Summarize(ctx, input, s.maxLength, s.minLength)
	if err != nil || result == "" {
		reason := "empty summary"
		if err != nil {
			reason = err.Error()
		}
		if s.deps.Logger != nil {
			s.deps.Logger.Warn("Summarization failed, using truncated text", map[string]interface{}{
				"reason": reason,
			})
		}
		return domain.Degraded(text.Truncate(input, s.maxLength), reason)
	}

	s.memoSet(ctx, input, result)
	return domain.OK(result)
}

func (s *Service) memoGet(ctx context.Context, input string) (string, bool) {
	if s.deps.Cache == nil {
		return "", false
	}
	data, err := s.deps.Cache.Get(ctx, memoKey(input))
	if err != nil || len(data) == 0 {
		return "", false
	}
	return string(data), true
}

func (s *Service) memoSet(ctx context.Context, input, result string) {
	if s.deps.Cache == nil {
		return
	}
	_ = s.deps.Cache.Set(ctx, memoKey(input), []byte(result), memoTTL)
}

func memoKey(input string) string {
	sum := md5.Sum([]byte(input))
	return "summary:" + hex.EncodeToString(sum[:])
}
