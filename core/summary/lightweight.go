// ABOUTME: Extractive summarizer requiring no model or network access
// ABOUTME: Scores sentences by word frequency and keeps the top ones in order

package summary

import (
	"context"
	"regexp"
	"sort"
	"strings"
)

// Lightweight is an extractive SummaryProvider used when no remote
// summarization backend is configured. It selects the highest-scoring
// sentences and preserves their original order.
type Lightweight struct {
	maxSentences int
}

// NewLightweight creates an extractive summarizer keeping up to
// maxSentences sentences (default 3).
func NewLightweight(maxSentences int) *Lightweight {
	if maxSentences <= 0 {
		maxSentences = 3
	}
	return &Lightweight{maxSentences: maxSentences}
}

var sentenceSplit = regexp.MustCompile(`[.!?]+`)

// Summarize implements interfaces.SummaryProvider. It never fails.
func (l *Lightweight) Summarize(ctx context.Context, input string, maxLength, minLength int) (string, error) {
	sentences := splitSentences(input)
	if len(sentences) == 0 {
		return input, nil
	}
	if len(sentences) <= l.maxSentences {
		return strings.Join(sentences, ". ") + ".", nil
	}

	// Word frequency over the whole text
	freq := map[string]int{}
	for _, sentence := range sentences {
		for _, word := range strings.Fields(strings.ToLower(sentence)) {
			if len(word) > 3 {
				freq[word]++
			}
		}
	}

	// Score each sentence by average word weight
	type scored struct {
		index int
		score float64
	}
	ranked := make([]scored, len(sentences))
	for i, sentence := range sentences {
		words := strings.Fields(strings.ToLower(sentence))
		total := 0
		for _, word := range words {
			if len(word) > 3 {
				total += freq[word]
			}
		}
		count := len(words)
		if count == 0 {
			count = 1
		}
		ranked[i] = scored{index: i, score: float64(total) / float64(count)}
	}

	sort.Slice(ranked, func(a, b int) bool { return ranked[a].score > ranked[b].score })

	selected := map[int]bool{}
	for _, entry := range ranked[:l.maxSentences] {
		selected[entry.index] = true
	}

	// Emit selected sentences in their original order
	var picked []string
	for i, sentence := range sentences {
		if selected[i] {
			picked = append(picked, sentence)
		}
	}

	return strings.Join(picked, ". ") + ".", nil
}

func splitSentences(input string) []string {
	var sentences []string
	for _, part := range sentenceSplit.Split(input, -1) {
		part = strings.TrimSpace(part)
		if len(part) > 20 {
			sentences = append(sentences, part)
		}
	}
	return sentences
}
