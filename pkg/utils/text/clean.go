// ABOUTME: Text utilities for cleaning scraped content before model stages
// ABOUTME: Handles whitespace collapsing, bounded truncation and HTML flattening

package text

import (
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// CollapseWhitespace normalizes all runs of whitespace to single spaces
// and strips non-breaking and zero-width characters left by scraped pages.
func CollapseWhitespace(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.ReplaceAll(s, "​", "")
	return strings.Join(strings.Fields(s), " ")
}

// Truncate bounds s to max bytes without splitting a multibyte rune,
// preferring to cut at the last sentence boundary when one falls in the
// final fifth of the budget.
func Truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	cut := s[:max]
	for len(cut) > 0 {
		r, size := utf8.DecodeLastRuneInString(cut)
		if r != utf8.RuneError || size > 1 {
			break
		}
		cut = cut[:len(cut)-1]
	}
	if last := strings.LastIndex(cut, "."); last > max*4/5 {
		return cut[:last+1]
	}
	return cut
}

// skippedTags are elements whose text never belongs in article content.
var skippedTags = map[string]bool{
	"script":   true,
	"style":    true,
	"nav":      true,
	"header":   true,
	"footer":   true,
	"aside":    true,
	"noscript": true,
}

// FlattenHTML tokenizes markup and returns the visible text with
// script/style/navigation content dropped and whitespace collapsed.
// Used as the last-resort extraction strategy for pages readability
// cannot parse.
func FlattenHTML(r io.Reader) string {
	z := html.NewTokenizer(r)
	var b strings.Builder
	depth := 0 // nesting depth inside a skipped element

	for {
		switch z.Next() {
		case html.ErrorToken:
			return CollapseWhitespace(b.String())
		case html.StartTagToken:
			name, _ := z.TagName()
			if skippedTags[string(name)] {
				depth++
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if skippedTags[string(name)] && depth > 0 {
				depth--
			}
		case html.TextToken:
			if depth == 0 {
				b.Write(z.Text())
				b.WriteByte(' ')
			}
		}
	}
}
