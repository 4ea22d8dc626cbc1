// ABOUTME: TextOutcome is the tagged result of a fallible text-producing stage
// ABOUTME: Callers branch on the status tag instead of suppressed errors

package domain

// OutcomeStatus tags the result of a fallible text-producing operation.
type OutcomeStatus int

const (
	// OutcomeOK means the stage produced its intended value.
	OutcomeOK OutcomeStatus = iota

	// OutcomeDegraded means the stage failed but a usable fallback value
	// is carried in Text (original text, truncation, description).
	OutcomeDegraded

	// OutcomeFailed means the stage produced nothing usable; the caller
	// must substitute its own fallback.
	OutcomeFailed
)

// TextOutcome is the tagged outcome of scrape, summarize and translate
// stages. A Degraded or Failed outcome never aborts the item; it only
// changes which text flows downstream and what gets logged.
type TextOutcome struct {
	Status OutcomeStatus
	Text   string
	Reason string
}

// OK wraps a successful value.
func OK(text string) TextOutcome {
	return TextOutcome{Status: OutcomeOK, Text: text}
}

// Degraded wraps a fallback value with the reason the real value was
// not produced.
func Degraded(fallback, reason string) TextOutcome {
	return TextOutcome{Status: OutcomeDegraded, Text: fallback, Reason: reason}
}

// Failed marks an operation with no usable fallback.
func Failed(reason string) TextOutcome {
	return TextOutcome{Status: OutcomeFailed, Reason: reason}
}

// Usable reports whether Text carries a value the caller can publish.
func (o TextOutcome) Usable() bool {
	return o.Status != OutcomeFailed
}
