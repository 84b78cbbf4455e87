// Package styled provides text annotated with style spans.
//
// A span attaches a style value to a byte range of the text. What a style
// does is discovered through the capability interfaces of this package:
// a style may change font metrics (MetricAffecting), change how text is
// drawn (CharacterStyle), indent lines (LeadingMargin) or paint behind
// whole lines (LineBackground).
//
// Offsets are byte offsets into the UTF-8 text and must lie on rune
// boundaries.
package styled

import (
	"errors"
	"fmt"
)

// ErrInvalidRange is returned when a span range is outside the text or inverted.
var ErrInvalidRange = errors.New("styled: invalid span range")

// Sequence is a read-only piece of text.
type Sequence interface {
	String() string
	Len() int
}

// Plain is a Sequence without styling.
type Plain string

// String returns the text.
func (p Plain) String() string { return string(p) }

// Len returns the length of the text in bytes.
func (p Plain) Len() int { return len(p) }

// Span is a style attached to the range [Start, End).
type Span struct {
	Style      any
	Start, End int
}

// Spanned is a Sequence that carries style spans.
type Spanned interface {
	Sequence

	// Spans returns the spans that touch [start, end], in the order they
	// were attached. A span that merely abuts the query range is left out
	// unless the span or the range is empty.
	Spans(start, end int) []Span

	// NextTransition returns the first offset in (start, limit) at which a
	// span whose style satisfies match begins or ends, or limit if there is
	// none. A nil match accepts every style.
	NextTransition(start, limit int, match func(style any) bool) int
}

// Text is a string with style spans. The zero value is an empty text.
//
// Text is not safe for concurrent mutation.
type Text struct {
	s     string
	spans []Span
}

// New creates a Text from s without spans.
func New(s string) *Text {
	return &Text{s: s}
}

// String returns the text without styling.
func (t *Text) String() string { return t.s }

// Len returns the length of the text in bytes.
func (t *Text) Len() int { return len(t.s) }

// SetSpan attaches style to [start, end). Styles are compared with == by
// RemoveSpan, so they must be comparable.
func (t *Text) SetSpan(style any, start, end int) error {
	if start < 0 || end > len(t.s) || start > end {
		return fmt.Errorf("%w: [%d, %d) in text of length %d", ErrInvalidRange, start, end, len(t.s))
	}
	t.spans = append(t.spans, Span{Style: style, Start: start, End: end})
	return nil
}

// RemoveSpan detaches every span whose style equals style.
func (t *Text) RemoveSpan(style any) {
	kept := t.spans[:0]
	for _, sp := range t.spans {
		if sp.Style != style {
			kept = append(kept, sp)
		}
	}
	clear(t.spans[len(kept):])
	t.spans = kept
}

// Spans implements Spanned.
func (t *Text) Spans(start, end int) []Span {
	var out []Span
	for _, sp := range t.spans {
		if overlaps(sp.Start, sp.End, start, end) {
			out = append(out, sp)
		}
	}
	return out
}

// NextTransition implements Spanned.
func (t *Text) NextTransition(start, limit int, match func(style any) bool) int {
	for _, sp := range t.spans {
		if match != nil && !match(sp.Style) {
			continue
		}
		if sp.Start > start && sp.Start < limit {
			limit = sp.Start
		}
		if sp.End > start && sp.End < limit {
			limit = sp.End
		}
	}
	return limit
}

func overlaps(spanStart, spanEnd, start, end int) bool {
	if spanStart > end || spanEnd < start {
		return false
	}
	if spanStart != spanEnd && start != end {
		if spanStart == end || spanEnd == start {
			return false
		}
	}
	return true
}

// Ranged is a style of type T together with its range.
type Ranged[T any] struct {
	Style      T
	Start, End int
}

// Find returns the spans of t touching [start, end] whose style implements
// or is T, in attachment order.
func Find[T any](t Spanned, start, end int) []Ranged[T] {
	var out []Ranged[T]
	for _, sp := range t.Spans(start, end) {
		if style, ok := sp.Style.(T); ok {
			out = append(out, Ranged[T]{Style: style, Start: sp.Start, End: sp.End})
		}
	}
	return out
}

// Is reports whether style implements or is T. It is meant as the match
// argument of NextTransition.
func Is[T any](style any) bool {
	_, ok := style.(T)
	return ok
}
