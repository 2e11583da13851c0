package sentential

import "fmt"

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of sentence positions. For every
// node of a parse tree, a tree walk will track which leaf positions of the
// tree's yield this node covers. A span denotes a start position and the
// position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// IsNull is true for spans which cover no position at all. Nodes produced by
// epsilon-productions have null-length spans.
func (s Span) IsNull() bool {
	return s[0] == s[1]
}

// Extend returns the smallest span covering both s and other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
