package masker

// SpanKind tags a contiguous region of scanned source.
type SpanKind string

const (
	SpanCode      SpanKind = "CODE"
	SpanComment   SpanKind = "COMMENT"
	SpanString    SpanKind = "STRING" // string or character literal
	SpanDirective SpanKind = "DIRECTIVE"
)

// Span is a contiguous region of the source. Spans produced by the scanner
// are non-overlapping and cover the input exactly.
type Span struct {
	Kind  SpanKind
	Start int
	End   int
	Text  string
}

// Protected reports whether identifier substitution is suppressed inside the
// span. Directive lines are protected too, except for the name defined by a
// #define which the rewriter special-cases.
func (s *Span) Protected() bool {
	return s.Kind != SpanCode
}
