package masker

// Scanner segments C source text into typed spans so later stages never touch
// protected regions. It is a byte cursor; no grammar is involved.
type Scanner struct {
	src string
	pos int
}

// NewScanner creates a scanner over the given source text.
func NewScanner(src string) *Scanner {
	return &Scanner{src: src}
}

// Scan returns the ordered span sequence covering the source exactly once.
// Unterminated literals and comments extend to the end of the input.
func (s *Scanner) Scan() []*Span {
	var spans []*Span
	codeStart := 0
	lineStart := 0
	atBOL := true

	flush := func(end int) {
		if end > codeStart {
			spans = append(spans, &Span{Kind: SpanCode, Start: codeStart, End: end, Text: s.src[codeStart:end]})
		}
	}
	emit := func(kind SpanKind, start, end int) {
		flush(start)
		spans = append(spans, &Span{Kind: kind, Start: start, End: end, Text: s.src[start:end]})
		codeStart = end
	}

	for s.pos < len(s.src) {
		c := s.src[s.pos]
		switch {
		case c == '\n':
			s.pos++
			atBOL = true
			lineStart = s.pos
		case atBOL && (c == ' ' || c == '\t' || c == '\r'):
			s.pos++
		case atBOL && c == '#':
			// The whole directive line, leading whitespace included, is one span.
			end := s.scanDirective()
			emit(SpanDirective, lineStart, end)
			lineStart = end
		case c == '/' && s.peek(1) == '/':
			start := s.pos
			emit(SpanComment, start, s.scanLineComment())
			atBOL = false
		case c == '/' && s.peek(1) == '*':
			start := s.pos
			emit(SpanComment, start, s.scanBlockComment())
			atBOL = false
		case c == '"' || c == '\'':
			start := s.pos
			emit(SpanString, start, s.scanLiteral(c))
			atBOL = false
		default:
			s.pos++
			if c != ' ' && c != '\t' && c != '\r' {
				atBOL = false
			}
		}
	}
	flush(len(s.src))
	return spans
}

func (s *Scanner) peek(offset int) byte {
	if s.pos+offset >= len(s.src) {
		return 0
	}
	return s.src[s.pos+offset]
}

// scanDirective consumes up to and including the line terminator, honoring
// backslash-newline continuation.
func (s *Scanner) scanDirective() int {
	for s.pos < len(s.src) {
		if s.src[s.pos] == '\\' && s.peek(1) == '\n' {
			s.pos += 2
			continue
		}
		if s.src[s.pos] == '\n' {
			s.pos++
			break
		}
		s.pos++
	}
	return s.pos
}

// scanLineComment consumes up to the line terminator, exclusive.
func (s *Scanner) scanLineComment() int {
	s.pos += 2
	for s.pos < len(s.src) && s.src[s.pos] != '\n' {
		s.pos++
	}
	return s.pos
}

// scanBlockComment consumes through the closing */, or to EOF when unterminated.
func (s *Scanner) scanBlockComment() int {
	s.pos += 2
	for s.pos < len(s.src) {
		if s.src[s.pos] == '*' && s.peek(1) == '/' {
			s.pos += 2
			return s.pos
		}
		s.pos++
	}
	return s.pos
}

// scanLiteral consumes an escape-aware string or character literal, or the
// remainder of the input when unterminated.
func (s *Scanner) scanLiteral(quote byte) int {
	s.pos++
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case '\\':
			s.pos += 2
		case quote:
			s.pos++
			return s.pos
		default:
			s.pos++
		}
	}
	if s.pos > len(s.src) {
		s.pos = len(s.src)
	}
	return s.pos
}
