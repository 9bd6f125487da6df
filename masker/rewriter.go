package masker

import (
	"strings"

	"github.com/viant/cmask/masker/table"
)

// Rewriter applies a conversion table to scanned spans, producing masked text.
// Only whole identifier tokens inside code spans are replaced; string and
// character literals are copied verbatim, directive lines keep everything but
// a defined macro name, and non-empty comments collapse to their alias.
type Rewriter struct {
	table *table.Table
}

// NewRewriter creates a rewriter over the given table.
func NewRewriter(t *table.Table) *Rewriter {
	return &Rewriter{table: t}
}

// Rewrite reassembles the spans with aliases substituted.
func (r *Rewriter) Rewrite(spans []*Span) string {
	builder := &strings.Builder{}
	for _, span := range spans {
		switch span.Kind {
		case SpanCode:
			builder.WriteString(r.rewriteCode(span.Text))
		case SpanDirective:
			builder.WriteString(r.rewriteDirective(span.Text))
		case SpanComment:
			builder.WriteString(r.rewriteComment(span.Text))
		default:
			builder.WriteString(span.Text)
		}
	}
	return builder.String()
}

// rewriteCode substitutes whole-token identifier occurrences. Token boundary
// matching guarantees a name is never replaced as a substring of a longer
// identifier.
func (r *Rewriter) rewriteCode(text string) string {
	builder := &strings.Builder{}
	last := 0
	for _, loc := range identRe.FindAllStringIndex(text, -1) {
		token := text[loc[0]:loc[1]]
		entry := r.table.Lookup(token)
		if entry == nil || entry.Category == table.Comment {
			continue
		}
		builder.WriteString(text[last:loc[0]])
		builder.WriteString(entry.Alias)
		last = loc[1]
	}
	builder.WriteString(text[last:])
	return builder.String()
}

// rewriteDirective replaces only the name defined by a #define; every other
// token on a directive line is protected.
func (r *Rewriter) rewriteDirective(text string) string {
	loc := macroRe.FindStringSubmatchIndex(text)
	if loc == nil {
		return text
	}
	name := text[loc[2]:loc[3]]
	entry := r.table.Lookup(name)
	if entry == nil || entry.Category != table.Macro {
		return text
	}
	return text[:loc[2]] + entry.Alias + text[loc[3]:]
}

// rewriteComment replaces a recognized whole comment with its alias as an
// opaque token; comments without a table entry are left untouched.
func (r *Rewriter) rewriteComment(text string) string {
	entry := r.table.Lookup(text)
	if entry == nil || entry.Category != table.Comment {
		return text
	}
	if strings.HasPrefix(text, "//") {
		return "// " + entry.Alias
	}
	return "/* " + entry.Alias + " */"
}
