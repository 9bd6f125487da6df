package masker

import (
	"regexp"
	"strings"

	"github.com/viant/cmask/masker/table"
)

// aliasRe matches the shape of any alias the table builder can assign. Tokens
// of this shape that the table cannot resolve are reported, not dropped.
var aliasRe = regexp.MustCompile(`^(?:D|t|f|v|mx|m|c)[0-9]+$`)

// RestoreResult holds the outcome of an inverse rewrite.
type RestoreResult struct {
	Source     string
	Restored   map[table.Category]int // restored alias count per category
	Unresolved []string               // alias-shaped tokens absent from the table
	// FingerprintMatch is non-nil when the table carries a source fingerprint:
	// true when the restored text hashes back to it.
	FingerprintMatch *bool
}

// Restorer inverts a masked source back to its original text using the
// conversion table that produced it.
type Restorer struct {
	table *table.Table
}

// NewRestorer creates a restorer over the given table.
func NewRestorer(t *table.Table) *Restorer {
	return &Restorer{table: t}
}

// Restore replaces every alias token with its original name and restores
// original comment text. It fails only when the table is missing or empty;
// unresolved aliases are reported on the result and left in place.
func (r *Restorer) Restore(masked string) (*RestoreResult, error) {
	if r.table == nil || r.table.Len() == 0 {
		return nil, table.ErrEmptyTable
	}
	result := &RestoreResult{Restored: map[table.Category]int{}}
	builder := &strings.Builder{}
	seen := map[string]bool{}

	for _, span := range NewScanner(masked).Scan() {
		switch span.Kind {
		case SpanCode:
			builder.WriteString(r.restoreTokens(span.Text, result, seen))
		case SpanDirective:
			builder.WriteString(r.restoreDirective(span.Text, result, seen))
		case SpanComment:
			builder.WriteString(r.restoreComment(span.Text, result, seen))
		default:
			builder.WriteString(span.Text)
		}
	}

	result.Source = builder.String()
	if r.table.Fingerprint != "" {
		if digest, err := table.Fingerprint([]byte(result.Source)); err == nil {
			match := digest == r.table.Fingerprint
			result.FingerprintMatch = &match
		}
	}
	return result, nil
}

// restoreTokens maps alias tokens back to original names. The forward rewrite
// only touches the macro name on directive lines, so resolving whole tokens is
// the exact inverse for directives too.
func (r *Restorer) restoreTokens(text string, result *RestoreResult, seen map[string]bool) string {
	builder := &strings.Builder{}
	last := 0
	for _, loc := range identRe.FindAllStringIndex(text, -1) {
		token := text[loc[0]:loc[1]]
		entry := r.table.Resolve(token)
		if entry == nil || entry.Category == table.Comment {
			if entry == nil && aliasRe.MatchString(token) && !seen["!"+token] {
				seen["!"+token] = true
				result.Unresolved = append(result.Unresolved, token)
			}
			continue
		}
		builder.WriteString(text[last:loc[0]])
		builder.WriteString(entry.Original)
		last = loc[1]
		if !seen[token] {
			seen[token] = true
			result.Restored[entry.Category]++
		}
	}
	builder.WriteString(text[last:])
	return builder.String()
}

// restoreDirective is the exact inverse of the forward directive rule: only a
// defined macro name is resolved, everything else on the line is protected.
func (r *Restorer) restoreDirective(text string, result *RestoreResult, seen map[string]bool) string {
	loc := macroRe.FindStringSubmatchIndex(text)
	if loc == nil {
		return text
	}
	token := text[loc[2]:loc[3]]
	entry := r.table.Resolve(token)
	if entry == nil || entry.Category != table.Macro {
		if entry == nil && aliasRe.MatchString(token) && !seen["!"+token] {
			seen["!"+token] = true
			result.Unresolved = append(result.Unresolved, token)
		}
		return text
	}
	if !seen[token] {
		seen[token] = true
		result.Restored[entry.Category]++
	}
	return text[:loc[2]] + entry.Original + text[loc[3]:]
}

// restoreComment maps a masked comment holding a single comment alias back to
// the original comment text, byte for byte.
func (r *Restorer) restoreComment(text string, result *RestoreResult, seen map[string]bool) string {
	content := commentContent(text)
	if !aliasRe.MatchString(content) {
		return text
	}
	entry := r.table.Resolve(content)
	if entry == nil || entry.Category != table.Comment {
		if entry == nil && !seen["!"+content] {
			seen["!"+content] = true
			result.Unresolved = append(result.Unresolved, content)
		}
		return text
	}
	if !seen[content] {
		seen[content] = true
		result.Restored[entry.Category]++
	}
	return entry.Original
}
