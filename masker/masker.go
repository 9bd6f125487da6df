// Package masker implements reversible, compile-preserving identifier
// renaming for C source text. It approximates C declaration semantics with
// ordered lexical heuristics, no grammar or AST: the scanner shields comments,
// literals and directive lines, the classifier buckets identifiers into alias
// namespaces, and the rewriters apply and invert the renaming using a
// persisted conversion table.
package masker

import (
	"github.com/viant/cmask/masker/table"
)

// Masker runs the scan, classify and rewrite pipeline over a single C
// translation unit. A Masker holds no per-run state and is safe to reuse.
type Masker struct {
	includeUnused bool
	fingerprint   bool
}

// New creates a masker with the given options.
func New(options ...Option) *Masker {
	result := &Masker{fingerprint: true}
	for _, option := range options {
		option(result)
	}
	return result
}

// Result holds the masked source and the conversion table that inverts it.
type Result struct {
	Source string
	Table  *table.Table
}

// Mask classifies every user-defined identifier in source, assigns aliases and
// rewrites the text. The returned table is the sole artifact needed to invert
// the rewrite.
func (m *Masker) Mask(source string) (*Result, error) {
	spans := NewScanner(source).Scan()
	dest := table.New()
	if m.fingerprint {
		digest, err := table.Fingerprint([]byte(source))
		if err != nil {
			return nil, err
		}
		dest.Fingerprint = digest
	}
	NewClassifier(m.includeUnused).Classify(spans, dest)
	return &Result{
		Source: NewRewriter(dest).Rewrite(spans),
		Table:  dest,
	}, nil
}

// Unmask restores masked source text using its conversion table.
func (m *Masker) Unmask(masked string, t *table.Table) (*RestoreResult, error) {
	return NewRestorer(t).Restore(masked)
}
