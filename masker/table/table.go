package table

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrEmptyTable indicates that a restore was attempted without any alias entries.
var ErrEmptyTable = errors.New("conversion table has no entries")

// Entry represents a single original name to alias assignment.
type Entry struct {
	Original string   `yaml:"original"`
	Alias    string   `yaml:"alias"`
	Category Category `yaml:"category"`
}

// Table holds the bijective original to alias mapping built by one masking run.
// Entries keep first-seen order; aliases are unique within a category and
// assigned as category prefix plus an ordinal starting at 1.
type Table struct {
	Fingerprint string   `yaml:"fingerprint,omitempty"`
	Entries     []*Entry `yaml:"entries"`

	byOriginal map[string]int
	byAlias    map[string]int
	counters   map[Category]int
}

// New creates an empty conversion table.
func New() *Table {
	return &Table{
		byOriginal: make(map[string]int),
		byAlias:    make(map[string]int),
		counters:   make(map[Category]int),
	}
}

// Allocate assigns an alias to name in the given category and returns the
// entry. A name that already has an entry keeps its first classification,
// regardless of the category supplied later.
func (t *Table) Allocate(name string, category Category) *Entry {
	if idx, ok := t.byOriginal[name]; ok {
		return t.Entries[idx]
	}
	t.counters[category]++
	entry := &Entry{
		Original: name,
		Category: category,
		Alias:    category.Prefix() + strconv.Itoa(t.counters[category]),
	}
	t.byOriginal[name] = len(t.Entries)
	t.byAlias[entry.Alias] = len(t.Entries)
	t.Entries = append(t.Entries, entry)
	return entry
}

// Add appends a fully formed entry, used when reconstructing a table from its
// persisted form. It rejects duplicate originals and duplicate aliases.
func (t *Table) Add(entry *Entry) error {
	if entry.Original == "" || entry.Alias == "" {
		return fmt.Errorf("incomplete entry: %q -> %q", entry.Original, entry.Alias)
	}
	if _, ok := t.byOriginal[entry.Original]; ok {
		return fmt.Errorf("duplicate original %q", entry.Original)
	}
	if _, ok := t.byAlias[entry.Alias]; ok {
		return fmt.Errorf("duplicate alias %q", entry.Alias)
	}
	t.byOriginal[entry.Original] = len(t.Entries)
	t.byAlias[entry.Alias] = len(t.Entries)
	t.Entries = append(t.Entries, entry)
	if ordinal, err := strconv.Atoi(strings.TrimPrefix(entry.Alias, entry.Category.Prefix())); err == nil {
		if ordinal > t.counters[entry.Category] {
			t.counters[entry.Category] = ordinal
		}
	}
	return nil
}

// Lookup returns the entry for an original name, or nil.
func (t *Table) Lookup(original string) *Entry {
	if idx, ok := t.byOriginal[original]; ok {
		return t.Entries[idx]
	}
	return nil
}

// Resolve returns the entry for an alias, or nil.
func (t *Table) Resolve(alias string) *Entry {
	if idx, ok := t.byAlias[alias]; ok {
		return t.Entries[idx]
	}
	return nil
}

// InCategory returns the entries of one category in first-seen order.
func (t *Table) InCategory(category Category) []*Entry {
	var result []*Entry
	for _, entry := range t.Entries {
		if entry.Category == category {
			result = append(result, entry)
		}
	}
	return result
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.Entries)
}
