package table

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

const fingerprintHeader = "# source: "

// entryLine matches "original -> alias"; the greedy original group makes the
// last arrow the separator, so originals holding arrows (comment text) survive.
var entryLine = regexp.MustCompile(`^(.*\S)\s+->\s+([A-Za-z]+[0-9]+)$`)

// EncodeText serializes the table in its grouped human-readable text format:
// a bracketed label per category followed by one "original -> alias" line per
// entry, originals left-justified, first-seen order preserved.
func EncodeText(t *Table) []byte {
	builder := &strings.Builder{}
	if t.Fingerprint != "" {
		builder.WriteString(fingerprintHeader)
		builder.WriteString(t.Fingerprint)
		builder.WriteString("\n")
	}
	for _, category := range Categories {
		entries := t.InCategory(category)
		if len(entries) == 0 {
			continue
		}
		builder.WriteString("[")
		builder.WriteString(category.Label())
		builder.WriteString("]\n")
		for _, entry := range entries {
			fmt.Fprintf(builder, "%-30s -> %s\n", escapeOriginal(entry.Original), entry.Alias)
		}
	}
	return []byte(builder.String())
}

// DecodeText parses the grouped text format back into a table.
func DecodeText(data []byte) (*Table, error) {
	result := New()
	current := Category("")
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, " \t\r")
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, fingerprintHeader) {
			result.Fingerprint = strings.TrimSpace(strings.TrimPrefix(line, fingerprintHeader))
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			label := line[1 : len(line)-1]
			category, ok := categoryByLabel[label]
			if !ok {
				return nil, fmt.Errorf("line %d: unknown category label %q", i+1, label)
			}
			current = category
			continue
		}
		match := entryLine.FindStringSubmatch(line)
		if match == nil {
			return nil, fmt.Errorf("line %d: malformed entry %q", i+1, line)
		}
		if current == "" {
			return nil, fmt.Errorf("line %d: entry before any category section", i+1)
		}
		entry := &Entry{Original: unescapeOriginal(match[1]), Alias: match[2], Category: current}
		if err := result.Add(entry); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
	}
	return result, nil
}

// escapeOriginal keeps every entry on a single line: comment originals may
// hold newlines.
func escapeOriginal(original string) string {
	original = strings.ReplaceAll(original, `\`, `\\`)
	return strings.ReplaceAll(original, "\n", `\n`)
}

func unescapeOriginal(original string) string {
	builder := &strings.Builder{}
	for i := 0; i < len(original); i++ {
		if original[i] == '\\' && i+1 < len(original) {
			switch original[i+1] {
			case 'n':
				builder.WriteByte('\n')
				i++
				continue
			case '\\':
				builder.WriteByte('\\')
				i++
				continue
			}
		}
		builder.WriteByte(original[i])
	}
	return builder.String()
}

// EncodeYAML serializes the table as YAML, a machine-readable sibling of the
// text format.
func EncodeYAML(t *Table) ([]byte, error) {
	return yaml.Marshal(t)
}

// DecodeYAML parses a YAML-serialized table and rebuilds its indexes.
func DecodeYAML(data []byte) (*Table, error) {
	holder := &Table{}
	if err := yaml.Unmarshal(data, holder); err != nil {
		return nil, err
	}
	result := New()
	result.Fingerprint = holder.Fingerprint
	for _, entry := range holder.Entries {
		if err := result.Add(entry); err != nil {
			return nil, err
		}
	}
	return result, nil
}
