package masker_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/cmask/masker"
)

func TestScannerSpans(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected []masker.SpanKind
	}{
		{
			name:     "directive then code",
			source:   "#define MAX 100\nint add(int a,int b){return a+b;}",
			expected: []masker.SpanKind{masker.SpanDirective, masker.SpanCode},
		},
		{
			name:     "indented directive owns the whole line",
			source:   "   #include <stdio.h>\nint x;\n",
			expected: []masker.SpanKind{masker.SpanDirective, masker.SpanCode},
		},
		{
			name:     "line comment excludes terminator",
			source:   "int a; // trailing\nint b;",
			expected: []masker.SpanKind{masker.SpanCode, masker.SpanComment, masker.SpanCode},
		},
		{
			name:     "block comment inline",
			source:   "int a; /* note */ int b;",
			expected: []masker.SpanKind{masker.SpanCode, masker.SpanComment, masker.SpanCode},
		},
		{
			name:     "escape aware string literal",
			source:   `char *s = "a\"b;\" c";`,
			expected: []masker.SpanKind{masker.SpanCode, masker.SpanString, masker.SpanCode},
		},
		{
			name:     "char literal",
			source:   "char c = '\\'';",
			expected: []masker.SpanKind{masker.SpanCode, masker.SpanString, masker.SpanCode},
		},
		{
			name:     "unterminated block comment extends to EOF",
			source:   "int a; /* never closed",
			expected: []masker.SpanKind{masker.SpanCode, masker.SpanComment},
		},
		{
			name:     "unterminated string extends to EOF",
			source:   "char *s = \"abc",
			expected: []masker.SpanKind{masker.SpanCode, masker.SpanString},
		},
		{
			name:     "directive continuation line",
			source:   "#define A \\\n  1\nint x;",
			expected: []masker.SpanKind{masker.SpanDirective, masker.SpanCode},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spans := masker.NewScanner(tt.source).Scan()

			var kinds []masker.SpanKind
			builder := &strings.Builder{}
			for _, span := range spans {
				kinds = append(kinds, span.Kind)
				builder.WriteString(span.Text)
				assert.Equal(t, tt.source[span.Start:span.End], span.Text, "span text must mirror its range")
			}
			assert.Equal(t, tt.expected, kinds)
			assert.Equal(t, tt.source, builder.String(), "spans must cover the source exactly")
		})
	}
}

func TestScannerDirectiveContinuation(t *testing.T) {
	spans := masker.NewScanner("#define A \\\n  1\nint x;").Scan()
	assert.Equal(t, "#define A \\\n  1\n", spans[0].Text, "continuation stays inside the directive span")
}

func TestScannerCommentInsideString(t *testing.T) {
	spans := masker.NewScanner(`char *s = "// not a comment";`).Scan()
	var comments int
	for _, span := range spans {
		if span.Kind == masker.SpanComment {
			comments++
		}
	}
	assert.Equal(t, 0, comments)
}
