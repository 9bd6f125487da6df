package masker

import (
	"regexp"
	"strings"

	"github.com/viant/cmask/masker/table"
)

var (
	identRe  = regexp.MustCompile(`\b[A-Za-z_][A-Za-z0-9_]*\b`)
	macroRe  = regexp.MustCompile(`^\s*#\s*define\s+([A-Za-z_][A-Za-z0-9_]*)`)
	accessRe = regexp.MustCompile(`(?:->|\.)\s*([A-Za-z_][A-Za-z0-9_]*)`)
	blockRe  = regexp.MustCompile(`\b(?:struct|union)(?:\s+[A-Za-z_][A-Za-z0-9_]*)?\s*\{([^}]*)\}`)
	fieldRe  = regexp.MustCompile(`(?:unsigned\s+|signed\s+)?(?:int|char|short|long|float|double|_Bool|struct\s+\w+|union\s+\w+|enum\s+\w+)[\s*]+([A-Za-z_][A-Za-z0-9_]*)\s*(?::\s*\d+|;|\[)`)
	enumRe   = regexp.MustCompile(`\benum(?:\s+[A-Za-z_][A-Za-z0-9_]*)?\s*\{([^}]*)\}`)
	tagRe    = regexp.MustCompile(`\b(?:struct|union|enum)\s+([A-Za-z_][A-Za-z0-9_]*)\s*\{`)
	funcRe   = regexp.MustCompile(`(?m)^\s*(?:static\s+)?(?:inline\s+)?(?:extern\s+)?(?:void|int|char|short|long|float|double|unsigned|signed|struct\s+\w+|union\s+\w+|enum\s+\w+)[\s*]+([A-Za-z_][A-Za-z0-9_]*)\s*\([^)]*\)\s*(?:\{|;)`)
	varRe    = regexp.MustCompile(`(?:^|[\n;{(,])\s*(?:static\s+)?(?:extern\s+)?(?:register\s+)?(?:const\s+)?(?:unsigned\s+|signed\s+)?(?:int|char|short|long|float|double|_Bool|struct\s+\w+|union\s+\w+|enum\s+\w+)[\s*]+([A-Za-z_][A-Za-z0-9_]*)\s*(?:[=;\[,)]|$)`)
)

// Classifier buckets every declared or used identifier into exactly one
// category, using ordered first-match-wins rules over the scanned spans.
// Classification is name-keyed and global per file: once a name receives a
// category, every later occurrence of that name keeps it, including names
// shadowed in inner scopes. That simplification is deliberate.
type Classifier struct {
	includeUnused bool
}

// NewClassifier creates a classifier. When includeUnused is set, identifiers
// that no rule binds are assigned to the catch-all Unused bucket.
func NewClassifier(includeUnused bool) *Classifier {
	return &Classifier{includeUnused: includeUnused}
}

// Classify walks the spans in rule order and allocates table entries for every
// classified name. Reserved words are rejected before allocation.
func (c *Classifier) Classify(spans []*Span, dest *table.Table) {
	code := classificationText(spans)

	c.classifyMacros(spans, dest)
	c.classifyMemberAccess(code, dest)
	c.classifyFields(code, dest)
	c.classifyTagsAndEnumerators(code, dest)
	c.classifyFunctions(code, dest)
	c.classifyVariables(code, dest)
	c.classifyComments(spans, dest)
	if c.includeUnused {
		c.classifyUnused(code, dest)
	}
}

// classificationText flattens code spans into one searchable text. Protected
// spans collapse to a space, or to a newline when they carried one, so line
// anchored rules keep working across them.
func classificationText(spans []*Span) string {
	builder := &strings.Builder{}
	for _, span := range spans {
		switch span.Kind {
		case SpanCode:
			builder.WriteString(span.Text)
		case SpanDirective:
			builder.WriteString("\n")
		default:
			if strings.Contains(span.Text, "\n") {
				builder.WriteString("\n")
			} else {
				builder.WriteString(" ")
			}
		}
	}
	return builder.String()
}

func (c *Classifier) classifyMacros(spans []*Span, dest *table.Table) {
	for _, span := range spans {
		if span.Kind != SpanDirective {
			continue
		}
		if match := macroRe.FindStringSubmatch(span.Text); match != nil {
			c.allocate(match[1], table.Macro, dest)
		}
	}
}

func (c *Classifier) classifyMemberAccess(code string, dest *table.Table) {
	for _, match := range accessRe.FindAllStringSubmatch(code, -1) {
		c.allocate(match[1], table.Member, dest)
	}
}

func (c *Classifier) classifyFields(code string, dest *table.Table) {
	for _, block := range blockRe.FindAllStringSubmatch(code, -1) {
		for _, match := range fieldRe.FindAllStringSubmatch(block[1], -1) {
			c.allocate(match[1], table.Member, dest)
		}
	}
}

func (c *Classifier) classifyTagsAndEnumerators(code string, dest *table.Table) {
	for _, match := range tagRe.FindAllStringSubmatch(code, -1) {
		c.allocate(match[1], table.Tag, dest)
	}
	// enumerators share the member namespace
	for _, block := range enumRe.FindAllStringSubmatch(code, -1) {
		for _, piece := range strings.Split(block[1], ",") {
			if name := identRe.FindString(piece); name != "" {
				c.allocate(name, table.Member, dest)
			}
		}
	}
}

func (c *Classifier) classifyFunctions(code string, dest *table.Table) {
	for _, match := range funcRe.FindAllStringSubmatch(code, -1) {
		c.allocate(match[1], table.Function, dest)
	}
}

// classifyVariables resumes each search right after the captured name instead
// of after the whole match, so a consumed terminator (e.g. the comma between
// two parameters) can still anchor the next declaration.
func (c *Classifier) classifyVariables(code string, dest *table.Table) {
	offset := 0
	for offset < len(code) {
		loc := varRe.FindStringSubmatchIndex(code[offset:])
		if loc == nil {
			break
		}
		name := code[offset+loc[2] : offset+loc[3]]
		c.allocate(name, table.Variable, dest)
		offset += loc[3]
	}
}

func (c *Classifier) classifyComments(spans []*Span, dest *table.Table) {
	for _, span := range spans {
		if span.Kind != SpanComment {
			continue
		}
		if commentContent(span.Text) == "" {
			continue // empty comments stay untouched
		}
		dest.Allocate(span.Text, table.Comment)
	}
}

func (c *Classifier) classifyUnused(code string, dest *table.Table) {
	for _, name := range identRe.FindAllString(code, -1) {
		c.allocate(name, table.Unused, dest)
	}
}

func (c *Classifier) allocate(name string, category table.Category, dest *table.Table) {
	if IsReserved(name) {
		return
	}
	dest.Allocate(name, category)
}

// commentContent returns the comment body with delimiters and surrounding
// whitespace stripped.
func commentContent(text string) string {
	if strings.HasPrefix(text, "//") {
		return strings.TrimSpace(text[2:])
	}
	body := strings.TrimPrefix(text, "/*")
	body = strings.TrimSuffix(body, "*/")
	return strings.TrimSpace(body)
}
