package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/cmask/masker/table"
)

func TestTableAllocate(t *testing.T) {
	conversions := table.New()

	assert.Equal(t, "v1", conversions.Allocate("count", table.Variable).Alias)
	assert.Equal(t, "v2", conversions.Allocate("total", table.Variable).Alias)
	assert.Equal(t, "f1", conversions.Allocate("add", table.Function).Alias)
	assert.Equal(t, "D1", conversions.Allocate("MAX", table.Macro).Alias)
	assert.Equal(t, 4, conversions.Len())
}

func TestTableAllocateFirstWins(t *testing.T) {
	conversions := table.New()
	first := conversions.Allocate("x", table.Member)

	// re-allocating under another category returns the original entry
	again := conversions.Allocate("x", table.Variable)
	assert.Same(t, first, again)
	assert.Equal(t, table.Member, again.Category)
	assert.Equal(t, "m1", again.Alias)
	assert.Equal(t, 1, conversions.Len())

	// the variable counter was never consumed
	assert.Equal(t, "v1", conversions.Allocate("y", table.Variable).Alias)
}

func TestTableLookupAndResolve(t *testing.T) {
	conversions := table.New()
	conversions.Allocate("count", table.Variable)

	entry := conversions.Lookup("count")
	if assert.NotNil(t, entry) {
		assert.Equal(t, "v1", entry.Alias)
	}
	assert.Same(t, entry, conversions.Resolve("v1"))
	assert.Nil(t, conversions.Lookup("missing"))
	assert.Nil(t, conversions.Resolve("v9"))
}

func TestTableAdd(t *testing.T) {
	conversions := table.New()
	err := conversions.Add(&table.Entry{Original: "count", Alias: "v3", Category: table.Variable})
	if !assert.NoError(t, err) {
		return
	}

	// counters resume past the highest restored ordinal
	assert.Equal(t, "v4", conversions.Allocate("total", table.Variable).Alias)
}

func TestTableAddRejectsDuplicates(t *testing.T) {
	conversions := table.New()
	assert.NoError(t, conversions.Add(&table.Entry{Original: "count", Alias: "v1", Category: table.Variable}))

	err := conversions.Add(&table.Entry{Original: "count", Alias: "v2", Category: table.Variable})
	assert.ErrorContains(t, err, "duplicate original")

	err = conversions.Add(&table.Entry{Original: "total", Alias: "v1", Category: table.Variable})
	assert.ErrorContains(t, err, "duplicate alias")

	err = conversions.Add(&table.Entry{Original: "", Alias: "v2", Category: table.Variable})
	assert.ErrorContains(t, err, "incomplete entry")
}

func TestTableInCategory(t *testing.T) {
	conversions := table.New()
	conversions.Allocate("count", table.Variable)
	conversions.Allocate("add", table.Function)
	conversions.Allocate("total", table.Variable)

	variables := conversions.InCategory(table.Variable)
	if assert.Len(t, variables, 2) {
		assert.Equal(t, "count", variables[0].Original)
		assert.Equal(t, "total", variables[1].Original)
	}
	assert.Empty(t, conversions.InCategory(table.Macro))
}

func TestCategoryPrefixes(t *testing.T) {
	tests := []struct {
		category table.Category
		prefix   string
		label    string
	}{
		{table.Macro, "D", "Macros"},
		{table.Tag, "t", "Tags"},
		{table.Function, "f", "Functions"},
		{table.Variable, "v", "Variables"},
		{table.Member, "m", "Members"},
		{table.Comment, "c", "Comments"},
		{table.Unused, "mx", "Unused"},
	}
	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			assert.Equal(t, tt.prefix, tt.category.Prefix())
			assert.Equal(t, tt.label, tt.category.Label())
		})
	}
}
