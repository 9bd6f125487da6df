package table

// Category classifies a masked identifier into its alias namespace.
type Category string

const (
	Macro    Category = "MACRO"
	Tag      Category = "TAG" // struct, union and enum tags share one namespace
	Function Category = "FUNCTION"
	Variable Category = "VARIABLE"
	Member   Category = "MEMBER"
	Comment  Category = "COMMENT"
	Unused   Category = "UNUSED"
)

// Categories lists all categories in their persisted section order.
var Categories = []Category{Macro, Tag, Function, Variable, Member, Comment, Unused}

// Prefix returns the alias namespace prefix for the category.
func (c Category) Prefix() string {
	switch c {
	case Macro:
		return "D"
	case Tag:
		return "t"
	case Function:
		return "f"
	case Variable:
		return "v"
	case Member:
		return "m"
	case Comment:
		return "c"
	case Unused:
		return "mx"
	}
	return ""
}

// Label returns the bracketed section label used by the text codec.
func (c Category) Label() string {
	switch c {
	case Macro:
		return "Macros"
	case Tag:
		return "Tags"
	case Function:
		return "Functions"
	case Variable:
		return "Variables"
	case Member:
		return "Members"
	case Comment:
		return "Comments"
	case Unused:
		return "Unused"
	}
	return ""
}

var categoryByLabel = map[string]Category{}

func init() {
	for _, category := range Categories {
		categoryByLabel[category.Label()] = category
	}
}
