package summary

import "github.com/jkdabbert/app-data-dictionary/internal/lookml"

// CompanionCountField finds the count measure usable alongside field: the
// first measure labeled "Count" that shares the field's view label. Sharing a
// view label is the grouping-compatibility rule; a count from another view
// would count the wrong grain.
func CompanionCountField(explore *lookml.Explore, field lookml.Field) (lookml.Field, bool) {
	for _, m := range explore.Fields.Measures {
		if m.LabelShort == "Count" && m.ViewLabel == field.ViewLabel {
			return m, true
		}
	}
	return lookml.Field{}, false
}

// CanComputeTopValues reports whether a top-values summary is computable:
// the field is a dimension and a companion count measure exists.
func CanComputeTopValues(explore *lookml.Explore, field lookml.Field) bool {
	if field.Category != lookml.CategoryDimension {
		return false
	}
	_, ok := CompanionCountField(explore, field)
	return ok
}

// CanComputeDistribution reports whether a distribution summary is
// computable: the field is a numeric dimension.
func CanComputeDistribution(field lookml.Field) bool {
	return field.Type == "number" && field.Category == lookml.CategoryDimension
}
