// Package selection holds the category/subcategory filter a user has chosen
// while browsing the protocol catalog.
//
// Selection values are immutable and can only be built through constructors
// that drop a subcategory whenever the category is missing. Holder is the
// single mutation entry point used by interactive surfaces.
package selection

import "strings"

// AllLabel is shown when no category is selected.
const AllLabel = "All Protocols"

const labelSeparator = " → "

// Labeler resolves display labels, falling back to raw ids on a miss.
type Labeler interface {
	CategoryLabel(categoryID string) string
	SubcategoryLabel(categoryID, subcategoryID string) string
}

// Selection is a (category, subcategory) filter where either part may be unset.
type Selection struct {
	category    string
	subcategory string
}

// All returns the empty selection.
func All() Selection {
	return Selection{}
}

// InCategory selects every subcategory of categoryID. A blank id selects all.
func InCategory(categoryID string) Selection {
	return Selection{category: strings.TrimSpace(categoryID)}
}

// InSubcategory selects one subcategory under categoryID. The subcategory is
// dropped when categoryID is blank.
func InSubcategory(categoryID, subcategoryID string) Selection {
	categoryID = strings.TrimSpace(categoryID)
	if categoryID == "" {
		return Selection{}
	}
	return Selection{category: categoryID, subcategory: strings.TrimSpace(subcategoryID)}
}

// Category returns the selected category id.
func (s Selection) Category() (string, bool) {
	return s.category, s.category != ""
}

// Subcategory returns the selected subcategory id.
func (s Selection) Subcategory() (string, bool) {
	return s.subcategory, s.subcategory != ""
}

// IsAll reports whether nothing is selected.
func (s Selection) IsAll() bool {
	return s.category == ""
}

// Label renders "All Protocols", "<Category>" or "<Category> → <Subcategory>".
func (s Selection) Label(labels Labeler) string {
	if s.category == "" {
		return AllLabel
	}
	categoryLabel := s.category
	if labels != nil {
		categoryLabel = labels.CategoryLabel(s.category)
	}
	if s.subcategory == "" {
		return categoryLabel
	}
	subcategoryLabel := s.subcategory
	if labels != nil {
		subcategoryLabel = labels.SubcategoryLabel(s.category, s.subcategory)
	}
	return categoryLabel + labelSeparator + subcategoryLabel
}
