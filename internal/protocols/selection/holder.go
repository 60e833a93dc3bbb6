package selection

import "strings"

// Holder tracks the current selection for one browsing session.
type Holder struct {
	current Selection
}

// NewHolder returns a holder with nothing selected.
func NewHolder() *Holder {
	return &Holder{}
}

// SelectCategory selects categoryID and always clears the subcategory.
// Unknown ids are kept; they simply project to an empty list.
func (h *Holder) SelectCategory(categoryID string) {
	if h == nil {
		return
	}
	h.current = InCategory(categoryID)
}

// SelectSubcategory selects subcategoryID under the current category. It is a
// no-op while no category is selected.
func (h *Holder) SelectSubcategory(subcategoryID string) {
	if h == nil || h.current.category == "" {
		return
	}
	h.current.subcategory = strings.TrimSpace(subcategoryID)
}

// Clear resets both category and subcategory.
func (h *Holder) Clear() {
	if h == nil {
		return
	}
	h.current = Selection{}
}

// Current returns the current selection.
func (h *Holder) Current() Selection {
	if h == nil {
		return Selection{}
	}
	return h.current
}

// CurrentLabel returns the display label for the current selection.
func (h *Holder) CurrentLabel(labels Labeler) string {
	return h.Current().Label(labels)
}
