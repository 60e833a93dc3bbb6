package catalog

// Filter is the selection shape the projector narrows by. A subcategory is
// only honored when a category is also present.
type Filter interface {
	Category() (string, bool)
	Subcategory() (string, bool)
}

// Entry is one protocol annotated for display.
type Entry struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	CategoryID       string `json:"category_id"`
	SubcategoryID    string `json:"subcategory_id"`
	CategoryLabel    string `json:"category_label"`
	SubcategoryLabel string `json:"subcategory_label"`
}

// Project returns the protocols visible under filter in declaration order.
// A nil filter selects everything. Unknown ids produce an empty list.
func (c *Catalog) Project(filter Filter) []Entry {
	entries := []Entry{}
	if c == nil {
		return entries
	}

	categoryID, hasCategory := "", false
	subcategoryID, hasSubcategory := "", false
	if filter != nil {
		categoryID, hasCategory = filter.Category()
		subcategoryID, hasSubcategory = filter.Subcategory()
	}
	if !hasCategory {
		hasSubcategory = false
	}

	for _, section := range c.sections {
		if hasCategory && section.CategoryID != categoryID {
			continue
		}
		for _, shelf := range section.Shelves {
			if hasSubcategory && shelf.SubcategoryID != subcategoryID {
				continue
			}
			entries = c.appendShelf(entries, section.CategoryID, shelf)
		}
	}
	return entries
}

// Lookup resolves one protocol by its category/subcategory/protocol triple.
func (c *Catalog) Lookup(categoryID, subcategoryID, protocolID string) (Entry, bool) {
	if c == nil {
		return Entry{}, false
	}
	for _, section := range c.sections {
		if section.CategoryID != categoryID {
			continue
		}
		for _, shelf := range section.Shelves {
			if shelf.SubcategoryID != subcategoryID {
				continue
			}
			for _, protocol := range shelf.Protocols {
				if protocol.ID == protocolID {
					return c.entry(categoryID, subcategoryID, protocol), true
				}
			}
		}
	}
	return Entry{}, false
}

func (c *Catalog) appendShelf(entries []Entry, categoryID string, shelf Shelf) []Entry {
	for _, protocol := range shelf.Protocols {
		entries = append(entries, c.entry(categoryID, shelf.SubcategoryID, protocol))
	}
	return entries
}

func (c *Catalog) entry(categoryID, subcategoryID string, protocol Protocol) Entry {
	return Entry{
		ID:               protocol.ID,
		Title:            protocol.Title,
		CategoryID:       categoryID,
		SubcategoryID:    subcategoryID,
		CategoryLabel:    c.CategoryLabel(categoryID),
		SubcategoryLabel: c.SubcategoryLabel(categoryID, subcategoryID),
	}
}
