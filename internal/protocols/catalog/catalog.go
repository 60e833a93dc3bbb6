// Package catalog models the static protocol catalog and projects it into
// display entries for a category/subcategory selection.
//
// A Catalog is built once at startup and never mutated afterwards, so a single
// value can be shared by every request handler without locking.
package catalog

import (
	"fmt"
	"strings"
)

// Category is a top-level protocol grouping.
type Category struct {
	ID    string
	Label string
	// Icon is an opaque presentation handle (a Lucide icon name).
	Icon  string
	Color string
}

// Subcategory is a second-level grouping scoped to one category.
type Subcategory struct {
	ID    string
	Label string
	Icon  string
	Color string
}

// Protocol is one named protocol document.
type Protocol struct {
	ID    string
	Title string
}

// Taxonomy carries display metadata for categories and their subcategories.
// Subcategories is keyed by parent category id.
type Taxonomy struct {
	Categories    []Category
	Subcategories map[string][]Subcategory
}

// Shelf lists the protocols filed under one subcategory, in declaration order.
type Shelf struct {
	SubcategoryID string
	Protocols     []Protocol
}

// Section lists the shelves filed under one category, in declaration order.
type Section struct {
	CategoryID string
	Shelves    []Shelf
}

// Catalog is the immutable protocol table plus its taxonomy.
type Catalog struct {
	taxonomy Taxonomy
	sections []Section
}

// New validates the inputs and returns a catalog holding private copies of them.
func New(taxonomy Taxonomy, sections []Section) (*Catalog, error) {
	if err := validateTaxonomy(taxonomy); err != nil {
		return nil, err
	}
	if err := validateSections(sections); err != nil {
		return nil, err
	}
	return &Catalog{
		taxonomy: copyTaxonomy(taxonomy),
		sections: copySections(sections),
	}, nil
}

// Taxonomy returns a copy of the catalog taxonomy.
func (c *Catalog) Taxonomy() Taxonomy {
	if c == nil {
		return Taxonomy{Subcategories: map[string][]Subcategory{}}
	}
	return copyTaxonomy(c.taxonomy)
}

// Sections returns a copy of the protocol table.
func (c *Catalog) Sections() []Section {
	if c == nil {
		return nil
	}
	return copySections(c.sections)
}

// Categories returns the categories in declaration order.
func (c *Catalog) Categories() []Category {
	if c == nil {
		return nil
	}
	return append([]Category(nil), c.taxonomy.Categories...)
}

// Subcategories returns the subcategories declared for categoryID. Unknown
// categories yield an empty list.
func (c *Catalog) Subcategories(categoryID string) []Subcategory {
	if c == nil {
		return nil
	}
	return append([]Subcategory(nil), c.taxonomy.Subcategories[strings.TrimSpace(categoryID)]...)
}

// Category looks up one category by id.
func (c *Catalog) Category(categoryID string) (Category, bool) {
	if c == nil {
		return Category{}, false
	}
	categoryID = strings.TrimSpace(categoryID)
	for _, category := range c.taxonomy.Categories {
		if category.ID == categoryID {
			return category, true
		}
	}
	return Category{}, false
}

// Subcategory looks up one subcategory under its parent category.
func (c *Catalog) Subcategory(categoryID, subcategoryID string) (Subcategory, bool) {
	if c == nil {
		return Subcategory{}, false
	}
	subcategoryID = strings.TrimSpace(subcategoryID)
	for _, subcategory := range c.taxonomy.Subcategories[strings.TrimSpace(categoryID)] {
		if subcategory.ID == subcategoryID {
			return subcategory, true
		}
	}
	return Subcategory{}, false
}

// CategoryLabel resolves a display label, falling back to the raw id.
func (c *Catalog) CategoryLabel(categoryID string) string {
	if category, ok := c.Category(categoryID); ok && strings.TrimSpace(category.Label) != "" {
		return category.Label
	}
	return categoryID
}

// SubcategoryLabel resolves a display label, falling back to the raw id.
func (c *Catalog) SubcategoryLabel(categoryID, subcategoryID string) string {
	if subcategory, ok := c.Subcategory(categoryID, subcategoryID); ok && strings.TrimSpace(subcategory.Label) != "" {
		return subcategory.Label
	}
	return subcategoryID
}

// Len reports the total number of protocols in the catalog.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	total := 0
	for _, section := range c.sections {
		for _, shelf := range section.Shelves {
			total += len(shelf.Protocols)
		}
	}
	return total
}

func validateTaxonomy(taxonomy Taxonomy) error {
	seen := make(map[string]struct{}, len(taxonomy.Categories))
	for idx, category := range taxonomy.Categories {
		id := strings.TrimSpace(category.ID)
		if id == "" {
			return fmt.Errorf("category %d: id is required", idx)
		}
		if id != category.ID {
			return fmt.Errorf("category %q: id has surrounding whitespace", category.ID)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("category %q: duplicate id", id)
		}
		seen[id] = struct{}{}
	}
	for categoryID, subcategories := range taxonomy.Subcategories {
		if strings.TrimSpace(categoryID) == "" {
			return fmt.Errorf("subcategories: parent category id is required")
		}
		seenSub := make(map[string]struct{}, len(subcategories))
		for idx, subcategory := range subcategories {
			id := strings.TrimSpace(subcategory.ID)
			if id == "" {
				return fmt.Errorf("category %q subcategory %d: id is required", categoryID, idx)
			}
			if id != subcategory.ID {
				return fmt.Errorf("category %q subcategory %q: id has surrounding whitespace", categoryID, subcategory.ID)
			}
			if _, ok := seenSub[id]; ok {
				return fmt.Errorf("category %q subcategory %q: duplicate id", categoryID, id)
			}
			seenSub[id] = struct{}{}
		}
	}
	return nil
}

func validateSections(sections []Section) error {
	seen := make(map[string]struct{}, len(sections))
	for idx, section := range sections {
		categoryID := strings.TrimSpace(section.CategoryID)
		if categoryID == "" {
			return fmt.Errorf("section %d: category id is required", idx)
		}
		if categoryID != section.CategoryID {
			return fmt.Errorf("section %q: category id has surrounding whitespace", section.CategoryID)
		}
		if _, ok := seen[categoryID]; ok {
			return fmt.Errorf("section %q: duplicate category id", categoryID)
		}
		seen[categoryID] = struct{}{}

		seenShelf := make(map[string]struct{}, len(section.Shelves))
		for shelfIdx, shelf := range section.Shelves {
			subcategoryID := strings.TrimSpace(shelf.SubcategoryID)
			if subcategoryID == "" {
				return fmt.Errorf("section %q shelf %d: subcategory id is required", categoryID, shelfIdx)
			}
			if subcategoryID != shelf.SubcategoryID {
				return fmt.Errorf("section %q shelf %q: subcategory id has surrounding whitespace", categoryID, shelf.SubcategoryID)
			}
			if _, ok := seenShelf[subcategoryID]; ok {
				return fmt.Errorf("section %q shelf %q: duplicate subcategory id", categoryID, subcategoryID)
			}
			seenShelf[subcategoryID] = struct{}{}

			seenProtocol := make(map[string]struct{}, len(shelf.Protocols))
			for protocolIdx, protocol := range shelf.Protocols {
				protocolID := strings.TrimSpace(protocol.ID)
				if protocolID == "" {
					return fmt.Errorf("%s/%s protocol %d: id is required", categoryID, subcategoryID, protocolIdx)
				}
				if protocolID != protocol.ID {
					return fmt.Errorf("%s/%s protocol %q: id has surrounding whitespace", categoryID, subcategoryID, protocol.ID)
				}
				if strings.ContainsAny(protocolID, "/?#") {
					return fmt.Errorf("%s/%s protocol %q: id must be a single path segment", categoryID, subcategoryID, protocolID)
				}
				if _, ok := seenProtocol[protocolID]; ok {
					return fmt.Errorf("%s/%s protocol %q: duplicate id", categoryID, subcategoryID, protocolID)
				}
				seenProtocol[protocolID] = struct{}{}
				if strings.TrimSpace(protocol.Title) == "" {
					return fmt.Errorf("%s/%s protocol %q: title is required", categoryID, subcategoryID, protocolID)
				}
			}
		}
	}
	return nil
}

func copyTaxonomy(taxonomy Taxonomy) Taxonomy {
	out := Taxonomy{
		Categories:    append([]Category(nil), taxonomy.Categories...),
		Subcategories: make(map[string][]Subcategory, len(taxonomy.Subcategories)),
	}
	for categoryID, subcategories := range taxonomy.Subcategories {
		out.Subcategories[categoryID] = append([]Subcategory(nil), subcategories...)
	}
	return out
}

func copySections(sections []Section) []Section {
	out := make([]Section, 0, len(sections))
	for _, section := range sections {
		shelves := make([]Shelf, 0, len(section.Shelves))
		for _, shelf := range section.Shelves {
			shelves = append(shelves, Shelf{
				SubcategoryID: shelf.SubcategoryID,
				Protocols:     append([]Protocol(nil), shelf.Protocols...),
			})
		}
		out = append(out, Section{CategoryID: section.CategoryID, Shelves: shelves})
	}
	return out
}
