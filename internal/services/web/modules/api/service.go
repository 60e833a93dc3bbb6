package api

import (
	"github.com/louisbranch/ems-protocols/internal/protocols/catalog"
	"github.com/louisbranch/ems-protocols/internal/protocols/selection"
	"github.com/louisbranch/ems-protocols/internal/services/web/routepath"
)

// CatalogReader is the read surface the JSON API needs.
type CatalogReader interface {
	selection.Labeler
	Taxonomy() catalog.Taxonomy
	Project(filter catalog.Filter) []catalog.Entry
}

// ProtocolEntry is one projected protocol plus its detail page path.
type ProtocolEntry struct {
	catalog.Entry
	Path string `json:"path"`
}

// ProtocolList is the filtered listing response.
type ProtocolList struct {
	Label       string          `json:"label"`
	Category    string          `json:"category,omitempty"`
	Subcategory string          `json:"subcategory,omitempty"`
	Count       int             `json:"count"`
	Protocols   []ProtocolEntry `json:"protocols"`
}

// TaxonomyNode is one category or subcategory in the taxonomy response.
type TaxonomyNode struct {
	ID            string         `json:"id"`
	Label         string         `json:"label"`
	Icon          string         `json:"icon,omitempty"`
	Color         string         `json:"color,omitempty"`
	Subcategories []TaxonomyNode `json:"subcategories,omitempty"`
}

// TaxonomyResponse lists categories in declaration order.
type TaxonomyResponse struct {
	Categories []TaxonomyNode `json:"categories"`
}

type service struct {
	catalog CatalogReader
}

func newService(reader CatalogReader) service {
	return service{catalog: reader}
}

func (s service) list(current selection.Selection) ProtocolList {
	categoryID, _ := current.Category()
	subcategoryID, _ := current.Subcategory()
	entries := s.catalog.Project(current)
	list := ProtocolList{
		Label:       current.Label(s.catalog),
		Category:    categoryID,
		Subcategory: subcategoryID,
		Count:       len(entries),
		Protocols:   make([]ProtocolEntry, 0, len(entries)),
	}
	for _, entry := range entries {
		list.Protocols = append(list.Protocols, ProtocolEntry{
			Entry: entry,
			Path:  routepath.Protocol(entry.CategoryID, entry.SubcategoryID, entry.ID),
		})
	}
	return list
}

func (s service) taxonomy() TaxonomyResponse {
	taxonomy := s.catalog.Taxonomy()
	response := TaxonomyResponse{Categories: make([]TaxonomyNode, 0, len(taxonomy.Categories))}
	for _, category := range taxonomy.Categories {
		node := TaxonomyNode{
			ID:    category.ID,
			Label: s.catalog.CategoryLabel(category.ID),
			Icon:  category.Icon,
			Color: category.Color,
		}
		for _, subcategory := range taxonomy.Subcategories[category.ID] {
			node.Subcategories = append(node.Subcategories, TaxonomyNode{
				ID:    subcategory.ID,
				Label: s.catalog.SubcategoryLabel(category.ID, subcategory.ID),
				Icon:  subcategory.Icon,
				Color: subcategory.Color,
			})
		}
		response.Categories = append(response.Categories, node)
	}
	return response
}
