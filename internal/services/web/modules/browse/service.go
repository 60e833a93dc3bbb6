package browse

import (
	"strings"

	"github.com/louisbranch/ems-protocols/internal/platform/icons"
	"github.com/louisbranch/ems-protocols/internal/protocols/catalog"
	"github.com/louisbranch/ems-protocols/internal/protocols/selection"
	"github.com/louisbranch/ems-protocols/internal/services/web/routepath"
	"github.com/louisbranch/ems-protocols/internal/services/web/templates"
)

// CatalogReader is the read surface the browse page needs.
type CatalogReader interface {
	selection.Labeler
	Categories() []catalog.Category
	Subcategories(categoryID string) []catalog.Subcategory
	Category(categoryID string) (catalog.Category, bool)
	Subcategory(categoryID, subcategoryID string) (catalog.Subcategory, bool)
	Project(filter catalog.Filter) []catalog.Entry
}

type service struct {
	catalog CatalogReader
}

func newService(reader CatalogReader) service {
	return service{catalog: reader}
}

// view projects the catalog for current and maps it onto the browser template.
func (s service) view(current selection.Selection) templates.BrowseView {
	categoryID, _ := current.Category()
	subcategoryID, _ := current.Subcategory()

	view := templates.BrowseView{
		FilterLabel: current.Label(s.catalog),
		Filtered:    !current.IsAll(),
		ClearURL:    routepath.Browse("", ""),
		JSONURL:     routepath.APIProtocolsFor(categoryID, subcategoryID),
	}
	for _, category := range s.catalog.Categories() {
		view.Categories = append(view.Categories, templates.FilterOption{
			ID:     category.ID,
			Label:  labelOrID(category.Label, category.ID),
			Icon:   icons.NameOrDefault(category.Icon),
			Color:  category.Color,
			URL:    routepath.Browse(category.ID, ""),
			Active: category.ID == categoryID,
		})
	}
	if categoryID != "" {
		for _, subcategory := range s.catalog.Subcategories(categoryID) {
			view.Subcategories = append(view.Subcategories, templates.FilterOption{
				ID:     subcategory.ID,
				Label:  labelOrID(subcategory.Label, subcategory.ID),
				Icon:   icons.NameOrDefault(subcategory.Icon),
				Color:  subcategory.Color,
				URL:    routepath.Browse(categoryID, subcategory.ID),
				Active: subcategory.ID == subcategoryID,
			})
		}
	}

	for _, entry := range s.catalog.Project(current) {
		card := templates.ProtocolCard{
			Title:            entry.Title,
			URL:              routepath.Protocol(entry.CategoryID, entry.SubcategoryID, entry.ID),
			CategoryLabel:    entry.CategoryLabel,
			SubcategoryLabel: entry.SubcategoryLabel,
		}
		if category, ok := s.catalog.Category(entry.CategoryID); ok {
			card.CategoryColor = category.Color
		}
		if subcategory, ok := s.catalog.Subcategory(entry.CategoryID, entry.SubcategoryID); ok {
			card.SubcategoryColor = subcategory.Color
		}
		view.Cards = append(view.Cards, card)
	}
	return view
}

func labelOrID(label string, id string) string {
	if strings.TrimSpace(label) == "" {
		return id
	}
	return label
}
