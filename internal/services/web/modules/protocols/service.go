package protocols

import (
	"github.com/louisbranch/ems-protocols/internal/protocols/catalog"
	apperrors "github.com/louisbranch/ems-protocols/internal/services/web/platform/errors"
	"github.com/louisbranch/ems-protocols/internal/services/web/routepath"
	"github.com/louisbranch/ems-protocols/internal/services/web/templates"
)

// CatalogReader is the read surface protocol detail pages need.
type CatalogReader interface {
	Lookup(categoryID, subcategoryID, protocolID string) (catalog.Entry, bool)
	Category(categoryID string) (catalog.Category, bool)
	Subcategory(categoryID, subcategoryID string) (catalog.Subcategory, bool)
}

type service struct {
	catalog CatalogReader
}

func newService(reader CatalogReader) service {
	return service{catalog: reader}
}

func (s service) detail(categoryID, subcategoryID, protocolID string) (templates.ProtocolView, error) {
	entry, ok := s.catalog.Lookup(categoryID, subcategoryID, protocolID)
	if !ok {
		return templates.ProtocolView{}, apperrors.EK(apperrors.KindNotFound, "web.error.not_found.body", "protocol not found: "+routepath.Protocol(categoryID, subcategoryID, protocolID))
	}
	view := templates.ProtocolView{
		ID:               entry.ID,
		Title:            entry.Title,
		CategoryLabel:    entry.CategoryLabel,
		SubcategoryLabel: entry.SubcategoryLabel,
		BackURL:          routepath.Browse(entry.CategoryID, entry.SubcategoryID),
	}
	if category, ok := s.catalog.Category(entry.CategoryID); ok {
		view.CategoryColor = category.Color
	}
	if subcategory, ok := s.catalog.Subcategory(entry.CategoryID, entry.SubcategoryID); ok {
		view.SubcategoryColor = subcategory.Color
	}
	return view, nil
}
