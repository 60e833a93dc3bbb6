// Package selectionquery replays the browse selection carried in the URL.
package selectionquery

import (
	"net/http"
	"net/url"

	"github.com/louisbranch/ems-protocols/internal/protocols/selection"
	"github.com/louisbranch/ems-protocols/internal/services/web/routepath"
)

// FromRequest returns the selection encoded in the request query.
func FromRequest(r *http.Request) selection.Selection {
	if r == nil || r.URL == nil {
		return selection.All()
	}
	return FromValues(r.URL.Query())
}

// FromValues applies category then subcategory, exactly as a user clicking
// through the filters would, so a subcategory without a category is dropped.
func FromValues(values url.Values) selection.Selection {
	holder := selection.NewHolder()
	holder.SelectCategory(values.Get(routepath.CategoryParam))
	holder.SelectSubcategory(values.Get(routepath.SubcategoryParam))
	return holder.Current()
}

// Path returns routepath.Browse for a selection.
func Path(current selection.Selection) string {
	categoryID, _ := current.Category()
	subcategoryID, _ := current.Subcategory()
	return routepath.Browse(categoryID, subcategoryID)
}
