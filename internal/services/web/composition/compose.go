// Package composition assembles the module set into the web app handler.
package composition

import (
	"errors"
	"net/http"

	"github.com/louisbranch/ems-protocols/internal/protocols/catalog"
	webapp "github.com/louisbranch/ems-protocols/internal/services/web/app"
	module "github.com/louisbranch/ems-protocols/internal/services/web/module"
	"github.com/louisbranch/ems-protocols/internal/services/web/modules"
)

// ComposeInput describes the contracts needed to compose the application mux.
type ComposeInput struct {
	Catalog         *catalog.Catalog
	ResolveLanguage module.ResolveLanguage

	// Modules overrides the default module set when non-nil.
	Modules []modules.Module
}

// ComposeAppHandler builds the web app handler from the selected modules.
func ComposeAppHandler(input ComposeInput) (http.Handler, error) {
	if input.Catalog == nil {
		return nil, errors.New("catalog is required")
	}
	selected := input.Modules
	if selected == nil {
		selected = modules.DefaultModules()
	}
	return webapp.Compose(webapp.ComposeInput{
		Dependencies: module.Dependencies{
			Catalog:         input.Catalog,
			ResolveLanguage: input.ResolveLanguage,
		},
		Modules: selected,
	})
}
