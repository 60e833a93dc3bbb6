// Package browse serves the filterable protocol catalog at the site root.
package browse

import (
	"errors"
	"net/http"

	"github.com/louisbranch/ems-protocols/internal/services/web/module"
	"github.com/louisbranch/ems-protocols/internal/services/web/routepath"
)

// Module provides the root browse page.
type Module struct{}

// New returns a browse module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "browse" }

// Mount wires browse route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Catalog == nil {
		return module.Mount{}, errors.New("browse: catalog is required")
	}
	mux := http.NewServeMux()
	h := newHandlers(newService(deps.Catalog), deps.ResolveLanguage)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
