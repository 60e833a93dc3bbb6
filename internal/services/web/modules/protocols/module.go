// Package protocols serves individual protocol detail pages.
package protocols

import (
	"errors"
	"net/http"

	"github.com/louisbranch/ems-protocols/internal/services/web/module"
	"github.com/louisbranch/ems-protocols/internal/services/web/routepath"
)

// Module provides protocol detail routes.
type Module struct{}

// New returns a protocols module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "protocols" }

// Mount wires protocol detail route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Catalog == nil {
		return module.Mount{}, errors.New("protocols: catalog is required")
	}
	mux := http.NewServeMux()
	h := newHandlers(newService(deps.Catalog), deps.ResolveLanguage)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.ProtocolsPrefix, Handler: mux}, nil
}
