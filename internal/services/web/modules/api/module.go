// Package api serves the JSON read API over the protocol catalog.
package api

import (
	"errors"
	"net/http"

	"github.com/louisbranch/ems-protocols/internal/services/web/module"
	"github.com/louisbranch/ems-protocols/internal/services/web/routepath"
)

// Module provides JSON catalog routes.
type Module struct{}

// New returns an api module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "api" }

// Mount wires JSON route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Catalog == nil {
		return module.Mount{}, errors.New("api: catalog is required")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(deps.Catalog)))
	return module.Mount{Prefix: routepath.APIPrefix, Handler: mux}, nil
}
