// Package httpmux wires the root-level routes that sit outside web modules.
package httpmux

import (
	"io/fs"
	"net/http"

	routepath "github.com/louisbranch/ems-protocols/internal/services/web/routepath"
)

// MountStatic wires the shared static route into the root mux.
func MountStatic(rootMux *http.ServeMux, staticFS fs.FS, withStaticMime func(http.Handler) http.Handler) {
	if rootMux == nil || staticFS == nil {
		return
	}
	staticHandler := http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(staticFS)))
	if withStaticMime != nil {
		staticHandler = withStaticMime(staticHandler)
	}
	rootMux.Handle(http.MethodGet+" "+routepath.StaticPrefix, staticHandler)
}

// MountHealth wires the plain-text liveness probe.
func MountHealth(rootMux *http.ServeMux) {
	if rootMux == nil {
		return
	}
	rootMux.HandleFunc(http.MethodGet+" "+routepath.Health, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
}

// MountModules wires the composed module handler as the root catch-all.
func MountModules(rootMux *http.ServeMux, modules http.Handler) {
	if rootMux == nil || modules == nil {
		return
	}
	rootMux.Handle(routepath.Root, modules)
}
