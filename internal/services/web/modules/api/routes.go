package api

import (
	"net/http"

	"github.com/louisbranch/ems-protocols/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.APIProtocols, h.handleProtocols)
	mux.HandleFunc(http.MethodGet+" "+routepath.APITaxonomy, h.handleTaxonomy)
	mux.HandleFunc(routepath.APIPrefix, h.handleNotFound)
}
