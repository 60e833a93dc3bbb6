package protocols

import (
	"net/http"

	"github.com/louisbranch/ems-protocols/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.ProtocolPattern, h.handleDetail)
	mux.HandleFunc(routepath.ProtocolsPrefix, h.handleNotFound)
}
