package api

import (
	"log"
	"net/http"

	apperrors "github.com/louisbranch/ems-protocols/internal/services/web/platform/errors"
	"github.com/louisbranch/ems-protocols/internal/services/web/platform/httpx"
	"github.com/louisbranch/ems-protocols/internal/services/web/platform/selectionquery"
)

type handlers struct {
	service service
}

func newHandlers(svc service) handlers {
	return handlers{service: svc}
}

func (h handlers) handleProtocols(w http.ResponseWriter, r *http.Request) {
	h.write(w, r, h.service.list(selectionquery.FromRequest(r)))
}

func (h handlers) handleTaxonomy(w http.ResponseWriter, r *http.Request) {
	h.write(w, r, h.service.taxonomy())
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	if err := httpx.WriteJSONError(w, apperrors.E(apperrors.KindNotFound, "no api route for "+r.URL.Path)); err != nil {
		log.Printf("write api error request_id=%s: %v", httpx.RequestIDFrom(r), err)
	}
}

func (h handlers) write(w http.ResponseWriter, r *http.Request, payload any) {
	if err := httpx.WriteJSON(w, http.StatusOK, payload); err != nil {
		log.Printf("write api response request_id=%s: %v", httpx.RequestIDFrom(r), err)
	}
}
