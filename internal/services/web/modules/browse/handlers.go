package browse

import (
	"log"
	"net/http"

	"github.com/louisbranch/ems-protocols/internal/services/web/module"
	"github.com/louisbranch/ems-protocols/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/ems-protocols/internal/services/web/platform/i18n"
	"github.com/louisbranch/ems-protocols/internal/services/web/platform/pagerender"
	"github.com/louisbranch/ems-protocols/internal/services/web/platform/selectionquery"
	"github.com/louisbranch/ems-protocols/internal/services/web/platform/weberror"
	"github.com/louisbranch/ems-protocols/internal/services/web/templates"
)

type handlers struct {
	service         service
	resolveLanguage module.ResolveLanguage
}

func newHandlers(svc service, resolveLanguage module.ResolveLanguage) handlers {
	return handlers{service: svc, resolveLanguage: resolveLanguage}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	current := selectionquery.FromRequest(r)
	view := h.service.view(current)
	loc, _ := webi18n.ResolveLocalizer(nil, r, h.resolveLanguage)

	heading := ""
	if view.Filtered {
		heading = view.FilterLabel
	}
	err := pagerender.WriteModulePage(w, r, h.resolveLanguage, pagerender.ModulePage{
		Heading:  heading,
		Fragment: templates.ProtocolBrowser(view, loc),
	})
	if err != nil {
		log.Printf("render browse page request_id=%s: %v", httpx.RequestIDFrom(r), err)
	}
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, h.resolveLanguage)
}
