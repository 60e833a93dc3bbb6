package protocols

import (
	"log"
	"net/http"

	"github.com/louisbranch/ems-protocols/internal/services/web/module"
	"github.com/louisbranch/ems-protocols/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/ems-protocols/internal/services/web/platform/i18n"
	"github.com/louisbranch/ems-protocols/internal/services/web/platform/pagerender"
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

func (h handlers) handleDetail(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.detail(r.PathValue("categoryID"), r.PathValue("subcategoryID"), r.PathValue("protocolID"))
	if err != nil {
		weberror.WriteModuleError(w, r, err, h.resolveLanguage)
		return
	}
	loc, _ := webi18n.ResolveLocalizer(nil, r, h.resolveLanguage)
	err = pagerender.WriteModulePage(w, r, h.resolveLanguage, pagerender.ModulePage{
		Heading:  view.Title,
		Fragment: templates.ProtocolDetail(view, loc),
	})
	if err != nil {
		log.Printf("render protocol page request_id=%s: %v", httpx.RequestIDFrom(r), err)
	}
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, h.resolveLanguage)
}
