// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"io"
	"net/http"

	"github.com/a-h/templ"
	sharedi18n "github.com/louisbranch/ems-protocols/internal/services/shared/i18nhttp"
	module "github.com/louisbranch/ems-protocols/internal/services/web/module"
	"github.com/louisbranch/ems-protocols/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/ems-protocols/internal/services/web/platform/i18n"
	"github.com/louisbranch/ems-protocols/internal/services/web/templates"
	"golang.org/x/text/language"
)

// ModulePage describes a module page response for both full-page and HTMX flows.
type ModulePage struct {
	// Heading is prefixed to the application name in the document title.
	Heading    string
	StatusCode int
	Fragment   templ.Component
}

// WriteModulePage renders the fragment alone for HTMX requests and inside the
// full layout otherwise.
func WriteModulePage(w http.ResponseWriter, r *http.Request, resolveLanguage module.ResolveLanguage, page ModulePage) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = templ.NopComponent
	}

	loc, tag := webi18n.ResolveLocalizer(w, r, resolveLanguage)
	title := templates.PageTitle(loc, page.Heading)
	ctx := httpx.RequestContext(r)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Add("Vary", "HX-Request")
	w.WriteHeader(statusCode)

	if httpx.IsHTMXRequest(r) {
		// HTMX lifts a <title> out of swapped content to keep history entries named.
		if _, err := io.WriteString(w, "<title>"+templ.EscapeString(title)+"</title>"); err != nil {
			return err
		}
		return fragment.Render(ctx, w)
	}

	layout := templates.Layout(templates.PageContext{
		Title:     title,
		Lang:      tag.String(),
		Loc:       loc,
		Languages: languageOptions(r, tag, loc),
	})
	return layout.Render(templ.WithChildren(ctx, fragment), w)
}

func languageOptions(r *http.Request, active language.Tag, loc templates.Localizer) []templates.LanguageOption {
	path, query := "/", ""
	if r != nil && r.URL != nil {
		path, query = r.URL.Path, r.URL.RawQuery
	}
	return sharedi18n.BuildLanguageOptions(active, path, query, func(tag language.Tag) string {
		return templates.T(loc, sharedi18n.LanguageKeyLabel(tag))
	})
}
