package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/ems-protocols/internal/platform/icons"
	sharedi18n "github.com/louisbranch/ems-protocols/internal/services/shared/i18nhttp"
	"github.com/louisbranch/ems-protocols/internal/services/web/routepath"
)

const htmxScriptURL = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"

// LanguageOption represents a supported language option in the UI.
type LanguageOption = sharedi18n.LanguageOption

// PageContext provides shared layout context for pages.
type PageContext struct {
	Title     string
	Lang      string
	Loc       Localizer
	Languages []LanguageOption
}

// PageTitle joins a page-specific heading with the application title.
func PageTitle(loc Localizer, heading string) string {
	app := T(loc, "core.app.title")
	heading = strings.TrimSpace(heading)
	if heading == "" {
		return app
	}
	return heading + " · " + app
}

// Layout renders the full HTML document around the child component.
func Layout(page PageContext) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		lang := strings.TrimSpace(page.Lang)
		if lang == "" {
			lang = "en-US"
		}
		title := strings.TrimSpace(page.Title)
		if title == "" {
			title = PageTitle(page.Loc, "")
		}

		h.raw("<!DOCTYPE html><html")
		h.attr("lang", lang)
		h.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		h.text(title)
		h.raw(`</title><link rel="stylesheet"`)
		h.attr("href", routepath.StaticPrefix+"app.css")
		h.raw(`><script defer`)
		h.attr("src", htmxScriptURL)
		h.raw(`></script></head><body>`)
		h.raw(icons.LucideSprite())

		h.raw(`<header class="app-header"><div class="app-header__inner"><div><h1 class="app-title"><a`)
		h.attr("href", routepath.Root)
		h.raw(">")
		h.text(T(page.Loc, "core.app.title"))
		h.raw(`</a></h1><p class="app-subtitle">`)
		h.text(T(page.Loc, "core.app.subtitle"))
		h.raw("</p></div>")
		writeLanguageSwitch(h, page.Languages)
		h.raw(`</div></header><main id="main-content" class="app-main">`)
		if h.err != nil {
			return h.err
		}
		if err := templ.GetChildren(ctx).Render(ctx, w); err != nil {
			return err
		}
		h.raw("</main></body></html>")
		return h.err
	})
}

func writeLanguageSwitch(h *htmlWriter, options []LanguageOption) {
	if len(options) < 2 {
		return
	}
	h.raw(`<nav class="lang-switch" aria-label="Language">`)
	for _, option := range options {
		h.raw("<a")
		h.attr("href", option.URL)
		h.attr("hreflang", option.Tag)
		if option.Active {
			h.classes("lang-switch__option", "is-active")
			h.raw(` aria-current="true"`)
		} else {
			h.classes("lang-switch__option")
		}
		h.raw(">")
		h.text(option.Label)
		h.raw("</a>")
	}
	h.raw("</nav>")
}
