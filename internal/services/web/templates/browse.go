package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// BrowserTargetID is the element HTMX swaps when a filter changes.
const BrowserTargetID = "protocol-browser"

// FilterOption is one category or subcategory button.
type FilterOption struct {
	ID     string
	Label  string
	Icon   string
	Color  string
	URL    string
	Active bool
}

// ProtocolCard is one protocol in the result grid.
type ProtocolCard struct {
	Title            string
	URL              string
	CategoryLabel    string
	CategoryColor    string
	SubcategoryLabel string
	SubcategoryColor string
}

// BrowseView carries everything the protocol browser renders.
type BrowseView struct {
	Categories    []FilterOption
	Subcategories []FilterOption
	FilterLabel   string
	Filtered      bool
	ClearURL      string
	// JSONURL is the API listing for the same selection.
	JSONURL string
	Cards   []ProtocolCard
}

// ProtocolBrowser renders filter controls and the filtered protocol grid.
func ProtocolBrowser(view BrowseView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<section class="protocol-browser"`)
		h.attr("id", BrowserTargetID)
		h.raw(">")

		writeFilterGroup(h, T(loc, "web.browse.categories"), "category-filters", view.Categories)
		if len(view.Subcategories) > 0 {
			writeFilterGroup(h, T(loc, "web.browse.subcategories"), "subcategory-filters", view.Subcategories)
		}

		h.raw(`<div class="filter-bar">`)
		writeIcon(h, "filter", "filter-bar__icon")
		h.raw(`<span class="filter-bar__label">`)
		h.text(T(loc, "web.browse.showing"))
		h.raw(`: <strong data-filter-label>`)
		h.text(view.FilterLabel)
		h.raw(`</strong></span><span class="filter-bar__count">`)
		h.text(T(loc, "web.browse.count", len(view.Cards)))
		h.raw("</span>")
		if view.Filtered {
			h.raw("<a")
			h.classes("clear-filters")
			writeHTMXNav(h, view.ClearURL)
			h.raw(">")
			writeIcon(h, "x", "")
			h.text(T(loc, "web.browse.clear_filters"))
			h.raw("</a>")
		}
		if view.JSONURL != "" {
			h.raw("<a")
			h.classes("json-link")
			h.attr("href", view.JSONURL)
			h.attr("type", "application/json")
			h.raw(">")
			h.text(T(loc, "web.browse.json"))
			h.raw("</a>")
		}
		h.raw("</div>")

		if len(view.Cards) == 0 {
			h.raw(`<p class="empty-state">`)
			h.text(T(loc, "web.browse.empty"))
			h.raw("</p>")
		} else {
			h.raw(`<ul class="protocol-grid" data-count="`)
			h.raw(strconv.Itoa(len(view.Cards)))
			h.raw(`">`)
			for _, card := range view.Cards {
				writeProtocolCard(h, card)
			}
			h.raw("</ul>")
		}

		h.raw("</section>")
		return h.err
	})
}

func writeFilterGroup(h *htmlWriter, heading string, class string, options []FilterOption) {
	h.raw("<nav")
	h.classes("filter-group", class)
	h.attr("aria-label", heading)
	h.raw(`><h2 class="filter-group__heading">`)
	h.text(heading)
	h.raw("</h2>")
	for _, option := range options {
		active := ""
		pressed := "false"
		if option.Active {
			active = "is-active"
			pressed = "true"
		}
		h.raw("<a")
		h.classes("filter-button", toneClass(option.Color), active)
		h.attr("data-id", option.ID)
		h.attr("aria-pressed", pressed)
		writeHTMXNav(h, option.URL)
		h.raw(">")
		writeIcon(h, option.Icon, "")
		h.raw("<span>")
		h.text(option.Label)
		h.raw("</span></a>")
	}
	h.raw("</nav>")
}

// writeHTMXNav emits href plus the attributes that swap only the browser
// section and keep the address bar in sync.
func writeHTMXNav(h *htmlWriter, url string) {
	h.attr("href", url)
	h.attr("hx-get", url)
	h.attr("hx-target", "#"+BrowserTargetID)
	h.raw(` hx-swap="outerHTML" hx-push-url="true"`)
}

func writeProtocolCard(h *htmlWriter, card ProtocolCard) {
	h.raw(`<li class="protocol-card"><a class="protocol-card__link"`)
	h.attr("href", card.URL)
	h.raw(">")
	writeIcon(h, "file-text", "protocol-card__icon")
	h.raw(`<h3 class="protocol-card__title">`)
	h.text(card.Title)
	h.raw(`</h3><div class="protocol-card__badges">`)
	writeBadge(h, card.CategoryLabel, card.CategoryColor)
	writeBadge(h, card.SubcategoryLabel, card.SubcategoryColor)
	h.raw("</div></a></li>")
}

func writeBadge(h *htmlWriter, label string, color string) {
	h.raw("<span")
	h.classes("badge", toneClass(color))
	h.raw(">")
	h.text(label)
	h.raw("</span>")
}
