package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// ProtocolView describes one protocol detail page.
type ProtocolView struct {
	ID               string
	Title            string
	CategoryLabel    string
	CategoryColor    string
	SubcategoryLabel string
	SubcategoryColor string
	BackURL          string
}

// ProtocolDetail renders a single protocol with its classification.
func ProtocolDetail(view ProtocolView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<article class="protocol-detail"><a class="back-link"`)
		h.attr("href", view.BackURL)
		h.raw(">")
		writeIcon(h, "arrow-left", "")
		h.text(T(loc, "web.protocol.back"))
		h.raw(`</a><header class="protocol-detail__header">`)
		writeIcon(h, "file-text", "protocol-detail__icon")
		h.raw("<h2>")
		h.text(view.Title)
		h.raw(`</h2></header><dl class="protocol-detail__meta"><dt>`)
		h.text(T(loc, "web.protocol.category"))
		h.raw("</dt><dd>")
		writeBadge(h, view.CategoryLabel, view.CategoryColor)
		h.raw("</dd><dt>")
		h.text(T(loc, "web.protocol.subcategory"))
		h.raw("</dt><dd>")
		writeBadge(h, view.SubcategoryLabel, view.SubcategoryColor)
		h.raw("</dd><dt>")
		h.text(T(loc, "web.protocol.identifier"))
		h.raw("</dt><dd><code>")
		h.text(view.ID)
		h.raw("</code></dd></dl></article>")
		return h.err
	})
}
