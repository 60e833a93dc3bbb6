package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/ems-protocols/internal/platform/icons"
)

// Icon renders a sprite reference for a Lucide icon. Unknown names fall back
// to the default document icon.
func Icon(name string, class string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		writeIcon(h, name, class)
		return h.err
	})
}

func writeIcon(h *htmlWriter, name string, class string) {
	h.raw("<svg")
	h.classes("icon", class)
	h.raw(` aria-hidden="true" focusable="false"><use`)
	h.attr("href", "#"+icons.LucideSymbolID(icons.NameOrDefault(name)))
	h.raw("></use></svg>")
}
