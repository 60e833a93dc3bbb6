package templates

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/ems-protocols/internal/services/web/routepath"
)

type errorCopy struct {
	title string
	body  string
}

func errorCopyFor(statusCode int) errorCopy {
	switch statusCode {
	case http.StatusNotFound:
		return errorCopy{title: "web.error.not_found.title", body: "web.error.not_found.body"}
	case http.StatusBadRequest:
		return errorCopy{title: "web.error.bad_request.title", body: "web.error.bad_request.body"}
	default:
		return errorCopy{title: "web.error.internal.title", body: "web.error.internal.body"}
	}
}

// ErrorPageTitle returns the browser page title for error pages.
func ErrorPageTitle(statusCode int, loc Localizer) string {
	return PageTitle(loc, T(loc, errorCopyFor(statusCode).title))
}

// ErrorState renders the error panel shown inside the layout.
func ErrorState(statusCode int, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		messages := errorCopyFor(statusCode)
		h := newHTMLWriter(w)
		h.raw(`<section class="error-state" data-status="`)
		h.raw(strconv.Itoa(statusCode))
		h.raw(`"><h2>`)
		h.text(T(loc, messages.title))
		h.raw("</h2><p>")
		h.text(T(loc, messages.body))
		h.raw(`</p><a class="back-link"`)
		h.attr("href", routepath.Root)
		h.raw(">")
		writeIcon(h, "arrow-left", "")
		h.text(T(loc, "web.error.back_home"))
		h.raw("</a></section>")
		return h.err
	})
}
