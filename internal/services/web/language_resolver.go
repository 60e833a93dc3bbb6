package web

import (
	"net/http"

	webi18n "github.com/louisbranch/ems-protocols/internal/services/web/platform/i18n"
)

// resolveRequestLanguage picks the page language from the lang query
// parameter, the language cookie, then Accept-Language.
func resolveRequestLanguage(r *http.Request) string {
	return webi18n.ResolveTag(r, nil).String()
}
