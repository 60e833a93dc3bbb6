// Package weberror renders shared error responses for web modules.
package weberror

import (
	"log"
	"net/http"
	"strings"

	module "github.com/louisbranch/ems-protocols/internal/services/web/module"
	apperrors "github.com/louisbranch/ems-protocols/internal/services/web/platform/errors"
	"github.com/louisbranch/ems-protocols/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/ems-protocols/internal/services/web/platform/i18n"
	"github.com/louisbranch/ems-protocols/internal/services/web/platform/pagerender"
	"github.com/louisbranch/ems-protocols/internal/services/web/templates"
)

// ShouldRenderAppError reports whether status should use the error-page UX.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc webi18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	return http.StatusText(statusCode)
}

// WriteAppError writes a localized error page for full-page and HTMX requests.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, resolveLanguage module.ResolveLanguage) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	loc, _ := webi18n.ResolveLocalizer(nil, r, resolveLanguage)
	err := pagerender.WriteModulePage(w, r, resolveLanguage, pagerender.ModulePage{
		Heading:    templates.T(loc, headingKey(statusCode)),
		StatusCode: statusCode,
		Fragment:   templates.ErrorState(statusCode, loc),
	})
	if err != nil {
		log.Printf("render error page status=%d request_id=%s: %v", statusCode, httpx.RequestIDFrom(r), err)
	}
}

// WriteModuleError logs err and writes a user-safe localized response.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, resolveLanguage module.ResolveLanguage) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode >= http.StatusInternalServerError {
		log.Printf("module error status=%d request_id=%s: %v", statusCode, httpx.RequestIDFrom(r), err)
	}
	if ShouldRenderAppError(statusCode) {
		WriteAppError(w, r, statusCode, resolveLanguage)
		return
	}
	loc, _ := webi18n.ResolveLocalizer(w, r, resolveLanguage)
	http.Error(w, PublicMessage(loc, err), statusCode)
}

// NotFound is a handler that renders the localized not-found page.
func NotFound(resolveLanguage module.ResolveLanguage) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteAppError(w, r, http.StatusNotFound, resolveLanguage)
	})
}

func headingKey(statusCode int) string {
	if statusCode == http.StatusNotFound {
		return "web.error.not_found.title"
	}
	return "web.error.internal.title"
}
