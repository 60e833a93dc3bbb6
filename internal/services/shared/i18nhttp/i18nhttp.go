// Package i18nhttp resolves the request language for HTTP surfaces.
package i18nhttp

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	platformi18n "github.com/louisbranch/ems-protocols/internal/platform/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the reader's language preference.
	LangCookieName = "ems_lang"

	langCookieMaxAge = 365 * 24 * time.Hour
	langLabelPrefix  = "core.lang."
)

// LanguageOption is one entry of the language switcher.
type LanguageOption struct {
	Tag    string
	Label  string
	URL    string
	Active bool
}

// tagSource inspects one part of the request for a language preference.
type tagSource struct {
	read    func(*http.Request) (language.Tag, bool)
	persist bool
}

// sources are consulted in order; the first hit wins.
var sources = []tagSource{
	{read: fromQuery, persist: true},
	{read: fromCookie},
	{read: fromAcceptLanguage},
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// ResolveTag picks the request language from ?lang, then the preference
// cookie, then Accept-Language. The bool reports whether the choice came from
// the query string and should be persisted.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return platformi18n.DefaultTag(), false
	}
	for _, source := range sources {
		if tag, ok := source.read(r); ok {
			return tag, source.persist
		}
	}
	return platformi18n.DefaultTag(), false
}

func fromQuery(r *http.Request) (language.Tag, bool) {
	if r.URL == nil {
		return language.Und, false
	}
	return platformi18n.ParseTag(r.URL.Query().Get(LangParam))
}

func fromCookie(r *http.Request) (language.Tag, bool) {
	cookie, err := r.Cookie(LangCookieName)
	if err != nil {
		return language.Und, false
	}
	return platformi18n.ParseTag(cookie.Value)
}

func fromAcceptLanguage(r *http.Request) (language.Tag, bool) {
	accept := strings.TrimSpace(r.Header.Get("Accept-Language"))
	if accept == "" {
		return language.Und, false
	}
	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(tags) == 0 {
		return language.Und, false
	}
	return platformi18n.MatchTags(tags), true
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int(langCookieMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// BuildLanguageOptions lists supported languages with links that keep the
// current path and browse selection.
func BuildLanguageOptions(active language.Tag, path string, rawQuery string, labelForTag func(language.Tag) string) []LanguageOption {
	supported := platformi18n.SupportedTags()
	options := make([]LanguageOption, 0, len(supported))
	for _, tag := range supported {
		label := tag.String()
		if labelForTag != nil {
			if resolved := strings.TrimSpace(labelForTag(tag)); resolved != "" {
				label = resolved
			}
		}
		options = append(options, LanguageOption{
			Tag:    tag.String(),
			Label:  label,
			URL:    LanguageURL(path, rawQuery, tag.String()),
			Active: tag == active,
		})
	}
	return options
}

// LanguageURL returns path with the lang parameter set and every other query
// parameter preserved.
func LanguageURL(path string, rawQuery string, tag string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		path = "/"
	}
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		query = url.Values{}
	}
	query.Set(LangParam, tag)
	return (&url.URL{Path: path, RawQuery: query.Encode()}).String()
}

// LanguageKeyLabel maps a supported tag to its catalog label key, e.g.
// pt-BR to "core.lang.pt_br". Unsupported tags map to their own string.
func LanguageKeyLabel(tag language.Tag) string {
	for _, supported := range platformi18n.SupportedTags() {
		if supported == tag {
			return langLabelPrefix + strings.ToLower(strings.ReplaceAll(tag.String(), "-", "_"))
		}
	}
	return tag.String()
}
