package binder

import (
	"net/http"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/forms/pkg/i18n"
)

// LocaleSource reads a locale candidate from a request.
// Returns the value and true if found, or ("", false) if not present.
type LocaleSource func(r *http.Request) (string, bool)

// FromQuery returns a source that reads a query parameter.
func FromQuery(name string) LocaleSource {
	return func(r *http.Request) (string, bool) {
		v := r.URL.Query().Get(name)
		return v, v != ""
	}
}

// FromCookie returns a source that reads a plain cookie.
func FromCookie(name string) LocaleSource {
	return func(r *http.Request) (string, bool) {
		c, err := r.Cookie(name)
		if err != nil || c.Value == "" {
			return "", false
		}
		return c.Value, true
	}
}

// FromHeader returns a source that reads a request header.
func FromHeader(name string) LocaleSource {
	return func(r *http.Request) (string, bool) {
		v := r.Header.Get(name)
		return v, v != ""
	}
}

// DefaultLocaleSources checks the "lang" query parameter, then the "lang"
// cookie, then Accept-Language.
func DefaultLocaleSources() []LocaleSource {
	return []LocaleSource{
		FromQuery("lang"),
		FromCookie("lang"),
		FromHeader("Accept-Language"),
	}
}

// Locale negotiates the request locale against the catalog languages.
// Sources are tried in order; each candidate goes through Accept-Language
// matching, so "de-AT" or "fr;q=0.8" work as well as plain tags. Returns
// ("", false) when no source yields a supported language.
func Locale(r *http.Request, catalog *i18n.I18n, sources ...LocaleSource) (string, bool) {
	if catalog == nil {
		return "", false
	}
	if len(sources) == 0 {
		sources = DefaultLocaleSources()
	}

	for _, src := range sources {
		v, ok := src(r)
		if !ok {
			continue
		}
		lang := catalog.Match(v)
		if catalog.Supports(lang) && (lang != catalog.DefaultLanguage() || mentions(v, lang)) {
			return lang, true
		}
	}
	return "", false
}

// mentions reports whether candidate names lang, so an explicit request for
// the default language is not mistaken for a failed match.
func mentions(candidate, lang string) bool {
	prefs, _, err := language.ParseAcceptLanguage(candidate)
	if err != nil {
		return false
	}
	for _, p := range prefs {
		base, _ := p.Base()
		if base.String() == lang || p.String() == lang {
			return true
		}
	}
	return false
}
