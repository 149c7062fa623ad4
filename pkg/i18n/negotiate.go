package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Match negotiates the best available language for an Accept-Language
// header value. It returns the default language when the header is empty,
// malformed or names nothing the catalog knows.
func (i *I18n) Match(acceptLanguage string) string {
	if strings.TrimSpace(acceptLanguage) == "" || len(i.languages) == 0 {
		return i.defaultLang
	}

	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return i.defaultLang
	}

	tags := make([]language.Tag, len(i.languages))
	for idx, lang := range i.languages {
		tags[idx] = language.Make(lang)
	}

	_, idx, conf := language.NewMatcher(tags).Match(prefs...)
	if conf == language.No {
		return i.defaultLang
	}
	return i.languages[idx]
}

// Supports reports whether lang, or its base language, has translations.
func (i *I18n) Supports(lang string) bool {
	base := baseLanguage(lang)
	for _, l := range i.languages {
		if l == lang || l == base {
			return true
		}
	}
	return false
}

// baseLanguage returns the primary subtag: "de" for "de-AT" or "de_AT".
func baseLanguage(lang string) string {
	if idx := strings.IndexAny(lang, "-_"); idx > 0 {
		return lang[:idx]
	}
	return lang
}
