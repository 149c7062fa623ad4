package i18n

import (
	"fmt"
	"maps"
	"sort"
)

// DefaultLang is the fallback language used when no default language is specified.
const DefaultLang = "en"

// DefaultNamespace is the namespace holding the form engine messages.
const DefaultNamespace = "forms"

// M is a map of named placeholder values.
type M = map[string]any

// I18n is an immutable message catalog with a fallback language.
// It is safe for concurrent use.
type I18n struct {
	// Flattened translations map for O(1) lookups.
	// Key format: "lang:namespace:key.path"
	translations map[string]string

	// Optional handler called when a key is not found in any language.
	missingKeyHandler func(lang, namespace, key string)

	// Default/fallback language.
	defaultLang string

	// Pre-computed list of available languages, default first.
	languages []string

	// Languages seen while loading translations.
	langSet map[string]struct{}
}

// Option configures the I18n instance during construction.
type Option func(*I18n) error

// New creates a new I18n instance with the given options.
// All configuration happens during construction, making the instance
// immutable and thread-safe from creation.
func New(opts ...Option) (*I18n, error) {
	i := &I18n{
		translations: make(map[string]string),
		defaultLang:  DefaultLang,
	}

	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if i.defaultLang == "" {
		return nil, ErrEmptyLanguage
	}

	i.languages = i.buildLanguagesList()

	return i, nil
}

// WithDefaultLanguage sets the default/fallback language.
func WithDefaultLanguage(lang string) Option {
	return func(i *I18n) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		i.defaultLang = lang
		return nil
	}
}

// WithLanguages pins the list of supported languages.
// Without it the list is derived from the loaded translations.
func WithLanguages(langs ...string) Option {
	return func(i *I18n) error {
		for _, lang := range langs {
			if lang != "" {
				i.languages = append(i.languages, lang)
			}
		}
		return nil
	}
}

// WithTranslations loads translations for a specific language and namespace.
// The translations map can be nested; it is flattened with dot notation.
func WithTranslations(lang, namespace string, translations map[string]any) Option {
	return func(i *I18n) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		if namespace == "" {
			return ErrEmptyNamespace
		}
		i.add(lang, namespace, translations)
		return nil
	}
}

// WithMissingKeyHandler sets a handler called when a key is found neither in
// the requested language nor in the default language.
func WithMissingKeyHandler(handler func(lang, namespace, key string)) Option {
	return func(i *I18n) error {
		i.missingKeyHandler = handler
		return nil
	}
}

// Lookup returns the raw template for key, trying the exact language, its
// base language ("de" for "de-AT"), then the default language.
func (i *I18n) Lookup(lang, namespace, key string) (string, bool) {
	if tmpl, ok := i.translations[buildKey(lang, namespace, key)]; ok {
		return tmpl, true
	}

	if base := baseLanguage(lang); base != lang {
		if tmpl, ok := i.translations[buildKey(base, namespace, key)]; ok {
			return tmpl, true
		}
	}

	if lang != i.defaultLang && baseLanguage(lang) != i.defaultLang {
		if tmpl, ok := i.translations[buildKey(i.defaultLang, namespace, key)]; ok {
			return tmpl, true
		}
	}

	if i.missingKeyHandler != nil {
		i.missingKeyHandler(lang, namespace, key)
	}

	return "", false
}

// T retrieves a translation and replaces named placeholders.
// Returns the key itself if no translation exists.
func (i *I18n) T(lang, namespace, key string, placeholders ...M) string {
	tmpl, ok := i.Lookup(lang, namespace, key)
	if !ok {
		return key
	}
	return replacePlaceholdersWithMerge(tmpl, placeholders...)
}

// Has reports whether key exists in lang or in the default language.
func (i *I18n) Has(lang, namespace, key string) bool {
	_, ok := i.translations[buildKey(lang, namespace, key)]
	if !ok {
		_, ok = i.translations[buildKey(i.defaultLang, namespace, key)]
	}
	return ok
}

// Languages returns the list of available languages, default language first.
func (i *I18n) Languages() []string {
	return i.languages
}

// DefaultLanguage returns the default/fallback language.
func (i *I18n) DefaultLanguage() string {
	return i.defaultLang
}

func (i *I18n) add(lang, namespace string, translations map[string]any) {
	for key, value := range flattenTranslations(translations, "") {
		i.translations[buildKey(lang, namespace, key)] = value
	}
	i.seen(lang)
}

func (i *I18n) seen(lang string) {
	if i.langSet == nil {
		i.langSet = make(map[string]struct{})
	}
	i.langSet[lang] = struct{}{}
}

func (i *I18n) buildLanguagesList() []string {
	set := make(map[string]struct{}, len(i.langSet)+len(i.languages))
	if len(i.languages) > 0 {
		for _, lang := range i.languages {
			set[lang] = struct{}{}
		}
	} else {
		maps.Copy(set, i.langSet)
	}
	delete(set, i.defaultLang)

	others := make([]string, 0, len(set))
	for lang := range set {
		others = append(others, lang)
	}
	sort.Strings(others)

	return append([]string{i.defaultLang}, others...)
}

func buildKey(lang, namespace, key string) string {
	return lang + ":" + namespace + ":" + key
}

func flattenTranslations(data map[string]any, prefix string) map[string]string {
	result := make(map[string]string)

	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]any:
			maps.Copy(result, flattenTranslations(v, fullKey))
		case map[string]string:
			for subKey, subVal := range v {
				result[fullKey+"."+subKey] = subVal
			}
		default:
			result[fullKey] = fmt.Sprintf("%v", v)
		}
	}

	return result
}
