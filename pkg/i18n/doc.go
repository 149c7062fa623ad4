// Package i18n holds the message catalog used to turn validation fault keys
// into display text.
//
// An [I18n] instance is an immutable, concurrency-safe catalog keyed by
// language, namespace and message key. Catalogs are loaded at construction
// from maps or from JSON/YAML files laid out as {lang}/{namespace}.{ext}:
//
//	catalog, err := i18n.New(
//		i18n.WithDefaultLanguage("en"),
//		i18n.WithDefaultCatalog(),
//		i18n.WithYAMLDir(appMessages),
//	)
//
// [Default] returns the embedded catalog shipping English, German and French
// messages for every key the form engine produces, under the "forms"
// namespace.
//
// # Resolving messages
//
// A [Resolver] is bound to one locale. It looks a key up in the locale, then
// in its base language, then in the catalog's default language. A key
// missing from all of them panics with an error wrapping [ErrMissingKey].
// Templates use positional placeholders; numeric arguments are formatted
// with the locale's separators:
//
//	r := i18n.NewResolver(i18n.Default(), "de")
//	r.Resolve("field_file_sizelimit", 1000) // "Dateien sind auf 1.000 Bytes begrenzt."
//
// # Locale negotiation
//
// [I18n.Match] picks the best supported language for an Accept-Language
// header using golang.org/x/text/language.
package i18n
