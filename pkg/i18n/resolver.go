package i18n

import "fmt"

// Resolver resolves message keys for one locale, falling back to the
// catalog's default language. A key missing from both is a configuration
// fault and panics.
type Resolver struct {
	i18n      *I18n
	lang      string
	namespace string
	format    *LocaleFormat
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithNamespace overrides the catalog namespace. Defaults to DefaultNamespace.
func WithNamespace(namespace string) ResolverOption {
	return func(r *Resolver) {
		if namespace != "" {
			r.namespace = namespace
		}
	}
}

// WithFormat overrides the number format used for message arguments.
func WithFormat(format *LocaleFormat) ResolverOption {
	return func(r *Resolver) {
		if format != nil {
			r.format = format
		}
	}
}

// NewResolver creates a Resolver for lang. An empty lang selects the
// catalog's default language.
func NewResolver(catalog *I18n, lang string, opts ...ResolverOption) *Resolver {
	if catalog == nil {
		panic(ErrNilCatalog)
	}
	if lang == "" {
		lang = catalog.DefaultLanguage()
	}

	r := &Resolver{
		i18n:      catalog,
		lang:      lang,
		namespace: DefaultNamespace,
		format:    FormatFor(lang),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Language returns the locale the resolver was created for.
func (r *Resolver) Language() string {
	return r.lang
}

// Has reports whether key resolves in the locale or the fallback language.
func (r *Resolver) Has(key string) bool {
	return r.i18n.Has(r.lang, r.namespace, key) ||
		r.i18n.Has(baseLanguage(r.lang), r.namespace, key)
}

// Resolve returns the message for key with positional placeholders
// {{0}}, {{1}}, ... replaced by the localized args.
// It panics with an error wrapping ErrMissingKey when the key is unknown.
func (r *Resolver) Resolve(key string, args ...any) string {
	tmpl, ok := r.i18n.Lookup(r.lang, r.namespace, key)
	if !ok {
		panic(fmt.Errorf("%w: %q (locale %q, namespace %q)", ErrMissingKey, key, r.lang, r.namespace))
	}

	if len(args) == 0 {
		return tmpl
	}

	formatted := make([]string, len(args))
	for idx, arg := range args {
		formatted[idx] = r.format.FormatArg(arg)
	}
	return Interpolate(tmpl, formatted...)
}

// TranslateMessage adapts Resolve to the validator.TranslateFunc signature.
func (r *Resolver) TranslateMessage(key string, args []any) string {
	return r.Resolve(key, args...)
}
