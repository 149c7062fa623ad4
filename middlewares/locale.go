package middlewares

import (
	"net/http"

	"github.com/dmitrymomot/forms/pkg/binder"
	"github.com/dmitrymomot/forms/pkg/i18n"
)

// LocaleConfig configures the Locale middleware.
type LocaleConfig struct {
	Sources []binder.LocaleSource
	// SetHeader controls the Content-Language response header.
	SetHeader bool
}

// LocaleOption configures LocaleConfig.
type LocaleOption func(*LocaleConfig)

// WithLocaleSources sets the sources tried in order.
// Defaults to binder.DefaultLocaleSources.
func WithLocaleSources(sources ...binder.LocaleSource) LocaleOption {
	return func(cfg *LocaleConfig) {
		cfg.Sources = sources
	}
}

// WithoutContentLanguage disables the Content-Language response header.
func WithoutContentLanguage() LocaleOption {
	return func(cfg *LocaleConfig) {
		cfg.SetHeader = false
	}
}

// Locale returns middleware that negotiates the request language once
// against catalog and stores it in the request context. Forms bound with
// BindRequest pick it up; handlers read it with GetLanguage.
func Locale(catalog *i18n.I18n, opts ...LocaleOption) func(http.Handler) http.Handler {
	cfg := &LocaleConfig{SetHeader: true}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang, ok := binder.Locale(r, catalog, cfg.Sources...)
			if !ok {
				lang = catalog.DefaultLanguage()
			}

			if cfg.SetHeader {
				w.Header().Set("Content-Language", lang)
			}

			next.ServeHTTP(w, r.WithContext(i18n.WithLanguage(r.Context(), lang)))
		})
	}
}

// GetLanguage returns the language negotiated by Locale.
// Returns an empty string if the Locale middleware is not used.
func GetLanguage(r *http.Request) string {
	lang, _ := i18n.LanguageFromContext(r.Context())
	return lang
}
