package i18n

import (
	"embed"
	"io/fs"
	"sync"
)

//go:embed catalog
var catalogFS embed.FS

var (
	defaultCatalog     *I18n
	defaultCatalogErr  error
	defaultCatalogOnce sync.Once
)

// CatalogFS returns the embedded message catalog laid out as
// {lang}/forms.yaml.
func CatalogFS() fs.FS {
	sub, err := fs.Sub(catalogFS, "catalog")
	if err != nil {
		panic(err)
	}
	return sub
}

// WithDefaultCatalog loads the embedded English, German and French messages.
func WithDefaultCatalog() Option {
	return WithYAMLDir(CatalogFS())
}

// Default returns the shared catalog built from the embedded messages with
// English as the fallback language.
func Default() *I18n {
	defaultCatalogOnce.Do(func() {
		defaultCatalog, defaultCatalogErr = New(
			WithDefaultLanguage(DefaultLang),
			WithDefaultCatalog(),
		)
	})
	if defaultCatalogErr != nil {
		panic(defaultCatalogErr)
	}
	return defaultCatalog
}
