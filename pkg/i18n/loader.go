package i18n

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

type decodeFunc func(data []byte, v any) error

var (
	jsonDecoders = map[string]decodeFunc{".json": json.Unmarshal}
	yamlDecoders = map[string]decodeFunc{".yaml": yaml.Unmarshal, ".yml": yaml.Unmarshal}
)

// WithJSONDir loads {lang}/{namespace}.json message files from fsys.
//
//	en/forms.json
//	de/forms.json
func WithJSONDir(fsys fs.FS) Option {
	return func(i *I18n) error {
		return i.loadDir(fsys, jsonDecoders)
	}
}

// WithYAMLDir loads {lang}/{namespace}.yaml and .yml message files from fsys.
// The built-in catalog is stored this way:
//
//	en/forms.yaml
//	fr/forms.yml
func WithYAMLDir(fsys fs.FS) Option {
	return func(i *I18n) error {
		return i.loadDir(fsys, yamlDecoders)
	}
}

// loadDir walks fsys and merges every file with a known extension. Files of
// other types are skipped; message files outside a language directory are
// an error.
func (i *I18n) loadDir(fsys fs.FS, decoders map[string]decodeFunc) error {
	return fs.WalkDir(fsys, ".", func(name string, d fs.DirEntry, err error) error {
		switch {
		case err != nil:
			return err
		case d.IsDir():
			return nil
		}

		decode, ok := decoders[strings.ToLower(path.Ext(name))]
		if !ok {
			return nil
		}

		lang, namespace, err := splitCatalogPath(name)
		if err != nil {
			return err
		}

		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("i18n: read %q: %w", name, err)
		}

		messages := map[string]any{}
		if err := decode(data, &messages); err != nil {
			return fmt.Errorf("%w: %q: %v", ErrInvalidFile, name, err)
		}

		i.add(lang, namespace, messages)
		return nil
	})
}

// splitCatalogPath turns "de/forms.yaml" into ("de", "forms").
func splitCatalogPath(name string) (lang, namespace string, err error) {
	dir, file := path.Split(name)
	lang = path.Base(path.Clean(dir))
	if dir == "" || lang == "." {
		return "", "", fmt.Errorf("%w: %q is not inside a language directory", ErrInvalidFile, name)
	}
	return lang, strings.TrimSuffix(file, path.Ext(file)), nil
}
