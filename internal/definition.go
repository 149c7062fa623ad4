package internal

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/dmitrymomot/forms/pkg/binder"
	"github.com/dmitrymomot/forms/pkg/i18n"
	"github.com/dmitrymomot/forms/pkg/logger"
)

// Submission methods.
const (
	MethodGet  = "get"
	MethodPost = "post"
)

// Input is the transport snapshot a form binds to.
type Input = binder.Input

// Definition is an immutable form declaration. It is safe to share across
// requests; every Bind creates fresh per-request state.
type Definition struct {
	name       string
	method     string
	multipart  bool
	defaults   map[string]any
	locale     string
	catalog    *i18n.I18n
	logger     *slog.Logger
	fields     []*FieldSpec
	index      map[string]int
	uploadDir  string
	maxMemory  int64
	fileFields []string
}

// Option configures a Definition.
type Option func(*Definition)

// WithMethod sets the submission method, "get" or "post". Defaults to post.
func WithMethod(method string) Option {
	return func(d *Definition) {
		d.method = strings.ToLower(strings.TrimSpace(method))
	}
}

// WithMultipart makes the form accept file uploads. Requires post.
func WithMultipart() Option {
	return func(d *Definition) {
		d.multipart = true
	}
}

// WithDefaults sets initial values. Submitted values take precedence.
func WithDefaults(defaults map[string]any) Option {
	return func(d *Definition) {
		if d.defaults == nil {
			d.defaults = make(map[string]any, len(defaults))
		}
		maps.Copy(d.defaults, defaults)
	}
}

// WithLocale sets the locale used when a bind does not choose one.
func WithLocale(lang string) Option {
	return func(d *Definition) {
		if lang != "" {
			d.locale = lang
		}
	}
}

// WithCatalog replaces the embedded message catalog.
func WithCatalog(catalog *i18n.I18n) Option {
	return func(d *Definition) {
		if catalog != nil {
			d.catalog = catalog
		}
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *slog.Logger) Option {
	return func(d *Definition) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithFields declares fields in rendering order.
func WithFields(fields ...*FieldSpec) Option {
	return func(d *Definition) {
		d.fields = append(d.fields, fields...)
	}
}

// WithUploadDir sets where BindRequest spools uploads. Empty means the
// system temp directory.
func WithUploadDir(dir string) Option {
	return func(d *Definition) {
		d.uploadDir = dir
	}
}

// WithMaxMemory bounds multipart parsing in BindRequest.
func WithMaxMemory(n int64) Option {
	return func(d *Definition) {
		if n > 0 {
			d.maxMemory = n
		}
	}
}

// Define builds a form definition. Field names must be non-empty and
// unique, and multipart forms must use post.
func Define(name string, opts ...Option) (*Definition, error) {
	d := &Definition{
		name:   name,
		method: MethodPost,
		locale: i18n.DefaultLang,
		logger: logger.NewNope(),
	}
	for _, opt := range opts {
		opt(d)
	}

	if strings.TrimSpace(d.name) == "" {
		return nil, ErrEmptyFormName
	}
	if d.method != MethodGet && d.method != MethodPost {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMethod, d.method)
	}
	if d.multipart && d.method != MethodPost {
		return nil, ErrMultipartMethod
	}

	d.index = make(map[string]int, len(d.fields))
	d.fileFields = []string{}
	for i, f := range d.fields {
		if f == nil {
			return nil, fmt.Errorf("%w: position %d", ErrNilField, i)
		}
		if strings.TrimSpace(f.name) == "" {
			return nil, fmt.Errorf("%w: position %d", ErrEmptyFieldName, i)
		}
		if _, dup := d.index[f.name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateField, f.name)
		}
		d.index[f.name] = i
		if _, ok := f.kind.(acceptor); ok {
			d.fileFields = append(d.fileFields, f.name)
		}
	}

	if d.catalog == nil {
		d.catalog = i18n.Default()
	}
	if err := d.checkMessageKeys(); err != nil {
		return nil, err
	}

	return d, nil
}

// checkMessageKeys requires every caller-chosen fault key to exist in the
// catalog's default language, which every locale falls back to.
func (d *Definition) checkMessageKeys() error {
	lang := d.catalog.DefaultLanguage()
	for _, f := range d.fields {
		k, ok := f.kind.(messageKeyer)
		if !ok {
			continue
		}
		for _, key := range k.messageKeys() {
			if !d.catalog.Has(lang, i18n.DefaultNamespace, key) {
				return fmt.Errorf("%w: field %q key %q (locale %q)", ErrUnknownMessage, f.name, key, lang)
			}
		}
	}
	return nil
}

// MustDefine is like Define but panics on error.
func MustDefine(name string, opts ...Option) *Definition {
	d, err := Define(name, opts...)
	if err != nil {
		panic(err)
	}
	return d
}

// Name returns the form name.
func (d *Definition) Name() string { return d.name }

// Method returns "get" or "post".
func (d *Definition) Method() string { return d.method }

// IsMultipart reports whether the form accepts uploads.
func (d *Definition) IsMultipart() bool { return d.multipart }

// Locale returns the default locale.
func (d *Definition) Locale() string { return d.locale }

// Catalog returns the message catalog.
func (d *Definition) Catalog() *i18n.I18n { return d.catalog }

// Fields returns the field declarations in order.
func (d *Definition) Fields() []*FieldSpec { return slices.Clone(d.fields) }

// Field returns the declaration of name.
func (d *Definition) Field(name string) (*FieldSpec, bool) {
	i, ok := d.index[name]
	if !ok {
		return nil, false
	}
	return d.fields[i], true
}

type bindConfig struct {
	ctx      context.Context
	resolver *i18n.Resolver
	locale   string
}

// BindOption configures one Bind call.
type BindOption func(*bindConfig)

// WithResolver sets the message resolver, overriding the locale.
func WithResolver(r *i18n.Resolver) BindOption {
	return func(c *bindConfig) {
		c.resolver = r
	}
}

// WithBindLocale selects the locale for this bind.
func WithBindLocale(lang string) BindOption {
	return func(c *bindConfig) {
		if lang != "" {
			c.locale = lang
		}
	}
}

// WithContext sets the context passed to the logger.
func WithContext(ctx context.Context) BindOption {
	return func(c *bindConfig) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// Bind creates a form for one request from an input snapshot.
func (d *Definition) Bind(in Input, opts ...BindOption) *Form {
	cfg := bindConfig{ctx: context.Background(), locale: d.locale}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.resolver == nil {
		cfg.resolver = i18n.NewResolver(d.catalog, cfg.locale)
	}
	return newForm(d, in, cfg)
}

// BindRequest reads r according to the form's method and negotiates the
// locale from the request before binding. Only file parts of declared file
// fields are spooled; the caller releases them with Form.Cleanup. A language already stored in the
// request context is used when the catalog supports it. Explicit options win
// over the negotiated locale.
func (d *Definition) BindRequest(r *http.Request, opts ...BindOption) (*Form, error) {
	in, err := binder.Bind(r, binder.Config{
		Method:     d.method,
		Multipart:  d.multipart,
		MaxMemory:  d.maxMemory,
		UploadDir:  d.uploadDir,
		FileFields: d.fileFields,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBindRequest, err)
	}

	base := []BindOption{WithContext(r.Context())}
	if lang, ok := d.requestLocale(r); ok {
		base = append(base, WithBindLocale(lang))
	}
	return d.Bind(in, append(base, opts...)...), nil
}

func (d *Definition) requestLocale(r *http.Request) (string, bool) {
	if lang, ok := i18n.LanguageFromContext(r.Context()); ok && d.catalog.Supports(lang) {
		return lang, true
	}
	return binder.Locale(r, d.catalog)
}
