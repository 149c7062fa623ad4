package internal

import (
	"context"
	"fmt"
	"log/slog"
	"maps"

	"github.com/dmitrymomot/forms/pkg/i18n"
	"github.com/dmitrymomot/forms/pkg/render"
	"github.com/dmitrymomot/forms/pkg/validator"
)

// Message keys of the form buttons.
const (
	KeySubmitButton = "buttons_validate"
	KeyResetButton  = "buttons_reset"
)

// FormError is the representative error of one field.
type FormError struct {
	Field   string
	Label   string
	Rule    string
	Key     string
	Args    []any
	Message string
}

// Form is one request's view of a Definition. It is not safe for
// concurrent use.
type Form struct {
	def      *Definition
	ctx      context.Context
	resolver *i18n.Resolver
	fields   []*Field
	bound    bool
	uploads  Input

	state   validity
	cleaned map[string]any
}

func newForm(d *Definition, in Input, cfg bindConfig) *Form {
	f := &Form{
		def:      d,
		ctx:      cfg.ctx,
		resolver: cfg.resolver,
		fields:   make([]*Field, len(d.fields)),
	}

	if d.multipart {
		f.uploads.Files = in.Files
	}

	for i, spec := range d.fields {
		field := newField(spec, cfg.resolver)

		raw, submitted := in.Values[spec.name]
		if !submitted {
			raw = d.defaults[spec.name]
		}
		if d.multipart {
			if file, ok := in.Files[spec.name]; ok {
				submitted = true
				if _, isFile := spec.kind.(acceptor); isFile {
					raw = file
				}
			}
		}
		if submitted {
			f.bound = true
		}

		field.Set(raw)
		f.fields[i] = field
	}

	return f
}

// Name returns the form name.
func (f *Form) Name() string { return f.def.name }

// Definition returns the declaration the form was bound from.
func (f *Form) Definition() *Definition { return f.def }

// Resolver returns the message resolver of this bind.
func (f *Form) Resolver() *i18n.Resolver { return f.resolver }

// Locale returns the locale messages are resolved in.
func (f *Form) Locale() string { return f.resolver.Language() }

// IsBound reports whether the input named at least one declared field.
func (f *Form) IsBound() bool { return f.bound }

// Cleanup removes the spooled uploads of a multipart bind, including files
// no field consumed. Uploads already moved away are skipped. Safe to call
// more than once.
func (f *Form) Cleanup() error {
	if err := f.uploads.Cleanup(); err != nil {
		return fmt.Errorf("forms: cleanup uploads: %w", err)
	}
	return nil
}

// Fields returns the per-request fields in declaration order.
func (f *Form) Fields() []*Field { return f.fields }

// Field returns the field called name.
func (f *Form) Field(name string) (*Field, bool) {
	i, ok := f.def.index[name]
	if !ok {
		return nil, false
	}
	return f.fields[i], true
}

// Set assigns a raw value to a field. Call Revalidate to apply it.
func (f *Form) Set(name string, raw any) error {
	field, ok := f.Field(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	field.Set(raw)
	return nil
}

// IsValid validates every field once and caches the verdict. An unbound
// form is never valid and runs no validator.
func (f *Form) IsValid() bool {
	if f.state == validityUnknown {
		f.validate(false)
	}
	return f.state == validityValid
}

// Revalidate reruns every field's pipeline and drops the cleaned data.
func (f *Form) Revalidate() bool {
	f.validate(true)
	return f.state == validityValid
}

func (f *Form) validate(reprocess bool) {
	f.cleaned = nil

	if !f.bound {
		f.state = validityInvalid
		f.def.logger.DebugContext(f.ctx, "form not bound, skipping validation",
			slog.String("form", f.def.name),
		)
		return
	}

	valid := true
	errCount := 0
	for _, field := range f.fields {
		var ok bool
		if reprocess {
			ok = field.Revalidate()
		} else {
			ok = field.IsValid()
		}
		if !ok {
			valid = false
			errCount += len(field.errors)
		}
	}

	f.state = validityInvalid
	if valid {
		f.state = validityValid
	}

	f.def.logger.DebugContext(f.ctx, "form validated",
		slog.String("form", f.def.name),
		slog.Bool("bound", f.bound),
		slog.Bool("valid", valid),
		slog.Int("errors", errCount),
	)
}

// Errors returns the first error of every invalid field, in field order.
// An unbound form has no errors.
func (f *Form) Errors() []FormError {
	if f.IsValid() || !f.bound {
		return nil
	}

	var out []FormError
	for _, field := range f.fields {
		e, ok := field.errors.First()
		if !ok {
			continue
		}
		out = append(out, FormError{
			Field:   field.Name(),
			Label:   field.Label(),
			Rule:    e.Rule,
			Key:     e.TranslationKey,
			Args:    e.TranslationArgs,
			Message: e.Message,
		})
	}
	return out
}

// ErrorMap returns Errors keyed by field name.
func (f *Form) ErrorMap() map[string]FormError {
	errs := f.Errors()
	if len(errs) == 0 {
		return nil
	}
	m := make(map[string]FormError, len(errs))
	for _, e := range errs {
		m[e.Field] = e
	}
	return m
}

// AllErrors returns every error of every field, in field order.
func (f *Form) AllErrors() validator.ValidationErrors {
	if f.IsValid() || !f.bound {
		return nil
	}
	var out validator.ValidationErrors
	for _, field := range f.fields {
		out = append(out, field.errors...)
	}
	return out
}

// Err returns nil for a valid form, ErrNotBound for an unbound one and
// the full validator.ValidationErrors otherwise.
func (f *Form) Err() error {
	if f.IsValid() {
		return nil
	}
	if !f.bound {
		return ErrNotBound
	}
	return f.AllErrors()
}

// CleanedData returns the cleaned value of every field. ok is false unless
// the form is bound and valid. The map is built once and cached until
// Revalidate.
func (f *Form) CleanedData() (map[string]any, bool) {
	if !f.IsValid() {
		return nil, false
	}
	if f.cleaned == nil {
		f.cleaned = f.collect()
	}
	return maps.Clone(f.cleaned), true
}

// RecomputeCleanedData rebuilds the cleaned map from the fields' current
// imported values without validating again.
func (f *Form) RecomputeCleanedData() (map[string]any, bool) {
	if !f.IsValid() {
		return nil, false
	}
	f.cleaned = f.collect()
	return maps.Clone(f.cleaned), true
}

func (f *Form) collect() map[string]any {
	m := make(map[string]any, len(f.fields))
	for _, field := range f.fields {
		m[field.Name()] = field.imported
	}
	return m
}

// View returns the renderer input. A bound form is validated first so its
// fields carry their errors.
func (f *Form) View() render.FormView {
	valid := f.IsValid()

	v := render.FormView{
		Name:        f.def.name,
		ID:          f.def.name,
		Method:      f.def.method,
		Multipart:   f.def.multipart,
		Bound:       f.bound,
		Valid:       valid,
		Fields:      make([]render.FieldView, len(f.fields)),
		SubmitLabel: f.resolver.Resolve(KeySubmitButton),
		ResetLabel:  f.resolver.Resolve(KeyResetButton),
	}
	for i, field := range f.fields {
		v.Fields[i] = field.View()
	}
	return v
}
