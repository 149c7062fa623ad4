package internal

import (
	"slices"

	"github.com/dmitrymomot/forms/pkg/i18n"
	"github.com/dmitrymomot/forms/pkg/render"
	"github.com/dmitrymomot/forms/pkg/upload"
	"github.com/dmitrymomot/forms/pkg/validator"
)

type validity uint8

const (
	validityUnknown validity = iota
	validityValid
	validityInvalid
)

// Field is the per-request state of one declared field: its raw value,
// the errors of the last validation and the cleaned value.
type Field struct {
	spec     *FieldSpec
	resolver *i18n.Resolver

	raw      any
	prepared any
	errors   validator.ValidationErrors
	state    validity
	imported any
}

func newField(spec *FieldSpec, resolver *i18n.Resolver) *Field {
	return &Field{spec: spec, resolver: resolver}
}

// Spec returns the field declaration.
func (f *Field) Spec() *FieldSpec { return f.spec }

// Name returns the field name.
func (f *Field) Name() string { return f.spec.name }

// Label returns the display label.
func (f *Field) Label() string { return f.spec.label }

// Set assigns the raw value. The cached verdict is kept until Revalidate.
func (f *Field) Set(raw any) {
	f.raw = raw
}

// Value returns the raw value.
func (f *Field) Value() any { return f.raw }

// Prepared returns the raw value after the kind's normalization.
func (f *Field) Prepared() any {
	return f.spec.kind.Prepare(f.raw)
}

// IsValid runs the pipeline once and returns the cached verdict afterwards.
func (f *Field) IsValid() bool {
	if f.state == validityUnknown {
		f.process()
	}
	return f.state == validityValid
}

// Revalidate discards the cached verdict and runs the pipeline again.
func (f *Field) Revalidate() bool {
	f.process()
	return f.state == validityValid
}

func (f *Field) process() {
	kind := f.spec.kind
	f.prepared = kind.Prepare(f.raw)
	f.errors = nil
	f.imported = nil

	empty := kind.Empty(f.prepared)
	if empty && f.spec.required {
		f.record(validator.RuleRequired, validator.NewFault(validator.KeyRequired))
	} else {
		for _, v := range f.spec.validators {
			if fault := v.Validate(f.prepared); fault != nil {
				f.record(v.Name, fault)
			}
		}
		if !empty {
			if fault := kind.Validate(f.prepared); fault != nil {
				f.record(kind.Type(), fault)
			}
		}
	}

	if len(f.errors) > 0 {
		f.state = validityInvalid
		return
	}
	f.state = validityValid
	f.imported = kind.Import(f.prepared)
}

// record appends a fault with its resolved message. A key missing from the
// catalog panics here.
func (f *Field) record(rule string, fault *validator.Fault) {
	ve := validator.FromFault(f.spec.name, rule, fault)
	if f.resolver != nil {
		ve.Message = f.resolver.TranslateMessage(ve.TranslationKey, ve.TranslationArgs)
	}
	f.errors = append(f.errors, ve)
}

// CleanedValue returns the imported value. ok is false unless the field
// is valid.
func (f *Field) CleanedValue() (any, bool) {
	if !f.IsValid() {
		return nil, false
	}
	return f.imported, true
}

// Errors returns every error of the last validation, in order.
func (f *Field) Errors() validator.ValidationErrors {
	f.IsValid()
	return slices.Clone(f.errors)
}

// FirstError returns the first error of the last validation.
func (f *Field) FirstError() (validator.ValidationError, bool) {
	f.IsValid()
	return f.errors.First()
}

// View returns the renderer input. Errors are included only once the field
// has been validated.
func (f *Field) View() render.FieldView {
	s := f.spec
	v := render.FieldView{
		Name:       s.TransportName(),
		ID:         s.ID(),
		Label:      s.label,
		Widget:     s.kind.Widget(),
		Attributes: s.Attributes(),
		HelpText:   s.helpText,
		Required:   s.required,
		Multi:      s.kind.Multi(),
	}
	if c, ok := s.kind.(chooser); ok {
		v.Choices = c.Choices()
	}
	if a, ok := s.kind.(acceptor); ok {
		v.Accept = a.Accept()
	}

	switch prepared := s.kind.Prepare(f.raw).(type) {
	case bool:
		v.Checked = prepared
	case []string:
		v.Values = prepared
	case string:
		v.Value = prepared
		if s.kind.Multi() {
			v.Values = []string{prepared}
		}
	case upload.File, nil:
	default:
		v.Value = str(scalar(prepared))
	}

	if f.state != validityUnknown {
		for _, e := range f.errors {
			v.Errors = append(v.Errors, render.FieldError{Rule: e.Rule, Message: e.Message})
		}
	}
	return v
}
