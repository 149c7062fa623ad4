package internal

import (
	"fmt"
	"maps"
	"regexp"
	"strings"

	"github.com/dmitrymomot/forms/pkg/validator"
)

// Default textarea dimensions.
const (
	DefaultRows = 5
	DefaultCols = 40
)

// FieldSpec is the immutable declaration of one field. It is shared by every
// form bound from the definition that holds it.
type FieldSpec struct {
	name       string
	label      string
	kind       Kind
	validators []validator.Validator
	required   bool
	attrs      map[string]string
	helpText   string
	sniff      bool
}

// FieldOption configures a FieldSpec.
type FieldOption func(*FieldSpec)

// WithValidators appends caller validators, run in order after the
// required check. A validator.Required() entry marks the field required
// and is not added to the chain. A validator without a name or a check
// panics with an error wrapping validator.ErrInvalidValidator.
func WithValidators(validators ...validator.Validator) FieldOption {
	return func(s *FieldSpec) {
		for _, v := range validators {
			if err := v.Err(); err != nil {
				panic(fmt.Errorf("field %q: %w", s.name, err))
			}
			if v.IsRequired() {
				s.required = true
				continue
			}
			s.validators = append(s.validators, v)
		}
	}
}

// Required marks the field as required.
func Required() FieldOption {
	return func(s *FieldSpec) {
		s.required = true
	}
}

// WithAttributes adds rendering attributes. They override the kind's own
// hints; a "class" is extended, not replaced.
func WithAttributes(attrs map[string]string) FieldOption {
	return func(s *FieldSpec) {
		if s.attrs == nil {
			s.attrs = make(map[string]string, len(attrs))
		}
		maps.Copy(s.attrs, attrs)
	}
}

// WithHelpText sets markdown help text shown next to the field.
func WithHelpText(text string) FieldOption {
	return func(s *FieldSpec) {
		s.helpText = text
	}
}

// WithTypeSniffing makes file kinds detect the media type from the spooled
// content instead of trusting the submitted type. Other kinds ignore it.
func WithTypeSniffing() FieldOption {
	return func(s *FieldSpec) {
		s.sniff = true
	}
}

func newSpec(name, label string, kind Kind, opts []FieldOption) *FieldSpec {
	s := &FieldSpec{name: name, label: label, kind: kind}
	for _, opt := range opts {
		opt(s)
	}
	if sn, ok := s.kind.(sniffer); ok && s.sniff {
		s.kind = sn.withSniffing()
	}
	return s
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

func text(size, maxLength int) textKind {
	return textKind{size: orDefault(size, defaultSize), maxLength: orDefault(maxLength, defaultMaxLength)}
}

// Text declares a single-line text field. Zero size and maxLength select
// 25 and 100.
func Text(name, label string, size, maxLength int, opts ...FieldOption) *FieldSpec {
	return newSpec(name, label, text(size, maxLength), opts)
}

// Password declares a password field. hash, when not nil, transforms the
// cleaned value.
func Password(name, label string, size, maxLength int, hash func(string) string, opts ...FieldOption) *FieldSpec {
	return newSpec(name, label, passwordKind{textKind: text(size, maxLength), hash: hash}, opts)
}

// Hidden declares a hidden field.
func Hidden(name string, opts ...FieldOption) *FieldSpec {
	return newSpec(name, "", hiddenKind{textKind{maxLength: hiddenMaxLength}}, opts)
}

// Email declares an e-mail address field.
func Email(name, label string, size, maxLength int, opts ...FieldOption) *FieldSpec {
	return newSpec(name, label, emailKind{text(size, maxLength)}, opts)
}

// URL declares an absolute URL field. Values without a scheme get http://.
func URL(name, label string, size, maxLength int, opts ...FieldOption) *FieldSpec {
	return newSpec(name, label, urlKind{text(size, maxLength)}, opts)
}

// Alpha declares a letters-only text field.
func Alpha(name, label string, size, maxLength int, opts ...FieldOption) *FieldSpec {
	return newSpec(name, label, alphaKind{text(size, maxLength)}, opts)
}

// AlphaNum declares a letters-and-digits text field.
func AlphaNum(name, label string, size, maxLength int, opts ...FieldOption) *FieldSpec {
	return newSpec(name, label, alphaNumKind{text(size, maxLength)}, opts)
}

// Regex declares a text field that must match pattern. The cleaned value is
// the match followed by its submatches. An invalid pattern panics.
// faultKey must exist in the definition's catalog; Define checks it.
func Regex(name, label, pattern, faultKey string, opts ...FieldOption) *FieldSpec {
	return newSpec(name, label, regexKind{
		textKind: text(0, 0),
		re:       regexp.MustCompile(pattern),
		faultKey: faultKey,
	}, opts)
}

// Scan declares a text field parsed with fmt.Sscanf. targets returns fresh
// pointers for every parse; the cleaned value holds what they point to.
func Scan(name, label, format string, targets func() []any, faultKey string, opts ...FieldOption) *FieldSpec {
	if targets == nil {
		targets = func() []any { return nil }
	}
	return newSpec(name, label, scanKind{
		textKind: text(0, 0),
		format:   format,
		targets:  targets,
		faultKey: faultKey,
	}, opts)
}

// DateTime declares a dd/mm/yyyy date field.
func DateTime(name, label string, opts ...FieldOption) *FieldSpec {
	return newSpec(name, label, dateTimeKind{text(0, 0)}, opts)
}

// Integer declares an integer field with at most maxDigits characters.
func Integer(name, label string, size, maxDigits int, opts ...FieldOption) *FieldSpec {
	return newSpec(name, label, integerKind{
		textKind:  textKind{size: orDefault(size, defaultSize), maxLength: maxDigits},
		maxDigits: maxDigits,
	}, opts)
}

// Decimal declares a floating point field rounded to precision digits.
func Decimal(name, label string, size, precision int, opts ...FieldOption) *FieldSpec {
	return newSpec(name, label, decimalKind{textKind: text(size, 0), precision: max(precision, 0)}, opts)
}

// Checkbox declares a single on/off checkbox.
func Checkbox(name, label string, opts ...FieldOption) *FieldSpec {
	return newSpec(name, label, checkboxKind{}, opts)
}

// DropDown declares a single choice among choices.
func DropDown(name, label string, choices []Choice, opts ...FieldOption) *FieldSpec {
	return newSpec(name, label, dropDownKind{choices: choices}, opts)
}

// MultipleChoice declares a multi-valued choice field drawn as widget, one
// of select_multiple (the default for ""), radio or checkbox. Any other
// widget panics with ErrUnknownWidget.
func MultipleChoice(name, label string, choices []Choice, widget string, opts ...FieldOption) *FieldSpec {
	if widget == "" {
		widget = WidgetSelectMultiple
	}
	if !validMultiWidget(widget) {
		panic(fmt.Errorf("%w: %q (field %q)", ErrUnknownWidget, widget, name))
	}
	return newSpec(name, label, multipleChoiceKind{choices: choices, widget: widget}, opts)
}

// Textarea declares a multi-line text field. Zero rows and cols select 5
// and 40.
func Textarea(name, label string, rows, cols int, opts ...FieldOption) *FieldSpec {
	return newSpec(name, label, textareaKind{rows: orDefault(rows, DefaultRows), cols: orDefault(cols, DefaultCols)}, opts)
}

// TextareaHTML declares a multi-line field whose cleaned value is sanitized
// HTML.
func TextareaHTML(name, label string, rows, cols int, opts ...FieldOption) *FieldSpec {
	return newSpec(name, label, textareaKind{rows: orDefault(rows, DefaultRows), cols: orDefault(cols, DefaultCols), html: true}, opts)
}

// FileUpload declares a file field. An empty types list accepts any media
// type; a zero maxSize disables the size check.
func FileUpload(name, label string, types []string, maxSize int64, opts ...FieldOption) *FieldSpec {
	return newSpec(name, label, fileKind{types: types, maxSize: maxSize}, opts)
}

// ImageUpload declares an image field accepting PNG, GIF and JPEG plus
// extraTypes. The cleaned value is an *upload.Image.
func ImageUpload(name, label string, extraTypes []string, maxSize int64, opts ...FieldOption) *FieldSpec {
	return newSpec(name, label, newImageKind(extraTypes, maxSize), opts)
}

// Name returns the field name.
func (s *FieldSpec) Name() string { return s.name }

// Label returns the display label.
func (s *FieldSpec) Label() string { return s.label }

// Type returns the kind name, for example "text" or "multiplechoice".
func (s *FieldSpec) Type() string { return s.kind.Type() }

// IsRequired reports whether the field is required.
func (s *FieldSpec) IsRequired() bool { return s.required }

// IsMulti reports whether the transport value is a list.
func (s *FieldSpec) IsMulti() bool { return s.kind.Multi() }

// ID returns the rendering identifier.
func (s *FieldSpec) ID() string { return "id_" + s.name }

// TransportName is the input name, suffixed with [] for multi-valued fields.
func (s *FieldSpec) TransportName() string {
	if s.kind.Multi() {
		return s.name + "[]"
	}
	return s.name
}

// Attributes merges the kind's hints with the caller's attributes and adds
// the "forms-<type>" class.
func (s *FieldSpec) Attributes() map[string]string {
	attrs := make(map[string]string)
	maps.Copy(attrs, s.kind.Attributes())
	maps.Copy(attrs, s.attrs)
	attrs["class"] = strings.TrimSpace(attrs["class"] + " forms-" + s.kind.Type())
	return attrs
}
