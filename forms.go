package forms

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/forms/internal"
	"github.com/dmitrymomot/forms/pkg/i18n"
	"github.com/dmitrymomot/forms/pkg/render"
	"github.com/dmitrymomot/forms/pkg/validator"
)

// Type aliases - public API
type (
	// Definition is an immutable form declaration shared across requests.
	Definition = internal.Definition

	// Form is one binding of a Definition to request input.
	// It is not safe for concurrent use.
	Form = internal.Form

	// Field is the per-request state of one declared field.
	Field = internal.Field

	// FieldSpec is an immutable field declaration.
	FieldSpec = internal.FieldSpec

	// FieldOption configures a FieldSpec.
	FieldOption = internal.FieldOption

	// Option configures a Definition.
	Option = internal.Option

	// BindOption configures a single bind.
	BindOption = internal.BindOption

	// Input is the raw submission a form is bound to.
	Input = internal.Input

	// Kind is the type-specific behavior of a field.
	Kind = internal.Kind

	// Choice is one option of a drop-down or multiple choice field.
	Choice = internal.Choice

	// FormError is one resolved error in a form summary.
	FormError = internal.FormError

	// FormView is the render-ready snapshot of a form.
	FormView = render.FormView

	// FieldView is the render-ready snapshot of a field.
	FieldView = render.FieldView

	// Validator is a named validation rule.
	Validator = validator.Validator

	// ValidationErrors is an ordered collection of validation errors.
	ValidationErrors = validator.ValidationErrors
)

// Constructors

// Define declares a form.
//
// Example:
//
//	contact := forms.MustDefine("contact",
//	    forms.WithMethod(forms.MethodPost),
//	    forms.WithFields(
//	        forms.Text("name", "Name", 25, 100, forms.Required()),
//	        forms.Email("email", "Email", 25, 100, forms.Required()),
//	        forms.Textarea("message", "Message", 5, 40),
//	    ),
//	)
func Define(name string, opts ...Option) (*Definition, error) {
	return internal.Define(name, opts...)
}

// MustDefine is like Define but panics on error.
// Intended for package-level form declarations.
func MustDefine(name string, opts ...Option) *Definition {
	return internal.MustDefine(name, opts...)
}

// Form options

// WithMethod sets the submission method, "get" or "post".
// Defaults to "post".
func WithMethod(method string) Option {
	return internal.WithMethod(method)
}

// WithMultipart marks the form as accepting file uploads.
func WithMultipart() Option {
	return internal.WithMultipart()
}

// WithDefaults sets initial values shown before the form is submitted.
// Defaults never make a form bound.
func WithDefaults(defaults map[string]any) Option {
	return internal.WithDefaults(defaults)
}

// WithLocale sets the fallback language for messages.
func WithLocale(lang string) Option {
	return internal.WithLocale(lang)
}

// WithCatalog replaces the built-in message catalog.
//
// Example:
//
//	catalog, _ := i18n.New(
//	    forms.WithDefaultCatalog(),
//	    i18n.WithTranslations("en", i18n.DefaultNamespace, map[string]any{
//	        "zip_invalid": "Enter a five digit zip code.",
//	    }),
//	)
//	forms.WithCatalog(catalog)
func WithCatalog(catalog *i18n.I18n) Option {
	return internal.WithCatalog(catalog)
}

// WithLogger sets the logger for validation diagnostics.
// If nil, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return internal.WithLogger(l)
}

// WithFields declares the fields in display order.
func WithFields(fields ...*FieldSpec) Option {
	return internal.WithFields(fields...)
}

// WithUploadDir sets where multipart files are spooled.
// Defaults to the system temp directory.
func WithUploadDir(dir string) Option {
	return internal.WithUploadDir(dir)
}

// WithMaxMemory sets the in-memory limit of multipart parsing.
func WithMaxMemory(n int64) Option {
	return internal.WithMaxMemory(n)
}

// WithDefaultCatalog loads the built-in English, German and French messages
// into a custom catalog.
func WithDefaultCatalog() i18n.Option {
	return i18n.WithDefaultCatalog()
}

// Bind options

// WithResolver binds with a prepared message resolver.
func WithResolver(r *i18n.Resolver) BindOption {
	return internal.WithResolver(r)
}

// WithBindLocale overrides the language for one bind.
func WithBindLocale(lang string) BindOption {
	return internal.WithBindLocale(lang)
}

// WithContext sets the context used for logging during validation.
// BindRequest uses the request context.
func WithContext(ctx context.Context) BindOption {
	return internal.WithContext(ctx)
}

// Field options

// WithValidators appends validators to the field's chain.
// validator.Required is lifted out and runs first.
func WithValidators(validators ...Validator) FieldOption {
	return internal.WithValidators(validators...)
}

// Required marks the field as required.
func Required() FieldOption {
	return internal.Required()
}

// WithAttributes adds HTML attributes to the rendered control.
func WithAttributes(attrs map[string]string) FieldOption {
	return internal.WithAttributes(attrs)
}

// WithHelpText sets the help text shown below the control.
func WithHelpText(text string) FieldOption {
	return internal.WithHelpText(text)
}

// WithTypeSniffing makes upload fields check content, not the client type.
func WithTypeSniffing() FieldOption {
	return internal.WithTypeSniffing()
}

// Field constructors

// Text declares a single line text field.
func Text(name, label string, size, maxLength int, opts ...FieldOption) *FieldSpec {
	return internal.Text(name, label, size, maxLength, opts...)
}

// Password declares a password field. The cleaned value is hash(input);
// a nil hash keeps the input as is.
func Password(name, label string, size, maxLength int, hash func(string) string, opts ...FieldOption) *FieldSpec {
	return internal.Password(name, label, size, maxLength, hash, opts...)
}

// Hidden declares a hidden field.
func Hidden(name string, opts ...FieldOption) *FieldSpec {
	return internal.Hidden(name, opts...)
}

// Email declares an email address field.
func Email(name, label string, size, maxLength int, opts ...FieldOption) *FieldSpec {
	return internal.Email(name, label, size, maxLength, opts...)
}

// URL declares an absolute URL field.
func URL(name, label string, size, maxLength int, opts ...FieldOption) *FieldSpec {
	return internal.URL(name, label, size, maxLength, opts...)
}

// Alpha declares a letters-only field.
func Alpha(name, label string, size, maxLength int, opts ...FieldOption) *FieldSpec {
	return internal.Alpha(name, label, size, maxLength, opts...)
}

// AlphaNum declares a letters and digits field.
func AlphaNum(name, label string, size, maxLength int, opts ...FieldOption) *FieldSpec {
	return internal.AlphaNum(name, label, size, maxLength, opts...)
}

// Regex declares a field matched against pattern. The cleaned value is
// the list of submatches. Panics if pattern does not compile.
func Regex(name, label, pattern, faultKey string, opts ...FieldOption) *FieldSpec {
	return internal.Regex(name, label, pattern, faultKey, opts...)
}

// Scan declares a field parsed with fmt.Sscanf into fresh targets.
func Scan(name, label, format string, targets func() []any, faultKey string, opts ...FieldOption) *FieldSpec {
	return internal.Scan(name, label, format, targets, faultKey, opts...)
}

// DateTime declares a dd/mm/yyyy date field.
func DateTime(name, label string, opts ...FieldOption) *FieldSpec {
	return internal.DateTime(name, label, opts...)
}

// Integer declares an integer field of at most maxDigits digits.
func Integer(name, label string, size, maxDigits int, opts ...FieldOption) *FieldSpec {
	return internal.Integer(name, label, size, maxDigits, opts...)
}

// Decimal declares a decimal field rounded to precision places.
func Decimal(name, label string, size, precision int, opts ...FieldOption) *FieldSpec {
	return internal.Decimal(name, label, size, precision, opts...)
}

// Checkbox declares a boolean checkbox.
func Checkbox(name, label string, opts ...FieldOption) *FieldSpec {
	return internal.Checkbox(name, label, opts...)
}

// DropDown declares a single choice select.
func DropDown(name, label string, choices []Choice, opts ...FieldOption) *FieldSpec {
	return internal.DropDown(name, label, choices, opts...)
}

// MultipleChoice declares a list field rendered with widget.
// An empty widget means WidgetSelectMultiple. Panics on an unknown widget.
func MultipleChoice(name, label string, choices []Choice, widget string, opts ...FieldOption) *FieldSpec {
	return internal.MultipleChoice(name, label, choices, widget, opts...)
}

// Textarea declares a plain text area. Zero rows or cols use the defaults.
func Textarea(name, label string, rows, cols int, opts ...FieldOption) *FieldSpec {
	return internal.Textarea(name, label, rows, cols, opts...)
}

// TextareaHTML declares a text area whose HTML is sanitized, not escaped.
func TextareaHTML(name, label string, rows, cols int, opts ...FieldOption) *FieldSpec {
	return internal.TextareaHTML(name, label, rows, cols, opts...)
}

// FileUpload declares a file field limited to types and maxSize bytes.
func FileUpload(name, label string, types []string, maxSize int64, opts ...FieldOption) *FieldSpec {
	return internal.FileUpload(name, label, types, maxSize, opts...)
}

// ImageUpload declares an image field. The common image types are always
// accepted; extraTypes adds more.
func ImageUpload(name, label string, extraTypes []string, maxSize int64, opts ...FieldOption) *FieldSpec {
	return internal.ImageUpload(name, label, extraTypes, maxSize, opts...)
}

// Constants
const (
	MethodGet  = internal.MethodGet
	MethodPost = internal.MethodPost

	WidgetSelectMultiple = internal.WidgetSelectMultiple
	WidgetRadio          = internal.WidgetRadio
	WidgetCheckbox       = internal.WidgetCheckbox

	DefaultRows = internal.DefaultRows
	DefaultCols = internal.DefaultCols
)

// Errors for checking return values.
var (
	ErrEmptyFormName   = internal.ErrEmptyFormName
	ErrEmptyFieldName  = internal.ErrEmptyFieldName
	ErrDuplicateField  = internal.ErrDuplicateField
	ErrInvalidMethod   = internal.ErrInvalidMethod
	ErrMultipartMethod = internal.ErrMultipartMethod
	ErrUnknownField    = internal.ErrUnknownField
	ErrUnknownWidget   = internal.ErrUnknownWidget
	ErrNilField        = internal.ErrNilField
	ErrBindRequest     = internal.ErrBindRequest
	ErrNotBound        = internal.ErrNotBound
	ErrUnknownMessage  = internal.ErrUnknownMessage
)

// IsValidationError reports whether err is or wraps ValidationErrors.
func IsValidationError(err error) bool {
	return validator.IsValidationError(err)
}
