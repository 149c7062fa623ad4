package validator

import (
	"errors"
	"fmt"
	"strings"
)

// Message keys produced by the validators in this package.
const (
	KeyRequired     = "validation_required"
	KeyMinLength    = "validation_min_length"
	KeyMaxLength    = "field_invalid_text_sizelimit"
	KeyMin          = "validation_min"
	KeyMax          = "validation_max"
	KeyInvalidEmail = "field_invalid_email"
	KeyInvalidURL   = "field_invalid_url"
	KeyAlpha        = "field_invalid_alpha"
	KeyAlphaNum     = "field_invalid_alphanum"
	KeyOneOf        = "field_invalid_dropdown"
)

// RuleRequired is the rule identifier recorded for the required check.
const RuleRequired = "required"

// Fault is an expected validation failure: a message key plus positional
// interpolation arguments. Faults are values; they are collected by the
// field pipeline and never cross the field boundary as errors.
type Fault struct {
	Key  string
	Args []any
}

// NewFault creates a fault for the given message key.
func NewFault(key string, args ...any) *Fault {
	return &Fault{Key: key, Args: args}
}

// Error implements the error interface so a fault can be wrapped when needed.
func (f *Fault) Error() string {
	if len(f.Args) == 0 {
		return f.Key
	}
	parts := make([]string, len(f.Args))
	for i, a := range f.Args {
		parts[i] = fmt.Sprint(a)
	}
	return f.Key + "(" + strings.Join(parts, ", ") + ")"
}

// Func checks a prepared value. It returns nil when the value passes.
// A Func must not mutate shared state and must be safe to call repeatedly
// with the same input.
type Func func(value any) *Fault

// ErrInvalidValidator reports a validator without a name or a check.
var ErrInvalidValidator = errors.New("validator: invalid validator")

// Validator is a named validation rule. The name is recorded as the rule
// identifier next to every fault the rule produces.
type Validator struct {
	Check Func
	Name  string

	required bool
}

// New creates a named validator. It panics with an error wrapping
// ErrInvalidValidator when name is blank or fn is nil.
func New(name string, fn Func) Validator {
	v := Validator{Name: name, Check: fn}
	if err := v.Err(); err != nil {
		panic(err)
	}
	return v
}

// Err returns an error wrapping ErrInvalidValidator when the validator
// cannot run, and nil otherwise.
func (v Validator) Err() error {
	switch {
	case strings.TrimSpace(v.Name) == "":
		return fmt.Errorf("%w: empty name", ErrInvalidValidator)
	case v.Check == nil:
		return fmt.Errorf("%w: %q has no check", ErrInvalidValidator, v.Name)
	}
	return nil
}

// Validate runs the rule against a prepared value.
func (v Validator) Validate(value any) *Fault {
	return v.Check(value)
}

// IsRequired reports whether the validator is the marker built by Required.
// Fields lift the marker out of their chain and run it first. A caller rule
// that merely shares the name stays in the chain.
func (v Validator) IsRequired() bool {
	return v.required
}

// Required returns the required marker. Placed anywhere in a field's
// validator list it makes the field required; an empty value then records
// exactly one validation_required fault and nothing else runs.
func Required() Validator {
	v := New(RuleRequired, func(value any) *Fault {
		if IsEmpty(value) {
			return NewFault(KeyRequired)
		}
		return nil
	})
	v.required = true
	return v
}

// Emptier is implemented by values that know whether they carry data,
// such as upload descriptors.
type Emptier interface {
	IsEmpty() bool
}

// IsEmpty is the default emptiness test used by the required check:
// nil, the empty string, an empty list, false, or an Emptier reporting empty.
func IsEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []string:
		return len(v) == 0
	case []any:
		return len(v) == 0
	case bool:
		return !v
	case Emptier:
		return v.IsEmpty()
	default:
		return false
	}
}
