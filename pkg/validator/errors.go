package validator

import (
	"errors"
	"strings"
)

// ValidationError is one recorded failure of one rule on one field.
type ValidationError struct {
	// Field is the field name the error belongs to.
	Field string
	// Rule identifies the validator or field type that failed.
	Rule string
	// Message is the resolved display text. Empty until translated.
	Message string
	// TranslationKey is the message key carried by the fault.
	TranslationKey string
	// TranslationArgs are the positional interpolation arguments.
	TranslationArgs []any
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.TranslationKey
	}
	if e.Field == "" {
		return msg
	}
	return e.Field + ": " + msg
}

// FromFault builds a ValidationError for field and rule out of a fault.
func FromFault(field, rule string, f *Fault) ValidationError {
	return ValidationError{
		Field:           field,
		Rule:            rule,
		TranslationKey:  f.Key,
		TranslationArgs: f.Args,
	}
}

// TranslateFunc resolves a message key and its positional arguments to text.
type TranslateFunc func(key string, args []any) string

// ValidationErrors is an ordered collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	msgs := make([]string, len(e))
	for i, ve := range e {
		msgs[i] = ve.Error()
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// IsEmpty reports whether the collection holds no errors.
func (e ValidationErrors) IsEmpty() bool {
	return len(e) == 0
}

// Has reports whether any error belongs to field.
func (e ValidationErrors) Has(field string) bool {
	for _, ve := range e {
		if ve.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages recorded for field, in order.
func (e ValidationErrors) Get(field string) []string {
	var msgs []string
	for _, ve := range e {
		if ve.Field == field {
			msgs = append(msgs, ve.Message)
		}
	}
	return msgs
}

// GetErrors returns the errors recorded for field, in order.
func (e ValidationErrors) GetErrors(field string) []ValidationError {
	var out []ValidationError
	for _, ve := range e {
		if ve.Field == field {
			out = append(out, ve)
		}
	}
	return out
}

// First returns the first error, if any.
func (e ValidationErrors) First() (ValidationError, bool) {
	if len(e) == 0 {
		return ValidationError{}, false
	}
	return e[0], true
}

// Keys returns the translation keys in order.
func (e ValidationErrors) Keys() []string {
	keys := make([]string, len(e))
	for i, ve := range e {
		keys[i] = ve.TranslationKey
	}
	return keys
}

// Translate resolves every error's Message in place.
// Errors without a TranslationKey are left untouched; a nil fn is a no-op.
func (e ValidationErrors) Translate(fn TranslateFunc) {
	if fn == nil {
		return
	}
	for i := range e {
		if e[i].TranslationKey == "" {
			continue
		}
		e[i].Message = fn(e[i].TranslationKey, e[i].TranslationArgs)
	}
}

// IsValidationError reports whether err is or wraps ValidationErrors.
func IsValidationError(err error) bool {
	var ve ValidationErrors
	return errors.As(err, &ve)
}

// ExtractValidationErrors returns the ValidationErrors wrapped by err, or nil.
func ExtractValidationErrors(err error) ValidationErrors {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}
