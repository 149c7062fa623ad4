package internal

import "errors"

var (
	ErrEmptyFormName   = errors.New("forms: form name cannot be empty")
	ErrEmptyFieldName  = errors.New("forms: field name cannot be empty")
	ErrDuplicateField  = errors.New("forms: duplicate field name")
	ErrInvalidMethod   = errors.New("forms: method must be get or post")
	ErrMultipartMethod = errors.New("forms: multipart forms must use post")
	ErrUnknownField    = errors.New("forms: unknown field")
	ErrUnknownWidget   = errors.New("forms: unknown multiple choice widget")
	ErrNilField        = errors.New("forms: field cannot be nil")
	ErrBindRequest     = errors.New("forms: failed to bind request")
	ErrNotBound        = errors.New("forms: form not bound")
	ErrUnknownMessage  = errors.New("forms: message key not in catalog")
)
