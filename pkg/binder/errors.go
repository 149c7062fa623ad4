package binder

import "errors"

var (
	ErrParseRequest    = errors.New("binder: failed to parse request")
	ErrRequestTooLarge = errors.New("binder: request body too large")
)
