package internal

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/forms/pkg/sanitizer"
	"github.com/dmitrymomot/forms/pkg/validator"
)

// Message keys of numeric and date kinds.
const (
	KeyInvalidInteger          = "field_invalid_integer"
	KeyInvalidIntegerSizeLimit = "field_invalid_integer_sizelimit"
	KeyInvalidDecimal          = "field_invalid_decimal"
	KeyInvalidDateTime         = "field_invalid_datetime_format"
)

type integerKind struct {
	textKind
	maxDigits int
}

var (
	integerRe = regexp.MustCompile(`^[+-]?(0|[1-9][0-9]*)$`)
	decimalRe = regexp.MustCompile(`^[+-]?([0-9]+(\.[0-9]*)?|\.[0-9]+)([eE][+-]?[0-9]+)?$`)
)

// parseInteger accepts plain base-10 integers without leading zeros that
// fit in an int.
func parseInteger(s string) (int, bool) {
	if !integerRe.MatchString(s) {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseDecimal accepts finite base-10 numbers with an optional exponent.
func parseDecimal(s string) (float64, bool) {
	if !decimalRe.MatchString(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func (integerKind) Type() string { return "integer" }

func (k integerKind) Validate(v any) *validator.Fault {
	s := str(v)
	if _, ok := parseInteger(s); !ok {
		return validator.NewFault(KeyInvalidInteger)
	}
	if k.maxDigits > 0 && len(s) > k.maxDigits {
		return validator.NewFault(KeyInvalidIntegerSizeLimit, k.maxDigits)
	}
	return nil
}

// Import returns an int, or nil for an empty value.
func (integerKind) Import(v any) any {
	s := sanitizer.Unescape(str(v))
	if s == "" {
		return nil
	}
	n, ok := parseInteger(s)
	if !ok {
		return nil
	}
	return n
}

type decimalKind struct {
	textKind
	precision int
}

func (decimalKind) Type() string { return "decimal" }

func (decimalKind) Validate(v any) *validator.Fault {
	if _, ok := parseDecimal(strings.TrimSpace(str(v))); !ok {
		return validator.NewFault(KeyInvalidDecimal)
	}
	return nil
}

// Import returns a float64 rounded to the kind's precision, or nil for an
// empty value.
func (k decimalKind) Import(v any) any {
	s := strings.TrimSpace(sanitizer.Unescape(str(v)))
	if s == "" {
		return nil
	}
	f, ok := parseDecimal(s)
	if !ok {
		return nil
	}
	pow := math.Pow(10, float64(k.precision))
	if r := math.Round(f*pow) / pow; !math.IsInf(r, 0) && !math.IsNaN(r) {
		return r
	}
	return f
}

var dateRe = regexp.MustCompile(`^([0-9]{2})[-/]([0-9]{2})[-/]([0-9]{4})$`)

type dateTimeKind struct{ textKind }

func (dateTimeKind) Type() string { return "datetime" }

func parseDate(s string) (time.Time, bool) {
	if !dateRe.MatchString(s) {
		return time.Time{}, false
	}
	t, err := time.Parse("02/01/2006", strings.ReplaceAll(s, "-", "/"))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func (k dateTimeKind) Validate(v any) *validator.Fault {
	if f := k.textKind.Validate(v); f != nil {
		return f
	}
	if _, ok := parseDate(str(v)); !ok {
		return validator.NewFault(KeyInvalidDateTime)
	}
	return nil
}

// Import returns a time.Time at midnight UTC, or nil for an empty value.
func (dateTimeKind) Import(v any) any {
	t, ok := parseDate(str(v))
	if !ok {
		return nil
	}
	return t
}
