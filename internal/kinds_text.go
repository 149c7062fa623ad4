package internal

import (
	"fmt"
	"net/url"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/forms/pkg/render"
	"github.com/dmitrymomot/forms/pkg/sanitizer"
	"github.com/dmitrymomot/forms/pkg/validator"
)

// Limits of text kinds that take no explicit size.
const (
	defaultSize      = 25
	defaultMaxLength = 100
	hiddenMaxLength  = 255
)

type textKind struct {
	base
	size      int
	maxLength int
}

func (textKind) Type() string   { return "text" }
func (textKind) Widget() string { return render.WidgetText }

func (k textKind) Attributes() map[string]string {
	attrs := map[string]string{}
	if k.size > 0 {
		attrs["size"] = strconv.Itoa(k.size)
	}
	if k.maxLength > 0 {
		attrs["maxlength"] = strconv.Itoa(k.maxLength)
	}
	return attrs
}

func (k textKind) Validate(v any) *validator.Fault {
	if k.maxLength > 0 && utf8.RuneCountInString(str(v)) > k.maxLength {
		return validator.NewFault(validator.KeyMaxLength, k.maxLength)
	}
	return nil
}

func (textKind) Import(v any) any {
	return sanitizer.Unescape(str(v))
}

type passwordKind struct {
	textKind
	hash func(string) string
}

func (passwordKind) Type() string   { return "password" }
func (passwordKind) Widget() string { return render.WidgetPassword }

func (k passwordKind) Import(v any) any {
	s := str(v)
	if k.hash == nil || s == "" {
		return s
	}
	return k.hash(s)
}

type hiddenKind struct{ textKind }

func (hiddenKind) Type() string   { return "hidden" }
func (hiddenKind) Widget() string { return render.WidgetHidden }

type emailKind struct{ textKind }

func (emailKind) Type() string   { return "email" }
func (emailKind) Widget() string { return render.WidgetEmail }

func (k emailKind) Validate(v any) *validator.Fault {
	if f := k.textKind.Validate(v); f != nil {
		return f
	}
	if !validator.IsEmailAddress(str(v)) {
		return validator.NewFault(validator.KeyInvalidEmail)
	}
	return nil
}

func (emailKind) Import(v any) any { return str(v) }

type urlKind struct{ textKind }

func (urlKind) Type() string   { return "url" }
func (urlKind) Widget() string { return render.WidgetURL }

// Prepare adds an http:// scheme to values that lack one.
func (urlKind) Prepare(raw any) any {
	s, ok := scalar(raw).(string)
	if !ok || s == "" {
		return scalar(raw)
	}
	s = strings.TrimSpace(s)
	if u, err := url.Parse(s); err != nil || u.Scheme == "" || u.Host == "" {
		if !strings.Contains(s, "://") {
			return "http://" + s
		}
	}
	return s
}

func (k urlKind) Validate(v any) *validator.Fault {
	if f := k.textKind.Validate(v); f != nil {
		return f
	}
	if !validator.IsAbsoluteURL(str(v)) {
		return validator.NewFault(validator.KeyInvalidURL)
	}
	return nil
}

func (urlKind) Import(v any) any { return str(v) }

type alphaKind struct{ textKind }

func (alphaKind) Type() string { return "alpha" }

func (k alphaKind) Validate(v any) *validator.Fault {
	if f := k.textKind.Validate(v); f != nil {
		return f
	}
	if !validator.IsAlpha(str(v)) {
		return validator.NewFault(validator.KeyAlpha)
	}
	return nil
}

type alphaNumKind struct{ textKind }

func (alphaNumKind) Type() string { return "alphanum" }

func (k alphaNumKind) Validate(v any) *validator.Fault {
	if f := k.textKind.Validate(v); f != nil {
		return f
	}
	if !validator.IsAlphaNum(str(v)) {
		return validator.NewFault(validator.KeyAlphaNum)
	}
	return nil
}

type regexKind struct {
	textKind
	re       *regexp.Regexp
	faultKey string
}

func (regexKind) Type() string { return "regex" }

func (k regexKind) messageKeys() []string { return []string{k.faultKey} }

func (k regexKind) Validate(v any) *validator.Fault {
	if f := k.textKind.Validate(v); f != nil {
		return f
	}
	if !k.re.MatchString(str(v)) {
		return validator.NewFault(k.faultKey)
	}
	return nil
}

// Import returns the full match followed by the submatches.
func (k regexKind) Import(v any) any {
	return k.re.FindStringSubmatch(str(v))
}

type scanKind struct {
	textKind
	format   string
	targets  func() []any
	faultKey string
}

func (scanKind) Type() string { return "scan" }

func (k scanKind) messageKeys() []string { return []string{k.faultKey} }

func (k scanKind) scan(s string) ([]any, error) {
	targets := k.targets()
	if _, err := fmt.Sscanf(s, k.format, targets...); err != nil {
		return nil, err
	}
	out := make([]any, len(targets))
	for i, t := range targets {
		rv := reflect.ValueOf(t)
		if rv.Kind() == reflect.Pointer && !rv.IsNil() {
			out[i] = rv.Elem().Interface()
		} else {
			out[i] = t
		}
	}
	return out, nil
}

func (k scanKind) Validate(v any) *validator.Fault {
	if f := k.textKind.Validate(v); f != nil {
		return f
	}
	if _, err := k.scan(str(v)); err != nil {
		return validator.NewFault(k.faultKey)
	}
	return nil
}

// Import returns the scanned values, dereferenced.
func (k scanKind) Import(v any) any {
	if str(v) == "" {
		return nil
	}
	out, err := k.scan(str(v))
	if err != nil {
		return nil
	}
	return out
}

type textareaKind struct {
	base
	rows, cols int
	html       bool
}

func (k textareaKind) Type() string {
	if k.html {
		return "textarea_html"
	}
	return "textarea"
}

func (textareaKind) Widget() string { return render.WidgetTextarea }

func (k textareaKind) Attributes() map[string]string {
	return map[string]string{
		"rows": strconv.Itoa(k.rows),
		"cols": strconv.Itoa(k.cols),
	}
}

func (textareaKind) Validate(any) *validator.Fault { return nil }

func (k textareaKind) Import(v any) any {
	if k.html {
		return sanitizer.SanitizeHTML(str(v))
	}
	return sanitizer.Unescape(str(v))
}
