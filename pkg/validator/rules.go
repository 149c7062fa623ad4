package validator

import (
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// MinLength rejects strings shorter than n characters.
// Empty values pass; combine with Required to reject them.
func MinLength(n int) Validator {
	return New("min_length", func(value any) *Fault {
		s := toString(value)
		if s != "" && utf8.RuneCountInString(s) < n {
			return NewFault(KeyMinLength, n)
		}
		return nil
	})
}

// MaxLength rejects strings longer than n characters.
func MaxLength(n int) Validator {
	return New("max_length", func(value any) *Fault {
		if utf8.RuneCountInString(toString(value)) > n {
			return NewFault(KeyMaxLength, n)
		}
		return nil
	})
}

// Min rejects numeric strings below min. Non-numeric values are left to
// the field's own type check.
func Min(min float64) Validator {
	return New("min", func(value any) *Fault {
		if n, ok := toFloat(value); ok && n < min {
			return NewFault(KeyMin, min)
		}
		return nil
	})
}

// Max rejects numeric strings above max.
func Max(max float64) Validator {
	return New("max", func(value any) *Fault {
		if n, ok := toFloat(value); ok && n > max {
			return NewFault(KeyMax, max)
		}
		return nil
	})
}

// Pattern rejects non-empty strings that do not match re, reporting key.
func Pattern(name string, re *regexp.Regexp, key string) Validator {
	return New(name, func(value any) *Fault {
		s := toString(value)
		if s != "" && !re.MatchString(s) {
			return NewFault(key)
		}
		return nil
	})
}

// Email rejects values that are not a bare email address.
func Email() Validator {
	return New("email", func(value any) *Fault {
		s := toString(value)
		if s == "" {
			return nil
		}
		if !IsEmailAddress(s) {
			return NewFault(KeyInvalidEmail)
		}
		return nil
	})
}

// URL rejects values that are not absolute URLs with a scheme and host.
func URL() Validator {
	return New("url", func(value any) *Fault {
		s := toString(value)
		if s == "" {
			return nil
		}
		if !IsAbsoluteURL(s) {
			return NewFault(KeyInvalidURL)
		}
		return nil
	})
}

// Alpha rejects values containing anything but letters.
func Alpha() Validator {
	return New("alpha", func(value any) *Fault {
		if !IsAlpha(toString(value)) {
			return NewFault(KeyAlpha)
		}
		return nil
	})
}

// AlphaNum rejects values containing anything but letters and digits.
func AlphaNum() Validator {
	return New("alphanum", func(value any) *Fault {
		if !IsAlphaNum(toString(value)) {
			return NewFault(KeyAlphaNum)
		}
		return nil
	})
}

// OneOf rejects values outside the allowed set.
func OneOf(allowed ...string) Validator {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return New("one_of", func(value any) *Fault {
		s := toString(value)
		if s == "" {
			return nil
		}
		if _, ok := set[s]; !ok {
			return NewFault(KeyOneOf)
		}
		return nil
	})
}

// IsEmailAddress reports whether s is a single bare address (no display name).
func IsEmailAddress(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Address == s && addr.Name == ""
}

// IsAbsoluteURL reports whether s parses as a URL with both scheme and host.
func IsAbsoluteURL(s string) bool {
	u, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// IsAlpha reports whether s is non-empty and made of letters only.
func IsAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// IsAlphaNum reports whether s is non-empty and made of letters and digits only.
func IsAlphaNum(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func toString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	case string:
		n, err := strconv.ParseFloat(v, 64)
		return n, err == nil
	default:
		return 0, false
	}
}
