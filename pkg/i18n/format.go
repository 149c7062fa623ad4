package i18n

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// LocaleFormat holds number formatting rules for one locale.
// It is immutable after creation and safe for concurrent use.
type LocaleFormat struct {
	decimalSeparator  string
	thousandSeparator string
}

// LocaleFormatOption configures a LocaleFormat during construction.
type LocaleFormatOption func(*LocaleFormat)

// NewLocaleFormat creates a new LocaleFormat with the given options.
// If no options are provided, it defaults to English formatting.
func NewLocaleFormat(opts ...LocaleFormatOption) *LocaleFormat {
	lf := &LocaleFormat{
		decimalSeparator:  ".",
		thousandSeparator: ",",
	}

	for _, opt := range opts {
		opt(lf)
	}

	return lf
}

// WithDecimalSeparator sets the decimal separator character.
func WithDecimalSeparator(sep string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.decimalSeparator = sep
	}
}

// WithThousandSeparator sets the thousand separator character.
func WithThousandSeparator(sep string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.thousandSeparator = sep
	}
}

// FormatFor returns the number format for lang. Unknown languages get the
// English format.
func FormatFor(lang string) *LocaleFormat {
	switch baseLanguage(strings.ToLower(lang)) {
	case "de", "es", "it", "nl", "pt", "id", "tr":
		return NewLocaleFormat(WithDecimalSeparator(","), WithThousandSeparator("."))
	case "fr", "ru", "pl", "cs", "uk", "sv", "fi", "nb", "no":
		return NewLocaleFormat(WithDecimalSeparator(","), WithThousandSeparator(" "))
	default:
		return NewLocaleFormat()
	}
}

// FormatInt formats an integer with the locale's thousand separator.
func (lf *LocaleFormat) FormatInt(n int64) string {
	if n < 0 {
		if n == math.MinInt64 {
			return strconv.FormatInt(n, 10)
		}
		return "-" + lf.formatIntegerWithSeparator(-n)
	}
	return lf.formatIntegerWithSeparator(n)
}

// FormatNumber formats a number with the locale's separators, keeping at
// most two decimals.
func (lf *LocaleFormat) FormatNumber(n float64) string {
	negative := n < 0
	if negative {
		n = -n
	}

	n = math.Round(n*100) / 100
	intPart := int64(n)
	decPart := n - float64(intPart)

	result := lf.formatIntegerWithSeparator(intPart)
	if decPart > 0 {
		decStr := strings.TrimRight(fmt.Sprintf("%.2f", decPart)[2:], "0")
		if decStr != "" {
			result += lf.decimalSeparator + decStr
		}
	}

	if negative && result != "0" {
		result = "-" + result
	}

	return result
}

// FormatArg renders one message argument: numbers are localized, anything
// else is printed with its default format.
func (lf *LocaleFormat) FormatArg(arg any) string {
	switch v := arg.(type) {
	case string:
		return v
	case int:
		return lf.FormatInt(int64(v))
	case int8:
		return lf.FormatInt(int64(v))
	case int16:
		return lf.FormatInt(int64(v))
	case int32:
		return lf.FormatInt(int64(v))
	case int64:
		return lf.FormatInt(v)
	case uint:
		return lf.FormatInt(int64(v))
	case uint8:
		return lf.FormatInt(int64(v))
	case uint16:
		return lf.FormatInt(int64(v))
	case uint32:
		return lf.FormatInt(int64(v))
	case uint64:
		if v > math.MaxInt64 {
			return strconv.FormatUint(v, 10)
		}
		return lf.FormatInt(int64(v))
	case float32:
		return lf.FormatNumber(float64(v))
	case float64:
		return lf.FormatNumber(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (lf *LocaleFormat) formatIntegerWithSeparator(n int64) string {
	str := strconv.FormatInt(n, 10)
	if n < 1000 {
		return str
	}

	var parts []string
	for i := len(str); i > 0; i -= 3 {
		start := max(0, i-3)
		parts = append([]string{str[start:i]}, parts...)
	}

	return strings.Join(parts, lf.thousandSeparator)
}
