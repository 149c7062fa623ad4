package internal

import (
	"github.com/samber/lo"

	"github.com/dmitrymomot/forms/pkg/render"
	"github.com/dmitrymomot/forms/pkg/sanitizer"
	"github.com/dmitrymomot/forms/pkg/validator"
)

// Message keys of choice kinds.
const (
	KeyInvalidDropDown       = validator.KeyOneOf
	KeyInvalidMultipleChoice = "field_invalid_multiplechoice_badformat"
)

// Multiple choice widgets.
const (
	WidgetSelectMultiple = render.WidgetSelectMultiple
	WidgetRadio          = render.WidgetRadio
	WidgetCheckbox       = render.WidgetCheckbox
)

type checkboxKind struct{ base }

func (checkboxKind) Type() string   { return "checkbox" }
func (checkboxKind) Widget() string { return render.WidgetCheckbox }

// Prepare turns any submitted value into the checked state. Absent, "" and
// "0" are unchecked.
func (checkboxKind) Prepare(raw any) any {
	switch v := raw.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != "" && v != "0"
	case []string:
		return len(v) > 0 && lo.SomeBy(v, func(s string) bool { return s != "" && s != "0" })
	default:
		return true
	}
}

func (checkboxKind) Empty(v any) bool {
	checked, _ := v.(bool)
	return !checked
}

func (checkboxKind) Validate(any) *validator.Fault { return nil }

func (checkboxKind) Import(v any) any {
	checked, _ := v.(bool)
	return checked
}

type dropDownKind struct {
	base
	choices []Choice
}

func (dropDownKind) Type() string               { return "dropdown" }
func (dropDownKind) Widget() string             { return render.WidgetSelect }
func (k dropDownKind) Choices() []render.Choice { return k.choices }

func (k dropDownKind) Validate(v any) *validator.Fault {
	if !hasChoice(k.choices, str(v)) {
		return validator.NewFault(KeyInvalidDropDown)
	}
	return nil
}

func (dropDownKind) Import(v any) any {
	return sanitizer.Unescape(str(v))
}

type multipleChoiceKind struct {
	choices []Choice
	widget  string
}

func (multipleChoiceKind) Type() string                  { return "multiplechoice" }
func (k multipleChoiceKind) Widget() string              { return k.widget }
func (multipleChoiceKind) Multi() bool                   { return true }
func (multipleChoiceKind) Attributes() map[string]string { return nil }
func (k multipleChoiceKind) Choices() []render.Choice    { return k.choices }

// Prepare keeps lists as lists and leaves scalars alone, so a scalar
// submission fails validation.
func (multipleChoiceKind) Prepare(raw any) any {
	switch v := raw.(type) {
	case []any:
		return lo.Map(v, func(item any, _ int) string { return str(scalar(item)) })
	default:
		return raw
	}
}

func (multipleChoiceKind) Empty(v any) bool {
	return validator.IsEmpty(v)
}

func (k multipleChoiceKind) Validate(v any) *validator.Fault {
	list, ok := v.([]string)
	if !ok {
		return validator.NewFault(KeyInvalidMultipleChoice)
	}
	for _, item := range list {
		if !hasChoice(k.choices, item) {
			return validator.NewFault(KeyInvalidMultipleChoice)
		}
	}
	return nil
}

// Import returns the selected keys, each unescaped. Empty selections
// import as an empty list.
func (multipleChoiceKind) Import(v any) any {
	list, _ := v.([]string)
	return lo.Map(list, func(item string, _ int) string { return sanitizer.Unescape(item) })
}

func hasChoice(choices []Choice, key string) bool {
	return lo.ContainsBy(choices, func(c Choice) bool { return c.Value == key })
}

func validMultiWidget(widget string) bool {
	return lo.Contains([]string{WidgetSelectMultiple, WidgetRadio, WidgetCheckbox}, widget)
}
