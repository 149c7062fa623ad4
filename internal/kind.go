package internal

import (
	"fmt"

	"github.com/dmitrymomot/forms/pkg/render"
	"github.com/dmitrymomot/forms/pkg/validator"
)

// Kind supplies the type-specific hooks of a field. Kinds are stateless and
// shared by every form bound from the same definition.
type Kind interface {
	// Type names the kind; it is the rule of the faults Validate returns.
	Type() string
	// Widget is the render.Widget* identifier.
	Widget() string
	// Multi reports whether the transport value is a list.
	Multi() bool
	// Attributes are rendering hints such as maxlength or rows.
	Attributes() map[string]string
	// Prepare normalizes the raw submitted value.
	Prepare(raw any) any
	// Empty reports whether a prepared value counts as not submitted.
	Empty(prepared any) bool
	// Validate checks a non-empty prepared value.
	Validate(prepared any) *validator.Fault
	// Import converts a valid prepared value to its cleaned form.
	Import(prepared any) any
}

// chooser is implemented by kinds offering a fixed set of choices.
type chooser interface {
	Choices() []render.Choice
}

// acceptor is implemented by file kinds.
type acceptor interface {
	Accept() []string
}

// messageKeyer is implemented by kinds that report caller-chosen message keys.
type messageKeyer interface {
	messageKeys() []string
}

// sniffer is implemented by kinds that can detect media types from content.
type sniffer interface {
	withSniffing() Kind
}

// Choice is one allowed key of a drop-down or multiple-choice field.
type Choice = render.Choice

// base carries the defaults shared by most kinds.
type base struct{}

func (base) Multi() bool                   { return false }
func (base) Attributes() map[string]string { return nil }
func (base) Prepare(raw any) any           { return scalar(raw) }
func (base) Empty(prepared any) bool       { return validator.IsEmpty(prepared) }

// scalar reduces a transport value to a string. Lists contribute their
// first element.
func scalar(raw any) any {
	switch v := raw.(type) {
	case nil:
		return nil
	case string:
		return v
	case []string:
		if len(v) == 0 {
			return ""
		}
		return v[0]
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func str(v any) string {
	s, _ := v.(string)
	return s
}
