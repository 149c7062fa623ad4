package render

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/samber/lo"
	"github.com/yuin/goldmark"

	"github.com/dmitrymomot/forms/pkg/sanitizer"
)

var markdown = goldmark.New()

// Field renders the widget, help text and errors of one field.
// It panics with ErrUnknownWidget for widgets it does not know.
func Field(v FieldView) templ.Component {
	control := widget(v)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, control); err != nil {
			return err
		}
		if err := HelpText(v).Render(ctx, w); err != nil {
			return err
		}
		return Errors(v).Render(ctx, w)
	})
}

// Widget renders only the input element of a field.
func Widget(v FieldView) templ.Component {
	control := widget(v)
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, control)
		return err
	})
}

// Label renders a <label> pointing at the field. Fields without a label
// render nothing.
func Label(v FieldView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if v.Label == "" {
			return nil
		}
		_, err := fmt.Fprintf(w, `<label for="%s">%s</label>`, escape(v.ID), escape(v.Label))
		return err
	})
}

// Errors renders one advice block per field error.
func Errors(v FieldView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		for _, e := range v.Errors {
			fmt.Fprintf(&b, `<div class="validation-advice" id="advice-%s-%s">%s</div>`,
				escape(e.Rule), escape(v.ID), escape(e.Message))
		}
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// HelpText renders the markdown help text as sanitized HTML.
func HelpText(v FieldView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if strings.TrimSpace(v.HelpText) == "" {
			return nil
		}
		var buf bytes.Buffer
		if err := markdown.Convert([]byte(v.HelpText), &buf); err != nil {
			return fmt.Errorf("render help text: %w", err)
		}
		_, err := fmt.Fprintf(w, `<span class="forms-help">%s</span>`,
			strings.TrimSpace(sanitizer.SanitizeHelpText(buf.String())))
		return err
	})
}

func widget(v FieldView) string {
	var b strings.Builder

	switch v.Widget {
	case WidgetText, WidgetEmail, WidgetURL:
		attrs := fieldAttrs(v, map[string]string{"type": v.Widget, "value": v.Value})
		flag(v.Required, "required", attrs)
		writeTag(&b, "input", attrs, true)

	case WidgetPassword:
		attrs := fieldAttrs(v, map[string]string{"type": WidgetPassword, "value": ""})
		flag(v.Required, "required", attrs)
		writeTag(&b, "input", attrs, true)

	case WidgetHidden:
		writeTag(&b, "input", fieldAttrs(v, map[string]string{"type": WidgetHidden, "value": v.Value}), true)

	case WidgetTextarea:
		attrs := fieldAttrs(v, nil)
		flag(v.Required, "required", attrs)
		writeTag(&b, "textarea", attrs, false)
		b.WriteString(escape(v.Value))
		b.WriteString("</textarea>")

	case WidgetFile:
		fixed := map[string]string{"type": WidgetFile}
		if len(v.Accept) > 0 {
			fixed["accept"] = strings.Join(v.Accept, ",")
		}
		attrs := fieldAttrs(v, fixed)
		flag(v.Required, "required", attrs)
		writeTag(&b, "input", attrs, true)

	case WidgetSelect, WidgetSelectMultiple:
		attrs := fieldAttrs(v, nil)
		flag(v.Widget == WidgetSelectMultiple, "multiple", attrs)
		flag(v.Required, "required", attrs)
		writeTag(&b, "select", attrs, false)
		selected := v.Values
		if v.Widget == WidgetSelect {
			selected = []string{v.Value}
		}
		for _, c := range v.Choices {
			opt := map[string]string{"value": c.Value}
			flag(lo.Contains(selected, c.Value), "selected", opt)
			writeTag(&b, "option", opt, false)
			b.WriteString(escape(c.Label))
			b.WriteString("</option>")
		}
		b.WriteString("</select>")

	case WidgetRadio:
		writeOptionGroup(&b, v, WidgetRadio)

	case WidgetCheckbox:
		if len(v.Choices) > 0 {
			writeOptionGroup(&b, v, WidgetCheckbox)
			break
		}
		attrs := fieldAttrs(v, map[string]string{"type": WidgetCheckbox, "value": "on"})
		flag(v.Checked, "checked", attrs)
		writeTag(&b, "input", attrs, true)

	default:
		panic(fmt.Errorf("%w: %q (field %q)", ErrUnknownWidget, v.Widget, v.Name))
	}

	return b.String()
}

// writeOptionGroup renders one labelled input per choice. Only the first
// input carries the field id.
func writeOptionGroup(b *strings.Builder, v FieldView, inputType string) {
	for i, c := range v.Choices {
		attrs := fieldAttrs(v, map[string]string{"type": inputType, "value": c.Value})
		if i > 0 {
			delete(attrs, "id")
		}
		flag(lo.Contains(v.Values, c.Value), "checked", attrs)
		b.WriteString("<label>")
		writeTag(b, "input", attrs, true)
		b.WriteByte(' ')
		b.WriteString(escape(c.Label))
		b.WriteString("</label>\n")
	}
}
