package render

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Layout selects how Form arranges fields.
type Layout int

const (
	// LayoutLabels wraps each labelled field in a div with its label.
	LayoutLabels Layout = iota
	// LayoutTable renders one table row per field.
	LayoutTable
)

type formConfig struct {
	layout    Layout
	alternate bool
	action    string
	attrs     map[string]string
	buttons   bool
}

// FormOption configures Form.
type FormOption func(*formConfig)

// WithLayout selects the field layout.
func WithLayout(l Layout) FormOption {
	return func(c *formConfig) {
		c.layout = l
	}
}

// WithAlternateRows adds the "forms-odd-row" class to every other table row.
func WithAlternateRows() FormOption {
	return func(c *formConfig) {
		c.alternate = true
	}
}

// WithAction sets the form action URL.
func WithAction(action string) FormOption {
	return func(c *formConfig) {
		c.action = action
	}
}

// WithFormAttributes adds attributes to the <form> element.
func WithFormAttributes(attrs map[string]string) FormOption {
	return func(c *formConfig) {
		c.attrs = attrs
	}
}

// WithoutButtons omits the reset and submit buttons.
func WithoutButtons() FormOption {
	return func(c *formConfig) {
		c.buttons = false
	}
}

// Form renders the complete form: opening tag, fields, buttons and closing
// tag.
func Form(v FormView, opts ...FormOption) templ.Component {
	cfg := &formConfig{buttons: true}
	for _, opt := range opts {
		opt(cfg)
	}

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := Open(v, cfg.action, cfg.attrs).Render(ctx, w); err != nil {
			return err
		}
		if err := Fields(v, opts...).Render(ctx, w); err != nil {
			return err
		}
		if cfg.buttons {
			if err := Buttons(v).Render(ctx, w); err != nil {
				return err
			}
		}
		return Close().Render(ctx, w)
	})
}

// Fields renders only the fields of the form in the selected layout.
func Fields(v FormView, opts ...FormOption) templ.Component {
	cfg := &formConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if cfg.layout == LayoutTable {
			return renderTable(ctx, w, v, cfg.alternate)
		}
		return renderLabels(ctx, w, v)
	})
}

func renderLabels(ctx context.Context, w io.Writer, v FormView) error {
	for _, f := range v.Fields {
		if f.Label == "" || f.Widget == WidgetHidden {
			if err := Field(f).Render(ctx, w); err != nil {
				return err
			}
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
			continue
		}

		if _, err := io.WriteString(w, `<div class="forms-element">`+"\n"); err != nil {
			return err
		}
		if err := Label(f).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
		if err := Field(f).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n</div>\n"); err != nil {
			return err
		}
	}
	return nil
}

func renderTable(ctx context.Context, w io.Writer, v FormView, alternate bool) error {
	if _, err := io.WriteString(w, `<table class="forms-table">`+"\n<tbody>\n"); err != nil {
		return err
	}

	for i, f := range v.Fields {
		rowClass := "forms-table-row"
		if alternate && i%2 == 0 {
			rowClass += " forms-odd-row"
		}

		if _, err := fmt.Fprintf(w, `<tr class="%s">`+"\n", rowClass); err != nil {
			return err
		}

		cells := []struct {
			class string
			parts []templ.Component
		}{
			{"forms-table-cell-label", []templ.Component{templ.Raw(escape(f.Label))}},
			{"forms-table-cell-field", []templ.Component{Widget(f), Errors(f)}},
			{"forms-table-help-text", []templ.Component{HelpText(f)}},
		}
		for _, cell := range cells {
			if _, err := fmt.Fprintf(w, `<td class="%s">`, cell.class); err != nil {
				return err
			}
			for _, part := range cell.parts {
				if err := part.Render(ctx, w); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, "</td>\n"); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, "</tr>\n"); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</tbody>\n</table>\n")
	return err
}

// Open renders the opening <form> tag. An empty action posts back to the
// current URL.
func Open(v FormView, action string, attrs map[string]string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		all := make(map[string]string, len(attrs)+4)
		for k, val := range attrs {
			all[k] = val
		}
		all["method"] = strings.ToLower(v.Method)
		if action != "" {
			all["action"] = action
		}
		if v.ID != "" {
			all["id"] = v.ID
		}
		if v.Multipart {
			all["enctype"] = "multipart/form-data"
		}

		var b strings.Builder
		writeTag(&b, "form", all, false)
		b.WriteByte('\n')
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Close renders the closing </form> tag.
func Close() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "</form>\n")
		return err
	})
}

// Buttons renders the reset and submit buttons with the form's labels.
func Buttons(v FormView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		writeTag(&b, "input", map[string]string{"type": "reset", "class": "forms-reset", "value": v.ResetLabel}, true)
		b.WriteByte('\n')
		writeTag(&b, "input", map[string]string{"type": "submit", "class": "forms-submit", "value": v.SubmitLabel}, true)
		b.WriteByte('\n')
		_, err := io.WriteString(w, b.String())
		return err
	})
}
