package render_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/forms/pkg/render"
)

func html(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestWidget(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		view render.FieldView
		want string
	}{
		{
			name: "text escapes value and sorts attributes",
			view: render.FieldView{
				Name: "name", ID: "id_name", Widget: render.WidgetText, Value: `"><script>`,
				Attributes: map[string]string{"size": "25", "maxlength": "100"},
			},
			want: `<input id="id_name" maxlength="100" name="name" size="25" type="text" value="&#34;&gt;&lt;script&gt;" />`,
		},
		{
			name: "password never echoes value",
			view: render.FieldView{Name: "pw", ID: "id_pw", Widget: render.WidgetPassword, Value: "secret"},
			want: `<input id="id_pw" name="pw" type="password" value="" />`,
		},
		{
			name: "hidden",
			view: render.FieldView{Name: "token", ID: "id_token", Widget: render.WidgetHidden, Value: "abc"},
			want: `<input id="id_token" name="token" type="hidden" value="abc" />`,
		},
		{
			name: "textarea",
			view: render.FieldView{Name: "body", ID: "id_body", Widget: render.WidgetTextarea, Value: "a < b", Required: true},
			want: `<textarea id="id_body" name="body" required="required">a &lt; b</textarea>`,
		},
		{
			name: "checkbox",
			view: render.FieldView{Name: "agree", ID: "id_agree", Widget: render.WidgetCheckbox, Checked: true},
			want: `<input checked="checked" id="id_agree" name="agree" type="checkbox" value="on" />`,
		},
		{
			name: "select",
			view: render.FieldView{
				Name: "color", ID: "id_color", Widget: render.WidgetSelect, Value: "b",
				Choices: []render.Choice{{Value: "a", Label: "A"}, {Value: "b", Label: "B"}},
			},
			want: `<select id="id_color" name="color"><option value="a">A</option><option selected="selected" value="b">B</option></select>`,
		},
		{
			name: "select multiple",
			view: render.FieldView{
				Name: "tags[]", ID: "id_tags", Widget: render.WidgetSelectMultiple, Values: []string{"a"}, Multi: true,
				Choices: []render.Choice{{Value: "a", Label: "A"}, {Value: "b", Label: "B"}},
			},
			want: `<select id="id_tags" multiple="multiple" name="tags[]"><option selected="selected" value="a">A</option><option value="b">B</option></select>`,
		},
		{
			name: "file",
			view: render.FieldView{Name: "photo", ID: "id_photo", Widget: render.WidgetFile, Accept: []string{"image/png", "image/gif"}},
			want: `<input accept="image/png,image/gif" id="id_photo" name="photo" type="file" />`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, html(t, render.Widget(tt.view)))
		})
	}
}

func TestOptionGroup(t *testing.T) {
	t.Parallel()

	v := render.FieldView{
		Name: "size[]", ID: "id_size", Widget: render.WidgetRadio, Values: []string{"m"}, Multi: true,
		Choices: []render.Choice{{Value: "s", Label: "Small"}, {Value: "m", Label: "Medium"}},
	}
	want := `<label><input id="id_size" name="size[]" type="radio" value="s" /> Small</label>` + "\n" +
		`<label><input checked="checked" name="size[]" type="radio" value="m" /> Medium</label>` + "\n"
	assert.Equal(t, want, html(t, render.Widget(v)))

	v.Widget = render.WidgetCheckbox
	assert.Contains(t, html(t, render.Widget(v)), `type="checkbox" value="m"`)
}

func TestUnknownWidgetPanics(t *testing.T) {
	t.Parallel()

	assert.PanicsWithError(t, `render: unknown widget: "slider" (field "x")`, func() {
		render.Field(render.FieldView{Name: "x", Widget: "slider"})
	})
}

func TestLabelErrorsHelp(t *testing.T) {
	t.Parallel()

	v := render.FieldView{
		Name: "email", ID: "id_email", Label: "E-mail <work>", Widget: render.WidgetEmail,
		Errors:   []render.FieldError{{Rule: "email", Message: "Invalid email address."}},
		HelpText: "We **never** share it. <script>alert(1)</script>",
	}

	assert.Equal(t, `<label for="id_email">E-mail &lt;work&gt;</label>`, html(t, render.Label(v)))
	assert.Equal(t, `<div class="validation-advice" id="advice-email-id_email">Invalid email address.</div>`, html(t, render.Errors(v)))

	help := html(t, render.HelpText(v))
	assert.Contains(t, help, `<span class="forms-help">`)
	assert.Contains(t, help, "<strong>never</strong>")
	assert.NotContains(t, help, "<script")

	assert.Empty(t, html(t, render.Label(render.FieldView{})))
	assert.Empty(t, html(t, render.HelpText(render.FieldView{})))

	full := html(t, render.Field(v))
	assert.Contains(t, full, `type="email"`)
	assert.Contains(t, full, "validation-advice")
}

func TestForm(t *testing.T) {
	t.Parallel()

	view := render.FormView{
		Name: "contact", ID: "contact", Method: "POST", Multipart: true,
		SubmitLabel: "Validate", ResetLabel: "Clear form",
		Fields: []render.FieldView{
			{Name: "name", ID: "id_name", Label: "Name", Widget: render.WidgetText, Value: "Ann"},
			{Name: "token", ID: "id_token", Widget: render.WidgetHidden, Value: "t"},
		},
	}

	t.Run("labels layout", func(t *testing.T) {
		t.Parallel()
		out := html(t, render.Form(view, render.WithAction("/contact?x=1&y=2")))
		assert.Contains(t, out, `<form action="/contact?x=1&amp;y=2" enctype="multipart/form-data" id="contact" method="post">`)
		assert.Contains(t, out, `<div class="forms-element">`+"\n"+`<label for="id_name">Name</label>`)
		assert.Contains(t, out, `<input id="id_token" name="token" type="hidden" value="t" />`)
		assert.Contains(t, out, `<input class="forms-reset" type="reset" value="Clear form" />`)
		assert.Contains(t, out, `<input class="forms-submit" type="submit" value="Validate" />`)
		assert.True(t, len(out) > 0 && out[len(out)-8:] == "</form>\n")
	})

	t.Run("table layout with alternating rows", func(t *testing.T) {
		t.Parallel()
		out := html(t, render.Fields(view, render.WithLayout(render.LayoutTable), render.WithAlternateRows()))
		assert.Contains(t, out, `<table class="forms-table">`)
		assert.Contains(t, out, `<tr class="forms-table-row forms-odd-row">`)
		assert.Contains(t, out, `<tr class="forms-table-row">`)
		assert.Contains(t, out, `<td class="forms-table-cell-label">Name</td>`)
	})

	t.Run("without buttons", func(t *testing.T) {
		t.Parallel()
		out := html(t, render.Form(view, render.WithoutButtons()))
		assert.NotContains(t, out, "forms-submit")
	})
}
