package forms_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/forms"
	"github.com/dmitrymomot/forms/pkg/validator"
)

var signup = forms.MustDefine("signup",
	forms.WithFields(
		forms.Text("name", "Name", 25, 100, forms.Required()),
		forms.Integer("age", "Age", 3, 3,
			forms.WithValidators(validator.Min(18)),
		),
		forms.MultipleChoice("topics", "Topics", []forms.Choice{
			{Value: "go", Label: "Go"},
			{Value: "web", Label: "Web"},
		}, forms.WidgetCheckbox),
	),
)

func post(t *testing.T, values url.Values, lang string) *forms.Form {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if lang != "" {
		req.Header.Set("Accept-Language", lang)
	}
	form, err := signup.BindRequest(req)
	require.NoError(t, err)
	return form
}

func TestSignup(t *testing.T) {
	t.Parallel()

	t.Run("valid submission", func(t *testing.T) {
		t.Parallel()
		form := post(t, url.Values{"name": {"Ada"}, "age": {"36"}, "topics[]": {"go", "web"}}, "")

		require.True(t, form.IsValid())
		data, ok := form.CleanedData()
		require.True(t, ok)
		assert.Equal(t, map[string]any{
			"name":   "Ada",
			"age":    36,
			"topics": []string{"go", "web"},
		}, data)
	})

	t.Run("optional fields left blank", func(t *testing.T) {
		t.Parallel()
		form := post(t, url.Values{"name": {"Ada"}, "age": {""}}, "")

		require.True(t, form.IsValid())
		data, _ := form.CleanedData()
		assert.Nil(t, data["age"])
		assert.Empty(t, data["topics"])
	})

	t.Run("errors are translated", func(t *testing.T) {
		t.Parallel()
		form := post(t, url.Values{"name": {""}, "age": {"abc"}}, "de-DE,de;q=0.9")

		require.False(t, form.IsValid())
		assert.Equal(t, "de", form.Locale())

		errs := form.ErrorMap()
		require.Len(t, errs, 2)
		assert.Equal(t, "Dieses Feld ist erforderlich.", errs["name"].Message)
		assert.Equal(t, "Muss eine ganze Zahl sein.", errs["age"].Message)

		require.True(t, forms.IsValidationError(form.Err()))
	})

	t.Run("validators and kind checks both report", func(t *testing.T) {
		t.Parallel()
		form := post(t, url.Values{"name": {"Ada"}, "age": {"0001"}}, "")

		require.False(t, form.IsValid())
		keys := form.AllErrors().Keys()
		assert.Equal(t, []string{validator.KeyMin, "field_invalid_integer_sizelimit"}, keys)
	})

	t.Run("other method leaves the form unbound", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/signup?name=Ada", nil)
		form, err := signup.BindRequest(req)
		require.NoError(t, err)

		assert.False(t, form.IsBound())
		assert.False(t, form.IsValid())
		assert.ErrorIs(t, form.Err(), forms.ErrNotBound)
	})
}

func TestDefine_Errors(t *testing.T) {
	t.Parallel()

	_, err := forms.Define("")
	require.ErrorIs(t, err, forms.ErrEmptyFormName)

	_, err = forms.Define("upload", forms.WithMethod(forms.MethodGet), forms.WithMultipart())
	require.ErrorIs(t, err, forms.ErrMultipartMethod)

	_, err = forms.Define("dup", forms.WithFields(
		forms.Text("a", "A", 10, 10),
		forms.Hidden("a"),
	))
	require.ErrorIs(t, err, forms.ErrDuplicateField)

	require.PanicsWithError(t, `forms: unknown multiple choice widget: "slider" (field "x")`, func() {
		forms.MultipleChoice("x", "X", nil, "slider")
	})
}
