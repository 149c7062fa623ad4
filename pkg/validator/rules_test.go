package validator_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/forms/pkg/validator"
)

type emptier bool

func (e emptier) IsEmpty() bool { return bool(e) }

func TestRequired(t *testing.T) {
	t.Parallel()

	rule := validator.Required()
	require.True(t, rule.IsRequired())
	require.Equal(t, validator.RuleRequired, rule.Name)

	tests := []struct {
		name  string
		value any
		empty bool
	}{
		{"nil", nil, true},
		{"empty string", "", true},
		{"string", "x", false},
		{"empty list", []string{}, true},
		{"list", []string{"a"}, false},
		{"unchecked", false, true},
		{"checked", true, false},
		{"empty emptier", emptier(true), true},
		{"filled emptier", emptier(false), false},
		{"number", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fault := rule.Validate(tt.value)
			if tt.empty {
				require.NotNil(t, fault)
				assert.Equal(t, validator.KeyRequired, fault.Key)
				assert.Empty(t, fault.Args)
			} else {
				assert.Nil(t, fault)
			}
		})
	}
}

func TestBuiltinRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rule    validator.Validator
		value   any
		wantKey string
		args    []any
	}{
		{"min length ok", validator.MinLength(2), "ab", "", nil},
		{"min length short", validator.MinLength(3), "ab", validator.KeyMinLength, []any{3}},
		{"min length empty passes", validator.MinLength(3), "", "", nil},
		{"max length counts runes", validator.MaxLength(3), "äöü", "", nil},
		{"max length long", validator.MaxLength(3), "abcd", validator.KeyMaxLength, []any{3}},
		{"min number", validator.Min(18), "15", validator.KeyMin, []any{float64(18)}},
		{"min number non numeric ignored", validator.Min(18), "abc", "", nil},
		{"max number", validator.Max(100), "105", validator.KeyMax, []any{float64(100)}},
		{"email ok", validator.Email(), "a@b.com", "", nil},
		{"email bad", validator.Email(), "not-an-email", validator.KeyInvalidEmail, nil},
		{"email with display name", validator.Email(), "Bob <a@b.com>", validator.KeyInvalidEmail, nil},
		{"url ok", validator.URL(), "https://example.com/x", "", nil},
		{"url without host", validator.URL(), "mailto:x", validator.KeyInvalidURL, nil},
		{"alpha ok", validator.Alpha(), "Zoë", "", nil},
		{"alpha digits", validator.Alpha(), "abc1", validator.KeyAlpha, nil},
		{"alphanum ok", validator.AlphaNum(), "abc123", "", nil},
		{"alphanum space", validator.AlphaNum(), "abc 123", validator.KeyAlphaNum, nil},
		{"one of ok", validator.OneOf("a", "b"), "a", "", nil},
		{"one of bad", validator.OneOf("a", "b"), "z", validator.KeyOneOf, nil},
		{"pattern", validator.Pattern("zip", regexp.MustCompile(`^\d{5}$`), "zip_invalid"), "1234", "zip_invalid", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fault := tt.rule.Validate(tt.value)
			if tt.wantKey == "" {
				assert.Nil(t, fault)
				return
			}
			require.NotNil(t, fault)
			assert.Equal(t, tt.wantKey, fault.Key)
			if tt.args != nil {
				assert.Equal(t, tt.args, fault.Args)
			}
		})
	}
}

func TestFault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "validation_required", validator.NewFault("validation_required").Error())
	assert.Equal(t, "field_file_sizelimit(1000)", validator.NewFault("field_file_sizelimit", int64(1000)).Error())

	ve := validator.FromFault("photo", "fileupload", validator.NewFault("field_file_sizelimit", int64(1000)))
	assert.Equal(t, "photo", ve.Field)
	assert.Equal(t, "fileupload", ve.Rule)
	assert.Equal(t, []any{int64(1000)}, ve.TranslationArgs)
	assert.Equal(t, "photo: field_file_sizelimit", ve.Error())
}

func TestNewRejectsUnusableValidators(t *testing.T) {
	t.Parallel()

	pass := func(any) *validator.Fault { return nil }
	tests := []struct {
		name string
		rule string
		fn   validator.Func
	}{
		{"nil check", "noop", nil},
		{"empty name", "", pass},
		{"blank name", "  ", pass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			defer func() {
				err, ok := recover().(error)
				require.True(t, ok, "New must panic with an error")
				assert.ErrorIs(t, err, validator.ErrInvalidValidator)
			}()
			validator.New(tt.rule, tt.fn)
		})
	}
}

func TestValidatorErr(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, validator.Validator{}.Err(), validator.ErrInvalidValidator)
	assert.ErrorIs(t, validator.Validator{Name: "x"}.Err(), validator.ErrInvalidValidator)
	assert.NoError(t, validator.MinLength(2).Err())
}

func TestRequiredMarkerIsNotMatchedByName(t *testing.T) {
	t.Parallel()

	custom := validator.New(validator.RuleRequired, func(any) *validator.Fault { return nil })
	assert.False(t, custom.IsRequired())
	assert.False(t, validator.Validator{Name: validator.RuleRequired}.IsRequired())
	assert.True(t, validator.Required().IsRequired())
}
