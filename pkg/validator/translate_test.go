package validator_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/forms/pkg/validator"
)

func TestValidationErrors_Translate(t *testing.T) {
	t.Parallel()

	mockTranslate := func(key string, args []any) string {
		translations := map[string]string{
			"validation_required":          "This field is required.",
			"field_invalid_text_sizelimit": "Must be fewer than {{0}} characters in length.",
		}
		tmpl := translations[key]
		if tmpl == "" {
			return key
		}
		for i, a := range args {
			tmpl = strings.ReplaceAll(tmpl, fmt.Sprintf("{{%d}}", i), fmt.Sprint(a))
		}
		return tmpl
	}

	t.Run("translates messages in-place", func(t *testing.T) {
		t.Parallel()
		errs := validator.ValidationErrors{
			{Field: "email", Rule: "required", TranslationKey: "validation_required"},
			{Field: "name", Rule: "text", TranslationKey: "field_invalid_text_sizelimit", TranslationArgs: []any{10}},
		}

		errs.Translate(mockTranslate)

		assert.Equal(t, "This field is required.", errs[0].Message)
		assert.Equal(t, "Must be fewer than 10 characters in length.", errs[1].Message)
	})

	t.Run("nil fn is no-op", func(t *testing.T) {
		t.Parallel()
		errs := validator.ValidationErrors{
			{Field: "email", Message: "is required", TranslationKey: "validation_required"},
		}

		errs.Translate(nil)

		assert.Equal(t, "is required", errs[0].Message)
	})

	t.Run("empty errors is no-op", func(t *testing.T) {
		t.Parallel()
		var errs validator.ValidationErrors
		errs.Translate(mockTranslate)
		assert.Empty(t, errs)
	})

	t.Run("skips errors with empty TranslationKey", func(t *testing.T) {
		t.Parallel()
		errs := validator.ValidationErrors{
			{Field: "name", Message: "original message"},
			{Field: "email", TranslationKey: "validation_required"},
		}

		errs.Translate(mockTranslate)

		assert.Equal(t, "original message", errs[0].Message)
		assert.Equal(t, "This field is required.", errs[1].Message)
	})

	t.Run("preserves Field, Rule and translation data", func(t *testing.T) {
		t.Parallel()
		errs := validator.ValidationErrors{
			{Field: "name", Rule: "text", TranslationKey: "field_invalid_text_sizelimit", TranslationArgs: []any{10}},
		}

		errs.Translate(mockTranslate)

		assert.Equal(t, "name", errs[0].Field)
		assert.Equal(t, "text", errs[0].Rule)
		assert.Equal(t, "field_invalid_text_sizelimit", errs[0].TranslationKey)
		assert.Equal(t, []any{10}, errs[0].TranslationArgs)
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	t.Parallel()

	errs := validator.ValidationErrors{
		{Field: "email", Rule: "required", TranslationKey: "validation_required", Message: "required"},
		{Field: "tags", Rule: "one_of", TranslationKey: "field_invalid_dropdown", Message: "bad"},
		{Field: "tags", Rule: "max_length", TranslationKey: "field_invalid_text_sizelimit", Message: "long"},
	}

	require.False(t, errs.IsEmpty())
	require.True(t, errs.Has("tags"))
	require.False(t, errs.Has("name"))
	require.Equal(t, []string{"bad", "long"}, errs.Get("tags"))
	require.Len(t, errs.GetErrors("email"), 1)
	require.Equal(t, []string{"validation_required", "field_invalid_dropdown", "field_invalid_text_sizelimit"}, errs.Keys())

	first, ok := errs.First()
	require.True(t, ok)
	require.Equal(t, "email", first.Field)

	_, ok = validator.ValidationErrors(nil).First()
	require.False(t, ok)
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	errs := validator.ValidationErrors{{Field: "email", TranslationKey: "validation_required"}}
	wrapped := fmt.Errorf("submit contact: %w", errs)

	require.True(t, validator.IsValidationError(wrapped))
	require.Equal(t, errs, validator.ExtractValidationErrors(wrapped))
	require.Contains(t, wrapped.Error(), "email: validation_required")

	require.False(t, validator.IsValidationError(fmt.Errorf("plain")))
	require.Nil(t, validator.ExtractValidationErrors(fmt.Errorf("plain")))
}
