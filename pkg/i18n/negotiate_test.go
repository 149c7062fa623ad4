package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/forms/pkg/i18n"
)

func TestMatch(t *testing.T) {
	t.Parallel()

	catalog := i18n.Default()

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"empty header", "", "en"},
		{"exact", "de", "de"},
		{"regional variant", "fr-CA,fr;q=0.9", "fr"},
		{"quality ordering", "ja;q=0.9,de;q=0.8", "de"},
		{"unsupported only", "ja, zh", "en"},
		{"malformed", ";;;q=x", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, catalog.Match(tt.header))
		})
	}
}

func TestSupports(t *testing.T) {
	t.Parallel()

	catalog := i18n.Default()
	assert.True(t, catalog.Supports("de"))
	assert.True(t, catalog.Supports("de-CH"))
	assert.False(t, catalog.Supports("ja"))
}
