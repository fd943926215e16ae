package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wishbay/wishbay/pkg/sanitizer"
)

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "Alice@Example.COM", "alice@example.com"},
		{"trims whitespace", "  bob@example.com \n", "bob@example.com"},
		{"keeps local part intact", "first.last+tag@example.com", "first.last+tag@example.com"},
		{"empty string", "", ""},
		{"not an email passes through", "not-an-email", "not-an-email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, sanitizer.NormalizeEmail(tt.input))
		})
	}
}

func TestNormalizeName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Jane Doe", sanitizer.NormalizeName("  Jane   Doe "))
	assert.Equal(t, "", sanitizer.NormalizeName("   "))
}

func TestTrim(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "x", sanitizer.Trim(" x\t"))
}
