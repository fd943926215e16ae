package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wishbay/wishbay/pkg/validator"
)

func TestValidEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"plain address", "alice@example.com", true},
		{"plus tag", "alice+shop@example.com", true},
		{"missing at", "alice.example.com", false},
		{"missing domain dot", "alice@localhost", false},
		{"trailing dot domain", "alice@example.", false},
		{"empty", "", false},
		{"display name form rejected", "Alice <alice@example.com>", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validator.Apply(validator.ValidEmail("email", tt.value))
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestStrongPassword(t *testing.T) {
	t.Parallel()

	t.Run("default policy", func(t *testing.T) {
		t.Parallel()

		cfg := validator.DefaultPasswordStrength()

		tests := []struct {
			name  string
			value string
			valid bool
		}{
			{"letters and digits", "secret123", true},
			{"minimum length", "secret1", true},
			{"single class passes", "alllowercase", true},
			{"mixed case", "SecretPass", true},
			{"too short", "ab1", false},
			{"special chars", "pass!word", true},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				err := validator.Apply(validator.StrongPassword("password", tt.value, cfg))
				if tt.valid {
					assert.NoError(t, err)
				} else {
					assert.Error(t, err)
				}
			})
		}
	})

	t.Run("class minimum enforced when configured", func(t *testing.T) {
		t.Parallel()

		cfg := validator.PasswordStrengthConfig{MinLength: 8, MaxLength: 128, MinCharClasses: 2}

		assert.Error(t, validator.Apply(validator.StrongPassword("password", "alllowercase", cfg)))
		assert.NoError(t, validator.Apply(validator.StrongPassword("password", "secret123", cfg)))
	})
}

func TestApplyCollectsAllFailures(t *testing.T) {
	t.Parallel()

	err := validator.Apply(
		validator.ValidEmail("email", "nope"),
		validator.Required("name", " "),
	)
	require.Error(t, err)
	require.True(t, validator.IsValidationError(err))

	var ve validator.ValidationErrors
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve, 2)
	assert.True(t, ve.Has("email"))
	assert.True(t, ve.Has("name"))
}
