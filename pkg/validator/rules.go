package validator

import (
	"net/mail"
	"regexp"
	"strings"
)

var (
	uppercaseRegex = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex = regexp.MustCompile(`[a-z]`)
	digitRegex     = regexp.MustCompile(`[0-9]`)
	specialRegex   = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

// Required checks that a string is not empty after trimming.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool { return strings.TrimSpace(value) != "" },
		Error: ValidationError{Field: field, Message: "is required"},
	}
}

// ValidEmail checks that a string parses as an addr-spec and has a dotted
// domain, which is what every mail provider this service talks to expects.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			addr, err := mail.ParseAddress(value)
			if err != nil || addr.Address != value {
				return false
			}
			at := strings.LastIndex(value, "@")
			domain := value[at+1:]
			return strings.Contains(domain, ".") &&
				!strings.HasPrefix(domain, ".") &&
				!strings.HasSuffix(domain, ".")
		},
		Error: ValidationError{Field: field, Message: "must be a valid email address"},
	}
}

// PasswordStrengthConfig controls the StrongPassword rule.
type PasswordStrengthConfig struct {
	MinLength      int
	MaxLength      int
	MinCharClasses int // distinct classes required among upper/lower/digit/special
}

// DefaultPasswordStrength requires 6-128 characters with no character class
// minimum, matching the length rule the account model has always enforced.
// Deployments wanting class diversity raise MinCharClasses through their own
// config.
func DefaultPasswordStrength() PasswordStrengthConfig {
	return PasswordStrengthConfig{
		MinLength:      6,
		MaxLength:      128,
		MinCharClasses: 0,
	}
}

// StrongPassword checks password length and character class diversity.
func StrongPassword(field, value string, cfg PasswordStrengthConfig) Rule {
	return Rule{
		Check: func() bool {
			if len(value) < cfg.MinLength || len(value) > cfg.MaxLength {
				return false
			}

			classes := 0
			for _, re := range []*regexp.Regexp{uppercaseRegex, lowercaseRegex, digitRegex, specialRegex} {
				if re.MatchString(value) {
					classes++
				}
			}
			return classes >= cfg.MinCharClasses
		},
		Error: ValidationError{Field: field, Message: "does not meet strength requirements"},
	}
}
