package validator

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError describes a single failed rule.
type ValidationError struct {
	Field   string
	Message string
}

// ValidationErrors collects every failed rule from one Apply call.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, e := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", e.Field, e.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether any error was recorded for the given field.
func (ve ValidationErrors) Has(field string) bool {
	for _, e := range ve {
		if e.Field == field {
			return true
		}
	}
	return false
}

// Rule pairs a check with the error reported when the check fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply runs all rules and returns the accumulated ValidationErrors, or nil
// when every rule passes.
func Apply(rules ...Rule) error {
	var failed ValidationErrors
	for _, rule := range rules {
		if !rule.Check() {
			failed = append(failed, rule.Error)
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return failed
}

// IsValidationError reports whether err originated from Apply.
func IsValidationError(err error) bool {
	var ve ValidationErrors
	return errors.As(err, &ve)
}
