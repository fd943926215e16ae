package sanitizer

import "strings"

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeEmail lowercases an email address and strips surrounding
// whitespace. Addresses are compared and indexed case-insensitively, so every
// code path that touches an email must pass it through here first.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeName trims a display name and collapses internal runs of
// whitespace to a single space.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}
