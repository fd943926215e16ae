// Package sanitizer normalizes untrusted request input before it reaches
// validation or storage.
//
// The transforms are pure string functions so they can be composed and tested
// in isolation. Email normalization is intentionally conservative: it lowers
// the case and strips whitespace but never rewrites the local part, since the
// address doubles as the lookup key for two principal collections.
package sanitizer
