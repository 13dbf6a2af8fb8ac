// Package strings provides string normalization utilities for identity matching.
package strings

import (
	"strings"
	"unicode"
)

// NormalizeEmail trims and lowercases an email address.
// Returns "" when the value cannot be an address (no '@' with text on both sides).
//
// Example:
//
//	NormalizeEmail("  Ana@X.com ")
//	// Returns: "ana@x.com"
func NormalizeEmail(s string) string {
	e := strings.ToLower(strings.TrimSpace(s))
	at := strings.IndexByte(e, '@')
	if at <= 0 || at == len(e)-1 {
		return ""
	}
	return e
}

// DigitsOnly strips every non-digit rune.
//
// Example:
//
//	DigitsOnly("+55 (11) 98888-7777")
//	// Returns: "5511988887777"
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// LowerTrim lowercases s and collapses internal whitespace runs to one space.
//
// Example:
//
//	LowerTrim("  Ana   Souza ")
//	// Returns: "ana souza"
func LowerTrim(s string) string {
	return strings.Join(strings.FieldsFunc(strings.ToLower(s), unicode.IsSpace), " ")
}
