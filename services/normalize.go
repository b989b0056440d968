package services

import (
	"strings"
	"unicode"
)

// invisibleRunes are characters the renderer leaks into card text that carry
// no content: zero-width spaces/joiners, BOM, soft hyphens.
var invisibleRunes = map[rune]struct{}{
	'\u200b': {}, // zero-width space
	'\u200c': {}, // zero-width non-joiner
	'\u200d': {}, // zero-width joiner
	'\ufeff': {}, // BOM
	'\u00ad': {}, // soft hyphen
	'\u2060': {}, // word joiner
}

// Normalize strips invisible characters and collapses all whitespace runs
// (including NBSP and newlines) to single spaces. Idempotent: normalizing
// already-normalized text is a no-op.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if _, drop := invisibleRunes[r]; drop {
			continue
		}
		b.WriteRune(r)
	}
	fields := strings.FieldsFunc(b.String(), func(r rune) bool {
		return unicode.IsSpace(r)
	})
	return strings.Join(fields, " ")
}
