package hierarchy

import (
	"strings"
	"unicode"
)

// FormatName makes authored object names readable by inserting a space
// before any digit that directly follows a letter: "Child1" -> "Child 1".
// Only the immediately preceding raw character is checked, so "A1B2"
// becomes "A 1B 2" and a leading digit is left alone. Used for the
// human-readable dump only; the flattened record list keeps names raw.
func FormatName(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)

	var prev rune
	for i, r := range name {
		if i > 0 && unicode.IsDigit(r) && unicode.IsLetter(prev) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
		prev = r
	}
	return b.String()
}
