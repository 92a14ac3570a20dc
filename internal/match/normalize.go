package match

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// asciiFold maps characters that canonical decomposition alone cannot
// reduce to unaccented ASCII.
var asciiFold = strings.NewReplacer(
	"ß", "ss",
	"æ", "ae",
	"œ", "oe",
	"ø", "o",
	"đ", "d",
	"ð", "d",
	"þ", "th",
	"ł", "l",
)

// Normalize maps any string to its canonical comparison form: lowercase,
// trimmed, accents folded to ASCII, and every character outside
// [a-z0-9 ] removed. Pure and idempotent; applied identically to learner
// input and accepted answers before any comparison.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = asciiFold.Replace(s)
	s = stripMarks(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == ' ':
			b.WriteRune(r)
		}
	}
	// Stripping punctuation can expose leading or trailing spaces.
	return strings.TrimSpace(b.String())
}

// stripMarks removes combining marks left by canonical decomposition,
// turning e.g. "héllo" into "hello".
func stripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}
