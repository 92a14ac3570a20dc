package vocab

import "strings"

// Delimiter separates the two language sides of a vocabulary line.
const Delimiter = ";"

// commentPrefixes mark lines that carry no vocabulary.
var commentPrefixes = []string{"//", "#"}

// IsComment reports whether the line begins with a comment marker.
func IsComment(line string) bool {
	for _, p := range commentPrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

// SplitSides splits one trimmed vocabulary line into its two raw side
// fragments, side 1 first. The line must contain exactly one delimiter and
// both sides must be non-empty after trimming. Comments and blank lines are
// the loader's job to filter; handed one anyway, SplitSides rejects it.
func SplitSides(line string, number int) (string, string, error) {
	line = strings.TrimSpace(line)

	fail := func(reason string) (string, string, error) {
		return "", "", &MalformedLineError{Line: line, Number: number, Reason: reason}
	}

	if line == "" {
		return fail("blank line")
	}
	if IsComment(line) {
		return fail("comment line")
	}
	if n := strings.Count(line, Delimiter); n != 1 {
		return fail("expected exactly one delimiter")
	}

	side1, side2, _ := strings.Cut(line, Delimiter)
	side1 = strings.TrimSpace(side1)
	side2 = strings.TrimSpace(side2)
	if side1 == "" || side2 == "" {
		return fail("empty side")
	}
	return side1, side2, nil
}
