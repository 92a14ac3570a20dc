package hint

import (
	"math/rand/v2"
	"unicode"
)

// MaskSymbol replaces hidden characters in a masked answer.
const MaskSymbol = '*'

// isStructural reports whether a character is always visible: whitespace
// and apostrophes shape the answer and are never masked nor counted
// toward hint strength.
func isStructural(r rune) bool {
	return unicode.IsSpace(r) || r == '\'' || r == '’'
}

// Maskable counts the characters of answer eligible for masking.
func Maskable(answer string) int {
	n := 0
	for _, r := range answer {
		if !isStructural(r) {
			n++
		}
	}
	return n
}

// Mask returns answer with all but strength pseudo-randomly chosen
// characters replaced by the mask symbol. Structural characters stay
// visible and free. Strength is clamped to [1, maskable-1] so a hint never
// shows nothing and never gives the whole answer away; an answer with a
// single maskable character is returned as is.
//
// Each call may pick a different subset. Callers that redisplay the "same"
// hint must cache the result.
func Mask(answer string, strength int, rng *rand.Rand) string {
	runes := []rune(answer)
	var maskable []int
	for i, r := range runes {
		if !isStructural(r) {
			maskable = append(maskable, i)
		}
	}
	if len(maskable) <= 1 {
		return answer
	}

	if strength < 1 {
		strength = 1
	}
	if strength > len(maskable)-1 {
		strength = len(maskable) - 1
	}

	// Pick the visible positions without replacement.
	visible := make(map[int]bool, strength)
	for _, p := range rng.Perm(len(maskable))[:strength] {
		visible[maskable[p]] = true
	}

	out := make([]rune, len(runes))
	for i, r := range runes {
		switch {
		case isStructural(r), visible[i]:
			out[i] = r
		default:
			out[i] = MaskSymbol
		}
	}
	return string(out)
}
