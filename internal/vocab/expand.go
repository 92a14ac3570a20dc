package vocab

import "strings"

const (
	// PhraseMarker separates full alternative phrases within one side.
	PhraseMarker = "/"

	// WordMarker separates word-level alternatives within one token.
	WordMarker = "|"
)

// trailingPunct is the punctuation set propagated across word alternatives.
const trailingPunct = ",.!?"

// Expand produces the equivalence set for a side's core text: every literal
// string accepted as a correct answer, in deterministic left-to-right order.
//
// The core is split on the phrase marker, each phrase is tokenized on
// whitespace, tokens containing the word marker expand to their candidates,
// and the cartesian product across tokens yields the phrase's sentences.
// Trailing punctuation on a token's final candidate is copied onto every
// other candidate first, so "Hello world|everyone." yields
// "Hello world." and "Hello everyone.".
func Expand(core string) ([]string, error) {
	var result []string
	for _, phrase := range strings.Split(core, PhraseMarker) {
		result = append(result, expandPhrase(phrase)...)
	}
	if len(result) == 0 {
		return nil, &EmptyEquivalenceError{Fragment: core}
	}
	return result, nil
}

// expandPhrase expands one alternative phrase into its literal sentences.
func expandPhrase(phrase string) []string {
	words := strings.Fields(phrase)
	if len(words) == 0 {
		return nil
	}
	if !strings.Contains(phrase, WordMarker) {
		return []string{strings.Join(words, " ")}
	}

	candidates := make([][]string, 0, len(words))
	for _, w := range words {
		if strings.Contains(w, WordMarker) {
			candidates = append(candidates, wordAlternatives(w))
		} else {
			candidates = append(candidates, []string{w})
		}
	}

	sentences := []string{""}
	for i, cands := range candidates {
		next := make([]string, 0, len(sentences)*len(cands))
		for _, prefix := range sentences {
			for _, c := range cands {
				if i == 0 {
					next = append(next, c)
				} else {
					next = append(next, prefix+" "+c)
				}
			}
		}
		sentences = next
	}
	return sentences
}

// wordAlternatives splits a token on the word marker and propagates any
// trailing punctuation of the final alternative onto the others.
func wordAlternatives(token string) []string {
	alts := strings.Split(token, WordMarker)

	last := alts[len(alts)-1]
	punct := ""
	for i := len(last) - 1; i >= 0; i-- {
		if !strings.ContainsRune(trailingPunct, rune(last[i])) {
			break
		}
		punct = string(last[i]) + punct
	}
	if punct == "" {
		return alts
	}

	out := make([]string, 0, len(alts))
	for _, a := range alts[:len(alts)-1] {
		out = append(out, a+punct)
	}
	return append(out, last)
}
