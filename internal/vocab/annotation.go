package vocab

import "strings"

// ExtractAnnotation splits a raw side fragment into its scored core text and
// its non-scored annotation. Every parenthesized span is removed from the
// core and concatenated (parentheses included, in order of appearance,
// single-space separated) into the annotation. Nested or unbalanced
// parentheses are rejected rather than guessed at.
//
// Extracting again from the returned core yields an empty annotation.
func ExtractAnnotation(fragment string) (core string, annotation string, err error) {
	var coreBuf strings.Builder
	var spanBuf strings.Builder
	var spans []string
	depth := 0

	for _, r := range fragment {
		switch r {
		case '(':
			if depth > 0 {
				return "", "", &AnnotationParseError{Fragment: fragment, Reason: "nested parenthesis"}
			}
			depth++
			spanBuf.Reset()
			spanBuf.WriteRune(r)
		case ')':
			if depth == 0 {
				return "", "", &AnnotationParseError{Fragment: fragment, Reason: "unbalanced closing parenthesis"}
			}
			depth--
			spanBuf.WriteRune(r)
			spans = append(spans, spanBuf.String())
		default:
			if depth > 0 {
				spanBuf.WriteRune(r)
			} else {
				coreBuf.WriteRune(r)
			}
		}
	}
	if depth != 0 {
		return "", "", &AnnotationParseError{Fragment: fragment, Reason: "unbalanced opening parenthesis"}
	}

	// Removing a span can leave doubled spaces behind; collapse them.
	core = strings.Join(strings.Fields(coreBuf.String()), " ")
	annotation = strings.Join(spans, " ")
	return core, annotation, nil
}
