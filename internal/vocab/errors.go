package vocab

import "fmt"

// MalformedLineError reports a vocabulary line that violates the two-side
// format: wrong delimiter count, an empty side, or a comment handed to the
// parser. The loader skips such lines; it never aborts a batch for one.
type MalformedLineError struct {
	Line   string
	Number int // 1-based line number in the source, 0 when unknown
	Reason string
}

func (e *MalformedLineError) Error() string {
	if e.Number > 0 {
		return fmt.Sprintf("malformed vocab line %d: %s: %q", e.Number, e.Reason, e.Line)
	}
	return fmt.Sprintf("malformed vocab line: %s: %q", e.Reason, e.Line)
}

// AnnotationParseError reports unbalanced or nested annotation parentheses.
// The grammar leaves both undefined, so the extractor refuses to guess
// rather than silently corrupt the scored text.
type AnnotationParseError struct {
	Fragment string
	Reason   string
}

func (e *AnnotationParseError) Error() string {
	return fmt.Sprintf("annotation parse: %s in %q", e.Reason, e.Fragment)
}

// EmptyEquivalenceError reports a side that expands to zero accepted
// strings, e.g. a fragment containing only annotation text. Such a line is
// unusable and the error must reach the caller.
type EmptyEquivalenceError struct {
	Fragment string
}

func (e *EmptyEquivalenceError) Error() string {
	return fmt.Sprintf("no accepted answers in fragment %q", e.Fragment)
}
