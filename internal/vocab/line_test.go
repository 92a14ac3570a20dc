package vocab

import (
	"errors"
	"testing"
)

func TestSplitSides_Valid(t *testing.T) {
	tests := []struct {
		line  string
		side1 string
		side2 string
	}{
		{"hello;hola", "hello", "hola"},
		{"  hello ; hola  ", "hello", "hola"},
		{"Hello world.;Hola mundo.", "Hello world.", "Hola mundo."},
		{"good morning (greeting);buenos dias", "good morning (greeting)", "buenos dias"},
	}

	for _, tc := range tests {
		s1, s2, err := SplitSides(tc.line, 1)
		if err != nil {
			t.Errorf("SplitSides(%q) error: %v", tc.line, err)
			continue
		}
		if s1 != tc.side1 || s2 != tc.side2 {
			t.Errorf("SplitSides(%q) = (%q, %q), want (%q, %q)", tc.line, s1, s2, tc.side1, tc.side2)
		}
	}
}

func TestSplitSides_Malformed(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"no delimiter", "hello hola"},
		{"two delimiters", "hello;hola;bonjour"},
		{"blank", "   "},
		{"empty side1", ";hola"},
		{"empty side2", "hello;"},
		{"comment slashes", "// a note;ignored"},
		{"comment hash", "# a note;ignored"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := SplitSides(tc.line, 7)
			if err == nil {
				t.Fatalf("SplitSides(%q) expected error", tc.line)
			}
			var mle *MalformedLineError
			if !errors.As(err, &mle) {
				t.Fatalf("SplitSides(%q) error type = %T, want *MalformedLineError", tc.line, err)
			}
			if mle.Number != 7 {
				t.Errorf("line number = %d, want 7", mle.Number)
			}
		})
	}
}

func TestIsComment(t *testing.T) {
	if !IsComment("// note") || !IsComment("#note") {
		t.Error("expected comment markers to be recognized")
	}
	if IsComment("hello;hola") {
		t.Error("vocab line misclassified as comment")
	}
}
