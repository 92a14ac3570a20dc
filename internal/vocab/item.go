package vocab

import (
	"fmt"
	"math/rand/v2"
)

// Language names one side's language.
type Language struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

// Side holds everything derived from one language side of a line: the
// expanded equivalence set and the display-only annotation.
type Side struct {
	Lang         Language
	Equivalences []string
	Annotation   string
}

// Pick returns one equivalence for display, chosen with rng.
// Correctness checks always use the full set, never the pick.
func (s Side) Pick(rng *rand.Rand) string {
	if len(s.Equivalences) == 1 {
		return s.Equivalences[0]
	}
	return s.Equivalences[rng.IntN(len(s.Equivalences))]
}

// ReviewItem is a parsed vocabulary line ready for review. Immutable once
// constructed.
type ReviewItem struct {
	Line  string
	Side1 Side
	Side2 Side
}

// ParseItem parses one valid vocabulary line into a ReviewItem.
func ParseItem(line string, number int, lang1, lang2 Language) (*ReviewItem, error) {
	raw1, raw2, err := SplitSides(line, number)
	if err != nil {
		return nil, err
	}

	side1, err := parseSide(raw1, lang1)
	if err != nil {
		return nil, err
	}
	side2, err := parseSide(raw2, lang2)
	if err != nil {
		return nil, err
	}

	return &ReviewItem{Line: line, Side1: side1, Side2: side2}, nil
}

func parseSide(fragment string, lang Language) (Side, error) {
	core, annotation, err := ExtractAnnotation(fragment)
	if err != nil {
		return Side{}, err
	}
	equivs, err := Expand(core)
	if err != nil {
		return Side{}, err
	}
	return Side{Lang: lang, Equivalences: equivs, Annotation: annotation}, nil
}

// Key identifies the item for dedup purposes: originating line text plus the
// two language codes.
func (it *ReviewItem) Key() string {
	return fmt.Sprintf("%s\x00%s\x00%s", it.Line, it.Side1.Lang.Code, it.Side2.Lang.Code)
}
