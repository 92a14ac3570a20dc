package review

import (
	"fmt"
	"math/rand/v2"

	"github.com/parladev/parla/internal/vocab"
)

// Practice is quick flashcard-style testing: show one side, type the
// other, fuzzy threshold, wrong answers repeat until correct.
type Practice struct {
	// ToLang1 reverses the direction: show side 2, answer in side 1.
	ToLang1 bool

	// MinScore is the fuzzy pass threshold (e.g. 90).
	MinScore int
}

func (p *Practice) Kind() Kind { return KindPractice }

func (p *Practice) Present(item *vocab.ReviewItem, rng *rand.Rand) Prompt {
	q, a := questionSide(item, p.ToLang1)
	return Prompt{
		Instruction:  fmt.Sprintf("Type the %s translation.", a.Lang.Name),
		Question:     q.Pick(rng),
		Annotation:   q.Annotation,
		Answers:      a.Equivalences,
		MinScore:     p.MinScore,
		AcceptsInput: true,
		QuestionLang: q.Lang.Code,
		AnswerLang:   a.Lang.Code,
	}
}

func (p *Practice) OnOutcome(out Outcome) Directive {
	if out.Correct {
		return Directive{}
	}
	return Directive{Retry: true, Reveal: true, Missed: true}
}
