package review

import (
	"fmt"
	"math/rand/v2"

	"github.com/parladev/parla/internal/vocab"
)

// Translate is a two-stage listening drill: the learner hears the side-2
// phrase and types what they heard, then translates it into side 1. The
// expected answer is revealed after a configured number of misses.
type Translate struct {
	ListenMinScore            int
	ListenAttemptsToReveal    int
	TranslateMinScore         int
	TranslateAttemptsToReveal int

	// SkipTranslate reduces the drill to the listening stage.
	SkipTranslate bool

	translating bool   // false = listen stage, true = translate stage
	choice      string // side-2 phrase fixed per item across stages
}

func (t *Translate) Kind() Kind { return KindTranslate }

func (t *Translate) Present(item *vocab.ReviewItem, rng *rand.Rand) Prompt {
	q, a := questionSide(item, false)
	if !t.translating {
		t.choice = a.Pick(rng)
	}

	if t.translating {
		return Prompt{
			Instruction:  fmt.Sprintf("Type the %s translation.", q.Lang.Name),
			Question:     t.choice,
			Annotation:   a.Annotation,
			Answers:      q.Equivalences,
			MinScore:     t.TranslateMinScore,
			AcceptsInput: true,
			QuestionLang: a.Lang.Code,
			AnswerLang:   q.Lang.Code,
			Speak:        []Utterance{{Text: t.choice, Lang: a.Lang.Code}},
		}
	}

	return Prompt{
		Instruction:  fmt.Sprintf("Type the %s you hear.", a.Lang.Name),
		Annotation:   a.Annotation,
		Answers:      []string{t.choice},
		MinScore:     t.ListenMinScore,
		AcceptsInput: true,
		QuestionLang: a.Lang.Code,
		AnswerLang:   a.Lang.Code,
		Speak:        []Utterance{{Text: t.choice, Lang: a.Lang.Code}},
	}
}

func (t *Translate) OnOutcome(out Outcome) Directive {
	if !t.translating {
		if !out.Correct {
			return Directive{Retry: true, Reveal: out.Attempts >= t.ListenAttemptsToReveal}
		}
		if t.SkipTranslate {
			return Directive{}
		}
		t.translating = true
		return Directive{Repeat: true}
	}

	if out.Correct {
		t.translating = false
		return Directive{}
	}
	return Directive{
		Retry:  true,
		Reveal: out.Attempts >= t.TranslateAttemptsToReveal,
		Missed: true,
	}
}
