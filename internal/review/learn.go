package review

import (
	"fmt"
	"math/rand/v2"

	"github.com/parladev/parla/internal/match"
	"github.com/parladev/parla/internal/vocab"
)

// Learn teaches a phrase in two stages: first the answer is shown and the
// learner copies it, then the item repeats with the answer hidden and it
// must be typed from memory. Failing the memory stage MaxAttempts times
// loops back to the copy stage.
type Learn struct {
	// MaxAttempts bounds the memory stage before relearning (e.g. 2).
	MaxAttempts int

	// Talk1 and Talk2 control which sides are spoken during the copy stage.
	Talk1 bool
	Talk2 bool

	testing bool   // false = copy stage, true = memory stage
	choice  string // answer fixed per item across the two stages
}

func (l *Learn) Kind() Kind { return KindLearn }

func (l *Learn) Present(item *vocab.ReviewItem, rng *rand.Rand) Prompt {
	q, a := questionSide(item, false)
	if !l.testing {
		l.choice = a.Pick(rng)
	}

	pr := Prompt{
		Question:     q.Pick(rng),
		Annotation:   a.Annotation,
		Answers:      []string{l.choice},
		MinScore:     match.ExactThreshold,
		AcceptsInput: true,
		QuestionLang: q.Lang.Code,
		AnswerLang:   a.Lang.Code,
	}

	if l.testing {
		pr.Instruction = fmt.Sprintf("Type the %s translation from memory.", a.Lang.Name)
		pr.Speak = []Utterance{{Text: l.choice, Lang: a.Lang.Code, Slow: true}}
		return pr
	}

	pr.Instruction = fmt.Sprintf("Type the %s translation shown below.", a.Lang.Name)
	pr.Reveal = l.choice
	if l.Talk1 {
		pr.Speak = append(pr.Speak, Utterance{Text: pr.Question, Lang: q.Lang.Code})
	}
	if l.Talk2 {
		pr.Speak = append(pr.Speak,
			Utterance{Text: l.choice, Lang: a.Lang.Code},
			Utterance{Text: l.choice, Lang: a.Lang.Code, Slow: true},
		)
	}
	return pr
}

func (l *Learn) OnOutcome(out Outcome) Directive {
	if !l.testing {
		// Copy stage: loop until typed correctly, then test from memory.
		if !out.Correct {
			return Directive{Retry: true}
		}
		l.testing = true
		return Directive{Repeat: true}
	}

	// Memory stage.
	if out.Correct {
		l.testing = false
		return Directive{}
	}
	if out.Attempts >= l.MaxAttempts {
		l.testing = false
		return Directive{Repeat: true, Missed: true}
	}
	return Directive{Retry: true}
}
