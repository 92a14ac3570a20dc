package review

import (
	"math/rand/v2"

	"github.com/parladev/parla/internal/vocab"
)

// Listen is an audio flashcard: both sides are shown and spoken, nothing
// is typed or scored. The learner advances at their own pace.
type Listen struct {
	// SlowRepeat additionally speaks side 2 slowly before normal speed.
	SlowRepeat bool
}

func (l *Listen) Kind() Kind { return KindListen }

func (l *Listen) Present(item *vocab.ReviewItem, rng *rand.Rand) Prompt {
	q, a := questionSide(item, false)
	question := q.Pick(rng)
	answer := a.Pick(rng)

	speak := []Utterance{{Text: question, Lang: q.Lang.Code}}
	if l.SlowRepeat {
		speak = append(speak, Utterance{Text: answer, Lang: a.Lang.Code, Slow: true})
	}
	speak = append(speak, Utterance{Text: answer, Lang: a.Lang.Code})

	return Prompt{
		Question:     question,
		Annotation:   q.Annotation,
		Reveal:       answer,
		QuestionLang: q.Lang.Code,
		AnswerLang:   a.Lang.Code,
		Speak:        speak,
	}
}

func (l *Listen) OnOutcome(Outcome) Directive { return Directive{} }

// Rapid flips through items quickly: first one side, then the other on
// request. Self-graded; the learner can mark an item missed.
type Rapid struct {
	// ShowLang1First picks which side leads.
	ShowLang1First bool

	revealed bool
}

func (r *Rapid) Kind() Kind { return KindRapid }

func (r *Rapid) Present(item *vocab.ReviewItem, rng *rand.Rand) Prompt {
	q, a := questionSide(item, !r.ShowLang1First)

	pr := Prompt{
		Question:     q.Pick(rng),
		Annotation:   q.Annotation,
		QuestionLang: q.Lang.Code,
		AnswerLang:   a.Lang.Code,
	}
	if r.revealed {
		pr.Reveal = a.Pick(rng)
	}
	return pr
}

func (r *Rapid) OnOutcome(Outcome) Directive {
	if !r.revealed {
		r.revealed = true
		return Directive{Repeat: true}
	}
	r.revealed = false
	return Directive{}
}
