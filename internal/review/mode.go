package review

import (
	"math/rand/v2"

	"github.com/parladev/parla/internal/vocab"
)

// Kind tags a review mode.
type Kind string

const (
	KindPractice  Kind = "practice"
	KindLearn     Kind = "learn"
	KindTranslate Kind = "translate"
	KindListen    Kind = "listen"
	KindRapid     Kind = "rapid"
)

// Utterance is a fire-and-forget speech request attached to a prompt.
type Utterance struct {
	Text string
	Lang string
	Slow bool
}

// Prompt is everything the session screen needs to present one item.
type Prompt struct {
	// Instruction tells the learner what to do.
	Instruction string

	// Question is the text shown (or spoken) to the learner.
	Question string

	// Annotation is display-only parenthetical text, never scored.
	Annotation string

	// Reveal is an answer shown up front (learn phase); empty otherwise.
	Reveal string

	// Answers are the accepted strings the response is scored against.
	Answers []string

	// MinScore is the pass threshold for this prompt, 100 = exact.
	MinScore int

	// AcceptsInput is false for display/audio-only prompts.
	AcceptsInput bool

	// QuestionLang and AnswerLang are the language codes of the two ends.
	QuestionLang string
	AnswerLang   string

	// Speak lists utterances to hand to the speech collaborator.
	Speak []Utterance
}

// Outcome describes one scored submission.
type Outcome struct {
	Item     *vocab.ReviewItem
	Response string
	Score    int
	Correct  bool
	Attempts int
	Matched  string // accepted string that produced the score
}

// Directive is a mode's decision after an outcome.
type Directive struct {
	// Retry keeps the same prompt active for another response.
	Retry bool

	// Reveal shows the expected answer alongside the retry.
	Reveal bool

	// Repeat re-presents the same item (modes with multiple stages).
	Repeat bool

	// Missed marks the item for the missed-item set.
	Missed bool
}

// Mode is one review mode behind a single dispatch interface. Each mode is
// its own variant holding only the fields it needs; there is no shared
// mutable base state.
type Mode interface {
	Kind() Kind

	// Present builds the prompt for an item. rng picks display choices;
	// scoring always uses the full equivalence set.
	Present(item *vocab.ReviewItem, rng *rand.Rand) Prompt

	// OnOutcome decides what happens after a scored submission.
	OnOutcome(out Outcome) Directive
}

// questionSide and answerSide orient an item for a mode's direction.
func questionSide(item *vocab.ReviewItem, toLang1 bool) (q, a vocab.Side) {
	if toLang1 {
		return item.Side2, item.Side1
	}
	return item.Side1, item.Side2
}
