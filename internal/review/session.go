package review

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/parladev/parla/internal/hint"
	"github.com/parladev/parla/internal/match"
	"github.com/parladev/parla/internal/vocab"
)

// Phase is the session state machine position.
type Phase int

const (
	PhaseLoaded Phase = iota
	PhasePresenting
	PhaseAwaiting
	PhaseDone
)

// ErrNoItems is returned when a session is started with nothing to review.
var ErrNoItems = errors.New("no review items loaded")

// Speaker is the text-to-speech collaborator. Playback is fire-and-forget;
// the session never depends on its completion.
type Speaker interface {
	Speak(ctx context.Context, text, lang string, slow bool) error
}

// Presentation is the active prompt plus its per-item review state.
type Presentation struct {
	Item         *vocab.ReviewItem
	Prompt       Prompt
	Hint         string // masked answer, empty when none
	HintStrength int
	Attempts     int
	ShowAnswer   bool // set once the mode asks to reveal

	startedAt time.Time
}

// Options wires a session's collaborators. All fields are optional except
// Rand.
type Options struct {
	ID      string
	History History
	Speaker Speaker
	Rand    *rand.Rand
}

// Session drives one review run over a list of items:
//
//	LOADED -> PRESENTING -> AWAITING -> score -> retry? -> AWAITING
//	                                          -> recorded -> next item | DONE
//
// All work is synchronous; the only shared state it touches is the
// per-line history window, read before and written after each outcome.
type Session struct {
	ID string

	mode    Mode
	items   []*vocab.ReviewItem
	idx     int
	phase   Phase
	rng     *rand.Rand
	history History
	speaker Speaker
	cur     *Presentation

	missed      map[string]bool
	missedOrder []*vocab.ReviewItem

	// localWindows tracks per-line ratios when no History is configured.
	localWindows map[string]*hint.Window

	Completed int
	Correct   int
}

// New creates a session in the LOADED phase.
func New(mode Mode, items []*vocab.ReviewItem, opts Options) *Session {
	id := opts.ID
	if id == "" {
		id = uuid.NewString()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	return &Session{
		ID:           id,
		mode:         mode,
		items:        items,
		phase:        PhaseLoaded,
		rng:          rng,
		history:      opts.History,
		speaker:      opts.Speaker,
		missed:       make(map[string]bool),
		localWindows: make(map[string]*hint.Window),
	}
}

func (s *Session) Phase() Phase { return s.phase }

// Progress returns the 1-based current item number and the total.
func (s *Session) Progress() (current, total int) {
	n := s.idx + 1
	if n > len(s.items) {
		n = len(s.items)
	}
	return n, len(s.items)
}

// Current returns the active presentation, nil outside an item.
func (s *Session) Current() *Presentation { return s.cur }

// Missed returns the items answered wrong at least once, in first-miss order.
func (s *Session) Missed() []*vocab.ReviewItem {
	return append([]*vocab.ReviewItem(nil), s.missedOrder...)
}

// Start presents the first item.
func (s *Session) Start(ctx context.Context) error {
	if s.phase != PhaseLoaded {
		return fmt.Errorf("session already started")
	}
	if len(s.items) == 0 {
		s.phase = PhaseDone
		return ErrNoItems
	}
	return s.present(ctx)
}

// Submit scores a response against the active prompt and applies the
// mode's directive. Valid only while awaiting a response.
func (s *Session) Submit(ctx context.Context, response string) (*Outcome, error) {
	if s.phase != PhaseAwaiting || s.cur == nil {
		return nil, fmt.Errorf("no prompt awaiting a response")
	}

	s.cur.Attempts++
	score, matchIdx := match.BestMatch(response, s.cur.Prompt.Answers)
	out := &Outcome{
		Item:     s.cur.Item,
		Response: response,
		Score:    score,
		Correct:  score >= s.cur.Prompt.MinScore,
		Attempts: s.cur.Attempts,
	}
	if matchIdx >= 0 {
		out.Matched = s.cur.Prompt.Answers[matchIdx]
	}

	d := s.mode.OnOutcome(*out)
	if d.Missed {
		s.markMissed(s.cur.Item)
	}
	if d.Retry {
		if d.Reveal {
			s.cur.ShowAnswer = true
		}
		return out, nil
	}

	if err := s.record(ctx, out); err != nil {
		return out, err
	}
	return out, s.advance(ctx, d.Repeat)
}

// Continue moves past a display-only prompt (listen, rapid). The mode
// decides whether the item repeats with more revealed or completes.
func (s *Session) Continue(ctx context.Context) error {
	if s.phase != PhasePresenting || s.cur == nil {
		return fmt.Errorf("no display prompt active")
	}
	d := s.mode.OnOutcome(Outcome{Item: s.cur.Item})
	return s.advance(ctx, d.Repeat)
}

// MarkMissed flags the current item for the missed set (self-graded modes).
func (s *Session) MarkMissed() {
	if s.cur != nil {
		s.markMissed(s.cur.Item)
	}
}

// RepeatMissed restarts the session over the missed items.
func (s *Session) RepeatMissed(ctx context.Context) error {
	if s.phase != PhaseDone || len(s.missedOrder) == 0 {
		return fmt.Errorf("nothing to repeat")
	}
	s.items = s.missedOrder
	s.missed = make(map[string]bool)
	s.missedOrder = nil
	s.idx = 0
	s.Completed = 0
	s.Correct = 0
	return s.present(ctx)
}

func (s *Session) markMissed(item *vocab.ReviewItem) {
	if s.missed[item.Key()] {
		return
	}
	s.missed[item.Key()] = true
	s.missedOrder = append(s.missedOrder, item)
}

func (s *Session) advance(ctx context.Context, repeat bool) error {
	if repeat {
		return s.present(ctx)
	}
	s.idx++
	if s.idx >= len(s.items) {
		s.cur = nil
		s.phase = PhaseDone
		return nil
	}
	return s.present(ctx)
}

// present builds the prompt for the current item and computes the hint
// from the strictly-prior attempt history.
func (s *Session) present(ctx context.Context) error {
	item := s.items[s.idx]
	prompt := s.mode.Present(item, s.rng)
	pres := &Presentation{
		Item:      item,
		Prompt:    prompt,
		startedAt: time.Now(),
	}

	if prompt.AcceptsInput && prompt.Reveal == "" && len(prompt.Answers) > 0 {
		ratios, err := s.priorRatios(ctx, item.Line)
		if err != nil {
			return err
		}
		answer := prompt.Answers[0]
		if strength := hint.NextStrength(ratios, answer); strength > 0 {
			pres.HintStrength = strength
			pres.Hint = hint.Mask(answer, strength, s.rng)
		}
	}

	s.cur = pres
	if prompt.AcceptsInput {
		s.phase = PhaseAwaiting
	} else {
		s.phase = PhasePresenting
	}
	s.speakAll(ctx, prompt.Speak)
	return nil
}

// priorRatios reads the pre-update history window for a line.
func (s *Session) priorRatios(ctx context.Context, line string) ([]float64, error) {
	if s.history != nil {
		ratios, err := s.history.Recent(ctx, line, hint.WindowSize)
		if err != nil {
			return nil, fmt.Errorf("read attempt history: %w", err)
		}
		return ratios, nil
	}
	if w := s.localWindows[line]; w != nil {
		return w.Ratios(), nil
	}
	return nil, nil
}

// record finalizes one completed prompt: builds the attempt record, hands
// it to the history collaborator, and updates the local window.
func (s *Session) record(ctx context.Context, out *Outcome) error {
	s.Completed++
	if out.Correct {
		s.Correct++
	}

	ratio := float64(out.Score) / 100 / float64(out.Attempts)
	rec := AttemptRecord{
		ID:             uuid.NewString(),
		SessionID:      s.ID,
		Timestamp:      time.Now().UTC(),
		Line:           out.Item.Line,
		Response:       out.Response,
		Question:       s.cur.Prompt.Question,
		Answer:         out.Matched,
		QuestionLang:   s.cur.Prompt.QuestionLang,
		AnswerLang:     s.cur.Prompt.AnswerLang,
		HintStrength:   s.cur.HintStrength,
		Attempts:       out.Attempts,
		ElapsedSeconds: time.Since(s.cur.startedAt).Seconds(),
		Ratio:          ratio,
	}

	w := s.localWindows[out.Item.Line]
	if w == nil {
		w = hint.NewWindow(nil)
		s.localWindows[out.Item.Line] = w
	}
	w.Push(ratio)

	if s.history != nil {
		if err := s.history.Append(ctx, rec); err != nil {
			return fmt.Errorf("append attempt record: %w", err)
		}
	}
	return nil
}

// speakAll hands the prompt's utterances to the speech collaborator in a
// background goroutine; playback order is preserved, completion is not
// awaited.
func (s *Session) speakAll(ctx context.Context, utts []Utterance) {
	if s.speaker == nil || len(utts) == 0 {
		return
	}
	go func() {
		for _, u := range utts {
			_ = s.speaker.Speak(ctx, u.Text, u.Lang, u.Slow)
		}
	}()
}
