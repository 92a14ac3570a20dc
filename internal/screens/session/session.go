package session

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/parladev/parla/internal/review"
	"github.com/parladev/parla/internal/router"
	"github.com/parladev/parla/internal/screen"
	"github.com/parladev/parla/internal/ui/components"
	"github.com/parladev/parla/internal/ui/layout"
)

// startedMsg carries the result of starting the review session.
type startedMsg struct {
	err error
}

// Screen drives one review session: prompt, answer entry, feedback, and
// the end-of-session summary.
type Screen struct {
	sess  *review.Session
	input components.AnswerInput

	lastOutcome *review.Outcome
	errMsg      string
}

var (
	_ screen.Screen          = (*Screen)(nil)
	_ screen.KeyHintProvider = (*Screen)(nil)
)

// New wraps an unstarted session.
func New(sess *review.Session) *Screen {
	return &Screen{
		sess:  sess,
		input: components.NewAnswerInput("Type your answer..."),
	}
}

func (s *Screen) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return startedMsg{err: s.sess.Start(context.Background())} },
		s.input.Init(),
	)
}

func (s *Screen) Title() string { return "Review" }

// Progress exposes the session position for the header.
func (s *Screen) Progress() (current, total int) {
	return s.sess.Progress()
}

func (s *Screen) KeyHints() []layout.KeyHint {
	switch s.sess.Phase() {
	case review.PhaseAwaiting:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit session"},
		}
	case review.PhasePresenting:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "M", Description: "Mark missed"},
			{Key: "Esc", Description: "Quit session"},
		}
	case review.PhaseDone:
		hints := []layout.KeyHint{{Key: "Esc", Description: "Back"}}
		if len(s.sess.Missed()) > 0 {
			hints = append([]layout.KeyHint{{Key: "R", Description: "Repeat missed"}}, hints...)
		}
		return hints
	}
	return nil
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startedMsg:
		if msg.err != nil && msg.err != review.ErrNoItems {
			s.errMsg = msg.err.Error()
		}
		if msg.err == review.ErrNoItems {
			s.errMsg = "Nothing to review. Check the vocabulary file."
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.sess.Phase() == review.PhaseAwaiting {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	ctx := context.Background()

	switch s.sess.Phase() {
	case review.PhaseAwaiting:
		if msg.String() == "enter" {
			return s.submit(ctx)
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd

	case review.PhasePresenting:
		switch msg.String() {
		case "m", "M":
			s.sess.MarkMissed()
			return s, nil
		case "enter", " ":
			if err := s.sess.Continue(ctx); err != nil {
				s.errMsg = err.Error()
			}
			s.lastOutcome = nil
			return s, nil
		}

	case review.PhaseDone:
		switch msg.String() {
		case "r", "R":
			if len(s.sess.Missed()) > 0 {
				if err := s.sess.RepeatMissed(ctx); err != nil {
					s.errMsg = err.Error()
				}
				s.lastOutcome = nil
				s.input.Reset()
			}
			return s, nil
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *Screen) submit(ctx context.Context) (screen.Screen, tea.Cmd) {
	before := s.sess.Current()
	out, err := s.sess.Submit(ctx, s.input.Value())
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.lastOutcome = out

	if s.sess.Current() == before {
		// Retrying the same prompt: keep the typed answer visible with
		// its marker so the learner can correct it.
		s.input.Submit(out.Correct)
	} else {
		s.input.Reset()
	}
	return s, nil
}
