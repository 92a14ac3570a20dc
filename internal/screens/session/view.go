package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/parladev/parla/internal/review"
	"github.com/parladev/parla/internal/ui/layout"
	"github.com/parladev/parla/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	if s.errMsg != "" {
		return layout.Centered(theme.Incorrect.Render(s.errMsg), width, height)
	}
	if s.sess.Phase() == review.PhaseDone {
		return s.renderSummary(width, height)
	}
	cur := s.sess.Current()
	if cur == nil {
		return layout.Centered(theme.Subtitle.Render("Loading..."), width, height)
	}
	return s.renderPrompt(cur, width, height)
}

func (s *Screen) renderPrompt(cur *review.Presentation, width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Subtitle.Render(cur.Prompt.Instruction))
	b.WriteString("\n\n")

	question := cur.Prompt.Question
	if question == "" {
		question = "♪ listen ♪"
	}
	b.WriteString(theme.Title.Render(question))
	if cur.Prompt.Annotation != "" {
		b.WriteString("\n")
		// The annotation already carries its parentheses.
		b.WriteString(theme.Annotation.Render(cur.Prompt.Annotation))
	}
	b.WriteString("\n\n")

	if cur.Prompt.Reveal != "" {
		b.WriteString(theme.Body.Render(cur.Prompt.Reveal))
		b.WriteString("\n\n")
	} else if cur.ShowAnswer {
		b.WriteString(theme.Correct.Render(cur.Prompt.Answers[0]))
		b.WriteString("\n\n")
	} else if cur.Hint != "" {
		b.WriteString(theme.Hint.Render(cur.Hint))
		b.WriteString("\n\n")
	}

	if cur.Prompt.AcceptsInput {
		b.WriteString(s.input.View())
		b.WriteString("\n")
	}

	if s.lastOutcome != nil && s.lastOutcome.Item == cur.Item && cur.Attempts > 0 {
		b.WriteString("\n")
		b.WriteString(renderFeedback(s.lastOutcome))
	}

	card := theme.Card.Width(min(width-4, 72)).Render(b.String())
	return layout.Centered(card, width, height)
}

func renderFeedback(out *review.Outcome) string {
	if out.Correct {
		return theme.Correct.Render(fmt.Sprintf("Correct! (%d)", out.Score))
	}
	return theme.Incorrect.Render(fmt.Sprintf("Not quite (%d). Try again.", out.Score))
}

func (s *Screen) renderSummary(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Session complete"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Answered: %d", s.sess.Completed)))
	b.WriteString("\n")
	b.WriteString(theme.Correct.Render(fmt.Sprintf("Correct:  %d", s.sess.Correct)))

	missed := s.sess.Missed()
	if len(missed) > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Render(fmt.Sprintf("Missed:   %d", len(missed))))
		b.WriteString("\n\n")
		b.WriteString(theme.Subtitle.Render("Missed items"))
		b.WriteString("\n")
		for _, item := range missed {
			b.WriteString(theme.Body.Render("  " + item.Line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Press R to review the missed items again"))
	}

	card := theme.Card.Width(min(width-4, 72)).Render(
		lipgloss.NewStyle().Align(lipgloss.Left).Render(b.String()))
	return layout.Centered(card, width, height)
}
