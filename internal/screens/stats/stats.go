package stats

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/parladev/parla/internal/screen"
	"github.com/parladev/parla/internal/store"
	"github.com/parladev/parla/internal/ui/layout"
	"github.com/parladev/parla/internal/ui/theme"
)

const weakestShown = 10

type loadedMsg struct {
	summary *store.Summary
	weakest []store.LineStats
	err     error
}

// Screen shows the attempt-history aggregates and the lines most in need
// of review.
type Screen struct {
	repo    *store.AttemptRepo
	summary *store.Summary
	weakest []store.LineStats
	errMsg  string
}

var _ screen.Screen = (*Screen)(nil)

func New(repo *store.AttemptRepo) *Screen {
	return &Screen{repo: repo}
}

func (s *Screen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		summary, err := s.repo.Summary(ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		weakest, err := s.repo.WeakestLines(ctx, weakestShown)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{summary: summary, weakest: weakest}
	}
}

func (s *Screen) Title() string { return "Statistics" }

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(loadedMsg); ok {
		if msg.err != nil {
			s.errMsg = msg.err.Error()
		} else {
			s.summary = msg.summary
			s.weakest = msg.weakest
		}
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	if s.errMsg != "" {
		return layout.Centered(theme.Incorrect.Render(s.errMsg), width, height)
	}
	if s.summary == nil {
		return layout.Centered(theme.Subtitle.Render("Loading..."), width, height)
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("Your progress"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Attempts recorded:  %d", s.summary.TotalAttempts)))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Distinct items:     %d", s.summary.DistinctLines)))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Average score:      %.0f%%", s.summary.MeanRatio*100)))
	if !s.summary.LastAttempt.IsZero() {
		b.WriteString("\n")
		b.WriteString(theme.Body.Render("Last reviewed:      " + s.summary.LastAttempt.Local().Format("2006-01-02 15:04")))
	}

	if len(s.weakest) > 0 {
		b.WriteString("\n\n")
		b.WriteString(theme.Subtitle.Render("Needs work"))
		b.WriteString("\n")
		for _, ls := range s.weakest {
			b.WriteString(theme.Body.Render(fmt.Sprintf("  %3.0f%%  %s", ls.MeanRatio*100, ls.Line)))
			b.WriteString("\n")
		}
	}

	card := theme.Card.Width(min(width-4, 72)).Render(b.String())
	return layout.Centered(card, width, height)
}
