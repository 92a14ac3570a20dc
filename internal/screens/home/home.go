package home

import (
	"fmt"
	"math/rand/v2"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/parladev/parla/internal/config"
	"github.com/parladev/parla/internal/review"
	"github.com/parladev/parla/internal/router"
	"github.com/parladev/parla/internal/screen"
	"github.com/parladev/parla/internal/screens/files"
	sessionscreen "github.com/parladev/parla/internal/screens/session"
	"github.com/parladev/parla/internal/screens/settings"
	"github.com/parladev/parla/internal/screens/stats"
	"github.com/parladev/parla/internal/store"
	"github.com/parladev/parla/internal/ui/components"
	"github.com/parladev/parla/internal/ui/layout"
	"github.com/parladev/parla/internal/ui/theme"
	"github.com/parladev/parla/internal/vocab"
)

// Deps carries everything the home screen needs to assemble a session.
type Deps struct {
	Cfg      *config.Config
	CfgPath  string
	Provider *vocab.FileProvider
	Attempts *store.AttemptRepo // nil when the store is unavailable
	Speaker  review.Speaker
	Rand     *rand.Rand
}

// Screen is the mode picker and entry point.
type Screen struct {
	deps   Deps
	menu   components.Menu
	status string
}

var _ screen.Screen = (*Screen)(nil)

func New(deps Deps) *Screen {
	s := &Screen{deps: deps}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "Practice", Detail: "translate " + deps.Cfg.Source.Lang1.Name + " → " + deps.Cfg.Source.Lang2.Name,
			Action: func() tea.Cmd { return s.startSession(review.KindPractice, false) }},
		{Label: "Practice reversed", Detail: "translate " + deps.Cfg.Source.Lang2.Name + " → " + deps.Cfg.Source.Lang1.Name,
			Action: func() tea.Cmd { return s.startSession(review.KindPractice, true) }},
		{Label: "Learn", Detail: "copy first, then from memory",
			Action: func() tea.Cmd { return s.startSession(review.KindLearn, false) }},
		{Label: "Translate", Detail: "listen, type, then translate",
			Action: func() tea.Cmd { return s.startSession(review.KindTranslate, false) }},
		{Label: "Listen", Detail: "passive listening",
			Action: func() tea.Cmd { return s.startSession(review.KindListen, false) }},
		{Label: "Rapid", Detail: "flashcards, self graded",
			Action: func() tea.Cmd { return s.startSession(review.KindRapid, false) }},
		{Label: "Vocabulary file", Detail: "",
			Action: func() tea.Cmd { return s.openFiles() }},
		{Label: "Statistics", Detail: "", Disabled: deps.Attempts == nil,
			Action: func() tea.Cmd { return s.openStats() }},
		{Label: "Settings", Detail: "",
			Action: func() tea.Cmd { return s.openSettings() }},
	})
	return s
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Home" }

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *Screen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Parla"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("%s ⇄ %s vocabulary trainer",
		s.deps.Cfg.Source.Lang1.Name, s.deps.Cfg.Source.Lang2.Name)))
	b.WriteString("\n\n")
	b.WriteString(s.menu.View())

	if s.status != "" {
		b.WriteString("\n")
		b.WriteString(theme.Subtitle.Render(s.status))
	}

	card := theme.Card.Width(min(width-4, 64)).Render(b.String())
	return layout.Centered(card, width, height)
}

// startSession loads items and pushes the session screen. Load failures
// stay on the home screen with a status line.
func (s *Screen) startSession(kind review.Kind, reversed bool) tea.Cmd {
	res, err := s.deps.Provider.Items(s.deps.Cfg.Review.ReviewNum, s.deps.Cfg.Review.Shuffle, s.deps.Rand)
	if err != nil {
		s.status = err.Error()
		return nil
	}
	if len(res.Skipped) > 0 {
		s.status = fmt.Sprintf("skipped %d malformed entries", len(res.Skipped))
	} else {
		s.status = ""
	}

	opts := review.Options{Speaker: s.deps.Speaker, Rand: s.deps.Rand}
	if s.deps.Attempts != nil {
		opts.History = s.deps.Attempts
	}
	sess := review.New(s.buildMode(kind, reversed), res.Items, opts)

	return func() tea.Msg {
		return router.PushScreenMsg{Screen: sessionscreen.New(sess)}
	}
}

// buildMode maps the config tree onto a mode value.
func (s *Screen) buildMode(kind review.Kind, reversed bool) review.Mode {
	cfg := s.deps.Cfg
	switch kind {
	case review.KindLearn:
		return &review.Learn{
			MaxAttempts: cfg.Learn.MaxAttempts,
			Talk1:       cfg.Learn.Talk1,
			Talk2:       cfg.Learn.Talk2,
		}
	case review.KindTranslate:
		return &review.Translate{
			ListenMinScore:            cfg.Translate.ListenMinScore,
			ListenAttemptsToReveal:    cfg.Translate.ListenAttemptsToReveal,
			TranslateMinScore:         cfg.Translate.TranslateMinScore,
			TranslateAttemptsToReveal: cfg.Translate.TranslateAttemptsToReveal,
			SkipTranslate:             cfg.Translate.SkipTranslate,
		}
	case review.KindListen:
		return &review.Listen{SlowRepeat: cfg.Listen.SlowRepeat}
	case review.KindRapid:
		return &review.Rapid{ShowLang1First: cfg.Rapid.ShowLang1First}
	default:
		return &review.Practice{ToLang1: reversed, MinScore: cfg.Review.MinScore}
	}
}

func (s *Screen) openFiles() tea.Cmd {
	fs := files.New(s.deps.Provider, func(name string) {
		s.deps.Cfg.Source.File = s.deps.Provider.Path
		if err := s.deps.Cfg.Save(s.deps.CfgPath); err != nil {
			s.status = fmt.Sprintf("file selected, config not saved: %v", err)
			return
		}
		s.status = "Reviewing " + name
	})
	return func() tea.Msg { return router.PushScreenMsg{Screen: fs} }
}

func (s *Screen) openStats() tea.Cmd {
	st := stats.New(s.deps.Attempts)
	return func() tea.Msg { return router.PushScreenMsg{Screen: st} }
}

func (s *Screen) openSettings() tea.Cmd {
	st := settings.New(s.deps.Cfg, s.deps.CfgPath)
	return func() tea.Msg { return router.PushScreenMsg{Screen: st} }
}
