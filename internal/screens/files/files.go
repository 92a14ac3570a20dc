package files

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/parladev/parla/internal/router"
	"github.com/parladev/parla/internal/screen"
	"github.com/parladev/parla/internal/ui/layout"
	"github.com/parladev/parla/internal/ui/theme"
	"github.com/parladev/parla/internal/vocab"
)

// Screen picks a vocabulary file from the siblings of the configured one.
// Typing filters the list; the choice retargets the provider and is
// reported through OnSelect.
type Screen struct {
	provider *vocab.FileProvider
	onSelect func(name string)

	filter   textinput.Model
	names    []string
	selected int
	errMsg   string
}

var (
	_ screen.Screen          = (*Screen)(nil)
	_ screen.KeyHintProvider = (*Screen)(nil)
)

func New(provider *vocab.FileProvider, onSelect func(name string)) *Screen {
	filter := textinput.New()
	filter.Placeholder = "Filter..."
	filter.Focus()
	return &Screen{provider: provider, onSelect: onSelect, filter: filter}
}

func (s *Screen) Init() tea.Cmd {
	s.refresh()
	return s.filter.Focus()
}

func (s *Screen) Title() string { return "Vocabulary files" }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) refresh() {
	names, err := s.provider.SiblingFiles(strings.TrimSpace(s.filter.Value()))
	if err != nil {
		s.errMsg = err.Error()
		return
	}
	s.errMsg = ""
	s.names = names
	if s.selected >= len(names) {
		s.selected = 0
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		s.filter, cmd = s.filter.Update(msg)
		return s, cmd
	}

	switch kmsg.String() {
	case "up":
		if s.selected > 0 {
			s.selected--
		}
		return s, nil
	case "down":
		if s.selected < len(s.names)-1 {
			s.selected++
		}
		return s, nil
	case "enter":
		if s.selected < len(s.names) {
			name := s.names[s.selected]
			s.provider.Select(name)
			if s.onSelect != nil {
				s.onSelect(name)
			}
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.filter, cmd = s.filter.Update(kmsg)
	s.refresh()
	return s, cmd
}

func (s *Screen) View(width, height int) string {
	if s.errMsg != "" {
		return layout.Centered(theme.Incorrect.Render(s.errMsg), width, height)
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("Choose a vocabulary file"))
	b.WriteString("\n\n")
	b.WriteString(s.filter.View())
	b.WriteString("\n\n")

	if len(s.names) == 0 {
		b.WriteString(theme.Subtitle.Render("No matching files"))
	}
	for i, name := range s.names {
		if i == s.selected {
			b.WriteString(theme.Selected.Render("  > " + name))
		} else {
			b.WriteString(theme.Unselected.Render("    " + name))
		}
		b.WriteString("\n")
	}

	card := theme.Card.Width(min(width-4, 72)).Render(b.String())
	return layout.Centered(card, width, height)
}
