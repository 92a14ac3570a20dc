package settings

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/parladev/parla/internal/config"
	"github.com/parladev/parla/internal/screen"
	"github.com/parladev/parla/internal/ui/layout"
	"github.com/parladev/parla/internal/ui/theme"
)

// Screen edits the enumerated settings list and saves on change. Bools
// toggle in place; other kinds open an inline text editor.
type Screen struct {
	cfg      *config.Config
	path     string
	fields   []config.Field
	selected int

	editing bool
	editor  textinput.Model
	status  string
}

var (
	_ screen.Screen          = (*Screen)(nil)
	_ screen.KeyHintProvider = (*Screen)(nil)
)

func New(cfg *config.Config, path string) *Screen {
	return &Screen{
		cfg:    cfg,
		path:   path,
		fields: config.Fields(),
	}
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Settings" }

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.editing {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Edit / toggle"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.editing {
			var cmd tea.Cmd
			s.editor, cmd = s.editor.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	if s.editing {
		return s.updateEditing(kmsg)
	}

	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.fields)-1 {
			s.selected++
		}
	case "enter":
		return s.openField()
	}
	return s, nil
}

func (s *Screen) openField() (screen.Screen, tea.Cmd) {
	f := s.fields[s.selected]
	if f.Kind == config.KindBool {
		// Toggle directly, no editor needed.
		next := "true"
		if f.Get(s.cfg) == "true" {
			next = "false"
		}
		s.applyValue(f, next)
		return s, nil
	}

	s.editing = true
	s.editor = textinput.New()
	s.editor.SetValue(f.Get(s.cfg))
	return s, s.editor.Focus()
}

func (s *Screen) updateEditing(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch kmsg.String() {
	case "enter":
		s.applyValue(s.fields[s.selected], s.editor.Value())
		s.editing = false
		return s, nil
	case "esc":
		s.editing = false
		s.status = ""
		return s, nil
	}
	var cmd tea.Cmd
	s.editor, cmd = s.editor.Update(kmsg)
	return s, cmd
}

// applyValue sets, validates, and persists one field. A rejected value
// leaves the config untouched.
func (s *Screen) applyValue(f config.Field, value string) {
	prev := f.Get(s.cfg)
	if err := f.Set(s.cfg, value); err != nil {
		s.status = err.Error()
		return
	}
	if err := s.cfg.Validate(); err != nil {
		_ = f.Set(s.cfg, prev)
		s.status = err.Error()
		return
	}
	if err := s.cfg.Save(s.path); err != nil {
		s.status = fmt.Sprintf("saved in memory only: %v", err)
		return
	}
	s.status = fmt.Sprintf("%s = %s", f.Name, f.Get(s.cfg))
}

func (s *Screen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Settings"))
	b.WriteString("\n\n")

	for i, f := range s.fields {
		value := f.Get(s.cfg)
		if s.editing && i == s.selected {
			b.WriteString(theme.Selected.Render("  > " + f.Name + " = "))
			b.WriteString(s.editor.View())
		} else if i == s.selected {
			b.WriteString(theme.Selected.Render(fmt.Sprintf("  > %-38s %s", f.Name, value)))
		} else {
			b.WriteString(theme.Unselected.Render(fmt.Sprintf("    %-38s %s", f.Name, value)))
		}
		b.WriteString("\n")
	}

	if s.status != "" {
		b.WriteString("\n")
		b.WriteString(theme.Subtitle.Render(s.status))
	}

	card := theme.Card.Width(min(width-4, 76)).Render(b.String())
	return layout.Centered(card, width, height)
}
