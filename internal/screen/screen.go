package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/parladev/parla/internal/ui/layout"
)

// Screen is one full-terminal view in the application.
type Screen interface {
	// Init returns an initial command when the screen is first shown.
	Init() tea.Cmd

	// Update handles messages and returns the updated screen plus command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content between header and footer.
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider lets a screen supply its own footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
