package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/parladev/parla/internal/ui/theme"
)

// AnswerInput wraps bubbles/textinput for answer entry, with a
// correct/incorrect marker after submission.
type AnswerInput struct {
	Model     textinput.Model
	submitted bool
	correct   bool
}

func NewAnswerInput(placeholder string) AnswerInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	return AnswerInput{Model: ti}
}

func (a AnswerInput) Init() tea.Cmd {
	return a.Model.Focus()
}

func (a AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	return a, cmd
}

func (a AnswerInput) View() string {
	view := a.Model.View()
	if a.submitted {
		if a.correct {
			view += " " + theme.Correct.Render("✓")
		} else {
			view += " " + theme.Incorrect.Render("✗")
		}
	}
	return view
}

func (a AnswerInput) Value() string {
	return a.Model.Value()
}

// Submit marks the input with the scoring result.
func (a *AnswerInput) Submit(correct bool) {
	a.submitted = true
	a.correct = correct
}

// Reset clears the input for the next prompt.
func (a *AnswerInput) Reset() {
	a.Model.SetValue("")
	a.submitted = false
	a.correct = false
}
