package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathadventure/internal/problemgen"
	"github.com/abhisek/mathadventure/internal/ui/theme"
)

// AnswerInput wraps bubbles/textinput as a digits-only answer box.
type AnswerInput struct {
	Model    textinput.Model
	disabled bool
}

// NewAnswerInput creates a focused answer box holding at most maxDigits digits.
func NewAnswerInput(placeholder string, maxDigits int) AnswerInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	if maxDigits > 0 {
		ti.CharLimit = maxDigits
	}
	ti.Focus()
	return AnswerInput{Model: ti}
}

// Init returns the initial command.
func (a AnswerInput) Init() tea.Cmd {
	return a.Model.Focus()
}

// Update handles messages. Non-digit printable keys are dropped, and all
// input is ignored while the box is disabled.
func (a AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if a.disabled {
			return a, nil
		}
		key := kmsg.String()
		if len(key) == 1 && (key[0] < '0' || key[0] > '9') {
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	return a, cmd
}

// View renders the answer box.
func (a AnswerInput) View() string {
	if a.disabled {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render(a.Model.View())
	}
	return a.Model.View()
}

// Value returns the raw input.
func (a AnswerInput) Value() string {
	return a.Model.Value()
}

// Answer parses the input as a whole number.
func (a AnswerInput) Answer() (int, error) {
	return problemgen.ParseAnswer(a.Model.Value())
}

// Reset clears the input and re-enables it.
func (a *AnswerInput) Reset() {
	a.Model.Reset()
	a.disabled = false
}

// SetDisabled blocks or allows typing.
func (a *AnswerInput) SetDisabled(disabled bool) {
	a.disabled = disabled
}

// Disabled reports whether typing is blocked.
func (a AnswerInput) Disabled() bool {
	return a.disabled
}
