package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quotientpow/internal/exercise"
	"github.com/abhisek/quotientpow/internal/ui/theme"
)

// Character sets accepted by TextInput.
const (
	DigitChars    = "0123456789"
	FractionChars = "0123456789/-"
)

// TextInput wraps bubbles/textinput with a label and a grading mark.
type TextInput struct {
	Model  textinput.Model
	Label  string
	Accept string
	status exercise.Status
}

// NewTextInput creates a new blurred text input. Single-character keys not
// in accept are dropped; an empty accept allows everything.
func NewTextInput(label, placeholder, accept string, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	if maxWidth > 0 {
		ti.CharLimit = maxWidth
		ti.SetWidth(maxWidth + 1)
	}

	return TextInput{
		Model:  ti,
		Label:  label,
		Accept: accept,
		status: exercise.StatusUnanswered,
	}
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && t.Accept != "" {
		key := kmsg.String()
		if len(key) == 1 && !strings.Contains(t.Accept, key) {
			return t, nil
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the label, input and grading mark.
func (t TextInput) View() string {
	var b strings.Builder
	if t.Label != "" {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if t.Model.Focused() {
			style = theme.Selected
		}
		b.WriteString(style.Render(t.Label) + " ")
	}
	b.WriteString(t.Model.View())
	if mark := Mark(t.status); mark != "" {
		b.WriteString(" " + mark)
	}
	return b.String()
}

// Mark renders the symbol for a grading status.
func Mark(s exercise.Status) string {
	switch s {
	case exercise.StatusCorrect:
		return theme.Correct.Render("✓")
	case exercise.StatusIncorrect:
		return theme.Incorrect.Render("✗")
	case exercise.StatusSkipped:
		return theme.Skipped.Render("↷")
	}
	return ""
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the text and moves the cursor to the end.
func (t *TextInput) SetValue(v string) {
	t.Model.SetValue(v)
	t.Model.CursorEnd()
}

// SetStatus sets the grading mark shown after the input.
func (t *TextInput) SetStatus(s exercise.Status) {
	t.status = s
}

// Focus focuses the input.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes focus from the input.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Focused reports whether the input has focus.
func (t TextInput) Focused() bool {
	return t.Model.Focused()
}
