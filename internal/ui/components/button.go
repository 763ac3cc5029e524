package components

import (
	"strings"

	"github.com/abhisek/quotientpow/internal/ui/theme"
)

// Button is a labelled action bound to a key. Disabled buttons are drawn
// dimmed.
type Button struct {
	Key     string
	Label   string
	Enabled bool
}

// View renders the button.
func (b Button) View() string {
	label := b.Label
	if b.Key != "" {
		label = b.Key + " " + b.Label
	}
	if b.Enabled {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}

// ButtonRow renders buttons side by side.
func ButtonRow(buttons ...Button) string {
	parts := make([]string, 0, len(buttons))
	for _, b := range buttons {
		parts = append(parts, b.View())
	}
	return strings.Join(parts, " ")
}
