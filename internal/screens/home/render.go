package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quotientpow/internal/ui/components"
	"github.com/abhisek/quotientpow/internal/ui/theme"
)

const titleCompact = "(a/b)ⁿ = aⁿ/bⁿ"

// contentWidth returns the uniform inner width used for all sections.
func contentWidth(frameWidth int) int {
	// border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 56 {
		w = 56
	}
	if w < 20 {
		w = 20
	}
	return w
}

// renderTitle draws the rule as stacked fractions, or a single line when
// space is short.
func renderTitle(cw int, compact bool) string {
	if compact {
		return theme.Title.Width(cw).Render(titleCompact)
	}
	lhs := components.Fraction{Num: "a", Den: "b", OuterExp: "n"}
	rhs := components.Fraction{Num: "a", Den: "b", NumExp: "n", DenExp: "n"}
	eq := lipgloss.NewStyle().PaddingTop(1).Render("  =  ")
	rule := lipgloss.JoinHorizontal(lipgloss.Top, lhs.View(), eq, rhs.View())

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(theme.Title.Render("POWER OF A QUOTIENT") + "\n\n" + rule)
}

// renderStatsBar renders lifetime totals in a box matching content width.
func renderStatsBar(solved, attempted int, cw int) string {
	solvedStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	stats := solvedStyle.Render(fmt.Sprintf("✓ %d SOLVED", solved)) + "  " +
		dimStyle.Render(fmt.Sprintf("%d STARTED", attempted))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 24

// renderMenu renders each menu item as a fixed-width button with its hint
// underneath the selected one.
func renderMenu(items []components.MenuItem, selected int, cw int) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Primary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	var buttons []string
	for i, item := range items {
		if i == selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+item.Label))
		} else {
			buttons = append(buttons, normalBtn.Render(item.Label))
		}
	}
	block := strings.Join(buttons, "\n")
	if selected >= 0 && selected < len(items) && items[selected].Hint != "" {
		block += "\n" + theme.Hint.Render(items[selected].Hint)
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderFrame wraps content in a border, centered in the given area.
func renderFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
