package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quotientpow/internal/ui/components"
	"github.com/abhisek/quotientpow/internal/ui/theme"
)

const bannerCompact = "(a/b)ⁿ = aⁿ/bⁿ"

// RenderRule returns the power-of-a-quotient rule drawn as stacked
// fractions. full adds the distributed right-hand side. Narrow terminals get
// a single line.
func RenderRule(width int, full bool) string {
	style := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	if width < 40 {
		return style.Render(bannerCompact)
	}

	lhs := components.Fraction{Num: "a", Den: "b", OuterExp: "n"}.View()
	if !full {
		return style.Render(lhs)
	}
	rhs := components.Fraction{Num: "a", Den: "b", NumExp: "n", DenExp: "n"}.View()
	eq := lipgloss.NewStyle().PaddingTop(1).Render("  =  ")
	return style.Render(lipgloss.JoinHorizontal(lipgloss.Top, lhs, eq, rhs))
}

// RenderExample returns a worked instance of the rule.
func RenderExample() string {
	lhs := components.Fraction{Num: "2", Den: "3", OuterExp: "2"}.View()
	mid := components.Fraction{Num: "2", Den: "3", NumExp: "2", DenExp: "2"}.View()
	rhs := components.Fraction{Num: "4", Den: "9"}.View()
	eq := lipgloss.NewStyle().PaddingTop(1).Render("  =  ")
	return lipgloss.NewStyle().Foreground(theme.Text).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, lhs, eq, mid, eq, rhs))
}
