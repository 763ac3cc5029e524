package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quotientpow/internal/ui/theme"
)

var superscripts = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
	'-': '⁻', '+': '⁺', 'n': 'ⁿ', '(': '⁽', ')': '⁾',
}

// Superscript maps digits, signs and "n" to their superscript forms. Other
// runes are kept as is.
func Superscript(s string) string {
	var b strings.Builder
	for _, r := range s {
		if sup, ok := superscripts[r]; ok {
			b.WriteRune(sup)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Fraction is a stacked fraction. NumExp and DenExp are drawn as
// superscripts on the numerator and denominator; OuterExp raises the whole
// fraction in parentheses.
type Fraction struct {
	Num, Den       string
	NumExp, DenExp string
	OuterExp       string
}

// View renders the fraction on three lines.
func (f Fraction) View() string {
	num := f.Num + f.exp(f.NumExp)
	den := f.Den + f.exp(f.DenExp)

	w := max(lipgloss.Width(num), lipgloss.Width(den)) + 2
	top := center(num, w)
	bar := strings.Repeat("─", w)
	bottom := center(den, w)

	if f.OuterExp == "" {
		return top + "\n" + bar + "\n" + bottom
	}
	exp := f.exp(f.OuterExp)
	pad := strings.Repeat(" ", lipgloss.Width(exp))
	return "⎛" + top + "⎞" + exp + "\n" +
		"⎜" + bar + "⎟" + pad + "\n" +
		"⎝" + bottom + "⎠" + pad
}

func (f Fraction) exp(s string) string {
	if s == "" {
		return ""
	}
	return theme.Exponent.Render(Superscript(s))
}

func center(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
