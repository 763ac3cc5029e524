package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quotientpow/internal/exercise"
)

func TestSuperscript(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"2", "²"},
		{"12", "¹²"},
		{"n", "ⁿ"},
		{"-3", "⁻³"},
		{"x", "x"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Superscript(tt.in); got != tt.want {
			t.Errorf("Superscript(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFractionView(t *testing.T) {
	plain := Fraction{Num: "3", Den: "10"}.View()
	lines := strings.Split(plain, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for i, l := range lines {
		if lipgloss.Width(l) != lipgloss.Width(lines[0]) {
			t.Errorf("line %d width %d differs from %d", i, lipgloss.Width(l), lipgloss.Width(lines[0]))
		}
	}
	if !strings.Contains(lines[0], "3") || !strings.Contains(lines[2], "10") {
		t.Errorf("unexpected fraction layout:\n%s", plain)
	}

	outer := Fraction{Num: "3", Den: "4", OuterExp: "2"}.View()
	if !strings.Contains(outer, "⎛") || !strings.Contains(outer, "²") {
		t.Errorf("expected parenthesized fraction with exponent:\n%s", outer)
	}

	distributed := Fraction{Num: "3", Den: "4", NumExp: "2", DenExp: "2"}.View()
	if strings.Count(distributed, "²") != 2 {
		t.Errorf("expected two exponents:\n%s", distributed)
	}
}

func TestTextInput_AcceptFilters(t *testing.T) {
	ti := NewTextInput("n", "", DigitChars, 4)
	ti.Focus()

	ti, _ = ti.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	ti, _ = ti.Update(tea.KeyPressMsg{Code: '7', Text: "7"})
	ti, _ = ti.Update(tea.KeyPressMsg{Code: '/', Text: "/"})

	if got := ti.Value(); got != "7" {
		t.Errorf("expected %q, got %q", "7", got)
	}
}

func TestTextInput_FractionCharset(t *testing.T) {
	ti := NewTextInput("", "", FractionChars, 10)
	ti.Focus()
	for _, r := range "9/16" {
		ti, _ = ti.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	if got := ti.Value(); got != "9/16" {
		t.Errorf("expected %q, got %q", "9/16", got)
	}
}

func TestTextInput_Mark(t *testing.T) {
	ti := NewTextInput("", "", DigitChars, 3)
	ti.SetValue("2")
	if strings.Contains(ti.View(), "✓") {
		t.Error("unexpected mark before grading")
	}
	ti.SetStatus(exercise.StatusCorrect)
	if !strings.Contains(ti.View(), "✓") {
		t.Error("expected correct mark")
	}
	ti.SetStatus(exercise.StatusIncorrect)
	if !strings.Contains(ti.View(), "✗") {
		t.Error("expected incorrect mark")
	}
}

func TestMenu_SkipsDisabled(t *testing.T) {
	var picked string
	pick := func(label string) func() tea.Cmd {
		return func() tea.Cmd {
			picked = label
			return nil
		}
	}
	m := NewMenu([]MenuItem{
		{Label: "a", Action: pick("a")},
		{Label: "b", Disabled: true},
		{Label: "c", Action: pick("c")},
	})

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 2 {
		t.Fatalf("expected selection 2, got %d", m.Selected)
	}
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if picked != "c" {
		t.Errorf("expected c picked, got %q", picked)
	}
}
