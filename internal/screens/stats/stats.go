package stats

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quotientpow/internal/router"
	"github.com/abhisek/quotientpow/internal/screen"
	"github.com/abhisek/quotientpow/internal/store"
	"github.com/abhisek/quotientpow/internal/ui/components"
	"github.com/abhisek/quotientpow/internal/ui/layout"
	"github.com/abhisek/quotientpow/internal/ui/theme"
)

type statsLoadedMsg struct {
	Stats *store.Stats
	Err   error
}

// StatsScreen shows totals from the attempt log.
type StatsScreen struct {
	eventRepo store.EventRepo
	stats     *store.Stats
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a new StatsScreen.
func New(eventRepo store.EventRepo) *StatsScreen {
	return &StatsScreen{eventRepo: eventRepo}
}

func (s *StatsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		st, err := s.eventRepo.Stats(context.Background())
		return statsLoadedMsg{Stats: st, Err: err}
	}
}

func (s *StatsScreen) Title() string {
	return "Stats"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "R", Description: "Refresh"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.stats = msg.Stats
			s.errMsg = ""
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "r":
			s.loaded = false
			return s, s.Init()
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading stats...")
	}
	if s.stats == nil || (s.stats.Generated == 0 && len(s.stats.Steps) == 0) {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Nothing recorded yet. Solve a problem first!")
	}

	st := s.stats
	var b strings.Builder
	b.WriteString("\n")

	totals := fmt.Sprintf("Problems  %d drawn   %d started   %d refused   %d solved",
		st.Generated, st.Started, st.Refused, st.Solved)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Body.Render(totals)))
	b.WriteString("\n\n")

	barWidth := min(width-8, 60)
	for _, step := range st.Steps {
		header := fmt.Sprintf("Step %d  %s", step.StepIndex+1, step.Step)
		counts := fmt.Sprintf("%d attempts  %s %d  %s %d  %s %d",
			step.Attempts,
			theme.Correct.Render("✓"), step.Correct,
			theme.Incorrect.Render("✗"), step.Incorrect,
			theme.Skipped.Render("↷"), step.Skipped)

		var accuracy float64
		if graded := step.Correct + step.Incorrect; graded > 0 {
			accuracy = float64(step.Correct) / float64(graded)
		}
		bar := components.NewProgressBar("accuracy", accuracy, true, barWidth)

		block := theme.Selected.Render(header) + "\n" + counts + "\n" + bar.View()
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Card.Render(block)))
		b.WriteString("\n")
	}

	return b.String()
}
