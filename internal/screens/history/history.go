package history

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	ex "github.com/abhisek/quotientpow/internal/exercise"
	"github.com/abhisek/quotientpow/internal/router"
	"github.com/abhisek/quotientpow/internal/screen"
	"github.com/abhisek/quotientpow/internal/store"
	"github.com/abhisek/quotientpow/internal/ui/components"
	"github.com/abhisek/quotientpow/internal/ui/layout"
	"github.com/abhisek/quotientpow/internal/ui/theme"
)

const recentLimit = 200

type historyLoadedMsg struct {
	Attempts []store.Attempt
	Err      error
}

// exerciseGroup is the attempts of one exercise, newest exercise first.
type exerciseGroup struct {
	ExerciseID string
	Attempts   []store.Attempt
}

// HistoryScreen lists recent step attempts grouped by exercise.
type HistoryScreen struct {
	eventRepo store.EventRepo
	groups    []exerciseGroup
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		attempts, err := s.eventRepo.RecentAttempts(context.Background(), recentLimit)
		return historyLoadedMsg{Attempts: attempts, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.groups = groupAttempts(msg.Attempts)
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.groups)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

// groupAttempts groups newest-first attempts by exercise. Groups keep the
// order in which their newest attempt appears; attempts inside a group are
// oldest first.
func groupAttempts(attempts []store.Attempt) []exerciseGroup {
	var groups []exerciseGroup
	index := make(map[string]int)
	for _, a := range attempts {
		i, ok := index[a.ExerciseID]
		if !ok {
			i = len(groups)
			index[a.ExerciseID] = i
			groups = append(groups, exerciseGroup{ExerciseID: a.ExerciseID})
		}
		groups[i].Attempts = append([]store.Attempt{a}, groups[i].Attempts...)
	}
	return groups
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.groups) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No attempts yet. Solve a problem first!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, g := range s.groups {
		last := g.Attempts[len(g.Attempts)-1]
		var correct, skipped int
		for _, a := range g.Attempts {
			switch ex.Status(a.Status) {
			case ex.StatusCorrect:
				correct++
			case ex.StatusSkipped:
				skipped++
			}
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%s  %s  %d attempts  %d correct  %d skipped",
			prefix, last.Timestamp.Format("Jan 02 15:04"), shortID(g.ExerciseID), len(g.Attempts), correct, skipped)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = theme.Selected
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			for _, a := range g.Attempts {
				detail := fmt.Sprintf("    step %d  %s %-10s answer %q  expected %q",
					a.StepIndex+1, components.Mark(ex.Status(a.Status)), a.Status, a.Answer, a.Expected)
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(statusColor(ex.Status(a.Status))).Render(detail)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

func statusColor(st ex.Status) color.Color {
	switch st {
	case ex.StatusCorrect:
		return theme.Success
	case ex.StatusIncorrect:
		return theme.Error
	case ex.StatusSkipped:
		return theme.Muted
	default:
		return theme.Text
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
