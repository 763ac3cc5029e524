package app

import (
	"fmt"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	ex "github.com/abhisek/quotientpow/internal/exercise"
	"github.com/abhisek/quotientpow/internal/router"
	"github.com/abhisek/quotientpow/internal/screen"
	exercisescreen "github.com/abhisek/quotientpow/internal/screens/exercise"
	"github.com/abhisek/quotientpow/internal/screens/home"
	"github.com/abhisek/quotientpow/internal/screens/welcome"
	"github.com/abhisek/quotientpow/internal/store"
	"github.com/abhisek/quotientpow/internal/ui/layout"
)

// Options holds the dependencies for the TUI.
type Options struct {
	// EventRepo records attempts. Nil disables recording, stats and history.
	EventRepo store.EventRepo

	// Variant is preselected on the home menu.
	Variant ex.Variant

	// Generator draws problems. Nil uses a clock-seeded generator.
	Generator *ex.Generator

	// Direct opens the exercise for Variant instead of the welcome screen.
	Direct bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int

	// direct is pushed over the home screen on Init.
	direct screen.Screen
}

// newAppModel creates a new AppModel starting on the welcome screen, or
// straight in the exercise when opts.Direct is set.
func newAppModel(opts Options) AppModel {
	if opts.Variant.Name == "" {
		opts.Variant = ex.VariantPaged
	}
	if opts.Generator == nil {
		opts.Generator = ex.NewGenerator()
	}
	homeFactory := func() screen.Screen {
		return home.New(opts.Variant, opts.Generator, opts.EventRepo)
	}

	if opts.Direct {
		return AppModel{
			router: router.New(homeFactory()),
			direct: exercisescreen.New(opts.Variant, opts.Generator, opts.EventRepo),
		}
	}
	return AppModel{router: router.New(welcome.New(homeFactory))}
}

func (m AppModel) Init() tea.Cmd {
	cmd := m.router.Active().Init()
	if m.direct != nil {
		return tea.Batch(cmd, m.router.Push(m.direct))
	}
	return cmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the header, the active screen and the footer.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	var title, status string
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if hp, ok := active.(screen.KeyHintProvider); ok {
		return append(hp.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		slog.Error("tui exited", "error", err)
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
