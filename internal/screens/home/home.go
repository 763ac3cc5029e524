package home

import (
	"context"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"

	ex "github.com/abhisek/quotientpow/internal/exercise"
	"github.com/abhisek/quotientpow/internal/router"
	"github.com/abhisek/quotientpow/internal/screen"
	exercisescreen "github.com/abhisek/quotientpow/internal/screens/exercise"
	"github.com/abhisek/quotientpow/internal/screens/history"
	"github.com/abhisek/quotientpow/internal/screens/placeholder"
	"github.com/abhisek/quotientpow/internal/screens/stats"
	"github.com/abhisek/quotientpow/internal/store"
	"github.com/abhisek/quotientpow/internal/ui/components"
	"github.com/abhisek/quotientpow/internal/ui/layout"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	menu      components.Menu
	eventRepo store.EventRepo
	solved    int
	started   int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. The menu opens on the preferred variant.
// eventRepo may be nil, in which case stats and history are unavailable.
func New(preferred ex.Variant, gen *ex.Generator, eventRepo store.EventRepo) *HomeScreen {
	h := &HomeScreen{eventRepo: eventRepo}

	var items []components.MenuItem
	selected := 0
	for _, v := range ex.Variants {
		if v.Name == preferred.Name {
			selected = len(items)
		}
		items = append(items, components.MenuItem{
			Label: strings.ToUpper(v.Label),
			Hint:  variantHint(v),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: exercisescreen.New(v, gen, eventRepo)}
				}
			},
		})
	}

	items = append(items,
		components.MenuItem{Label: "STATS", Hint: "Attempts and accuracy per step", Action: func() tea.Cmd {
			return func() tea.Msg {
				if eventRepo == nil {
					return router.PushScreenMsg{Screen: placeholder.New("Stats")}
				}
				return router.PushScreenMsg{Screen: stats.New(eventRepo)}
			}
		}},
		components.MenuItem{Label: "HISTORY", Hint: "Recent attempts by problem", Action: func() tea.Cmd {
			return func() tea.Msg {
				if eventRepo == nil {
					return router.PushScreenMsg{Screen: placeholder.New("History")}
				}
				return router.PushScreenMsg{Screen: history.New(eventRepo)}
			}
		}},
		components.MenuItem{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)

	h.menu = components.NewMenu(items)
	h.menu.Selected = selected
	return h
}

func variantHint(v ex.Variant) string {
	if v.Paged {
		return "One step per page, answer as num/den"
	}
	return "Both steps on one page"
}

// Init refreshes the lifetime totals shown in the stats bar.
func (h *HomeScreen) Init() tea.Cmd {
	if h.eventRepo == nil {
		return nil
	}
	st, err := h.eventRepo.Stats(context.Background())
	if err != nil {
		slog.Warn("load stats for home screen", "error", err)
		return nil
	}
	h.solved = st.Solved
	h.started = st.Started
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompactHeight(height) || width < 80
	cw := contentWidth(width)

	sections := []string{
		renderTitle(cw, compact),
		renderStatsBar(h.solved, h.started, cw),
		renderMenu(h.menu.Items, h.menu.Selected, cw),
	}

	return renderFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
