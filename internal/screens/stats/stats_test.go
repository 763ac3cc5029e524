package stats

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quotientpow/internal/router"
	"github.com/abhisek/quotientpow/internal/store"
)

type stubRepo struct {
	store.EventRepo
	stats *store.Stats
	err   error
}

func (r *stubRepo) Stats(context.Context) (*store.Stats, error) {
	return r.stats, r.err
}

func load(t *testing.T, s *StatsScreen) {
	t.Helper()
	msg := s.Init()()
	s.Update(msg)
}

func TestStatsScreen_Renders(t *testing.T) {
	s := New(&stubRepo{stats: &store.Stats{
		Generated: 4, Started: 3, Solved: 2,
		Steps: []store.StepStats{
			{Step: "distribute-exponent", StepIndex: 0, Attempts: 4, Correct: 3, Incorrect: 1},
			{Step: "evaluate-powers", StepIndex: 1, Attempts: 2, Correct: 1, Skipped: 1},
		},
	}})
	load(t, s)

	view := s.View(100, 30)
	for _, want := range []string{"4 drawn", "2 solved", "distribute-exponent", "evaluate-powers"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestStatsScreen_Empty(t *testing.T) {
	s := New(&stubRepo{stats: &store.Stats{}})
	load(t, s)
	if !strings.Contains(s.View(80, 20), "Nothing recorded yet") {
		t.Error("expected empty state")
	}
}

func TestStatsScreen_Error(t *testing.T) {
	s := New(&stubRepo{err: errors.New("boom")})
	load(t, s)
	if !strings.Contains(s.View(80, 20), "boom") {
		t.Error("expected error in view")
	}
}

func TestStatsScreen_EscPops(t *testing.T) {
	s := New(&stubRepo{stats: &store.Stats{}})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}
