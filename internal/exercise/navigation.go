package exercise

// Direction is a navigation move between completed steps.
type Direction int

const (
	Back    Direction = -1
	Forward Direction = 1
)

// ParseDirection maps "back" and "forward" to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "back":
		return Back, true
	case "forward":
		return Forward, true
	}
	return 0, false
}

// NavigationUnlocked reports whether every step is completed, which allows
// free movement between steps.
func (s State) NavigationUnlocked() bool {
	if !s.Solving || len(s.Steps) == 0 {
		return false
	}
	for _, st := range s.Steps {
		if !st.Completed() {
			return false
		}
	}
	return true
}

// Advance moves the displayed step by one in direction d. It is a no-op
// until navigation is unlocked.
func Advance(s State, d Direction) State {
	if !s.NavigationUnlocked() {
		return s
	}
	next := s.Current + int(d)
	if next < 0 {
		next = 0
	}
	if next > len(s.Steps)-1 {
		next = len(s.Steps) - 1
	}
	if next == s.Current {
		return s
	}
	s = s.clone()
	s.Current = next
	return s
}

// Continue moves forward one step once the displayed step is completed,
// whether or not later steps are.
func Continue(s State) State {
	if !s.Solving || s.Current < 0 || s.Current >= len(s.Steps)-1 {
		return s
	}
	if !s.Steps[s.Current].Completed() {
		return s
	}
	s = s.clone()
	s.Current++
	return s
}
