package exercise

import "slices"

// Snapshot is a serializable view of a State.
type Snapshot struct {
	Variant            string         `json:"variant"`
	Problem            Problem        `json:"problem"`
	Raw                RawFields      `json:"raw"`
	Solution           *Problem       `json:"solution,omitempty"`
	Steps              []StepSnapshot `json:"steps"`
	CurrentStep        int            `json:"current_step"`
	NavigationUnlocked bool           `json:"navigation_unlocked"`
	Solved             bool           `json:"solved"`
	Message            string         `json:"message,omitempty"`
}

// StepSnapshot is one step within a Snapshot.
type StepSnapshot struct {
	Name      string   `json:"name"`
	Inputs    []string `json:"inputs"`
	Fields    []Status `json:"fields"`
	Status    Status   `json:"status"`
	Completed bool     `json:"completed"`
	Visible   bool     `json:"visible"`
}

// Snapshot returns a deep copy of the observable state.
func (s State) Snapshot() Snapshot {
	snap := Snapshot{
		Variant:            s.Variant.Name,
		Problem:            s.Problem,
		Raw:                s.Raw,
		CurrentStep:        s.Current,
		NavigationUnlocked: s.NavigationUnlocked(),
		Solved:             s.Solved(),
		Message:            s.Message,
	}
	if s.Solving {
		sol := s.Solution
		snap.Solution = &sol
	}
	for i, st := range s.Steps {
		var name string
		if i < len(s.curriculum) {
			name = s.curriculum[i].Name()
		}
		snap.Steps = append(snap.Steps, StepSnapshot{
			Name:      name,
			Inputs:    slices.Clone(st.Inputs),
			Fields:    slices.Clone(st.Fields),
			Status:    st.Status,
			Completed: st.Completed(),
			Visible:   s.Visible(StepID(i)),
		})
	}
	return snap
}
