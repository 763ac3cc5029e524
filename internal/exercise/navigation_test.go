package exercise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvance_LockedUntilAllCompleted(t *testing.T) {
	s, err := Solve(New(VariantPaged, Problem{Numerator: 2, Denominator: 5, Power: 3}))
	require.NoError(t, err)

	assert.False(t, s.NavigationUnlocked())
	assert.Equal(t, 0, Advance(s, Back).Current)
	assert.Equal(t, 0, Advance(s, Forward).Current)

	s = Skip(s, StepDistribute)
	assert.False(t, s.NavigationUnlocked(), "one completed step must not unlock navigation")
	assert.Equal(t, 0, Advance(s, Forward).Current)
}

func TestAdvance_RoundTrip(t *testing.T) {
	s, err := Solve(New(VariantPaged, Problem{Numerator: 2, Denominator: 5, Power: 3}))
	require.NoError(t, err)

	s, _ = CheckStep1(s, "3", "3")
	s = Skip(s, StepEvaluate)
	require.True(t, s.NavigationUnlocked())

	start := s.Current
	s = Advance(s, Forward)
	assert.Equal(t, start+1, s.Current)
	s = Advance(s, Back)
	assert.Equal(t, start, s.Current)
}

func TestAdvance_Clamped(t *testing.T) {
	s, err := Solve(New(VariantPaged, Problem{Numerator: 2, Denominator: 5, Power: 3}))
	require.NoError(t, err)
	s = Skip(Skip(s, StepDistribute), StepEvaluate)

	assert.Equal(t, 0, Advance(s, Back).Current)
	s = Advance(Advance(Advance(s, Forward), Forward), Forward)
	assert.Equal(t, 1, s.Current)
}

func TestContinue_OnlyNeedsCurrentStep(t *testing.T) {
	s, err := Solve(New(VariantPaged, Problem{Numerator: 2, Denominator: 5, Power: 3}))
	require.NoError(t, err)

	assert.Equal(t, 0, Continue(s).Current, "continue before the step is completed")

	s, res := CheckStep1(s, "3", "3")
	require.True(t, res.Completed)
	assert.False(t, s.NavigationUnlocked())

	s = Continue(s)
	assert.Equal(t, 1, s.Current)

	s = Continue(s)
	assert.Equal(t, 1, s.Current, "continue past the last step")

	assert.Equal(t, 1, Advance(s, Back).Current, "back stays locked until every step is done")
}

func TestParseDirection(t *testing.T) {
	d, ok := ParseDirection("back")
	assert.True(t, ok)
	assert.Equal(t, Back, d)

	d, ok = ParseDirection("forward")
	assert.True(t, ok)
	assert.Equal(t, Forward, d)

	_, ok = ParseDirection("sideways")
	assert.False(t, ok)
}

func TestSnapshot(t *testing.T) {
	s, err := Solve(New(VariantPaged, Problem{Numerator: 2, Denominator: 5, Power: 3}))
	require.NoError(t, err)
	s, _ = CheckStep1(s, "3", "2")

	snap := s.Snapshot()
	assert.Equal(t, "paged", snap.Variant)
	require.NotNil(t, snap.Solution)
	assert.Equal(t, s.Solution, *snap.Solution)
	require.Len(t, snap.Steps, 2)
	assert.Equal(t, "distribute-exponent", snap.Steps[0].Name)
	assert.Equal(t, []Status{StatusCorrect, StatusIncorrect}, snap.Steps[0].Fields)
	assert.True(t, snap.Steps[0].Visible)
	assert.False(t, snap.Steps[1].Visible)
	assert.False(t, snap.NavigationUnlocked)
	assert.False(t, snap.Solved)

	snap.Steps[0].Inputs[0] = "changed"
	assert.Equal(t, "3", s.Steps[StepDistribute].Inputs[0], "snapshot must not alias state")
}
