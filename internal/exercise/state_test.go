package exercise

import (
	"errors"
	"math"
	"slices"
	"strconv"
	"testing"
)

func solving(t *testing.T, v Variant, p Problem) State {
	t.Helper()
	s, err := Solve(New(v, p))
	if err != nil {
		t.Fatalf("Solve(%v): %v", p, err)
	}
	return s
}

func TestNew_ClampsProblem(t *testing.T) {
	s := New(VariantSingle, Problem{Numerator: 0, Denominator: 20, Power: 9})
	want := Problem{Numerator: 1, Denominator: 10, Power: 3}
	if s.Problem != want {
		t.Errorf("Problem = %v, want %v", s.Problem, want)
	}
	if s.Raw.Numerator != "1" || s.Raw.Denominator != "10" || s.Raw.Power != "3" {
		t.Errorf("Raw = %+v, want text of %v", s.Raw, want)
	}
	if len(s.Steps) != 2 {
		t.Fatalf("len(Steps) = %d, want 2", len(s.Steps))
	}
}

func TestSetField_Clamping(t *testing.T) {
	tests := []struct {
		name    string
		variant Variant
		field   Field
		raw     string
		want    int
	}{
		{"power above paged range", VariantPaged, FieldPower, "99", 9},
		{"power above single range", VariantSingle, FieldPower, "99", 3},
		{"power below range", VariantPaged, FieldPower, "1", 2},
		{"numerator zero", VariantPaged, FieldNumerator, "0", 1},
		{"numerator negative", VariantSingle, FieldNumerator, "-4", 1},
		{"denominator above range", VariantSingle, FieldDenominator, "11", 10},
		{"in range", VariantPaged, FieldDenominator, "7", 7},
		{"surrounding space", VariantPaged, FieldNumerator, " 6 ", 6},
		{"overflow", VariantPaged, FieldNumerator, "99999999999999999999", 10},
		{"negative overflow", VariantPaged, FieldPower, "-99999999999999999999", 2},
		{"decimal truncated", VariantPaged, FieldNumerator, "2.5", 2},
		{"decimal truncated then clamped", VariantPaged, FieldPower, "12.9", 9},
		{"trailing point", VariantPaged, FieldDenominator, "7.", 7},
		{"fraction only", VariantPaged, FieldNumerator, ".5", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.variant, Problem{Numerator: 5, Denominator: 5, Power: 2})
			s = SetField(s, tt.field, tt.raw)
			if got := s.Problem.Get(tt.field); got != tt.want {
				t.Errorf("%s = %d, want %d", tt.field, got, tt.want)
			}
			if got := s.Raw.Get(tt.field); got != strconv.Itoa(tt.want) {
				t.Errorf("raw %s = %q, want %q", tt.field, got, strconv.Itoa(tt.want))
			}
		})
	}
}

func TestSetField_NonNumericIgnored(t *testing.T) {
	s := solving(t, VariantPaged, Problem{Numerator: 3, Denominator: 4, Power: 2})
	for _, raw := range []string{"abc", "3x", ".", "2.5.1", "1e3"} {
		got := SetField(s, FieldNumerator, raw)
		if got.Problem != s.Problem || got.Raw != s.Raw {
			t.Errorf("SetField(%q) changed problem to %v (%+v)", raw, got.Problem, got.Raw)
		}
		if !got.Solving {
			t.Errorf("SetField(%q) left solving; ignored input must be a no-op", raw)
		}
	}
}

func TestSetField_BlankIsTransient(t *testing.T) {
	s := New(VariantPaged, Problem{Numerator: 3, Denominator: 4, Power: 2})
	s = SetField(s, FieldDenominator, "")

	if s.Problem.Denominator != 4 {
		t.Errorf("Denominator = %d, want previous value 4", s.Problem.Denominator)
	}
	if s.Raw.Denominator != "" {
		t.Errorf("raw denominator = %q, want blank", s.Raw.Denominator)
	}

	s, err := Solve(s)
	if !errors.Is(err, ErrIncompleteProblem) {
		t.Fatalf("Solve with blank field: err = %v, want ErrIncompleteProblem", err)
	}
	if s.Solving {
		t.Error("expected Solve to be refused")
	}
	if s.Message != IncompleteMessage {
		t.Errorf("Message = %q, want %q", s.Message, IncompleteMessage)
	}

	s = SetField(s, FieldDenominator, "6")
	if s.Message != "" {
		t.Errorf("Message = %q, want cleared after edit", s.Message)
	}
	if _, err := Solve(s); err != nil {
		t.Errorf("Solve after refilling: %v", err)
	}
}

func TestSetField_InvalidatesSteps(t *testing.T) {
	s := solving(t, VariantPaged, Problem{Numerator: 3, Denominator: 4, Power: 2})
	s = Skip(s, StepDistribute)

	s = SetField(s, FieldPower, "5")
	if s.Solving {
		t.Error("expected editing a field to leave solving")
	}
	if s.Steps[StepDistribute].Status != StatusUnanswered {
		t.Errorf("step 1 status = %s, want unanswered", s.Steps[StepDistribute].Status)
	}
}

func TestSolve_RejectsOutOfRange(t *testing.T) {
	s := New(VariantPaged, Problem{Numerator: 3, Denominator: 4, Power: 2})
	s.Problem.Power = 12

	_, err := Solve(s)
	if !errors.Is(err, ErrIncompleteProblem) {
		t.Errorf("err = %v, want ErrIncompleteProblem", err)
	}
}

func TestSolve_SnapshotsProblem(t *testing.T) {
	p := Problem{Numerator: 2, Denominator: 5, Power: 3}
	s := solving(t, VariantSingle, p)
	if s.Solution != p {
		t.Errorf("Solution = %v, want %v", s.Solution, p)
	}
	if !s.Visible(StepDistribute) {
		t.Error("expected step 1 visible after Solve")
	}
	if s.Visible(StepEvaluate) {
		t.Error("expected step 2 hidden before step 1 is completed")
	}
}

func TestCheckStep1_PerFieldStatus(t *testing.T) {
	s := solving(t, VariantPaged, Problem{Numerator: 3, Denominator: 4, Power: 2})

	s, res := CheckStep1(s, "2", "3")
	if res.Completed {
		t.Error("expected step 1 not completed with one wrong field")
	}
	if len(res.Fields) != 2 || res.Fields[0] != StatusCorrect || res.Fields[1] != StatusIncorrect {
		t.Errorf("Fields = %v, want [correct incorrect]", res.Fields)
	}
	if s.Steps[StepDistribute].Completed() {
		t.Error("expected stored step 1 not completed")
	}
	if s.Visible(StepEvaluate) {
		t.Error("step 2 must stay hidden after a partial answer")
	}
	if st := s.Steps[StepDistribute]; st.Status != StatusUnanswered || st.Outcome() != StatusIncorrect {
		t.Errorf("partial answer: status = %s, outcome = %s; want unanswered, incorrect", st.Status, st.Outcome())
	}

	s, res = CheckStep1(s, "2", "2")
	if !res.Completed {
		t.Errorf("expected completion, got %v", res.Fields)
	}
	if s.Steps[StepDistribute].Status != StatusCorrect {
		t.Errorf("status = %s, want correct", s.Steps[StepDistribute].Status)
	}
	if !s.Visible(StepEvaluate) {
		t.Error("expected step 2 visible once step 1 is correct")
	}
}

func TestCheckStep1_Malformed(t *testing.T) {
	s := solving(t, VariantPaged, Problem{Numerator: 3, Denominator: 4, Power: 2})
	_, res := CheckStep1(s, "", "two")
	if res.Completed || res.Fields[0] != StatusIncorrect || res.Fields[1] != StatusIncorrect {
		t.Errorf("got %+v, want both incorrect", res)
	}
}

func TestCheckStep1_AllWrongIsIncorrect(t *testing.T) {
	s := solving(t, VariantPaged, Problem{Numerator: 3, Denominator: 4, Power: 2})
	s, _ = CheckStep1(s, "3", "4")
	if st := s.Steps[StepDistribute]; st.Status != StatusIncorrect || st.Outcome() != StatusIncorrect {
		t.Errorf("status = %s, outcome = %s; want incorrect", st.Status, st.Outcome())
	}

	// Resubmitting after an incorrect answer is allowed.
	s, res := CheckStep1(s, "2", "2")
	if !res.Completed || s.Steps[StepDistribute].Status != StatusCorrect {
		t.Errorf("resubmit: %+v, status = %s", res, s.Steps[StepDistribute].Status)
	}
}

func TestCheckStep2_Slash(t *testing.T) {
	s := solving(t, VariantPaged, Problem{Numerator: 2, Denominator: 5, Power: 3})
	s, _ = CheckStep1(s, "3", "3")

	tests := []struct {
		input string
		want  bool
	}{
		{"8/125", true},
		{" 8 / 125 ", true},
		{"8/25", false},
		{"16/250", false},
		{"8-125", false},
		{"8/", false},
		{"/125", false},
		{"abc/125", false},
		{"8/125/1", false},
		{"", false},
		{"99999999999999999999/125", false},
	}

	for _, tc := range tests {
		_, res := CheckStep2(s, tc.input)
		if res.Completed != tc.want {
			t.Errorf("CheckStep2(%q) completed = %v, want %v", tc.input, res.Completed, tc.want)
		}
	}
}

func TestCheckStep2_Separate(t *testing.T) {
	s := solving(t, VariantSingle, Problem{Numerator: 3, Denominator: 4, Power: 2})
	s, _ = CheckStep1(s, "2", "2")

	s, res := CheckStep2(s, "9", "15")
	if res.Completed {
		t.Fatal("expected wrong denominator to fail")
	}
	if res.Fields[0] != StatusCorrect || res.Fields[1] != StatusIncorrect {
		t.Errorf("Fields = %v, want [correct incorrect]", res.Fields)
	}

	s, res = CheckStep2(s, "9", "16")
	if !res.Completed {
		t.Errorf("expected 9/16 to be correct, got %v", res.Fields)
	}
	if !s.Solved() {
		t.Error("expected exercise solved")
	}
}

func TestCheckStep2_Exhaustive(t *testing.T) {
	for a := 1; a <= 10; a++ {
		for b := 1; b <= 10; b++ {
			for n := 2; n <= 9; n++ {
				s := solving(t, VariantPaged, Problem{Numerator: a, Denominator: b, Power: n})
				want := strconv.FormatInt(int64(math.Pow(float64(a), float64(n))), 10) + "/" +
					strconv.FormatInt(int64(math.Pow(float64(b), float64(n))), 10)

				if _, res := CheckStep2(s, want); !res.Completed {
					t.Fatalf("(%d/%d)^%d: %q rejected", a, b, n, want)
				}
				off := strconv.FormatInt(int64(math.Pow(float64(a), float64(n)))+1, 10) + "/" +
					strconv.FormatInt(int64(math.Pow(float64(b), float64(n))), 10)
				if _, res := CheckStep2(s, off); res.Completed {
					t.Fatalf("(%d/%d)^%d: %q accepted", a, b, n, off)
				}
			}
		}
	}
}

func TestCheckStep_NotSolvingIsNoop(t *testing.T) {
	s := New(VariantPaged, Problem{Numerator: 3, Denominator: 4, Power: 2})
	got, res := CheckStep1(s, "2", "2")
	if res.Completed || res.Fields != nil {
		t.Errorf("res = %+v, want empty result", res)
	}
	if got.Steps[StepDistribute].Status != StatusUnanswered {
		t.Errorf("status = %s, want unanswered", got.Steps[StepDistribute].Status)
	}
}

func TestCheckStep_DoesNotMutateInput(t *testing.T) {
	s := solving(t, VariantPaged, Problem{Numerator: 3, Denominator: 4, Power: 2})
	_, _ = CheckStep1(s, "2", "1")
	if s.Steps[StepDistribute].Status != StatusUnanswered {
		t.Errorf("original state mutated: status = %s", s.Steps[StepDistribute].Status)
	}
	if s.Steps[StepDistribute].Inputs[0] != "" {
		t.Errorf("original state mutated: inputs = %v", s.Steps[StepDistribute].Inputs)
	}
}

func TestCheckStep_UsesStoredInputs(t *testing.T) {
	s := solving(t, VariantPaged, Problem{Numerator: 3, Denominator: 4, Power: 2})
	s = SetStepInput(s, StepDistribute, 0, "2")
	s = SetStepInput(s, StepDistribute, 1, "2")

	s, res := CheckStep(s, StepDistribute)
	if !res.Completed {
		t.Errorf("expected stored inputs to pass, got %v", res.Fields)
	}
	if s.Steps[StepDistribute].Answer() != "2, 2" {
		t.Errorf("Answer = %q, want %q", s.Steps[StepDistribute].Answer(), "2, 2")
	}
}

func TestSetStepInput(t *testing.T) {
	s := solving(t, VariantPaged, Problem{Numerator: 3, Denominator: 4, Power: 2})

	s = SetStepInput(s, StepDistribute, 0, "15")
	if got := s.Steps[StepDistribute].Inputs[0]; got != "12" {
		t.Errorf("exponent input = %q, want capped at 12", got)
	}
	s = SetStepInput(s, StepDistribute, 0, "x")
	if got := s.Steps[StepDistribute].Inputs[0]; got != "" {
		t.Errorf("exponent input = %q, want blank for non-numeric", got)
	}

	s, _ = CheckStep1(s, "2", "5")
	s = SetStepInput(s, StepDistribute, 1, "2")
	st := s.Steps[StepDistribute]
	if st.Fields[1] != StatusUnanswered {
		t.Errorf("field 1 = %s, want error cleared", st.Fields[1])
	}
	if st.Status != StatusUnanswered {
		t.Errorf("step status = %s, want unanswered once no field is wrong", st.Status)
	}

	s = SetStepInput(s, StepEvaluate, 0, " 9/16 ")
	if got := s.Steps[StepEvaluate].Inputs[0]; got != " 9/16 " {
		t.Errorf("answer input = %q, want raw text kept", got)
	}
}

func TestSkip(t *testing.T) {
	s := solving(t, VariantPaged, Problem{Numerator: 2, Denominator: 5, Power: 3})

	s = Skip(s, StepDistribute)
	st := s.Steps[StepDistribute]
	if st.Status != StatusSkipped || !st.Completed() {
		t.Errorf("step 1 = %+v, want completed via skip", st)
	}
	if st.Answer() != "3, 3" {
		t.Errorf("back-filled answer = %q, want %q", st.Answer(), "3, 3")
	}

	s = Skip(s, StepEvaluate)
	if got := s.Steps[StepEvaluate].Inputs[0]; got != "8/125" {
		t.Errorf("back-filled answer = %q, want 8/125", got)
	}
	if !s.Solved() {
		t.Error("expected solved after skipping every step")
	}
}

func TestSkip_Idempotent(t *testing.T) {
	for _, v := range Variants {
		t.Run(v.Name, func(t *testing.T) {
			s := solving(t, v, Problem{Numerator: 2, Denominator: 3, Power: 2})
			s = Skip(s, StepDistribute)

			for _, id := range []StepID{StepDistribute, StepEvaluate} {
				once := Skip(s, id)
				twice := Skip(once, id)
				if twice.Steps[id].Status != StatusSkipped || !twice.Steps[id].Completed() {
					t.Errorf("step %d status = %s, want skipped", id, twice.Steps[id].Status)
				}
				if !slices.Equal(once.Steps[id].Inputs, twice.Steps[id].Inputs) {
					t.Errorf("step %d inputs changed: %v then %v", id, once.Steps[id].Inputs, twice.Steps[id].Inputs)
				}
				if !slices.Equal(once.Steps[id].Fields, twice.Steps[id].Fields) {
					t.Errorf("step %d fields changed: %v then %v", id, once.Steps[id].Fields, twice.Steps[id].Fields)
				}
			}
		})
	}
}

func TestSkip_KeepsCorrectStep(t *testing.T) {
	s := solving(t, VariantPaged, Problem{Numerator: 2, Denominator: 5, Power: 3})
	s, _ = CheckStep1(s, "3", "3")
	s = Skip(s, StepDistribute)
	if s.Steps[StepDistribute].Status != StatusCorrect {
		t.Errorf("status = %s, want correct kept", s.Steps[StepDistribute].Status)
	}
}

func TestGenerate_ResetsSteps(t *testing.T) {
	g := NewSeededGenerator(7)
	s := solving(t, VariantPaged, Problem{Numerator: 2, Denominator: 5, Power: 3})
	s, _ = CheckStep1(s, "3", "1")
	s = Skip(s, StepEvaluate)

	s = g.Generate(s)
	if s.Solving {
		t.Error("expected a new problem to leave solving")
	}
	for i, st := range s.Steps {
		if st.Status != StatusUnanswered {
			t.Errorf("step %d status = %s, want unanswered", i, st.Status)
		}
		for j, in := range st.Inputs {
			if in != "" {
				t.Errorf("step %d input %d = %q, want empty", i, j, in)
			}
		}
	}
	if s.Current != 0 {
		t.Errorf("Current = %d, want 0", s.Current)
	}
	if s.Raw.Power != strconv.Itoa(s.Problem.Power) {
		t.Errorf("raw power = %q, want %d", s.Raw.Power, s.Problem.Power)
	}
}

func TestReset(t *testing.T) {
	s := solving(t, VariantPaged, Problem{Numerator: 2, Denominator: 5, Power: 3})
	s = Skip(s, StepDistribute)
	s = Continue(s)

	s = Reset(s)
	if s.Current != 0 || s.Steps[StepDistribute].Completed() {
		t.Errorf("Reset left current=%d step1=%s", s.Current, s.Steps[StepDistribute].Status)
	}
}

func TestSnapshot_UnsolvedAndCompletedStep(t *testing.T) {
	s := New(VariantPaged, Problem{Numerator: 3, Denominator: 4, Power: 2})
	if snap := s.Snapshot(); snap.Solution != nil || snap.Solved {
		t.Errorf("unsolved snapshot = %+v", snap)
	}

	s = solving(t, VariantPaged, Problem{Numerator: 3, Denominator: 4, Power: 2})
	s, _ = CheckStep1(s, "2", "2")
	snap := s.Snapshot()

	if snap.Variant != "paged" || snap.Solution == nil || *snap.Solution != s.Solution {
		t.Fatalf("snapshot header = %+v", snap)
	}
	if len(snap.Steps) != 2 {
		t.Fatalf("len(Steps) = %d, want 2", len(snap.Steps))
	}
	if snap.Steps[0].Name != "distribute-exponent" || snap.Steps[0].Status != StatusCorrect || !snap.Steps[0].Completed {
		t.Errorf("step 1 = %+v", snap.Steps[0])
	}
	if !snap.Steps[1].Visible || snap.Steps[1].Completed {
		t.Errorf("step 2 = %+v", snap.Steps[1])
	}

	// The snapshot does not share slices with the state.
	snap.Steps[0].Inputs[0] = "9"
	if s.Steps[StepDistribute].Inputs[0] != "2" {
		t.Errorf("snapshot aliases state inputs")
	}
}
