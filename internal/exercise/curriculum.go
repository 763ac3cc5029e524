package exercise

import "strconv"

// StepValidator grades one step of the curriculum.
// Implementations are stateless.
type StepValidator interface {
	// Name returns a short identifier, e.g. "distribute-exponent".
	Name() string

	// Title is the instruction shown above the step.
	Title() string

	// Inputs is the number of input fields the step takes.
	Inputs() int

	// Normalize adjusts a raw field value as it is typed.
	Normalize(field int, raw string) string

	// Validate grades each input field against the problem.
	Validate(p Problem, inputs []string) []Status

	// Expected renders the ground-truth value of each input field.
	Expected(p Problem) []string
}

// Curriculum is the ordered list of steps.
type Curriculum []StepValidator

// NewCurriculum builds the two-step curriculum for the given answer format.
func NewCurriculum(format InputFormat) Curriculum {
	return Curriculum{
		&DistributeValidator{},
		&EvaluateValidator{Format: format},
	}
}

// maxExponentInput caps what can be typed into an exponent field.
const maxExponentInput = 12

// DistributeValidator checks that the power was carried unchanged onto the
// numerator and the denominator.
type DistributeValidator struct{}

func (v *DistributeValidator) Name() string { return "distribute-exponent" }

func (v *DistributeValidator) Title() string {
	return "Apply the power to both numerator and denominator"
}

func (v *DistributeValidator) Inputs() int { return 2 }

func (v *DistributeValidator) Normalize(_ int, raw string) string {
	n, ok := ParseInt(raw)
	if !ok {
		return ""
	}
	if n > maxExponentInput {
		n = maxExponentInput
	}
	return strconv.FormatInt(n, 10)
}

func (v *DistributeValidator) Validate(p Problem, inputs []string) []Status {
	fields := make([]Status, v.Inputs())
	for i := range fields {
		fields[i] = StatusIncorrect
		if i < len(inputs) {
			if n, ok := ParseInt(inputs[i]); ok && n == int64(p.Power) {
				fields[i] = StatusCorrect
			}
		}
	}
	return fields
}

func (v *DistributeValidator) Expected(p Problem) []string {
	power := strconv.Itoa(p.Power)
	return []string{power, power}
}

// EvaluateValidator checks the evaluated powers, either as two fields or as
// one "num/den" string.
type EvaluateValidator struct {
	Format InputFormat
}

func (v *EvaluateValidator) Name() string { return "evaluate-powers" }

func (v *EvaluateValidator) Title() string { return "Calculate the powers" }

func (v *EvaluateValidator) Inputs() int {
	if v.Format == FormatSlash {
		return 1
	}
	return 2
}

func (v *EvaluateValidator) Normalize(_ int, raw string) string { return raw }

func (v *EvaluateValidator) Validate(p Problem, inputs []string) []Status {
	wantNum, wantDen := p.Result()

	if v.Format == FormatSlash {
		if len(inputs) > 0 {
			if num, den, ok := ParseFraction(inputs[0]); ok && num == wantNum && den == wantDen {
				return []Status{StatusCorrect}
			}
		}
		return []Status{StatusIncorrect}
	}

	want := []int64{wantNum, wantDen}
	fields := make([]Status, len(want))
	for i, w := range want {
		fields[i] = StatusIncorrect
		if i < len(inputs) {
			if n, ok := ParseInt(inputs[i]); ok && n == w {
				fields[i] = StatusCorrect
			}
		}
	}
	return fields
}

func (v *EvaluateValidator) Expected(p Problem) []string {
	num, den := p.Result()
	if v.Format == FormatSlash {
		return []string{FormatFraction(num, den)}
	}
	return []string{strconv.FormatInt(num, 10), strconv.FormatInt(den, 10)}
}
