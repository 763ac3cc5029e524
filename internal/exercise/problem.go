package exercise

import "fmt"

// Field names one editable number of a Problem.
type Field string

const (
	FieldNumerator   Field = "numerator"
	FieldDenominator Field = "denominator"
	FieldPower       Field = "power"
)

// Fields lists the editable fields in display order.
var Fields = []Field{FieldNumerator, FieldDenominator, FieldPower}

// ParseField maps a field name to a Field.
func ParseField(name string) (Field, error) {
	for _, f := range Fields {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown field %q", name)
}

// Range is an inclusive integer interval.
type Range struct {
	Min int
	Max int
}

// Clamp returns n limited to [Min, Max].
func (r Range) Clamp(n int) int {
	if n < r.Min {
		return r.Min
	}
	if n > r.Max {
		return r.Max
	}
	return n
}

// Contains reports whether n lies within the range.
func (r Range) Contains(n int) bool {
	return n >= r.Min && n <= r.Max
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d]", r.Min, r.Max)
}

// Problem is one exercise instance: (Numerator/Denominator)^Power.
type Problem struct {
	Numerator   int `json:"numerator"`
	Denominator int `json:"denominator"`
	Power       int `json:"power"`
}

// Get returns the value of the named field.
func (p Problem) Get(f Field) int {
	switch f {
	case FieldNumerator:
		return p.Numerator
	case FieldDenominator:
		return p.Denominator
	case FieldPower:
		return p.Power
	}
	return 0
}

// With returns a copy of p with the named field replaced.
func (p Problem) With(f Field, v int) Problem {
	switch f {
	case FieldNumerator:
		p.Numerator = v
	case FieldDenominator:
		p.Denominator = v
	case FieldPower:
		p.Power = v
	}
	return p
}

// Result returns numerator^power and denominator^power.
func (p Problem) Result() (num, den int64) {
	return IntPow(p.Numerator, p.Power), IntPow(p.Denominator, p.Power)
}

func (p Problem) String() string {
	return fmt.Sprintf("(%d/%d)^%d", p.Numerator, p.Denominator, p.Power)
}

// IntPow computes base^exp by repeated multiplication. Negative exponents
// yield 1.
func IntPow(base, exp int) int64 {
	result := int64(1)
	for i := 0; i < exp; i++ {
		result *= int64(base)
	}
	return result
}
