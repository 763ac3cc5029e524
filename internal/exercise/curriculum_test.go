package exercise

import (
	"reflect"
	"testing"
)

func TestIntPow(t *testing.T) {
	tests := []struct {
		base, exp int
		want      int64
	}{
		{3, 2, 9},
		{4, 2, 16},
		{2, 3, 8},
		{5, 3, 125},
		{10, 9, 1000000000},
		{1, 9, 1},
		{7, 0, 1},
	}
	for _, tc := range tests {
		if got := IntPow(tc.base, tc.exp); got != tc.want {
			t.Errorf("IntPow(%d, %d) = %d, want %d", tc.base, tc.exp, got, tc.want)
		}
	}
}

func TestParseFraction(t *testing.T) {
	tests := []struct {
		input    string
		num, den int64
		ok       bool
	}{
		{"8/125", 8, 125, true},
		{"  9 /16", 9, 16, true},
		{"-1/4", -1, 4, true},
		{"9", 0, 0, false},
		{"9/", 0, 0, false},
		{"a/b", 0, 0, false},
		{"1.5/2", 0, 0, false},
		{"", 0, 0, false},
	}
	for _, tc := range tests {
		num, den, ok := ParseFraction(tc.input)
		if ok != tc.ok || num != tc.num || den != tc.den {
			t.Errorf("ParseFraction(%q) = %d, %d, %v; want %d, %d, %v",
				tc.input, num, den, ok, tc.num, tc.den, tc.ok)
		}
	}
}

func TestCurriculum_Expected(t *testing.T) {
	p := Problem{Numerator: 2, Denominator: 5, Power: 3}

	slash := NewCurriculum(FormatSlash)
	if got := slash[StepDistribute].Expected(p); !reflect.DeepEqual(got, []string{"3", "3"}) {
		t.Errorf("distribute expected = %v", got)
	}
	if got := slash[StepEvaluate].Expected(p); !reflect.DeepEqual(got, []string{"8/125"}) {
		t.Errorf("slash expected = %v", got)
	}

	separate := NewCurriculum(FormatSeparate)
	if got := separate[StepEvaluate].Expected(p); !reflect.DeepEqual(got, []string{"8", "125"}) {
		t.Errorf("separate expected = %v", got)
	}
	if n := separate[StepEvaluate].Inputs(); n != 2 {
		t.Errorf("separate inputs = %d, want 2", n)
	}
}

func TestCurriculum_ExpectedPassesValidation(t *testing.T) {
	p := Problem{Numerator: 7, Denominator: 3, Power: 4}
	for _, format := range []InputFormat{FormatSeparate, FormatSlash} {
		for _, v := range NewCurriculum(format) {
			fields := v.Validate(p, v.Expected(p))
			if !allCorrect(fields) {
				t.Errorf("%s/%s: expected answer graded %v", format, v.Name(), fields)
			}
		}
	}
}

func TestVariantByName(t *testing.T) {
	v, err := VariantByName("Paged")
	if err != nil || v.Name != "paged" {
		t.Errorf("VariantByName(Paged) = %q, %v", v.Name, err)
	}
	if _, err := VariantByName("grid"); err == nil {
		t.Error("expected error for unknown variant")
	}
}

func TestParseField(t *testing.T) {
	for _, f := range Fields {
		got, err := ParseField(string(f))
		if err != nil || got != f {
			t.Errorf("ParseField(%q) = %q, %v", f, got, err)
		}
	}
	if _, err := ParseField("exponent"); err == nil {
		t.Error("expected error for unknown field")
	}
}
