package exercise

import (
	"fmt"
	"strings"
)

// InputFormat describes how the evaluate-powers answer is entered.
type InputFormat string

const (
	// FormatSeparate takes the numerator and denominator results in two fields.
	FormatSeparate InputFormat = "separate"

	// FormatSlash takes a single "num/den" string.
	FormatSlash InputFormat = "slash"
)

// Variant configures the exercise: number ranges, answer format and
// whether completed steps are paged through.
type Variant struct {
	// Name is the stable identifier used in config and on the command line.
	Name string

	// Label is the human readable name shown in menus.
	Label string

	// Clamp ranges applied to manual edits.
	Numerator   Range
	Denominator Range
	Power       Range

	// Draw ranges used by the random generator.
	DrawBase  Range
	DrawPower Range

	// Format of the evaluate-powers answer.
	Format InputFormat

	// Paged shows one step at a time with Continue/Back/Forward.
	Paged bool
}

// Range returns the clamp range of the named field.
func (v Variant) Range(f Field) Range {
	switch f {
	case FieldNumerator:
		return v.Numerator
	case FieldDenominator:
		return v.Denominator
	default:
		return v.Power
	}
}

// Accepts reports whether every field of p lies within its clamp range.
func (v Variant) Accepts(p Problem) bool {
	for _, f := range Fields {
		if !v.Range(f).Contains(p.Get(f)) {
			return false
		}
	}
	return true
}

// Clamp limits every field of p to its range.
func (v Variant) Clamp(p Problem) Problem {
	for _, f := range Fields {
		p = p.With(f, v.Range(f).Clamp(p.Get(f)))
	}
	return p
}

var (
	// VariantSingle shows both steps on one page with a single "Solve" action.
	VariantSingle = Variant{
		Name:        "single",
		Label:       "Show answer",
		Numerator:   Range{Min: 1, Max: 10},
		Denominator: Range{Min: 1, Max: 10},
		Power:       Range{Min: 2, Max: 3},
		DrawBase:    Range{Min: 2, Max: 10},
		DrawPower:   Range{Min: 2, Max: 3},
		Format:      FormatSeparate,
	}

	// VariantPaged walks through the steps one page at a time.
	VariantPaged = Variant{
		Name:        "paged",
		Label:       "Step by step",
		Numerator:   Range{Min: 1, Max: 10},
		Denominator: Range{Min: 1, Max: 10},
		Power:       Range{Min: 2, Max: 9},
		DrawBase:    Range{Min: 2, Max: 10},
		DrawPower:   Range{Min: 2, Max: 9},
		Format:      FormatSlash,
		Paged:       true,
	}
)

// Variants lists the built-in variants.
var Variants = []Variant{VariantSingle, VariantPaged}

// VariantByName looks up a built-in variant. Matching is case-insensitive.
func VariantByName(name string) (Variant, error) {
	for _, v := range Variants {
		if strings.EqualFold(v.Name, strings.TrimSpace(name)) {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("unknown variant %q (want single or paged)", name)
}
