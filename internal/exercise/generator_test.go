package exercise

import "testing"

func TestGenerator_DrawWithinRanges(t *testing.T) {
	for _, v := range Variants {
		g := NewSeededGenerator(42)
		powers := make(map[int]bool)
		for i := 0; i < 2000; i++ {
			p := g.Draw(v)
			if !v.DrawBase.Contains(p.Numerator) || !v.DrawBase.Contains(p.Denominator) {
				t.Fatalf("%s: base out of range in %v", v.Name, p)
			}
			if !v.DrawPower.Contains(p.Power) {
				t.Fatalf("%s: power out of range in %v", v.Name, p)
			}
			if !v.Accepts(p) {
				t.Fatalf("%s: drawn problem %v not solvable", v.Name, p)
			}
			powers[p.Power] = true
		}
		if want := v.DrawPower.Max - v.DrawPower.Min + 1; len(powers) != want {
			t.Errorf("%s: saw %d distinct powers, want %d", v.Name, len(powers), want)
		}
	}
}

func TestGenerator_SeededIsReproducible(t *testing.T) {
	a := NewSeededGenerator(99)
	b := NewSeededGenerator(99)
	for i := 0; i < 20; i++ {
		if pa, pb := a.Draw(VariantPaged), b.Draw(VariantPaged); pa != pb {
			t.Fatalf("draw %d: %v != %v", i, pa, pb)
		}
	}
}

func TestGenerator_GenerateIsSolvable(t *testing.T) {
	g := NewGenerator()
	s := g.Generate(New(VariantSingle, Problem{}))
	if _, err := Solve(s); err != nil {
		t.Errorf("Solve(generated %v): %v", s.Problem, err)
	}
}
