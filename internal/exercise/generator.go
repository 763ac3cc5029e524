package exercise

import (
	"math/rand/v2"
	"time"
)

// Generator draws random problems.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator seeded from the clock.
func NewGenerator() *Generator {
	seed := uint64(time.Now().UnixNano())
	return NewSeededGenerator(seed)
}

// NewSeededGenerator creates a Generator with a fixed seed, for reproducible
// sequences.
func NewSeededGenerator(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed>>1|1))}
}

// Draw returns a problem with numerator and denominator drawn uniformly from
// the variant's base range and power from its power range.
func (g *Generator) Draw(v Variant) Problem {
	return Problem{
		Numerator:   g.intIn(v.DrawBase),
		Denominator: g.intIn(v.DrawBase),
		Power:       g.intIn(v.DrawPower),
	}
}

// Generate replaces the active problem of s with a freshly drawn one.
func (g *Generator) Generate(s State) State {
	return Replace(s, g.Draw(s.Variant))
}

func (g *Generator) intIn(r Range) int {
	return g.rng.IntN(r.Max-r.Min+1) + r.Min
}
