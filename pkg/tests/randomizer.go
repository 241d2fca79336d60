package tests

import (
	"math/rand"
	"time"
)

type Randomizer struct {
	Float64 func() float64
	Bool    func() bool
	Intn    func(n int) int
}

func NewRandomizer() Randomizer {
	random := rand.New(rand.NewSource(time.Now().Unix())) //nolint:gosec // for tests

	return Randomizer{
		Float64: random.Float64,
		Bool:    func() bool { return random.Intn(2) == 0 }, //nolint:mnd // skip
		Intn:    random.Intn,
	}
}

// Subset returns a random subset of items, order preserved.
func (r Randomizer) Subset(items []string) []string {
	out := make([]string, 0, len(items))

	for _, item := range items {
		if r.Bool() {
			out = append(out, item)
		}
	}

	return out
}
