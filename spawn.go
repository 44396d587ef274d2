package ballgame

import "math/rand/v2"

// newSource returns the spawn random source. A zero seed draws one from the
// process-wide generator so separate runs differ.
func newSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// spawnPosition returns a point that keeps a body of the given size fully
// inside the arena.
func spawnPosition(rng *rand.Rand, a Arena, size float64) Vec2 {
	half := size / 2
	return Vec2{
		X: rng.Float64()*(a.Width-size) - a.Width/2 + half,
		Y: rng.Float64()*(a.Height-size) - a.Height/2 + half,
	}
}

// spawnDirection returns a unit vector built from two uniform draws in [0, 1).
// Both components are non-negative, so every enemy starts heading up and to
// the right.
func spawnDirection(rng *rand.Rand) Vec2 {
	for {
		d := Vec2{rng.Float64(), rng.Float64()}
		if d.Len() > 0 {
			return d.Normalize()
		}
	}
}
