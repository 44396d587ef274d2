package ballgame

// Arena is the fixed play area. It is centered at the origin, so its bounds
// are [-Width/2, Width/2] × [-Height/2, Height/2].
type Arena struct {
	Width, Height float64
}

// Bounds returns the arena rectangle.
func (a Arena) Bounds() Rect {
	hw, hh := a.Width/2, a.Height/2
	return Rect{-hw, -hh, hw, hh}
}

// BoundsFor returns the range a body center may occupy while the whole body
// stays inside the arena.
func (a Arena) BoundsFor(radius float64) Rect {
	return a.Bounds().Inset(radius)
}
