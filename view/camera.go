package view

import "github.com/phanxgames/ballgame"

// Camera maps arena space (origin at the center, Y up) to screen space
// (origin at the top-left, Y down) for a screen of the given size.
type Camera struct {
	ScreenW, ScreenH float64
}

// WorldToScreen converts an arena point to screen pixels.
func (c Camera) WorldToScreen(p ballgame.Vec2) (float64, float64) {
	return p.X + c.ScreenW/2, c.ScreenH/2 - p.Y
}

// ScreenToWorld converts screen pixels to an arena point.
func (c Camera) ScreenToWorld(sx, sy float64) ballgame.Vec2 {
	return ballgame.Vec2{X: sx - c.ScreenW/2, Y: c.ScreenH/2 - sy}
}

// TopLeft returns the screen position at which to draw a square image of the
// given radius so that it is centered on p.
func (c Camera) TopLeft(p ballgame.Vec2, radius float64) (float64, float64) {
	x, y := c.WorldToScreen(p)
	return x - radius, y - radius
}
