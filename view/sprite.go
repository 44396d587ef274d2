package view

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// Palette used by the game and the demos.
var (
	ColorBackground = colornames.Black
	ColorPlayer     = colornames.Royalblue
	ColorEnemy      = colornames.Crimson
	ColorFlash      = colornames.White
	ColorFramebuf   = color.RGBA{R: 0x00, G: 0x80, B: 0x00, A: 0xff} // dark green
)

// newBallImage draws a filled circle of the given radius into a square
// image of side 2*radius. It replaces the ball sprite assets.
func newBallImage(radius float64, clr color.Color) *ebiten.Image {
	side := int(2 * radius)
	if side < 1 {
		side = 1
	}
	img := ebiten.NewImage(side, side)
	vector.DrawFilledCircle(img, float32(radius), float32(radius), float32(radius), clr, true)
	return img
}

// mix blends a toward b by t in [0, 1].
func mix(a, b color.RGBA, t float64) color.RGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{lerp(a.R, b.R), lerp(a.G, b.G), lerp(a.B, b.B), lerp(a.A, b.A)}
}
