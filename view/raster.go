package view

import (
	"image"
	"image/color"
	"math/rand/v2"
)

// CirclePoints returns the points of a filled circle: every (x, y) with
// x²+y² <= r², mirrored into the four quadrants around center. Points on the
// axes appear more than once; callers that only plot pixels need not care.
func CirclePoints(center image.Point, radius int) []image.Point {
	var pts []image.Point
	for x := 0; x <= radius; x++ {
		for y := 0; y <= radius; y++ {
			if x*x+y*y > radius*radius {
				continue
			}
			pts = append(pts,
				image.Pt(center.X+x, center.Y+y),
				image.Pt(center.X+x, center.Y-y),
				image.Pt(center.X-x, center.Y+y),
				image.Pt(center.X-x, center.Y-y),
			)
		}
	}
	return pts
}

// ColoredRect is a filled rectangle with its color.
type ColoredRect struct {
	Rect  image.Rectangle
	Color color.RGBA
}

// RectSpec bounds the random rectangles: the top-left corner lies in
// [0, MaxX] × [0, MaxY] and each side in [MinSize, MaxSize].
type RectSpec struct {
	MaxX, MaxY       int
	MinSize, MaxSize int
}

// DefaultRectSpec matches the rectangles demo: corners up to 700, sides
// between 50 and 200.
var DefaultRectSpec = RectSpec{MaxX: 700, MaxY: 700, MinSize: 50, MaxSize: 200}

// RandomRects draws n opaque rectangles of random color and geometry.
func RandomRects(rng *rand.Rand, n int, spec RectSpec) []ColoredRect {
	out := make([]ColoredRect, n)
	for i := range out {
		c := color.RGBA{
			R: uint8(rng.IntN(256)),
			G: uint8(rng.IntN(256)),
			B: uint8(rng.IntN(256)),
			A: 0xff,
		}
		x := rng.IntN(spec.MaxX + 1)
		y := rng.IntN(spec.MaxY + 1)
		w := spec.MinSize + rng.IntN(spec.MaxSize-spec.MinSize+1)
		h := spec.MinSize + rng.IntN(spec.MaxSize-spec.MinSize+1)
		out[i] = ColoredRect{Rect: image.Rect(x, y, x+w, y+h), Color: c}
	}
	return out
}

// FillRect paints r into fb, clipped to the buffer.
func (fb *Framebuffer) FillRect(r image.Rectangle, c color.RGBA) {
	r = r.Intersect(image.Rect(0, 0, fb.w, fb.h))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			fb.Set(x, y, c)
		}
	}
}

// Plot paints every point in pts that falls inside fb.
func (fb *Framebuffer) Plot(pts []image.Point, c color.RGBA) {
	for _, p := range pts {
		fb.Set(p.X, p.Y, c)
	}
}
