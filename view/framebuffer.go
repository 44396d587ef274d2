package view

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Framebuffer is a CPU-side RGBA pixel buffer presented to the screen with
// WritePixels. It follows the window size: call Resize from Layout.
type Framebuffer struct {
	w, h int
	pix  []byte
}

// Size returns the buffer dimensions in pixels.
func (fb *Framebuffer) Size() (int, int) { return fb.w, fb.h }

// Pix returns the raw RGBA bytes, row-major, 4 bytes per pixel.
func (fb *Framebuffer) Pix() []byte { return fb.pix }

// Resize reallocates the buffer when the size changes and reports whether it
// did. A zero or negative dimension leaves the buffer empty; presenting an
// empty buffer is skipped.
func (fb *Framebuffer) Resize(w, h int) bool {
	if w == fb.w && h == fb.h {
		return false
	}
	if w <= 0 || h <= 0 {
		fb.w, fb.h, fb.pix = 0, 0, nil
		return true
	}
	fb.w, fb.h = w, h
	fb.pix = make([]byte, 4*w*h)
	return true
}

// Fill sets every pixel to c.
func (fb *Framebuffer) Fill(c color.RGBA) {
	for i := 0; i+3 < len(fb.pix); i += 4 {
		fb.pix[i] = c.R
		fb.pix[i+1] = c.G
		fb.pix[i+2] = c.B
		fb.pix[i+3] = c.A
	}
}

// Set writes one pixel. Out-of-range coordinates are ignored.
func (fb *Framebuffer) Set(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= fb.w || y >= fb.h {
		return
	}
	i := 4 * (y*fb.w + x)
	fb.pix[i], fb.pix[i+1], fb.pix[i+2], fb.pix[i+3] = c.R, c.G, c.B, c.A
}

// At returns the pixel at (x, y), or the zero color when out of range.
func (fb *Framebuffer) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= fb.w || y >= fb.h {
		return color.RGBA{}
	}
	i := 4 * (y*fb.w + x)
	return color.RGBA{fb.pix[i], fb.pix[i+1], fb.pix[i+2], fb.pix[i+3]}
}

// Present copies the buffer to screen. It reports false, and draws nothing,
// when the buffer is empty or does not match the screen size.
func (fb *Framebuffer) Present(screen *ebiten.Image) bool {
	b := screen.Bounds()
	if len(fb.pix) == 0 || b.Dx() != fb.w || b.Dy() != fb.h {
		return false
	}
	screen.WritePixels(fb.pix)
	return true
}

// FuncGame adapts plain closures to ebiten.Game, for programs that prefer
// callbacks over a game type. Nil callbacks are skipped; a nil LayoutFunc
// keeps the outside size.
type FuncGame struct {
	UpdateFunc func() error
	DrawFunc   func(screen *ebiten.Image)
	LayoutFunc func(outsideWidth, outsideHeight int) (int, int)
}

// Update implements ebiten.Game.
func (g *FuncGame) Update() error {
	if g.UpdateFunc == nil {
		return nil
	}
	return g.UpdateFunc()
}

// Draw implements ebiten.Game.
func (g *FuncGame) Draw(screen *ebiten.Image) {
	if g.DrawFunc != nil {
		g.DrawFunc(screen)
	}
}

// Layout implements ebiten.Game.
func (g *FuncGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.LayoutFunc == nil {
		return outsideWidth, outsideHeight
	}
	return g.LayoutFunc(outsideWidth, outsideHeight)
}
