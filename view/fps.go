package view

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// hud is the overlay in the top-left corner: FPS, TPS and the game status.
// The text is refreshed every ~0.5 seconds.
type hud struct {
	img        *ebiten.Image
	lastUpdate float64
}

func newHUD() *hud {
	// 200x48 fits three debug-font lines
	return &hud{img: ebiten.NewImage(200, 48), lastUpdate: 1}
}

func (h *hud) update(dt float64, status string) {
	h.lastUpdate += dt
	if h.lastUpdate < 0.5 {
		return
	}
	h.lastUpdate = 0

	h.img.Clear()
	// Semi-transparent background for readability
	h.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(h.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\n%s",
		ebiten.ActualFPS(), ebiten.ActualTPS(), status))
}

func (h *hud) draw(screen *ebiten.Image) {
	screen.DrawImage(h.img, nil)
}
