package view

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/ballgame"
)

// PollKeys reads the arrow keys and WASD into a KeyState.
func PollKeys() ballgame.KeyState {
	return ballgame.KeyState{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
	}
}
