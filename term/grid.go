package term

import (
	"math"

	"github.com/phanxgames/ballgame"
)

// Grid maps arena space onto terminal cells. The outermost row and column on
// each side hold the border; the arena fills the cells inside it. Row 0 sits
// at the top, so arena Y is flipped.
type Grid struct {
	Cols, Rows int
	Arena      ballgame.Arena
}

// Inner returns the number of playfield columns and rows inside the border.
func (g Grid) Inner() (int, int) {
	return max(g.Cols-2, 1), max(g.Rows-2, 1)
}

// Cell returns the screen cell for an arena point, clamped to the playfield.
func (g Grid) Cell(p ballgame.Vec2) (int, int) {
	cols, rows := g.Inner()
	b := g.Arena.Bounds()
	fx := (p.X - b.MinX) / b.Width()
	fy := (b.MaxY - p.Y) / b.Height()
	col := clampInt(int(math.Floor(fx*float64(cols))), 0, cols-1)
	row := clampInt(int(math.Floor(fy*float64(rows))), 0, rows-1)
	return col + 1, row + 1
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
