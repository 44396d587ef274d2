package ballgame

import (
	"fmt"
	"time"
)

// debugStats holds per-tick counters. Only populated when debug mode is on.
type debugStats struct {
	tick     uint64
	bounces  int
	clamps   int
	stepTime time.Duration
}

// debugLog prints one line of tick stats to the debug writer.
func (s *Simulation) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	_, alive := s.Player()
	_, _ = fmt.Fprintf(s.debugOut,
		"[ballgame] tick %d | bounces: %d | clamps: %d | player: %v | step: %v\n",
		stats.tick, stats.bounces, stats.clamps, alive, stats.stepTime)
}

// debugCheckEdge reports an enemy found past the upper edges before
// reflection. Clamping leaves a body one velocity unit inside the wall, which
// is less than one tick of travel at normal speeds, so these lines show up
// whenever a body skims along an edge.
func (s *Simulation) debugCheckEdge(e *Body, b Rect) {
	if e.Position.X > b.MaxX {
		_, _ = fmt.Fprintf(s.debugOut, "[ballgame] edge: body %d x_max %v x %v direction %v\n",
			e.ID, b.MaxX, e.Position.X, e.Velocity.X)
	}
	if e.Position.Y > b.MaxY {
		_, _ = fmt.Fprintf(s.debugOut, "[ballgame] edge: body %d y_max %v y %v direction %v\n",
			e.ID, b.MaxY, e.Position.Y, e.Velocity.Y)
	}
}
