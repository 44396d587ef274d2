package ballgame

import (
	"bytes"
	"strings"
	"testing"
)

// ---- Debug mode tests ------------------------------------------------------

func TestDebugMode_OffWritesNothing(t *testing.T) {
	s := newEmptySim(t, nil)
	s.AddEnemy(Body{Position: Vec2{367.9, 0}, Velocity: Vec2{1, 0}})
	var buf bytes.Buffer
	s.debugOut = &buf

	s.Step(1.0/60, KeyState{})

	if buf.Len() != 0 {
		t.Errorf("debug output with debug off: %q", buf.String())
	}
}

func TestDebugCheckEdge_YAxis(t *testing.T) {
	s := newEmptySim(t, nil)
	var buf bytes.Buffer
	s.debugOut = &buf

	e := &Body{ID: 3, Position: Vec2{0, 270}, Velocity: Vec2{0, 1}}
	s.debugCheckEdge(e, s.arena.BoundsFor(32))

	out := buf.String()
	if !strings.Contains(out, "[ballgame] edge: body 3 y_max 268 y 270 direction 1") {
		t.Errorf("unexpected edge output %q", out)
	}
	if strings.Contains(out, "x_max") {
		t.Errorf("x edge reported for a body inside on x: %q", out)
	}
}

func TestDebugCheckEdge_LowerEdgesIgnored(t *testing.T) {
	s := newEmptySim(t, nil)
	var buf bytes.Buffer
	s.debugOut = &buf

	e := &Body{ID: 1, Position: Vec2{-400, -300}, Velocity: Vec2{-1, -1}}
	s.debugCheckEdge(e, s.arena.BoundsFor(32))

	if buf.Len() != 0 {
		t.Errorf("lower edges should not be reported: %q", buf.String())
	}
}

func TestDebugLog_ReportsPlayerState(t *testing.T) {
	s := newEmptySim(t, nil)
	var buf bytes.Buffer
	s.debugOut = &buf
	s.SetDebugMode(true)

	s.debugLog(debugStats{tick: 5})
	s.RemovePlayer()
	s.debugLog(debugStats{tick: 6})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "tick 5") || !strings.Contains(lines[0], "player: true") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "tick 6") || !strings.Contains(lines[1], "player: false") {
		t.Errorf("line 1 = %q", lines[1])
	}
}
