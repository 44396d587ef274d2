package ballgame

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

// newEmptySim returns an 800×600 simulation with no spawned enemies.
func newEmptySim(t *testing.T, mutate func(*Config)) *Simulation {
	t.Helper()
	cfg := DefaultConfig()
	cfg.EnemyCount = 0
	cfg.Seed = 1
	if mutate != nil {
		mutate(&cfg)
	}
	s, err := NewSimulation(cfg)
	if err != nil {
		t.Fatalf("NewSimulation: %v", err)
	}
	return s
}

func TestNewSimulationSpawnsInsideArena(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EnemyCount = 200
	cfg.Seed = 42
	s, err := NewSimulation(cfg)
	if err != nil {
		t.Fatal(err)
	}

	p, ok := s.Player()
	if !ok {
		t.Fatal("player should be alive after spawn")
	}
	if p.Position != (Vec2{}) {
		t.Errorf("player spawned at %v, want origin", p.Position)
	}
	if p.Radius != 32 {
		t.Errorf("player radius = %v, want 32", p.Radius)
	}

	enemies := s.Enemies()
	if len(enemies) != 200 {
		t.Fatalf("got %d enemies, want 200", len(enemies))
	}
	b := s.Arena().BoundsFor(32)
	for i, e := range enemies {
		if e.ID != BodyID(i+1) {
			t.Errorf("enemy %d has ID %d", i, e.ID)
		}
		if !b.Contains(e.Position) {
			t.Errorf("enemy %d spawned outside bounds at %v", e.ID, e.Position)
		}
		if math.Abs(e.Velocity.Len()-1) > 1e-9 {
			t.Errorf("enemy %d direction %v is not unit length", e.ID, e.Velocity)
		}
		if e.Velocity.X < 0 || e.Velocity.Y < 0 {
			t.Errorf("enemy %d direction %v has a negative component", e.ID, e.Velocity)
		}
	}
}

func TestNewSimulationSeedIsDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 7
	a, err := NewSimulation(cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewSimulation(cfg)
	if err != nil {
		t.Fatal(err)
	}
	ea, eb := a.Enemies(), b.Enemies()
	for i := range ea {
		if ea[i] != eb[i] {
			t.Errorf("enemy %d differs: %+v vs %+v", i, ea[i], eb[i])
		}
	}
	if a.RunID() == b.RunID() {
		t.Error("each run should get its own RunID")
	}
}

func TestNewSimulationRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 0
	if _, err := NewSimulation(cfg); err == nil {
		t.Error("expected error for zero width")
	}
}

func TestAdvanceMovesBySpeedAndDt(t *testing.T) {
	s := newEmptySim(t, nil)
	id := s.AddEnemy(Body{Velocity: Vec2{1, 0}})
	s.SetPlayerDirection(Vec2{0, 1})

	s.Advance(0.5)

	e, _ := s.Enemy(id)
	if e.Position.X != EnemySpeed*0.5 || e.Position.Y != 0 {
		t.Errorf("enemy at %v, want (%v, 0)", e.Position, EnemySpeed*0.5)
	}
	p, _ := s.Player()
	if p.Position.Y != PlayerSpeed*0.5 || p.Position.X != 0 {
		t.Errorf("player at %v, want (0, %v)", p.Position, PlayerSpeed*0.5)
	}
}

func TestAdvanceZeroDtIsNoop(t *testing.T) {
	s := newEmptySim(t, nil)
	id := s.AddEnemy(Body{Position: Vec2{10, 20}, Velocity: Vec2{0.6, 0.8}})
	s.Advance(0)
	if e, _ := s.Enemy(id); e.Position != (Vec2{10, 20}) {
		t.Errorf("position changed to %v", e.Position)
	}
}

// The right-wall scenario: an enemy one unit inside the arena edge but
// already past its radius-inset bound.
func TestBounceOffRightWall(t *testing.T) {
	s := newEmptySim(t, func(c *Config) { c.EnemySpeed = 1 })
	id := s.AddEnemy(Body{Position: Vec2{399, 0}, Velocity: Vec2{250, 0}})

	s.Advance(1.0)
	e, _ := s.Enemy(id)
	if e.Position.X != 649 {
		t.Fatalf("after Advance x = %v, want 649", e.Position.X)
	}

	if !s.ReflectAndDetectContact() {
		t.Fatal("expected a wall contact")
	}
	e, _ = s.Enemy(id)
	if e.Velocity.X != -250 || e.Velocity.Y != 0 {
		t.Fatalf("velocity = %v, want (-250, 0)", e.Velocity)
	}

	s.ClampToBounds()
	e, _ = s.Enemy(id)
	if e.Position.X != 118 {
		t.Errorf("after clamp x = %v, want 118", e.Position.X)
	}
	if s.ReflectAndDetectContact() {
		t.Error("second reflect without Advance should report no contact")
	}
}

func TestReflectFlipsOnlyViolatedAxes(t *testing.T) {
	tests := []struct {
		name string
		pos  Vec2
		want Vec2
		hit  bool
	}{
		{"inside", Vec2{0, 0}, Vec2{0.6, 0.8}, false},
		{"past right", Vec2{369, 0}, Vec2{-0.6, 0.8}, true},
		{"past left", Vec2{-369, 0}, Vec2{-0.6, 0.8}, true},
		{"past top", Vec2{0, 269}, Vec2{0.6, -0.8}, true},
		{"past bottom", Vec2{0, -269}, Vec2{0.6, -0.8}, true},
		{"corner", Vec2{369, 269}, Vec2{-0.6, -0.8}, true},
		{"on right bound", Vec2{368, 0}, Vec2{0.6, 0.8}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newEmptySim(t, nil)
			id := s.AddEnemy(Body{Position: tt.pos, Velocity: Vec2{0.6, 0.8}})
			got := s.ReflectAndDetectContact()
			if got != tt.hit {
				t.Errorf("contact = %v, want %v", got, tt.hit)
			}
			e, _ := s.Enemy(id)
			if e.Velocity != tt.want {
				t.Errorf("velocity = %v, want %v", e.Velocity, tt.want)
			}
		})
	}
}

func TestClampOffsetsByVelocityComponent(t *testing.T) {
	tests := []struct {
		name string
		pos  Vec2
		vel  Vec2
		want Vec2
	}{
		{"left", Vec2{-500, 0}, Vec2{0.6, 0.8}, Vec2{-368 + 0.6, 0}},
		{"right", Vec2{500, 0}, Vec2{-0.6, 0.8}, Vec2{368 - 0.6, 0}},
		{"bottom", Vec2{0, -400}, Vec2{0.6, 0.8}, Vec2{0, -268 + 0.8}},
		{"top", Vec2{0, 400}, Vec2{0.6, -0.8}, Vec2{0, 268 - 0.8}},
		{"inside untouched", Vec2{10, 10}, Vec2{0.6, 0.8}, Vec2{10, 10}},
		{"zero velocity lands on bound", Vec2{500, 0}, Vec2{0, 1}, Vec2{368, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newEmptySim(t, nil)
			id := s.AddEnemy(Body{Position: tt.pos, Velocity: tt.vel})
			s.ClampToBounds()
			e, _ := s.Enemy(id)
			if math.Abs(e.Position.X-tt.want.X) > 1e-9 || math.Abs(e.Position.Y-tt.want.Y) > 1e-9 {
				t.Errorf("position = %v, want %v", e.Position, tt.want)
			}
		})
	}
}

func TestTwoBouncesOneContact(t *testing.T) {
	s := newEmptySim(t, nil)
	s.AddEnemy(Body{Position: Vec2{367.9, 0}, Velocity: Vec2{1, 0}})
	s.AddEnemy(Body{Position: Vec2{-367.9, 0}, Velocity: Vec2{-1, 0}})
	s.SetPlayer(Vec2{0, 200})

	res := s.Step(1.0/60, KeyState{})
	if !res.WallContact {
		t.Fatal("expected a wall contact")
	}
	if res.Bounces != 2 {
		t.Errorf("bounces = %d, want 2", res.Bounces)
	}

	res = s.Step(1.0/60, KeyState{})
	if res.WallContact {
		t.Error("contact must not carry over into the next tick")
	}
}

func TestStepKeepsEnemiesInBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EnemyCount = 50
	cfg.Seed = 99
	s, err := NewSimulation(cfg)
	if err != nil {
		t.Fatal(err)
	}
	s.RemovePlayer()

	b := s.Arena().BoundsFor(cfg.EnemySize / 2)
	for tick := 0; tick < 2000; tick++ {
		s.Step(1.0/60, KeyState{})
		for _, e := range s.Enemies() {
			if !b.Contains(e.Position) {
				t.Fatalf("tick %d: enemy %d at %v outside %+v", tick, e.ID, e.Position, b)
			}
			if math.Abs(e.Velocity.Len()-1) > 1e-9 {
				t.Fatalf("tick %d: enemy %d speed changed to %v", tick, e.ID, e.Velocity.Len())
			}
		}
	}
}

func TestDetectPlayerContact(t *testing.T) {
	tests := []struct {
		name  string
		enemy Vec2
		hit   bool
	}{
		{"overlapping", Vec2{50, 0}, true},
		{"apart", Vec2{70, 0}, false},
		{"touching exactly", Vec2{64, 0}, false},
		{"diagonal overlap", Vec2{40, 40}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newEmptySim(t, nil)
			id := s.AddEnemy(Body{Position: tt.enemy})
			got, ok := s.DetectPlayerContact()
			if ok != tt.hit {
				t.Fatalf("contact = %v, want %v", ok, tt.hit)
			}
			if ok && got != id {
				t.Errorf("reported enemy %d, want %d", got, id)
			}
		})
	}
}

func TestDetectPlayerContactPolicies(t *testing.T) {
	setup := func(policy ContactPolicy) *Simulation {
		s := newEmptySim(t, func(c *Config) { c.Contact = policy })
		s.AddEnemy(Body{Position: Vec2{60, 0}})
		s.AddEnemy(Body{Position: Vec2{0, 10}})
		return s
	}

	if id, ok := setup(ContactFirst).DetectPlayerContact(); !ok || id != 1 {
		t.Errorf("first-match reported (%d, %v), want (1, true)", id, ok)
	}
	if id, ok := setup(ContactNearest).DetectPlayerContact(); !ok || id != 2 {
		t.Errorf("nearest-match reported (%d, %v), want (2, true)", id, ok)
	}
}

func TestStepRemovesPlayerOnContact(t *testing.T) {
	s := newEmptySim(t, nil)
	id := s.AddEnemy(Body{Position: Vec2{40, 0}})

	res := s.Step(1.0/60, KeyState{})
	if !res.PlayerHit || res.HitBy != id {
		t.Fatalf("result = %+v, want hit by %d", res, id)
	}
	if _, ok := s.Player(); ok {
		t.Fatal("player should be removed")
	}

	res = s.Step(1.0/60, KeyState{Left: true})
	if res.PlayerHit {
		t.Error("a removed player cannot be hit again")
	}
	if _, ok := s.DetectPlayerContact(); ok {
		t.Error("no contact after removal")
	}
}

func TestStepConfinesPlayer(t *testing.T) {
	s := newEmptySim(t, nil)
	for i := 0; i < 120; i++ {
		s.Step(1.0/60, KeyState{Right: true, Up: true})
	}
	p, _ := s.Player()
	if p.Position != (Vec2{368, 268}) {
		t.Errorf("player at %v, want (368, 268)", p.Position)
	}
	if s.Tick() != 120 {
		t.Errorf("tick = %d, want 120", s.Tick())
	}
}

func TestStages(t *testing.T) {
	t.Run("player only", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Stage = StagePlayer
		s, err := NewSimulation(cfg)
		if err != nil {
			t.Fatal(err)
		}
		if n := len(s.Enemies()); n != 0 {
			t.Errorf("got %d enemies, want 0", n)
		}
	})

	t.Run("idle enemies", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Stage = StageEnemies
		cfg.Seed = 3
		s, err := NewSimulation(cfg)
		if err != nil {
			t.Fatal(err)
		}
		before := s.Enemies()
		for i := 0; i < 60; i++ {
			if res := s.Step(1.0/60, KeyState{}); res.WallContact || res.PlayerHit {
				t.Fatalf("tick %d produced %+v", i, res)
			}
		}
		after := s.Enemies()
		for i := range before {
			if before[i].Position != after[i].Position {
				t.Errorf("enemy %d moved from %v to %v", before[i].ID, before[i].Position, after[i].Position)
			}
		}
	})
}

func TestDebugModeLogsEdges(t *testing.T) {
	s := newEmptySim(t, nil)
	s.AddEnemy(Body{Position: Vec2{367.9, 0}, Velocity: Vec2{1, 0}})
	s.SetPlayer(Vec2{0, 200})
	var buf bytes.Buffer
	s.debugOut = &buf
	s.SetDebugMode(true)

	s.Step(1.0/60, KeyState{})

	out := buf.String()
	if !strings.Contains(out, "[ballgame] edge: body 1 x_max 368") {
		t.Errorf("missing edge line in %q", out)
	}
	if !strings.Contains(out, "[ballgame] tick 1 | bounces: 1 | clamps: 1") {
		t.Errorf("missing tick stats in %q", out)
	}
}
