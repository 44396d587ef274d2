package ecs

import (
	"testing"

	"github.com/phanxgames/ballgame"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiListener(t *testing.T) {
	world := donburi.NewWorld()
	l := NewDonburiListener(world, "run")
	if l == nil {
		t.Fatal("NewDonburiListener returned nil")
	}
}

func TestDonburiListener_PublishesSignals(t *testing.T) {
	world := donburi.NewWorld()
	l := NewDonburiListener(world, "run-1")

	var walls []WallContact
	var hits []PlayerHit
	WallContactEventType.Subscribe(world, func(w donburi.World, e WallContact) {
		walls = append(walls, e)
	})
	PlayerHitEventType.Subscribe(world, func(w donburi.World, e PlayerHit) {
		hits = append(hits, e)
	})

	l.OnWallContact()
	l.OnPlayerHit(7)

	// Events are queued until processed.
	if len(walls) != 0 || len(hits) != 0 {
		t.Fatal("events delivered before processing")
	}
	events.ProcessAllEvents(world)

	if len(walls) != 1 || walls[0].RunID != "run-1" {
		t.Errorf("wall events: %+v", walls)
	}
	if len(hits) != 1 || hits[0].By != 7 || hits[0].RunID != "run-1" {
		t.Errorf("hit events: %+v", hits)
	}
}

func TestDonburiListener_FromSimulation(t *testing.T) {
	cfg := ballgame.DefaultConfig()
	cfg.EnemyCount = 0
	sim, err := ballgame.NewSimulation(cfg)
	if err != nil {
		t.Fatal(err)
	}
	sim.SetPlayer(ballgame.Vec2{Y: 200})
	sim.AddEnemy(ballgame.Body{Position: ballgame.Vec2{X: 367.9}, Velocity: ballgame.Vec2{X: 1}})
	sim.AddEnemy(ballgame.Body{Position: ballgame.Vec2{X: -367.9}, Velocity: ballgame.Vec2{X: -1}})

	world := donburi.NewWorld()
	l := NewDonburiListener(world, sim.RunID())

	var count int
	WallContactEventType.Subscribe(world, func(w donburi.World, e WallContact) {
		if e.RunID != sim.RunID() {
			t.Errorf("run ID = %q, want %q", e.RunID, sim.RunID())
		}
		count++
	})

	sim.Step(1.0/60, ballgame.KeyState{}).Dispatch(l)
	WallContactEventType.ProcessEvents(world)

	if count != 1 {
		t.Errorf("got %d wall events for one tick, want 1", count)
	}
}

func TestDonburiListener_ImplementsListener(t *testing.T) {
	world := donburi.NewWorld()
	var l ballgame.Listener = NewDonburiListener(world, "")
	_ = l // compile-time interface check
}
