package ecs

import (
	"github.com/phanxgames/ballgame"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// WallContact is published when at least one enemy bounced during a tick.
type WallContact struct {
	RunID string
}

// PlayerHit is published on the tick an enemy reaches the player.
type PlayerHit struct {
	RunID string
	By    ballgame.BodyID
}

// Donburi event types for the game signals. Subscribe to these in your ECS
// systems and drain them with ProcessEvents or events.ProcessAllEvents.
var (
	WallContactEventType = events.NewEventType[WallContact]()
	PlayerHitEventType   = events.NewEventType[PlayerHit]()
)

type donburiListener struct {
	world donburi.World
	runID string
}

// NewDonburiListener creates a ballgame.Listener that publishes tick signals
// into a Donburi world, tagged with the simulation's run ID.
func NewDonburiListener(world donburi.World, runID string) ballgame.Listener {
	return &donburiListener{world: world, runID: runID}
}

func (l *donburiListener) OnWallContact() {
	WallContactEventType.Publish(l.world, WallContact{RunID: l.runID})
}

func (l *donburiListener) OnPlayerHit(by ballgame.BodyID) {
	PlayerHitEventType.Publish(l.world, PlayerHit{RunID: l.runID, By: by})
}
