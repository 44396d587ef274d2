// Package ecs bridges ball game signals into a [Donburi] world.
//
// [NewDonburiListener] returns a [ballgame.Listener] that publishes
// [WallContact] and [PlayerHit] events. Subscribe to
// [WallContactEventType] or [PlayerHitEventType] in your ECS systems to react
// to them.
//
// Usage:
//
//	world := donburi.NewWorld()
//	l := ecs.NewDonburiListener(world, sim.RunID())
//	sim.Step(dt, keys).Dispatch(l)
//	events.ProcessAllEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
