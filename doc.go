// Package ballgame is the simulation core of a small arcade game: a
// keyboard-driven player ball dodging enemy balls that bounce around a
// rectangular arena.
//
// The package does no rendering, audio or input polling. Hosts supply the
// arena size once, the elapsed time and held keys every tick, and react to
// the signals each tick returns. Two hosts ship with the module: package
// view (Ebitengine window) and package term (terminal via tcell).
//
// # Quick start
//
//	sim, err := ballgame.NewSimulation(ballgame.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	for {
//		res := sim.Step(1.0/60, keys)
//		if res.WallContact {
//			// play a pluck
//		}
//		if res.PlayerHit {
//			// game over
//		}
//	}
//
// # Tick pipeline
//
// [Simulation.Step] runs, in order:
//
//  1. [Simulation.Advance]: every body moves by direction × speed × dt.
//  2. [Simulation.ConfinePlayer]: the player is clamped onto the arena.
//  3. [Simulation.ReflectAndDetectContact]: enemies past a wall have that
//     velocity component negated. The tick reports one wall contact however
//     many enemies bounced.
//  4. [Simulation.ClampToBounds]: enemies still outside are put back one
//     velocity unit inside the violated wall.
//  5. [Simulation.DetectPlayerContact]: the first enemy (or the nearest, with
//     [ContactNearest]) overlapping the player removes it for the rest of the
//     run.
//
// The steps are exported so hosts and tests can drive them individually.
//
// # Coordinates
//
// Arena space is centered on the origin with Y pointing up. An 800×600 arena
// spans x ∈ [-400, 400] and y ∈ [-300, 300]. A body of radius r is confined
// to the arena shrunk by r on every side; see [Arena.BoundsFor].
//
// # Scripts
//
// [LoadScript] reads a JSON key script that [RunScript] or a host replays
// frame by frame, which makes runs with a fixed [Config.Seed] reproducible.
package ballgame
