// Package view runs the ball game in an [Ebitengine] window.
//
// [Run] opens a window sized to the arena and drives a
// [ballgame.Simulation] at the engine's tick rate. Arrow keys or WASD move
// the blue player; red enemies bounce off the walls with a pluck and a white
// flash; the crunch sounds and the player fades when an enemy reaches it.
// R starts a new round, F12 saves a screenshot and Esc quits.
//
//	cfg := ballgame.DefaultConfig()
//	if err := view.Run(cfg, view.RunConfig{Title: "Ball Game", Sound: true}); err != nil {
//		log.Fatal(err)
//	}
//
// The package also carries the pieces used by the smaller demos:
// [Framebuffer] for software rendering through WritePixels, [FuncGame] for
// closure-style game loops, and [CirclePoints] / [RandomRects] for the
// raster demo.
//
// [Ebitengine]: https://ebitengine.org
package view
