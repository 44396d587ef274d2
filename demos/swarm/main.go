// Swarm fills the arena with two hundred enemies and lets the player drift
// through them under a scripted input. A stress test for the simulation and
// the sprite pipeline; it saves a thumbnail and exits after a few frames.
package main

import (
	"log"

	"github.com/phanxgames/ballgame"
	"github.com/phanxgames/ballgame/view"
)

const swarmScript = `{
	"steps": [
		{"action": "hold", "keys": ["right", "up"], "frames": 30},
		{"action": "mark", "label": "thumbnail"},
		{"action": "wait", "frames": 2},
		{"action": "quit"}
	]
}`

func main() {
	cfg := ballgame.DefaultConfig()
	cfg.Width = 1280
	cfg.Height = 720
	cfg.EnemyCount = 200
	cfg.EnemySize = 24
	cfg.Seed = 42

	script, err := ballgame.LoadScript([]byte(swarmScript))
	if err != nil {
		log.Fatal(err)
	}

	if err := view.Run(cfg, view.RunConfig{
		Title:         "Ball Game - Swarm",
		ShowFPS:       true,
		Script:        script,
		ScreenshotDir: "docs/demos/swarm",
	}); err != nil {
		log.Fatal(err)
	}
}
