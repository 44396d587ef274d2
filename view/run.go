package view

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/ballgame"
)

// RunConfig configures the window and the optional extras of Run.
type RunConfig struct {
	// Title is the window title.
	Title string
	// ShowFPS draws the FPS/TPS overlay with the game status.
	ShowFPS bool
	// Sound enables the pluck and crunch effects.
	Sound bool
	// Volume of the effects in [0, 1]. 0 uses 0.5.
	Volume float64
	// Script replaces keyboard input when non-nil. A "mark" step takes a
	// screenshot and a "quit" step closes the window.
	Script *ballgame.ScriptRunner
	// ScreenshotDir receives PNGs from F12 and script marks. "" uses
	// "screenshots".
	ScreenshotDir string
	// Listener, when set, receives every tick's signals after the game's own
	// effects.
	Listener ballgame.Listener
	// Debug turns on the simulation's per-tick stats.
	Debug bool
}

// Game hosts a ballgame.Simulation in an Ebitengine window. The window size
// is the arena size from the simulation config.
type Game struct {
	cfg ballgame.Config
	rc  RunConfig

	sim    *ballgame.Simulation
	cam    Camera
	sounds *Sounds
	hud    *hud
	shots  screenshots

	playerImg *ebiten.Image
	enemyImg  *ebiten.Image

	flash      flashes[ballgame.BodyID]
	prevVel    map[ballgame.BodyID]ballgame.Vec2
	playerFade *Fade
	lastPlayer ballgame.Vec2
}

// NewGame builds the simulation from cfg and prepares the sprites. It does
// not open a window; pass the result to ebiten.RunGame or use Run.
func NewGame(cfg ballgame.Config, rc RunConfig) (*Game, error) {
	if rc.ScreenshotDir == "" {
		rc.ScreenshotDir = "screenshots"
	}
	if rc.Volume == 0 {
		rc.Volume = 0.5
	}
	g := &Game{
		cfg:       cfg,
		rc:        rc,
		cam:       Camera{ScreenW: cfg.Width, ScreenH: cfg.Height},
		playerImg: newBallImage(cfg.PlayerSize/2, ColorPlayer),
		enemyImg:  newBallImage(cfg.EnemySize/2, ColorFlash),
	}
	if rc.ShowFPS {
		g.hud = newHUD()
	}
	if rc.Sound {
		g.sounds = NewSounds(rc.Volume)
	}
	if err := g.restart(); err != nil {
		return nil, err
	}
	return g, nil
}

// Run opens the window and runs the game until it is closed, Esc is pressed
// or a script quits.
func Run(cfg ballgame.Config, rc RunConfig) error {
	g, err := NewGame(cfg, rc)
	if err != nil {
		return err
	}
	title := rc.Title
	if title == "" {
		title = "Ball Game"
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(int(cfg.Width), int(cfg.Height))
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("ballgame: run: %w", err)
	}
	return nil
}

// Simulation returns the simulation of the current round.
func (g *Game) Simulation() *ballgame.Simulation { return g.sim }

// restart starts a new round with a fresh simulation.
func (g *Game) restart() error {
	sim, err := ballgame.NewSimulation(g.cfg)
	if err != nil {
		return err
	}
	sim.SetDebugMode(g.rc.Debug)
	g.sim = sim
	g.shots = screenshots{dir: g.rc.ScreenshotDir, runID: sim.RunID()}
	g.flash = flashes[ballgame.BodyID]{}
	g.prevVel = make(map[ballgame.BodyID]ballgame.Vec2)
	g.playerFade = nil
	for _, e := range sim.Enemies() {
		g.prevVel[e.ID] = e.Velocity
	}
	return nil
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.restart(); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.shots.add("manual")
	}

	dt := 1.0 / float64(ebiten.TPS())

	keys := PollKeys()
	if g.rc.Script != nil && !g.rc.Script.Done() {
		f := g.rc.Script.Next()
		if f.Quit {
			return ebiten.Termination
		}
		if f.Mark != "" {
			g.shots.add(f.Mark)
		}
		keys = f.Keys
	}

	if p, ok := g.sim.Player(); ok {
		g.lastPlayer = p.Position
	}
	res := g.sim.Step(dt, keys)
	res.Dispatch(g)
	if g.rc.Listener != nil {
		res.Dispatch(g.rc.Listener)
	}

	g.trackBounces()
	g.flash.update(float32(dt))
	if g.playerFade != nil {
		g.playerFade.Update(float32(dt))
	}
	if g.hud != nil {
		g.hud.update(dt, g.status())
	}
	return nil
}

// trackBounces starts a flash on every enemy whose direction flipped this
// tick.
func (g *Game) trackBounces() {
	for _, e := range g.sim.Enemies() {
		prev, ok := g.prevVel[e.ID]
		if ok && (flipped(prev.X, e.Velocity.X) || flipped(prev.Y, e.Velocity.Y)) {
			g.flash.start(e.ID)
		}
		g.prevVel[e.ID] = e.Velocity
	}
}

func flipped(a, b float64) bool {
	return a != 0 && b == -a
}

func (g *Game) status() string {
	if _, ok := g.sim.Player(); ok {
		return fmt.Sprintf("tick %d", g.sim.Tick())
	}
	return "game over - R to restart"
}

// OnWallContact implements ballgame.Listener.
func (g *Game) OnWallContact() {
	g.sounds.Pluck()
}

// OnPlayerHit implements ballgame.Listener.
func (g *Game) OnPlayerHit(by ballgame.BodyID) {
	log.Printf("ballgame: enemy %d hit player, game over (run %s)", by, g.sim.RunID())
	g.sounds.Crunch()
	g.playerFade = newPlayerFade()
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ColorBackground)

	for _, e := range g.sim.Enemies() {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(g.cam.TopLeft(e.Position, e.Radius))
		op.ColorScale.ScaleWithColor(mix(ColorEnemy, ColorFlash, g.flash.level(e.ID)))
		screen.DrawImage(g.enemyImg, op)
	}

	if p, ok := g.sim.Player(); ok {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(g.cam.TopLeft(p.Position, p.Radius))
		screen.DrawImage(g.playerImg, op)
	} else if g.playerFade != nil && !g.playerFade.Done {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(g.cam.TopLeft(g.lastPlayer, g.cfg.PlayerSize/2))
		op.ColorScale.ScaleAlpha(float32(g.playerFade.Value))
		screen.DrawImage(g.playerImg, op)
	}

	if g.hud != nil {
		g.hud.draw(screen)
	}
	g.shots.flush(screen)
}

// Layout implements ebiten.Game. The arena size is fixed at construction, so
// the logical screen always matches it.
func (g *Game) Layout(_, _ int) (int, int) {
	return int(g.cfg.Width), int(g.cfg.Height)
}
