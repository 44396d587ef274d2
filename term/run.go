package term

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/ballgame"
)

// Options configures the terminal host. Zero values pick the defaults noted
// on each field.
type Options struct {
	// Tick is the simulation step interval. Default 16ms.
	Tick time.Duration
	// KeyHold is how long a key press counts as held. Default 150ms.
	KeyHold time.Duration
	// Sound enables speaker tones. Failure to open the speaker is logged and
	// the game continues silently.
	Sound bool
	// Script replaces keyboard movement when non-nil.
	Script *ballgame.ScriptRunner
	// Listener, when set, receives every tick's signals.
	Listener ballgame.Listener
}

func (o Options) withDefaults() Options {
	if o.Tick <= 0 {
		o.Tick = 16 * time.Millisecond
	}
	if o.KeyHold <= 0 {
		o.KeyHold = 150 * time.Millisecond
	}
	return o
}

var (
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePlayer = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	styleEnemy  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// Run plays the game in the terminal until Esc, Ctrl-C, a script quit, or
// ctx is cancelled.
func Run(ctx context.Context, cfg ballgame.Config, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("ballgame: screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("ballgame: screen init: %w", err)
	}
	defer screen.Fini()

	opts = opts.withDefaults()
	var b beeper
	if opts.Sound {
		if err := b.init(); err != nil {
			// Non-fatal, the game can run without sound
			log.Printf("ballgame: audio unavailable: %v", err)
		}
		defer b.close()
	}

	h, err := newHost(screen, cfg, opts)
	if err != nil {
		return err
	}
	h.sound = &b
	return h.loop(ctx)
}

// host is one terminal session: the screen, the current round and input.
type host struct {
	screen tcell.Screen
	cfg    ballgame.Config
	opts   Options
	sim    *ballgame.Simulation
	grid   Grid
	keys   heldKeys
	sound  *beeper
	now    func() time.Time
}

func newHost(screen tcell.Screen, cfg ballgame.Config, opts Options) (*host, error) {
	h := &host{
		screen: screen,
		cfg:    cfg,
		opts:   opts.withDefaults(),
		sound:  &beeper{},
		now:    time.Now,
	}
	h.keys.hold = h.opts.KeyHold
	if err := h.restart(); err != nil {
		return nil, err
	}
	h.resize()
	return h, nil
}

func (h *host) restart() error {
	sim, err := ballgame.NewSimulation(h.cfg)
	if err != nil {
		return err
	}
	h.sim = sim
	h.keys.reset()
	return nil
}

func (h *host) resize() {
	cols, rows := h.screen.Size()
	// Row 0 holds the status line.
	h.grid = Grid{Cols: cols, Rows: rows - 1, Arena: h.sim.Arena()}
}

func (h *host) loop(ctx context.Context) error {
	ticker := time.NewTicker(h.opts.Tick)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			eventChan <- ev
		}
	}()

	h.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-eventChan:
			quit, err := h.handleEvent(ev)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		case <-ticker.C:
			if !h.tick() {
				return nil
			}
			h.draw()
		}
	}
}

// handleEvent reports whether the session should end.
func (h *host) handleEvent(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return true, nil
		}
		if ev.Key() == tcell.KeyRune && (ev.Rune() == 'r' || ev.Rune() == 'R') {
			return false, h.restart()
		}
		h.keys.press(ev, h.now())
	case *tcell.EventResize:
		h.screen.Sync()
		h.resize()
	}
	return false, nil
}

// tick advances the simulation one step and reports false when a script
// asked to quit.
func (h *host) tick() bool {
	keys := h.keys.state(h.now())
	if s := h.opts.Script; s != nil && !s.Done() {
		f := s.Next()
		if f.Quit {
			return false
		}
		keys = f.Keys
	}
	res := h.sim.Step(h.opts.Tick.Seconds(), keys)
	res.Dispatch(h)
	if h.opts.Listener != nil {
		res.Dispatch(h.opts.Listener)
	}
	return true
}

// OnWallContact implements ballgame.Listener.
func (h *host) OnWallContact() {
	h.sound.pluck()
}

// OnPlayerHit implements ballgame.Listener.
func (h *host) OnPlayerHit(by ballgame.BodyID) {
	log.Printf("ballgame: enemy %d hit player, game over (run %s)", by, h.sim.RunID())
	h.sound.crunch()
}

func (h *host) draw() {
	h.screen.Clear()
	h.drawBorder()

	for _, e := range h.sim.Enemies() {
		c, r := h.grid.Cell(e.Position)
		h.screen.SetContent(c, r+1, 'o', nil, styleEnemy)
	}
	if p, ok := h.sim.Player(); ok {
		c, r := h.grid.Cell(p.Position)
		h.screen.SetContent(c, r+1, '@', nil, stylePlayer)
	}
	h.drawText(0, 0, h.status(), styleStatus)
	h.screen.Show()
}

func (h *host) status() string {
	if _, ok := h.sim.Player(); ok {
		return fmt.Sprintf("tick %d | arrows/WASD move | Esc quits", h.sim.Tick())
	}
	return "GAME OVER | r restarts | Esc quits"
}

func (h *host) drawBorder() {
	cols, rows := h.grid.Cols, h.grid.Rows
	if cols < 2 || rows < 2 {
		return
	}
	top, bottom := 1, rows
	for x := 1; x < cols-1; x++ {
		h.screen.SetContent(x, top, tcell.RuneHLine, nil, styleBorder)
		h.screen.SetContent(x, bottom, tcell.RuneHLine, nil, styleBorder)
	}
	for y := top + 1; y < bottom; y++ {
		h.screen.SetContent(0, y, tcell.RuneVLine, nil, styleBorder)
		h.screen.SetContent(cols-1, y, tcell.RuneVLine, nil, styleBorder)
	}
	h.screen.SetContent(0, top, tcell.RuneULCorner, nil, styleBorder)
	h.screen.SetContent(cols-1, top, tcell.RuneURCorner, nil, styleBorder)
	h.screen.SetContent(0, bottom, tcell.RuneLLCorner, nil, styleBorder)
	h.screen.SetContent(cols-1, bottom, tcell.RuneLRCorner, nil, styleBorder)
}

func (h *host) drawText(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		h.screen.SetContent(x+i, y, r, nil, style)
	}
}
