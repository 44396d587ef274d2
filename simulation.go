package ballgame

import (
	"io"
	"math"
	"math/rand/v2"
	"os"
	"time"

	"github.com/google/uuid"
)

// Simulation owns the arena, the enemies and the optional player. It is not
// safe for concurrent use; the host calls it from a single game loop.
type Simulation struct {
	cfg   Config
	arena Arena
	rng   *rand.Rand
	runID string

	enemies   []Body
	player    Body
	hasPlayer bool
	playerDir Vec2

	tick    uint64
	bounces int
	clamps  int

	debug    bool
	debugOut io.Writer
}

// NewSimulation validates cfg, spawns the player at the origin and the
// enemies at random positions inside the arena.
func NewSimulation(cfg Config) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Simulation{
		cfg:      cfg,
		arena:    Arena{Width: cfg.Width, Height: cfg.Height},
		rng:      newSource(cfg.Seed),
		runID:    uuid.NewString(),
		debugOut: os.Stderr,
	}
	s.player = Body{Kind: KindPlayer, Radius: cfg.PlayerSize / 2}
	s.hasPlayer = true

	count := cfg.EnemyCount
	if cfg.Stage == StagePlayer {
		count = 0
	}
	s.enemies = make([]Body, 0, count)
	for i := 0; i < count; i++ {
		e := Body{
			ID:       BodyID(i + 1),
			Kind:     KindEnemy,
			Position: spawnPosition(s.rng, s.arena, cfg.EnemySize),
			Radius:   cfg.EnemySize / 2,
		}
		if cfg.Stage == StageFull {
			e.Velocity = spawnDirection(s.rng)
		}
		s.enemies = append(s.enemies, e)
	}
	return s, nil
}

// Config returns the configuration the simulation was built from.
func (s *Simulation) Config() Config { return s.cfg }

// Arena returns the play area.
func (s *Simulation) Arena() Arena { return s.arena }

// RunID returns the random identifier of this run. Hosts use it to tag logs,
// events and screenshots.
func (s *Simulation) RunID() string { return s.runID }

// Tick returns the number of completed Step calls.
func (s *Simulation) Tick() uint64 { return s.tick }

// Player returns the player body and whether it is still alive.
func (s *Simulation) Player() (Body, bool) {
	return s.player, s.hasPlayer
}

// Enemies returns a copy of the enemies in spawn order.
func (s *Simulation) Enemies() []Body {
	out := make([]Body, len(s.enemies))
	copy(out, s.enemies)
	return out
}

// Enemy returns the enemy with the given ID.
func (s *Simulation) Enemy(id BodyID) (Body, bool) {
	for _, e := range s.enemies {
		if e.ID == id {
			return e, true
		}
	}
	return Body{}, false
}

// AddEnemy appends an enemy and returns its assigned ID. The body's Kind and
// ID fields are overwritten; a zero Radius takes the configured enemy size.
func (s *Simulation) AddEnemy(b Body) BodyID {
	var next BodyID = 1
	if n := len(s.enemies); n > 0 {
		next = s.enemies[n-1].ID + 1
	}
	b.ID = next
	b.Kind = KindEnemy
	if b.Radius == 0 {
		b.Radius = s.cfg.EnemySize / 2
	}
	s.enemies = append(s.enemies, b)
	return b.ID
}

// SetPlayer places the player at p, reviving it if it had been removed.
func (s *Simulation) SetPlayer(p Vec2) {
	s.player.Position = p
	s.hasPlayer = true
}

// RemovePlayer takes the player out of the simulation. Later contact checks
// report nothing.
func (s *Simulation) RemovePlayer() {
	s.hasPlayer = false
	s.playerDir = Vec2{}
}

// SetPlayerDirection sets the direction the player moves in during the next
// Advance. The host normally derives it with DirectionFromKeys.
func (s *Simulation) SetPlayerDirection(d Vec2) {
	s.playerDir = d
	s.player.Velocity = d
}

// SetDebugMode enables or disables per-tick stats on stderr.
func (s *Simulation) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Advance moves every body by its direction times its class speed times dt.
func (s *Simulation) Advance(dt float64) {
	if s.hasPlayer {
		s.player.Position = s.player.Position.Add(s.playerDir.Scale(s.cfg.PlayerSpeed * dt))
	}
	for i := range s.enemies {
		e := &s.enemies[i]
		e.Position = e.Position.Add(e.Velocity.Scale(s.cfg.EnemySpeed * dt))
	}
}

// ConfinePlayer clamps the player onto its inset bounds.
func (s *Simulation) ConfinePlayer() {
	if !s.hasPlayer {
		return
	}
	b := s.arena.BoundsFor(s.player.Radius)
	p := &s.player.Position
	p.X = math.Min(math.Max(p.X, b.MinX), b.MaxX)
	p.Y = math.Min(math.Max(p.Y, b.MinY), b.MaxY)
}

// ReflectAndDetectContact negates each velocity component whose axis puts an
// enemy outside its inset bounds. It reports whether any component flipped;
// the caller turns that into a single wall contact for the tick no matter how
// many enemies bounced.
func (s *Simulation) ReflectAndDetectContact() bool {
	s.bounces = 0
	for i := range s.enemies {
		e := &s.enemies[i]
		b := s.arena.BoundsFor(e.Radius)
		if s.debug {
			s.debugCheckEdge(e, b)
		}

		flipped := false
		if e.Position.X < b.MinX || e.Position.X > b.MaxX {
			e.Velocity.X = -e.Velocity.X
			flipped = true
		}
		if e.Position.Y < b.MinY || e.Position.Y > b.MaxY {
			e.Velocity.Y = -e.Velocity.Y
			flipped = true
		}
		if flipped {
			s.bounces++
		}
	}
	return s.bounces > 0
}

// ClampToBounds moves an enemy that is still outside its inset bounds back to
// the violated bound, offset inward by the magnitude of its velocity component
// on that axis. The body ends up one velocity unit inside the wall rather than
// on it.
func (s *Simulation) ClampToBounds() {
	s.clamps = 0
	for i := range s.enemies {
		e := &s.enemies[i]
		b := s.arena.BoundsFor(e.Radius)
		p := &e.Position
		moved := false

		if p.X < b.MinX {
			p.X = b.MinX + math.Abs(e.Velocity.X)
			moved = true
		} else if p.X > b.MaxX {
			p.X = b.MaxX - math.Abs(e.Velocity.X)
			moved = true
		}
		if p.Y < b.MinY {
			p.Y = b.MinY + math.Abs(e.Velocity.Y)
			moved = true
		} else if p.Y > b.MaxY {
			p.Y = b.MaxY - math.Abs(e.Velocity.Y)
			moved = true
		}
		if moved {
			s.clamps++
		}
	}
}

// DetectPlayerContact reports an enemy whose center is closer to the
// player's center than the sum of their radii. With ContactFirst the first
// such enemy in spawn order wins; with ContactNearest the closest one does.
// It never removes the player; Step does that.
func (s *Simulation) DetectPlayerContact() (BodyID, bool) {
	if !s.hasPlayer {
		return 0, false
	}
	var (
		hit   BodyID
		found bool
		best  = math.Inf(1)
	)
	for _, e := range s.enemies {
		d := s.player.Position.Distance(e.Position)
		if d >= s.player.Radius+e.Radius {
			continue
		}
		if s.cfg.Contact == ContactFirst {
			return e.ID, true
		}
		if d < best {
			best, hit, found = d, e.ID, true
		}
	}
	return hit, found
}

// Step runs one full tick: advance, confine the player, reflect, clamp, and
// check player contact. On contact the player is removed.
func (s *Simulation) Step(dt float64, keys KeyState) TickResult {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	if s.hasPlayer {
		s.SetPlayerDirection(DirectionFromKeys(keys))
	}
	s.Advance(dt)
	s.ConfinePlayer()

	res := TickResult{}
	if s.cfg.Stage == StageFull {
		res.WallContact = s.ReflectAndDetectContact()
		res.Bounces = s.bounces
		s.ClampToBounds()
		if id, ok := s.DetectPlayerContact(); ok {
			s.RemovePlayer()
			res.PlayerHit = true
			res.HitBy = id
		}
	}

	s.tick++
	res.Tick = s.tick

	if s.debug {
		s.debugLog(debugStats{
			tick:     s.tick,
			bounces:  s.bounces,
			clamps:   s.clamps,
			stepTime: time.Since(t0),
		})
	}
	return res
}
