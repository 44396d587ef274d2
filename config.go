package ballgame

import (
	"errors"
	"fmt"
)

// Stage selects which parts of the game are active. The zero value is the
// complete game; the other stages replay earlier, smaller versions of it.
type Stage uint8

const (
	StageFull    Stage = iota // enemies move, bounce, and can hit the player
	StagePlayer               // only the player, confined to the arena
	StageEnemies              // enemies are spawned but stay idle
)

var stageNames = map[Stage]string{
	StageFull:    "full",
	StagePlayer:  "player",
	StageEnemies: "enemies",
}

// String returns the name accepted by ParseStage.
func (s Stage) String() string {
	if n, ok := stageNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Stage(%d)", uint8(s))
}

// ParseStage maps a stage name ("player", "enemies", "full") to a Stage.
func ParseStage(name string) (Stage, error) {
	for s, n := range stageNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("ballgame: unknown stage %q", name)
}

// ContactPolicy decides which enemy is reported when several overlap the
// player in the same tick.
type ContactPolicy uint8

const (
	ContactFirst   ContactPolicy = iota // first overlapping enemy in spawn order
	ContactNearest                      // overlapping enemy with the closest center
)

// Config holds everything needed to build a Simulation. The zero value is not
// usable; start from DefaultConfig.
type Config struct {
	// Width and Height size the arena, normally the window size.
	Width, Height float64

	PlayerSpeed float64
	EnemySpeed  float64
	PlayerSize  float64
	EnemySize   float64
	EnemyCount  int

	Stage   Stage
	Contact ContactPolicy

	// Seed feeds the spawn random source. 0 picks a random seed.
	Seed uint64
}

// DefaultConfig returns the episode-four game on an 800×600 arena.
func DefaultConfig() Config {
	return Config{
		Width:       800,
		Height:      600,
		PlayerSpeed: PlayerSpeed,
		EnemySpeed:  EnemySpeed,
		PlayerSize:  SpriteSize,
		EnemySize:   SpriteSize,
		EnemyCount:  NumberOfEnemies,
		Stage:       StageFull,
	}
}

var errNonPositive = errors.New("must be positive")

// Validate reports the first setting that cannot produce a working arena.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("ballgame: arena %vx%v: %w", c.Width, c.Height, errNonPositive)
	case c.PlayerSize <= 0:
		return fmt.Errorf("ballgame: player size %v: %w", c.PlayerSize, errNonPositive)
	case c.EnemySize <= 0:
		return fmt.Errorf("ballgame: enemy size %v: %w", c.EnemySize, errNonPositive)
	case c.PlayerSpeed < 0 || c.EnemySpeed < 0:
		return fmt.Errorf("ballgame: negative speed (player %v, enemy %v)", c.PlayerSpeed, c.EnemySpeed)
	case c.EnemyCount < 0:
		return fmt.Errorf("ballgame: negative enemy count %d", c.EnemyCount)
	case c.EnemySize > c.Width || c.EnemySize > c.Height:
		return fmt.Errorf("ballgame: enemy size %v does not fit a %vx%v arena", c.EnemySize, c.Width, c.Height)
	case c.PlayerSize > c.Width || c.PlayerSize > c.Height:
		return fmt.Errorf("ballgame: player size %v does not fit a %vx%v arena", c.PlayerSize, c.Width, c.Height)
	}
	if _, ok := stageNames[c.Stage]; !ok {
		return fmt.Errorf("ballgame: unknown stage %d", c.Stage)
	}
	if c.Contact > ContactNearest {
		return fmt.Errorf("ballgame: unknown contact policy %d", c.Contact)
	}
	return nil
}
