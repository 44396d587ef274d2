package term

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/ballgame"
)

type direction uint8

const (
	dirLeft direction = iota
	dirRight
	dirUp
	dirDown
	dirCount
)

// heldKeys turns key-press events into held state. Terminals report presses
// and auto-repeats, never releases, so a key counts as held until hold has
// passed without another press.
type heldKeys struct {
	hold  time.Duration
	until [dirCount]time.Time
}

// press records a movement key. It reports false for keys that do not move
// the player.
func (k *heldKeys) press(ev *tcell.EventKey, now time.Time) bool {
	d, ok := keyDirection(ev)
	if !ok {
		return false
	}
	k.until[d] = now.Add(k.hold)
	return true
}

func (k *heldKeys) state(now time.Time) ballgame.KeyState {
	held := func(d direction) bool { return now.Before(k.until[d]) }
	return ballgame.KeyState{
		Left:  held(dirLeft),
		Right: held(dirRight),
		Up:    held(dirUp),
		Down:  held(dirDown),
	}
}

func (k *heldKeys) reset() {
	k.until = [dirCount]time.Time{}
}

func keyDirection(ev *tcell.EventKey) (direction, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return dirLeft, true
	case tcell.KeyRight:
		return dirRight, true
	case tcell.KeyUp:
		return dirUp, true
	case tcell.KeyDown:
		return dirDown, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			return dirLeft, true
		case 'd', 'D':
			return dirRight, true
		case 'w', 'W':
			return dirUp, true
		case 's', 'S':
			return dirDown, true
		}
	}
	return 0, false
}
