package ballgame

import "math"

// KeyState is the held state of the four movement keys for one tick. Hosts
// fill it from whatever input device they poll (arrows and WASD in the
// bundled hosts).
type KeyState struct {
	Left, Right, Up, Down bool
}

// Any reports whether at least one key is held.
func (k KeyState) Any() bool {
	return k.Left || k.Right || k.Up || k.Down
}

// DirectionFromKeys maps held keys to one of nine directions: the zero vector
// or a unit vector along an axis or diagonal. Opposite keys cancel.
func DirectionFromKeys(k KeyState) Vec2 {
	var d Vec2
	if k.Left {
		d.X--
	}
	if k.Right {
		d.X++
	}
	if k.Up {
		d.Y++
	}
	if k.Down {
		d.Y--
	}
	if d.X != 0 && d.Y != 0 {
		d = Vec2{d.X * math.Sqrt2 / 2, d.Y * math.Sqrt2 / 2}
	}
	return d
}
