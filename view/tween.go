package view

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Fade animates a single value between two endpoints. The game uses it for
// the white flash on an enemy after a wall bounce and for the player
// fading out after a hit.
//
// There is no global animation manager; the game calls Update each frame.
type Fade struct {
	tween *gween.Tween
	Value float64
	Done  bool
}

// NewFade creates a Fade from one value to another over duration seconds.
func NewFade(from, to float64, duration float32, fn ease.TweenFunc) *Fade {
	return &Fade{
		tween: gween.New(float32(from), float32(to), duration, fn),
		Value: from,
	}
}

// Update advances the fade by dt seconds and returns the new value.
func (f *Fade) Update(dt float32) float64 {
	if f.Done {
		return f.Value
	}
	val, finished := f.tween.Update(dt)
	f.Value = float64(val)
	f.Done = finished
	return f.Value
}

const (
	flashDuration = 0.25 // seconds an enemy stays lit after a bounce
	fadeDuration  = 0.6  // seconds the player takes to vanish after a hit
)

// newFlash starts at full white and settles back to the base color.
func newFlash() *Fade {
	return NewFade(1, 0, flashDuration, ease.OutCubic)
}

// newPlayerFade takes the player's alpha from opaque to invisible.
func newPlayerFade() *Fade {
	return NewFade(1, 0, fadeDuration, ease.OutQuad)
}

// flashes tracks the active flash per key. Finished flashes are dropped on
// Update.
type flashes[K comparable] map[K]*Fade

func (fs flashes[K]) start(k K) {
	fs[k] = newFlash()
}

func (fs flashes[K]) update(dt float32) {
	for k, f := range fs {
		if f.Update(dt); f.Done {
			delete(fs, k)
		}
	}
}

// level returns the flash intensity for k in [0, 1].
func (fs flashes[K]) level(k K) float64 {
	if f, ok := fs[k]; ok {
		return f.Value
	}
	return 0
}
