package view

import (
	"encoding/binary"
	"math"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const sampleRate = 44100

// Sounds plays the two game effects. The clips are synthesized once at
// startup; there are no audio assets to load.
type Sounds struct {
	ctx    *audio.Context
	pluck  []byte
	crunch []byte
	volume float64
}

// NewSounds creates the effects on the process audio context, creating the
// context if needed. Ebitengine allows only one context per process.
func NewSounds(volume float64) *Sounds {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	return &Sounds{
		ctx:    ctx,
		pluck:  pluckPCM(ctx.SampleRate()),
		crunch: crunchPCM(ctx.SampleRate()),
		volume: volume,
	}
}

// Pluck plays the wall-contact sound. A nil Sounds is silent.
func (s *Sounds) Pluck() {
	if s != nil {
		s.play(s.pluck)
	}
}

// Crunch plays the player-hit sound. A nil Sounds is silent.
func (s *Sounds) Crunch() {
	if s != nil {
		s.play(s.crunch)
	}
}

func (s *Sounds) play(pcm []byte) {
	p := s.ctx.NewPlayerFromBytes(pcm)
	p.SetVolume(s.volume)
	p.Play()
}

// pluckPCM is a short decaying two-partial tone.
func pluckPCM(rate int) []byte {
	return synth(rate, 120*time.Millisecond, func(t float64) float64 {
		env := math.Exp(-t * 35)
		return env * (0.7*math.Sin(2*math.Pi*660*t) + 0.3*math.Sin(2*math.Pi*1320*t))
	})
}

// crunchPCM is decaying noise under a falling low tone. The noise source is
// seeded so the clip is identical on every run.
func crunchPCM(rate int) []byte {
	rng := rand.New(rand.NewPCG(1, 2))
	return synth(rate, 350*time.Millisecond, func(t float64) float64 {
		env := math.Exp(-t * 9)
		tone := math.Sin(2 * math.Pi * (140 - 180*t) * t)
		return env * (0.6*(rng.Float64()*2-1) + 0.4*tone)
	})
}

// synth renders fn over duration as signed 16-bit little-endian stereo, the
// format audio.Context players expect. fn receives time in seconds and
// returns a sample in [-1, 1].
func synth(rate int, duration time.Duration, fn func(t float64) float64) []byte {
	n := int(float64(rate) * duration.Seconds())
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		v := fn(float64(i) / float64(rate))
		v = math.Max(-1, math.Min(1, v))
		s := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*4:], s)
		binary.LittleEndian.PutUint16(buf[i*4+2:], s)
	}
	return buf
}
