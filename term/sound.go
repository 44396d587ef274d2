package term

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// beeper plays the wall-contact and player-hit tones through the speaker.
// The zero value is silent.
type beeper struct {
	ready bool
}

func (b *beeper) init() error {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("ballgame: speaker: %w", err)
	}
	b.ready = true
	return nil
}

func (b *beeper) close() {
	if b.ready {
		speaker.Close()
		b.ready = false
	}
}

func (b *beeper) pluck() {
	if b.ready {
		speaker.Play(pluckStreamer(sampleRate))
	}
}

func (b *beeper) crunch() {
	if b.ready {
		speaker.Play(crunchStreamer(sampleRate))
	}
}

// pluckStreamer is a short high tone.
func pluckStreamer(sr beep.SampleRate) beep.Streamer {
	return toneFor(sr, 880, 50*time.Millisecond)
}

// crunchStreamer is a falling pair of low tones.
func crunchStreamer(sr beep.SampleRate) beep.Streamer {
	return beep.Seq(
		toneFor(sr, 220, 90*time.Millisecond),
		toneFor(sr, 110, 180*time.Millisecond),
	)
}

func toneFor(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return beep.Silence(sr.N(d))
	}
	return beep.Take(sr.N(d), sine)
}
