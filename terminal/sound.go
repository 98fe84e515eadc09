package terminal

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// Sound plays short cues for game events.
type Sound interface {
	Goal()
	Bump()
}

// Silent is a Sound that plays nothing.
type Silent struct{}

func (Silent) Goal() {}
func (Silent) Bump() {}

// Beeper plays sine tones through the default audio device.
type Beeper struct {
	sampleRate beep.SampleRate
}

// NewBeeper initializes the speaker. Callers fall back to Silent on error.
func NewBeeper() (*Beeper, error) {
	sampleRate := beep.SampleRate(44100)
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &Beeper{sampleRate: sampleRate}, nil
}

// Goal plays a high tone.
func (b *Beeper) Goal() {
	b.tone(880, 150*time.Millisecond)
}

// Bump plays a short low tone for a blocked move.
func (b *Beeper) Bump() {
	b.tone(220, 30*time.Millisecond)
}

func (b *Beeper) tone(freq float64, d time.Duration) {
	sine, err := generators.SineTone(b.sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(b.sampleRate.N(d), sine))
}
