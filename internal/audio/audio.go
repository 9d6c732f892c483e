// Package audio plays short feedback tones for host interactions.
package audio

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

const (
	clickFreq     = 880
	clickDuration = 30 * time.Millisecond
	resetFreq     = 440
	resetDuration = 90 * time.Millisecond
)

// Clicker plays a tone when sand is painted or the board is reset. A
// disabled Clicker is silent.
type Clicker struct {
	sr    beep.SampleRate
	play  func(...beep.Streamer)
	close func()
}

// NewClicker initializes the speaker. When mute is set or the audio device
// cannot be opened the returned Clicker is silent; the failure is logged and
// otherwise ignored since the host runs fine without sound.
func NewClicker(mute bool) *Clicker {
	if mute {
		return &Clicker{}
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Printf("Audio initialization failed: %v", err)
		return &Clicker{}
	}
	return &Clicker{sr: sampleRate, play: speaker.Play, close: speaker.Close}
}

// Enabled reports whether the Clicker produces sound.
func (c *Clicker) Enabled() bool { return c != nil && c.play != nil }

// Click plays the paint tone.
func (c *Clicker) Click() { c.tone(clickFreq, clickDuration) }

// Reset plays the reset tone.
func (c *Clicker) Reset() { c.tone(resetFreq, resetDuration) }

// Close releases the speaker.
func (c *Clicker) Close() {
	if c == nil || c.close == nil {
		return
	}
	c.close()
	c.play, c.close = nil, nil
}

func (c *Clicker) tone(freq float64, d time.Duration) {
	if !c.Enabled() {
		return
	}
	s, err := Tone(c.sr, freq, d)
	if err != nil {
		log.Printf("Audio tone failed: %v", err)
		return
	}
	c.play(s)
}

// Tone returns a sine streamer of the given frequency that ends after d.
func Tone(sr beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, err
	}
	return beep.Take(sr.N(d), sine), nil
}
