/*
 * Simon Says for Raspberry Pi Pico
 * Go version
 *
 * @authors     tomasemanuel
 * @copyright   2026, Tomas Emanuel
 * @licence     MIT
 *
 */
package sim

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/tomasemanuel/SimonSaysQuick/panel"
)

const sampleRate = beep.SampleRate(44100)

// Speaker plays the cue tones on the host's audio device
type Speaker struct {
	initialized bool
	// Replaceable for tests
	Sleep func(time.Duration)
}

func NewSpeaker() *Speaker {

	return &Speaker{Sleep: time.Sleep}
}

// Init opens the audio device
func (sp *Speaker) Init() error {

	if sp.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("speaker: %w", err)
	}

	sp.initialized = true
	return nil
}

// Tone sounds the cue's pitch and returns once the duration has passed,
// so it can stand in for the LED's on time
func (sp *Speaker) Tone(cue uint8, duration time.Duration) {

	if sp.initialized {
		if tone, err := cueTone(cue, duration); err == nil {
			speaker.Play(tone)
		}
	}

	sp.Sleep(duration)
}

func cueTone(cue uint8, duration time.Duration) (beep.Streamer, error) {

	if int(cue) >= len(panel.ToneHz) {
		return nil, fmt.Errorf("speaker: no tone for cue %d", cue)
	}

	sine, err := generators.SineTone(sampleRate, float64(panel.ToneHz[cue]))
	if err != nil {
		return nil, err
	}

	// A quarter of full scale
	quiet := &effects.Volume{Streamer: sine, Base: 2, Volume: -2, Silent: false}
	return beep.Take(sampleRate.N(duration), quiet), nil
}
