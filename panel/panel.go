/*
 * Simon Says for Raspberry Pi Pico
 * Go version
 *
 * @authors     tomasemanuel
 * @copyright   2026, Tomas Emanuel
 * @licence     MIT
 *
 */
package panel

import (
	"time"
)

// InputPin is a digital input. TinyGo's machine.Pin satisfies it.
type InputPin interface {
	Get() bool
}

// OutputPin is a digital output. TinyGo's machine.Pin satisfies it.
type OutputPin interface {
	High()
	Low()
}

// Pitch of each cue, the classic Simon tones
var ToneHz = [4]uint{415, 310, 252, 209}

/*
 *  Buttons
 */

// Buttons reads four pulled-up buttons, low when pressed
type Buttons struct {
	pins []InputPin
	tick time.Duration
	// Replaceable for tests
	Sleep func(time.Duration)
}

func NewButtons(pins []InputPin, tick time.Duration) *Buttons {

	return &Buttons{pins: pins, tick: tick, Sleep: time.Sleep}
}

func (b *Buttons) pressed(i int) bool {

	return !b.pins[i].Get()
}

// ReadButton waits for a press and the release that follows it, and
// returns the button's index. Buttons are scanned lowest index first,
// so that one wins if two are down together. There is no timeout.
func (b *Buttons) ReadButton() uint8 {

	for {
		for i := range b.pins {
			if b.pressed(i) {
				// Wait until the button is released
				for b.pressed(i) {
					b.Sleep(b.tick)
				}

				return uint8(i)
			}
		}

		b.Sleep(b.tick)
	}
}

/*
 *  LEDs
 */

// Lights drives four LEDs, lit when high. If Tone is set it is called
// with the cue while its LED is on, and must itself take the full duration.
type Lights struct {
	pins  []OutputPin
	Tone  func(cue uint8, duration time.Duration)
	Sleep func(time.Duration)
}

func NewLights(pins []OutputPin) *Lights {

	l := &Lights{pins: pins, Sleep: time.Sleep}
	l.Off()
	return l
}

// Flash lights the cue's LED for the given time
func (l *Lights) Flash(cue uint8, duration time.Duration) {

	pin := l.pins[cue]
	pin.High()
	if l.Tone != nil {
		l.Tone(cue, duration)
	} else {
		l.Sleep(duration)
	}
	pin.Low()
}

// Off turns every LED off
func (l *Lights) Off() {

	for _, pin := range l.pins {
		pin.Low()
	}
}
